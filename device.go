// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "fmt"

// Capabilities describes the limits and feature tiers of the active
// device relevant to resource construction.
type Capabilities struct {
	// ShaderModel is the highest shading model the device executes.
	ShaderModel ShaderModel
	// MaxVertexCount is the largest vertex count a single buffer may
	// carry.
	MaxVertexCount uint32
	// MaxTextureSize is the largest texture edge length in texels.
	MaxTextureSize int
}

// BufferRole declares what a buffer will bind as.
type BufferRole uint8

const (
	// RoleVertex marks vertex data.
	RoleVertex BufferRole = iota
	// RoleIndex marks index data.
	RoleIndex
	// RoleUniform marks uniform block data.
	RoleUniform
)

// String returns the role name.
func (r BufferRole) String() string {
	switch r {
	case RoleVertex:
		return "vertex"
	case RoleIndex:
		return "index"
	case RoleUniform:
		return "uniform"
	default:
		return fmt.Sprintf("BufferRole(%d)", uint8(r))
	}
}

// Device is the resource creation contract a backend implements. The
// factory functions in this package compose these operations into the
// common construction paths; they add no device state of their own.
//
// Creation calls are synchronous round-trips into the backend and must
// run on the thread that holds the graphics context current. Handles the
// calls return are shareable read-only across goroutines afterwards.
// Nothing here retries, blocks on I/O or supports cancellation.
type Device interface {
	// Capabilities returns the device limits. The result is constant
	// for the device's lifetime.
	Capabilities() Capabilities

	// CreateBufferStatic creates an immutable buffer holding data.
	CreateBufferStatic(data []byte, role BufferRole) (*Buffer, error)

	// CreateShaderVertex compiles code as a vertex shader.
	CreateShaderVertex(code []byte) (*Shader, error)

	// CreateShaderPixel compiles code as a pixel shader.
	CreateShaderPixel(code []byte) (*Shader, error)

	// CreateProgram links a shader set into a program and reflects its
	// signature.
	CreateProgram(set ShaderSet) (*Program, error)

	// CreatePipelineRaw realizes a populated descriptor against a
	// linked program into a backend pipeline object.
	CreatePipelineRaw(prog *Program, desc *Descriptor) (*RawPipeline, error)

	// CreateTexture creates a texture with undefined contents.
	CreateTexture(info TextureInfo) (*Texture, error)

	// CreateTextureStatic creates a texture with the given level zero
	// contents, one packed 32-bit texel per element.
	CreateTextureStatic(info TextureInfo, data []uint32) (*Texture, error)

	// GenerateMipmap fills the texture's mip chain from level zero.
	GenerateMipmap(tex *Texture) error

	// CreateSampler creates a sampler. Sampler creation does not fail;
	// backends fall back to a null sampler on internal errors.
	CreateSampler(info SamplerInfo) *Sampler
}

// Buffer is a reference-counted device buffer handle.
type Buffer struct {
	handle
	raw  any
	role BufferRole
	size int
}

// NewBuffer wraps a backend buffer object in a handle. Intended for
// Device implementations.
func NewBuffer(raw any, role BufferRole, size int, destroy func()) *Buffer {
	b := &Buffer{raw: raw, role: role, size: size}
	b.init(destroy)
	return b
}

// Raw returns the backend buffer object.
func (b *Buffer) Raw() any { return b.raw }

// Role returns the role the buffer was created for.
func (b *Buffer) Role() BufferRole { return b.role }

// Size returns the buffer length in bytes.
func (b *Buffer) Size() int { return b.size }

// RawPipeline is a reference-counted backend pipeline object handle.
type RawPipeline struct {
	handle
	raw any
}

// NewRawPipeline wraps a backend pipeline object in a handle. Intended
// for Device implementations.
func NewRawPipeline(raw any, destroy func()) *RawPipeline {
	p := &RawPipeline{raw: raw}
	p.init(destroy)
	return p
}

// Raw returns the backend pipeline object.
func (p *RawPipeline) Raw() any { return p.raw }
