// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/gputypes"
)

// LinkProgram compiles vsCode as a vertex shader and psCode as a pixel
// shader, combines them into a simple set and links a program.
//
// Stages are attempted in order and the first failure wins: a vertex
// compile error returns before pixel compilation is attempted, a pixel
// error before linking. The returned error is always a *ProgramError
// tagging the failed stage.
//
// The intermediate shader handles are released once linking completes;
// the program carries its own references to whatever the backend needs.
func LinkProgram(dev Device, vsCode, psCode []byte) (*Program, error) {
	vs, err := dev.CreateShaderVertex(vsCode)
	if err != nil {
		return nil, &ProgramError{Stage: StageVertex, Err: err}
	}
	ps, err := dev.CreateShaderPixel(psCode)
	if err != nil {
		vs.Release()
		return nil, &ProgramError{Stage: StagePixel, Err: err}
	}

	set := SimpleSet(vs, ps)

	prog, err := dev.CreateProgram(set)
	vs.Release()
	ps.Release()
	if err != nil {
		return nil, &ProgramError{Stage: StageLink, Err: err}
	}
	return prog, nil
}

// LinkProgramSource links a program from model-tiered shader sources,
// picking each stage's variant for the device's active shader model.
//
// The shader model is queried once per call. The vertex source is
// selected first; if it has no qualifying tier the call fails with a
// vertex-stage ProgramError wrapping ErrModelNotSupported and the pixel
// source is not consulted. Compilation follows LinkProgram.
func LinkProgramSource(dev Device, vsSrc, psSrc ShaderSource) (*Program, error) {
	model := dev.Capabilities().ShaderModel

	vsCode, err := vsSrc.Choose(model)
	if err != nil {
		return nil, &ProgramError{Stage: StageVertex, Err: err}
	}
	psCode, err := psSrc.Choose(model)
	if err != nil {
		return nil, &ProgramError{Stage: StagePixel, Err: err}
	}
	return LinkProgram(dev, vsCode, psCode)
}

// NewPipelineState builds a complete pipeline: it links set into a
// program, seeds a descriptor with the topology and rasterizer state,
// lets init populate and validate the descriptor against the program's
// signature, and asks the device to realize the result.
//
// Failures are tagged with the stage they occurred in, in construction
// order: StageProgramLink, StageDescriptorInit, StageDeviceCreate. At
// most one stage is reported per call. A descriptor init failure carries
// the already linked program in the error for the caller to reuse or
// release; every other path settles the program reference internally.
func NewPipelineState(dev Device, set ShaderSet, primitive Primitive, rast Rasterizer, init PipelineInit) (*PipelineState, error) {
	prog, err := dev.CreateProgram(set)
	if err != nil {
		return nil, &PipelineStateError{Stage: StageProgramLink, Err: err}
	}

	desc := NewDescriptor(primitive, rast)
	meta, err := init.LinkTo(desc, prog.Signature())
	if err != nil {
		return nil, &PipelineStateError{Stage: StageDescriptorInit, Err: err, Program: prog}
	}

	raw, err := dev.CreatePipelineRaw(prog, desc)
	if err != nil {
		prog.Release()
		return nil, &PipelineStateError{Stage: StageDeviceCreate, Err: err}
	}
	prog.Release()

	return newPipelineState(raw, primitive, meta), nil
}

// VertexBuffer pairs a static vertex buffer with the vertex count and
// stride derived from the data it was created from.
type VertexBuffer struct {
	// Buffer is the underlying device buffer.
	Buffer *Buffer
	// Count is the number of vertices in the buffer.
	Count uint32
	// Stride is the byte size of one vertex element.
	Stride int
}

// Release drops the underlying buffer reference.
func (v VertexBuffer) Release() {
	if v.Buffer != nil {
		v.Buffer.Release()
	}
}

// CreateVertexBuffer creates a static vertex buffer from typed vertex
// data. The vertex count is the element count of data; if it exceeds
// the device's vertex count range the call fails with
// ErrVertexCountRange before any device call is made.
func CreateVertexBuffer[T any](dev Device, data []T) (VertexBuffer, error) {
	maxCount := dev.Capabilities().MaxVertexCount
	if maxCount == 0 {
		maxCount = math.MaxUint32
	}
	if uint64(len(data)) > uint64(maxCount) {
		return VertexBuffer{}, ErrVertexCountRange
	}

	var zero T
	stride := int(unsafe.Sizeof(zero))
	var raw []byte
	if len(data) > 0 {
		raw = unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*stride) //nolint:gosec // read-only view of caller data
	}

	buf, err := dev.CreateBufferStatic(raw, RoleVertex)
	if err != nil {
		return VertexBuffer{}, err
	}
	return VertexBuffer{Buffer: buf, Count: uint32(len(data)), Stride: stride}, nil
}

// CreateTextureRGBA8 creates an empty single-level RGBA8 2D texture.
func CreateTextureRGBA8(dev Device, width, height int) (*Texture, error) {
	return dev.CreateTexture(TextureInfo{
		Width:   width,
		Height:  height,
		Depth:   1,
		Levels:  1,
		Kind:    TextureD2,
		Samples: 1,
		Format:  gputypes.TextureFormatRGBA8Unorm,
	})
}

// CreateTextureRGBA8Static creates an RGBA8 2D texture with the given
// level zero contents and a full mip chain. Mip levels are generated
// after creation; a generation failure releases the texture and is
// reported rather than leaving the chain silently incomplete.
func CreateTextureRGBA8Static(dev Device, width, height int, data []uint32) (*Texture, error) {
	info := TextureInfo{
		Width:   width,
		Height:  height,
		Depth:   1,
		Levels:  MaxLevels,
		Kind:    TextureD2,
		Samples: 1,
		Format:  gputypes.TextureFormatRGBA8Unorm,
	}
	tex, err := dev.CreateTextureStatic(info, data)
	if err != nil {
		return nil, err
	}
	if err := dev.GenerateMipmap(tex); err != nil {
		tex.Release()
		return nil, fmt.Errorf("gfx: generate mipmap: %w", err)
	}
	return tex, nil
}

// CreateTextureDepthStencil creates a single-level depth-stencil 2D
// texture.
func CreateTextureDepthStencil(dev Device, width, height int) (*Texture, error) {
	return dev.CreateTexture(TextureInfo{
		Width:   width,
		Height:  height,
		Depth:   0,
		Levels:  1,
		Kind:    TextureD2,
		Samples: 1,
		Format:  gputypes.TextureFormatDepth24PlusStencil8,
	})
}

// CreateSamplerLinear creates the standard linear sampler: trilinear
// filtering with clamped coordinates.
func CreateSamplerLinear(dev Device) *Sampler {
	return dev.CreateSampler(NewSamplerInfo(FilterTrilinear, WrapClamp))
}
