// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Primitive selects how the vertex stream is assembled into primitives.
type Primitive uint8

const (
	// PointList draws each vertex as a point.
	PointList Primitive = iota
	// LineList draws each vertex pair as a segment.
	LineList
	// LineStrip draws a connected polyline.
	LineStrip
	// TriangleList draws each vertex triple as a triangle.
	TriangleList
	// TriangleStrip draws a connected triangle strip.
	TriangleStrip
)

// String returns the topology name.
func (p Primitive) String() string {
	switch p {
	case PointList:
		return "point list"
	case LineList:
		return "line list"
	case LineStrip:
		return "line strip"
	case TriangleList:
		return "triangle list"
	case TriangleStrip:
		return "triangle strip"
	default:
		return fmt.Sprintf("Primitive(%d)", uint8(p))
	}
}

// CullFace selects which triangle faces the rasterizer discards.
type CullFace uint8

const (
	// CullNone keeps both faces.
	CullNone CullFace = iota
	// CullFront discards front faces.
	CullFront
	// CullBack discards back faces.
	CullBack
)

// FrontFace selects the winding order that counts as front-facing.
type FrontFace uint8

const (
	// CounterClockwise winding is front-facing.
	CounterClockwise FrontFace = iota
	// Clockwise winding is front-facing.
	Clockwise
)

// RasterMethod selects how primitives are rasterized.
type RasterMethod uint8

const (
	// Fill rasterizes primitive interiors.
	Fill RasterMethod = iota
	// Line rasterizes primitive edges only.
	Line
)

// Rasterizer is the fixed-function rasterizer configuration seeded into
// a Descriptor.
type Rasterizer struct {
	// Front is the winding order treated as front-facing.
	Front FrontFace
	// Cull selects the discarded faces.
	Cull CullFace
	// Method selects fill or wireframe rasterization.
	Method RasterMethod
	// Samples is the multisample count; 0 or 1 means single-sampled.
	Samples int
}

// FillRasterizer returns the common solid-fill configuration:
// counter-clockwise front faces, no culling, single-sampled.
func FillRasterizer() Rasterizer {
	return Rasterizer{Front: CounterClockwise, Cull: CullNone, Method: Fill}
}

// VertexBufferLayout describes one vertex buffer slot of a pipeline:
// its per-vertex stride, step mode and the attributes read from it.
type VertexBufferLayout struct {
	// Stride is the byte distance between consecutive elements.
	Stride int
	// StepMode selects per-vertex or per-instance advance.
	StepMode gputypes.VertexStepMode
	// Attributes are the shader-visible attributes within an element.
	Attributes []gputypes.VertexAttribute
}

// DepthStencilTarget describes the pipeline's depth-stencil attachment.
type DepthStencilTarget struct {
	// Format is the attachment texel format.
	Format gputypes.TextureFormat
	// WriteEnabled enables depth writes.
	WriteEnabled bool
	// Compare is the depth test function.
	Compare gputypes.CompareFunction
}

// Descriptor is an in-progress pipeline configuration. NewDescriptor
// seeds it with the topology and rasterizer state; a PipelineInit
// populates the binding slots during LinkTo. Once handed to
// Device.CreatePipelineRaw the descriptor is frozen: neither the device
// nor the caller may mutate it afterwards.
type Descriptor struct {
	// Primitive is the assembly topology.
	Primitive Primitive
	// Rasterizer is the fixed-function rasterizer state.
	Rasterizer Rasterizer
	// VertexBuffers are the vertex buffer slots, in slot order.
	VertexBuffers []VertexBufferLayout
	// ColorTargets are the color attachments, in target order.
	ColorTargets []gputypes.ColorTargetState
	// DepthStencil is the depth-stencil attachment, nil when absent.
	DepthStencil *DepthStencilTarget
	// Resources are the bind points the pipeline uses, in slot order.
	Resources []ResourceVar
}

// NewDescriptor allocates an empty descriptor seeded with the given
// topology and rasterizer state.
func NewDescriptor(primitive Primitive, rast Rasterizer) *Descriptor {
	return &Descriptor{Primitive: primitive, Rasterizer: rast}
}
