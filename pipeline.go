// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "github.com/gogpu/gputypes"

// PipelineInit populates a descriptor from a typed pipeline description,
// validating every declared slot against the program signature. LinkTo
// returns the binding table for the slots it populated, or an error
// describing the first slot that has no compatible signature entry.
//
// LinkTo may mutate desc freely; on error the descriptor is discarded by
// the caller and never reaches the device.
type PipelineInit interface {
	LinkTo(desc *Descriptor, sig *Signature) (*BindMeta, error)
}

// AttrInit declares one vertex attribute of a pipeline init description.
type AttrInit struct {
	// Name is the shader input to bind.
	Name string
	// Format is the host-side element format.
	Format gputypes.VertexFormat
	// Offset is the attribute's byte offset inside a vertex element.
	Offset int
}

// VertexInit declares the single vertex buffer slot of the simple
// pipeline path.
type VertexInit struct {
	// Stride is the byte distance between vertex elements.
	Stride int
	// StepMode selects per-vertex or per-instance advance; the zero
	// value is per-vertex.
	StepMode gputypes.VertexStepMode
	// Attrs are the attributes read from the buffer.
	Attrs []AttrInit
}

// TargetInit declares one color target of a pipeline init description.
type TargetInit struct {
	// Name is the shader output to bind.
	Name string
	// Format is the attachment texel format.
	Format gputypes.TextureFormat
	// Blend is the blend state, nil for opaque writes.
	Blend *gputypes.BlendState
}

// Init is the standard PipelineInit implementation: a plain value
// declaring the pipeline's vertex attributes, resource bind points and
// color targets by shader variable name.
//
// LinkTo validates each declared name against the program signature;
// a missing name fails with ErrVarNotFound, a declared format or kind
// conflicting with the reflected one fails with ErrVarMismatch. The
// first offending slot aborts population.
type Init struct {
	// Vertex declares the vertex buffer slot.
	Vertex VertexInit
	// Blocks names the uniform blocks the pipeline binds.
	Blocks []string
	// Textures names the sampled textures the pipeline binds.
	Textures []string
	// Samplers names the samplers the pipeline binds.
	Samplers []string
	// Targets declares the color targets.
	Targets []TargetInit
	// DepthStencil declares the depth-stencil attachment, nil for none.
	DepthStencil *DepthStencilTarget
}

var _ PipelineInit = Init{}

// LinkTo implements PipelineInit.
func (i Init) LinkTo(desc *Descriptor, sig *Signature) (*BindMeta, error) {
	meta := &BindMeta{}

	if len(i.Vertex.Attrs) > 0 {
		layout := VertexBufferLayout{
			Stride:   i.Vertex.Stride,
			StepMode: i.Vertex.StepMode,
		}
		for n, a := range i.Vertex.Attrs {
			in, ok := sig.Input(a.Name)
			if !ok {
				return nil, &InitError{Var: a.Name, Err: ErrVarNotFound}
			}
			if in.Format != 0 && in.Format != a.Format {
				return nil, &InitError{Var: a.Name, Err: ErrVarMismatch}
			}
			loc := in.Location
			if loc < 0 {
				loc = n
			}
			layout.Attributes = append(layout.Attributes, gputypes.VertexAttribute{
				Format:         a.Format,
				Offset:         uint64(a.Offset),
				ShaderLocation: uint32(loc),
			})
			meta.Attrs = append(meta.Attrs, AttrBind{
				Name:     a.Name,
				Location: loc,
				Buffer:   0,
				Format:   a.Format,
				Offset:   a.Offset,
			})
		}
		desc.VertexBuffers = append(desc.VertexBuffers, layout)
	}

	kinds := []struct {
		names []string
		kind  ResourceKind
		out   *[]SlotBind
	}{
		{i.Blocks, ResourceUniformBlock, &meta.Blocks},
		{i.Textures, ResourceTexture, &meta.Textures},
		{i.Samplers, ResourceSampler, &meta.Samplers},
	}
	for _, group := range kinds {
		for n, name := range group.names {
			res, ok := sig.Resource(name)
			if !ok {
				return nil, &InitError{Var: name, Err: ErrVarNotFound}
			}
			if res.Kind != ResourceUnknown && res.Kind != group.kind {
				return nil, &InitError{Var: name, Err: ErrVarMismatch}
			}
			slot := res.Slot
			if slot < 0 {
				slot = n
			}
			desc.Resources = append(desc.Resources, ResourceVar{
				Name: name,
				Slot: slot,
				Kind: group.kind,
			})
			*group.out = append(*group.out, SlotBind{
				Name: name,
				Slot: slot,
				Kind: group.kind,
			})
		}
	}

	for n, t := range i.Targets {
		out, ok := sig.Output(t.Name)
		if !ok {
			return nil, &InitError{Var: t.Name, Err: ErrVarNotFound}
		}
		index := out.Index
		if index < 0 {
			index = n
		}
		desc.ColorTargets = append(desc.ColorTargets, gputypes.ColorTargetState{
			Format:    t.Format,
			Blend:     t.Blend,
			WriteMask: gputypes.ColorWriteMaskAll,
		})
		meta.Targets = append(meta.Targets, TargetBind{Name: t.Name, Index: index})
	}

	if i.DepthStencil != nil {
		ds := *i.DepthStencil
		desc.DepthStencil = &ds
	}

	return meta, nil
}

// AttrBind records one validated vertex attribute binding.
type AttrBind struct {
	// Name is the shader input name.
	Name string
	// Location is the shader location the attribute binds to.
	Location int
	// Buffer is the vertex buffer slot the attribute reads from.
	Buffer int
	// Format is the bound element format.
	Format gputypes.VertexFormat
	// Offset is the byte offset inside a vertex element.
	Offset int
}

// SlotBind records one validated resource binding.
type SlotBind struct {
	// Name is the shader resource name.
	Name string
	// Slot is the bind slot.
	Slot int
	// Kind is the resource category.
	Kind ResourceKind
}

// TargetBind records one validated color target binding.
type TargetBind struct {
	// Name is the shader output name.
	Name string
	// Index is the color target index.
	Index int
}

// BindMeta is the validated binding table produced during descriptor
// population. Its entries are a subset of the program signature,
// type-compatible by construction, and are retained with the pipeline
// for draw-time binding.
type BindMeta struct {
	Attrs    []AttrBind
	Blocks   []SlotBind
	Textures []SlotBind
	Samplers []SlotBind
	Targets  []TargetBind
}

// PipelineState is a realized pipeline: the backend pipeline object, the
// topology it assembles, and the binding table validated during
// construction.
type PipelineState struct {
	raw       *RawPipeline
	primitive Primitive
	meta      *BindMeta
}

func newPipelineState(raw *RawPipeline, primitive Primitive, meta *BindMeta) *PipelineState {
	return &PipelineState{raw: raw, primitive: primitive, meta: meta}
}

// Raw returns the backend pipeline handle.
func (p *PipelineState) Raw() *RawPipeline { return p.raw }

// Primitive returns the assembly topology the pipeline was built with.
func (p *PipelineState) Primitive() Primitive { return p.primitive }

// Meta returns the binding table validated during construction.
func (p *PipelineState) Meta() *BindMeta { return p.meta }

// Retain adds a reference to the underlying pipeline object.
func (p *PipelineState) Retain() { p.raw.Retain() }

// Release drops a reference to the underlying pipeline object.
func (p *PipelineState) Release() { p.raw.Release() }
