// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "github.com/gogpu/gputypes"

// Signature is the reflection data of a linked program: its named vertex
// inputs, pixel outputs and resource bind points. Pipeline init
// descriptions are validated against it during descriptor population.
//
// A nil category slice means the backend could not reflect that category;
// validation treats it as open and skips the existence check. An empty
// non-nil slice means the category was reflected and has no entries, so
// every lookup in it fails.
type Signature struct {
	Inputs    []InputVar
	Outputs   []OutputVar
	Resources []ResourceVar
}

// InputVar describes one vertex stage input.
type InputVar struct {
	// Name is the attribute name in the shader.
	Name string
	// Location is the shader location the attribute is bound to.
	Location int
	// Format is the attribute's vertex format. The zero value means the
	// backend did not reflect a format and format checks are skipped.
	Format gputypes.VertexFormat
}

// OutputVar describes one pixel stage output target.
type OutputVar struct {
	// Name is the output name in the shader.
	Name string
	// Index is the color target index.
	Index int
}

// ResourceKind classifies a signature resource bind point.
type ResourceKind uint8

const (
	// ResourceUnknown marks a bind point whose category the backend
	// compiler does not expose. Kind checks against it are skipped.
	ResourceUnknown ResourceKind = iota
	// ResourceUniformBlock is a uniform or constant buffer block.
	ResourceUniformBlock
	// ResourceTexture is a sampled texture binding.
	ResourceTexture
	// ResourceSampler is a sampler binding.
	ResourceSampler
)

// String returns the kind name.
func (k ResourceKind) String() string {
	switch k {
	case ResourceUniformBlock:
		return "uniform block"
	case ResourceTexture:
		return "texture"
	case ResourceSampler:
		return "sampler"
	default:
		return "unknown"
	}
}

// ResourceVar describes one resource bind point.
type ResourceVar struct {
	// Name is the resource name in the shader.
	Name string
	// Slot is the bind slot.
	Slot int
	// Kind classifies the bind point.
	Kind ResourceKind
}

// Input looks up a vertex input by name. The second result reports
// whether the name was found; it is always true when Inputs is nil
// (unreflected category, treated as open).
func (s *Signature) Input(name string) (InputVar, bool) {
	if s.Inputs == nil {
		return InputVar{Name: name, Location: -1}, true
	}
	for _, v := range s.Inputs {
		if v.Name == name {
			return v, true
		}
	}
	return InputVar{}, false
}

// Output looks up a pixel output by name, with the same open semantics
// as Input for a nil Outputs slice.
func (s *Signature) Output(name string) (OutputVar, bool) {
	if s.Outputs == nil {
		return OutputVar{Name: name, Index: -1}, true
	}
	for _, v := range s.Outputs {
		if v.Name == name {
			return v, true
		}
	}
	return OutputVar{}, false
}

// Resource looks up a resource bind point by name, with the same open
// semantics as Input for a nil Resources slice.
func (s *Signature) Resource(name string) (ResourceVar, bool) {
	if s.Resources == nil {
		return ResourceVar{Name: name, Slot: -1}, true
	}
	for _, v := range s.Resources {
		if v.Name == name {
			return v, true
		}
	}
	return ResourceVar{}, false
}
