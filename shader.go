// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "fmt"

// ShaderModel identifies a tiered shading capability level of the active
// device. Higher models are supersets of lower ones, so code written for a
// lower model runs on a device reporting a higher one.
type ShaderModel uint8

const (
	// ShaderModelUnsupported means the device has no programmable shading.
	ShaderModelUnsupported ShaderModel = iota
	// ShaderModel20 is shader model 2.0.
	ShaderModel20
	// ShaderModel30 is shader model 3.0.
	ShaderModel30
	// ShaderModel40 is shader model 4.0.
	ShaderModel40
	// ShaderModel50 is shader model 5.0.
	ShaderModel50
)

// String returns the model in "SM x.y" form.
func (m ShaderModel) String() string {
	switch m {
	case ShaderModelUnsupported:
		return "unsupported"
	case ShaderModel20:
		return "SM 2.0"
	case ShaderModel30:
		return "SM 3.0"
	case ShaderModel40:
		return "SM 4.0"
	case ShaderModel50:
		return "SM 5.0"
	default:
		return fmt.Sprintf("ShaderModel(%d)", uint8(m))
	}
}

// ShaderSource holds one shader's code for each shader model tier it
// supports. A nil slot means the tier is not provided. The struct form
// guarantees at most one blob per tier.
//
// Backends interpret the blob contents; the gogpu backend expects WGSL
// text, a GL backend would expect GLSL of the matching version.
type ShaderSource struct {
	SM20 []byte
	SM30 []byte
	SM40 []byte
	SM50 []byte
}

// Choose returns the code blob for the highest tier at or below model.
// It walks tiers descending and returns the first provided blob; if no
// tier qualifies it returns ErrModelNotSupported.
//
// Choose is pure: it never mutates the source set and is safe for
// concurrent use.
func (s ShaderSource) Choose(model ShaderModel) ([]byte, error) {
	tiers := [...]struct {
		model ShaderModel
		code  []byte
	}{
		{ShaderModel50, s.SM50},
		{ShaderModel40, s.SM40},
		{ShaderModel30, s.SM30},
		{ShaderModel20, s.SM20},
	}
	for _, t := range tiers {
		if t.model <= model && t.code != nil {
			return t.code, nil
		}
	}
	return nil, ErrModelNotSupported
}

// Shader is a reference-counted compiled shader stage object.
type Shader struct {
	handle
	raw   any
	stage ProgramStage
}

// NewShader wraps a backend shader object in a handle. The destroy hook
// runs when the last reference is released; backends pass their stage
// cleanup there. Intended for Device implementations.
func NewShader(raw any, stage ProgramStage, destroy func()) *Shader {
	s := &Shader{raw: raw, stage: stage}
	s.init(destroy)
	return s
}

// Raw returns the backend shader object.
func (s *Shader) Raw() any { return s.raw }

// Stage returns the stage the shader was compiled for.
func (s *Shader) Stage() ProgramStage { return s.stage }

// ShaderSet is the simple one-vertex-one-pixel stage combination accepted
// by program linking. Geometry, tessellation and compute stages are not
// part of this path.
type ShaderSet struct {
	Vertex *Shader
	Pixel  *Shader
}

// SimpleSet combines a vertex and a pixel shader into a set.
func SimpleSet(vs, ps *Shader) ShaderSet {
	return ShaderSet{Vertex: vs, Pixel: ps}
}
