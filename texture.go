// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// MaxLevels is the sentinel mip level count meaning "allocate the full
// mip chain the dimensions support". Backends clamp it to the actual
// chain length.
const MaxLevels = 99

// TextureKind selects the texture's dimensionality.
type TextureKind uint8

const (
	// TextureD1 is a one-dimensional texture.
	TextureD1 TextureKind = iota
	// TextureD2 is a two-dimensional texture.
	TextureD2
	// TextureD3 is a three-dimensional texture.
	TextureD3
	// TextureCube is a cube map.
	TextureCube
)

// String returns the kind name.
func (k TextureKind) String() string {
	switch k {
	case TextureD1:
		return "D1"
	case TextureD2:
		return "D2"
	case TextureD3:
		return "D3"
	case TextureCube:
		return "Cube"
	default:
		return fmt.Sprintf("TextureKind(%d)", uint8(k))
	}
}

// TextureInfo is a plain value description of a texture. Two infos with
// equal fields describe the same texture shape; there is no identity
// beyond the field values.
type TextureInfo struct {
	// Width and Height are the level zero dimensions in texels.
	Width, Height int
	// Depth is the number of depth slices; 1 for a plain 2D texture,
	// 0 for render target shapes with no depth dimension.
	Depth int
	// Levels is the mip level count. MaxLevels requests the full chain.
	Levels int
	// Kind is the dimensionality.
	Kind TextureKind
	// Samples is the per-texel sample count; 1 means single-sampled.
	Samples int
	// Format is the texel format.
	Format gputypes.TextureFormat
}

// FilterMethod selects how a sampler filters texels.
type FilterMethod uint8

const (
	// FilterNearest picks the nearest texel, no interpolation.
	FilterNearest FilterMethod = iota
	// FilterBilinear interpolates within one mip level.
	FilterBilinear
	// FilterTrilinear interpolates within and across mip levels.
	FilterTrilinear
)

// String returns the filter name.
func (f FilterMethod) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	case FilterTrilinear:
		return "trilinear"
	default:
		return fmt.Sprintf("FilterMethod(%d)", uint8(f))
	}
}

// WrapMode selects how a sampler treats coordinates outside [0, 1].
type WrapMode uint8

const (
	// WrapTile repeats the texture.
	WrapTile WrapMode = iota
	// WrapMirror repeats the texture mirrored every other tile.
	WrapMirror
	// WrapClamp clamps coordinates to the edge texel.
	WrapClamp
	// WrapBorder samples a constant border color outside the texture.
	WrapBorder
)

// String returns the wrap mode name.
func (w WrapMode) String() string {
	switch w {
	case WrapTile:
		return "tile"
	case WrapMirror:
		return "mirror"
	case WrapClamp:
		return "clamp"
	case WrapBorder:
		return "border"
	default:
		return fmt.Sprintf("WrapMode(%d)", uint8(w))
	}
}

// SamplerInfo is a plain value description of a sampler. The wrap mode
// applies to all three coordinate axes.
type SamplerInfo struct {
	Filter FilterMethod
	Wrap   WrapMode
}

// NewSamplerInfo builds a sampler description from a filter and a wrap
// mode, the two parameters that distinguish common samplers.
func NewSamplerInfo(filter FilterMethod, wrap WrapMode) SamplerInfo {
	return SamplerInfo{Filter: filter, Wrap: wrap}
}

// Texture is a reference-counted texture handle. The creating info is
// retained verbatim for capability queries.
type Texture struct {
	handle
	raw  any
	info TextureInfo
}

// NewTexture wraps a backend texture object in a handle. Intended for
// Device implementations.
func NewTexture(raw any, info TextureInfo, destroy func()) *Texture {
	t := &Texture{raw: raw, info: info}
	t.init(destroy)
	return t
}

// Raw returns the backend texture object.
func (t *Texture) Raw() any { return t.raw }

// Info returns the description the texture was created with.
func (t *Texture) Info() TextureInfo { return t.info }

// Sampler is a reference-counted sampler handle.
type Sampler struct {
	handle
	raw  any
	info SamplerInfo
}

// NewSampler wraps a backend sampler object in a handle. Intended for
// Device implementations.
func NewSampler(raw any, info SamplerInfo, destroy func()) *Sampler {
	s := &Sampler{raw: raw, info: info}
	s.init(destroy)
	return s
}

// Raw returns the backend sampler object.
func (s *Sampler) Raw() any { return s.raw }

// Info returns the description the sampler was created with.
func (s *Sampler) Info() SamplerInfo { return s.info }
