package gpu

import (
	"fmt"
	"image"
	"math/bits"

	"golang.org/x/image/draw"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// texture is the backend object carried by a gfx.Texture. For textures
// created with initial contents the level zero pixels are kept host-side;
// mipmap generation downsamples them on the CPU and uploads per level.
type texture struct {
	tex    hal.Texture
	levels int
	pixels *image.RGBA
}

// fullMipLevels returns the mip chain length for the given dimensions.
func fullMipLevels(width, height int) int {
	m := max(width, height)
	if m < 1 {
		return 1
	}
	return bits.Len(uint(m))
}

// resolveLevels clamps the level count, expanding the gfx.MaxLevels
// sentinel to the full chain.
func resolveLevels(info gfx.TextureInfo) int {
	levels := info.Levels
	if levels < 1 {
		levels = 1
	}
	if full := fullMipLevels(info.Width, info.Height); levels > full {
		levels = full
	}
	return levels
}

func textureDimension(kind gfx.TextureKind) gputypes.TextureDimension {
	switch kind {
	case gfx.TextureD1:
		return gputypes.TextureDimension1D
	case gfx.TextureD3:
		return gputypes.TextureDimension3D
	default:
		// Cube maps are 2D textures with six array layers.
		return gputypes.TextureDimension2D
	}
}

func textureUsage(format gputypes.TextureFormat) gputypes.TextureUsage {
	if format == gputypes.TextureFormatDepth24PlusStencil8 {
		return gputypes.TextureUsageRenderAttachment
	}
	return gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
}

func (d *Device) createTexture(info gfx.TextureInfo, pixels *image.RGBA) (*gfx.Texture, error) {
	if info.Width < 1 || info.Height < 1 {
		return nil, fmt.Errorf("gpu: texture dimensions %dx%d out of range", info.Width, info.Height)
	}
	if info.Width > d.caps.MaxTextureSize || info.Height > d.caps.MaxTextureSize {
		return nil, fmt.Errorf("gpu: texture dimensions %dx%d exceed device limit %d",
			info.Width, info.Height, d.caps.MaxTextureSize)
	}

	levels := resolveLevels(info)
	samples := info.Samples
	if samples < 1 {
		samples = 1
	}
	layers := info.Depth
	if layers < 1 {
		layers = 1
	}

	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: fmt.Sprintf("%s_texture", d.label),
		Size: hal.Extent3D{
			Width:              uint32(info.Width),
			Height:             uint32(info.Height),
			DepthOrArrayLayers: uint32(layers),
		},
		MipLevelCount: uint32(levels),
		SampleCount:   uint32(samples),
		Dimension:     textureDimension(info.Kind),
		Format:        info.Format,
		Usage:         textureUsage(info.Format),
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create texture: %w", err)
	}

	t := &texture{tex: tex, levels: levels, pixels: pixels}
	if pixels != nil {
		d.writeLevel(t, 0, pixels)
	}

	dev := d.device
	return gfx.NewTexture(t, info, func() {
		dev.DestroyTexture(tex)
	}), nil
}

// writeLevel uploads one mip level through the queue.
func (d *Device) writeLevel(t *texture, level int, img *image.RGBA) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	d.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: uint32(level),
		},
		img.Pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(w) * 4,
			RowsPerImage: uint32(h),
		},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
}

// CreateTexture implements gfx.Device.
func (d *Device) CreateTexture(info gfx.TextureInfo) (*gfx.Texture, error) {
	return d.createTexture(info, nil)
}

// CreateTextureStatic implements gfx.Device. Data is one packed RGBA8
// texel per element, row-major, for mip level zero.
func (d *Device) CreateTextureStatic(info gfx.TextureInfo, data []uint32) (*gfx.Texture, error) {
	if want := info.Width * info.Height; len(data) != want {
		return nil, fmt.Errorf("gpu: texture data length %d, want %d texels", len(data), want)
	}

	img := image.NewRGBA(image.Rect(0, 0, info.Width, info.Height))
	for i, texel := range data {
		img.Pix[i*4+0] = uint8(texel)
		img.Pix[i*4+1] = uint8(texel >> 8)
		img.Pix[i*4+2] = uint8(texel >> 16)
		img.Pix[i*4+3] = uint8(texel >> 24)
	}
	return d.createTexture(info, img)
}

// GenerateMipmap implements gfx.Device. Levels past zero are produced
// by CPU downscale of the level zero contents and uploaded per level,
// each level sampled from the one above it.
func (d *Device) GenerateMipmap(tex *gfx.Texture) error {
	t, ok := tex.Raw().(*texture)
	if !ok {
		return fmt.Errorf("gpu: texture is not a gpu backend texture")
	}
	if t.levels <= 1 {
		return nil
	}
	if t.pixels == nil {
		return fmt.Errorf("gpu: no host contents to generate mipmaps from")
	}

	src := t.pixels
	for level := 1; level < t.levels; level++ {
		w := max(src.Rect.Dx()/2, 1)
		h := max(src.Rect.Dy()/2, 1)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
		d.writeLevel(t, level, dst)
		src = dst
	}
	gfx.Logger().Debug("gpu: mip chain generated", "levels", t.levels)
	return nil
}

func filterMode(filter gfx.FilterMethod) gputypes.FilterMode {
	if filter == gfx.FilterNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

func mipmapFilterMode(filter gfx.FilterMethod) gputypes.FilterMode {
	if filter == gfx.FilterTrilinear {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

func addressMode(wrap gfx.WrapMode) gputypes.AddressMode {
	switch wrap {
	case gfx.WrapTile:
		return gputypes.AddressModeRepeat
	case gfx.WrapMirror:
		return gputypes.AddressModeMirrorRepeat
	default:
		// WrapBorder has no WebGPU address mode; clamp to edge is the
		// closest behavior.
		return gputypes.AddressModeClampToEdge
	}
}

// CreateSampler implements gfx.Device. Sampler creation does not fail
// at this contract; on an internal hal error the sampler falls back to
// a null backend object and a warning is logged.
func (d *Device) CreateSampler(info gfx.SamplerInfo) *gfx.Sampler {
	mode := addressMode(info.Wrap)
	sampler, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        fmt.Sprintf("%s_sampler", d.label),
		AddressModeU: mode,
		AddressModeV: mode,
		AddressModeW: mode,
		MagFilter:    filterMode(info.Filter),
		MinFilter:    filterMode(info.Filter),
		MipmapFilter: mipmapFilterMode(info.Filter),
	})
	if err != nil {
		gfx.Logger().Warn("gpu: sampler fallback", "err", err)
		return gfx.NewSampler(nil, info, nil)
	}
	dev := d.device
	return gfx.NewSampler(sampler, info, func() {
		dev.DestroySampler(sampler)
	})
}
