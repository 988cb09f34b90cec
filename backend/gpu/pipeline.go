package gpu

import (
	"fmt"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func primitiveTopology(p gfx.Primitive) gputypes.PrimitiveTopology {
	switch p {
	case gfx.PointList:
		return gputypes.PrimitiveTopologyPointList
	case gfx.LineList:
		return gputypes.PrimitiveTopologyLineList
	case gfx.LineStrip:
		return gputypes.PrimitiveTopologyLineStrip
	case gfx.TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip
	default:
		return gputypes.PrimitiveTopologyTriangleList
	}
}

func cullMode(c gfx.CullFace) gputypes.CullMode {
	switch c {
	case gfx.CullFront:
		return gputypes.CullModeFront
	case gfx.CullBack:
		return gputypes.CullModeBack
	default:
		return gputypes.CullModeNone
	}
}

func frontFace(f gfx.FrontFace) gputypes.FrontFace {
	if f == gfx.Clockwise {
		return gputypes.FrontFaceCW
	}
	return gputypes.FrontFaceCCW
}

func vertexLayouts(layouts []gfx.VertexBufferLayout) []gputypes.VertexBufferLayout {
	out := make([]gputypes.VertexBufferLayout, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, gputypes.VertexBufferLayout{
			ArrayStride: uint64(l.Stride),
			StepMode:    l.StepMode,
			Attributes:  l.Attributes,
		})
	}
	return out
}

func depthStencilState(ds *gfx.DepthStencilTarget) *hal.DepthStencilState {
	if ds == nil {
		return nil
	}
	return &hal.DepthStencilState{
		Format:            ds.Format,
		DepthWriteEnabled: ds.WriteEnabled,
		DepthCompare:      ds.Compare,
		StencilFront: hal.StencilFaceState{
			Compare: gputypes.CompareFunctionAlways,
		},
		StencilBack: hal.StencilFaceState{
			Compare: gputypes.CompareFunctionAlways,
		},
		StencilReadMask:  0xFF,
		StencilWriteMask: 0xFF,
	}
}

// bindGroupLayout builds the single bind group layout for the
// descriptor's resource slots. The signature reflection cannot always
// classify a bind point; unclassified slots bind as uniform buffers,
// the most common case in the simple path.
func (d *Device) bindGroupLayout(resources []gfx.ResourceVar) (hal.BindGroupLayout, error) {
	if len(resources) == 0 {
		return nil, nil
	}
	entries := make([]gputypes.BindGroupLayoutEntry, 0, len(resources))
	for _, res := range resources {
		entry := gputypes.BindGroupLayoutEntry{
			Binding:    uint32(res.Slot),
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		}
		switch res.Kind {
		case gfx.ResourceTexture:
			entry.Texture = &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			}
		case gfx.ResourceSampler:
			entry.Sampler = &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering}
		default:
			entry.Buffer = &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}
		}
		entries = append(entries, entry)
	}
	layout, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   fmt.Sprintf("%s_bind_layout", d.label),
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create bind group layout: %w", err)
	}
	return layout, nil
}

// CreatePipelineRaw implements gfx.Device. The populated descriptor is
// realized as a hal render pipeline; the descriptor is not mutated.
func (d *Device) CreatePipelineRaw(prog *gfx.Program, desc *gfx.Descriptor) (*gfx.RawPipeline, error) {
	p, ok := prog.Raw().(*program)
	if !ok {
		return nil, fmt.Errorf("gpu: program is not a gpu backend program")
	}

	bindLayout, err := d.bindGroupLayout(desc.Resources)
	if err != nil {
		return nil, err
	}
	var bindLayouts []hal.BindGroupLayout
	if bindLayout != nil {
		bindLayouts = append(bindLayouts, bindLayout)
	}
	pipeLayout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            fmt.Sprintf("%s_pipe_layout", d.label),
		BindGroupLayouts: bindLayouts,
	})
	if err != nil {
		if bindLayout != nil {
			d.device.DestroyBindGroupLayout(bindLayout)
		}
		return nil, fmt.Errorf("gpu: create pipeline layout: %w", err)
	}

	sampleCount := desc.Rasterizer.Samples
	if sampleCount < 1 {
		sampleCount = 1
	}

	pipeline, err := d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("%s_pipeline", d.label),
		Layout: pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.vertex.module,
			EntryPoint: "vs_main",
			Buffers:    vertexLayouts(desc.VertexBuffers),
		},
		Fragment: &hal.FragmentState{
			Module:     p.pixel.module,
			EntryPoint: "fs_main",
			Targets:    desc.ColorTargets,
		},
		DepthStencil: depthStencilState(desc.DepthStencil),
		// Rasterizer.Method has no hal equivalent; WebGPU rasterizes
		// filled primitives only.
		Primitive: gputypes.PrimitiveState{
			Topology:  primitiveTopology(desc.Primitive),
			FrontFace: frontFace(desc.Rasterizer.Front),
			CullMode:  cullMode(desc.Rasterizer.Cull),
		},
		Multisample: gputypes.MultisampleState{
			Count: uint32(sampleCount),
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		d.device.DestroyPipelineLayout(pipeLayout)
		if bindLayout != nil {
			d.device.DestroyBindGroupLayout(bindLayout)
		}
		return nil, fmt.Errorf("gpu: create render pipeline: %w", err)
	}

	dev := d.device
	return gfx.NewRawPipeline(pipeline, func() {
		dev.DestroyRenderPipeline(pipeline)
		dev.DestroyPipelineLayout(pipeLayout)
		if bindLayout != nil {
			dev.DestroyBindGroupLayout(bindLayout)
		}
	}), nil
}
