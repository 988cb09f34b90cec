package gfx

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestInitLinkToPopulatesDescriptor(t *testing.T) {
	sig := testSignature()
	desc := NewDescriptor(TriangleStrip, FillRasterizer())

	init := Init{
		Vertex: VertexInit{
			Stride: 16,
			Attrs: []AttrInit{
				{Name: "position", Format: gputypes.VertexFormatFloat32x2, Offset: 0},
				{Name: "uv", Format: gputypes.VertexFormatFloat32x2, Offset: 8},
			},
		},
		Blocks:  []string{"globals"},
		Targets: []TargetInit{{Name: "frag_color", Format: gputypes.TextureFormatRGBA8Unorm}},
		DepthStencil: &DepthStencilTarget{
			Format:       gputypes.TextureFormatDepth24PlusStencil8,
			WriteEnabled: true,
			Compare:      gputypes.CompareFunctionLess,
		},
	}

	meta, err := init.LinkTo(desc, &sig)
	if err != nil {
		t.Fatalf("LinkTo() error = %v", err)
	}

	if len(desc.VertexBuffers) != 1 {
		t.Fatalf("len(VertexBuffers) = %d, want 1", len(desc.VertexBuffers))
	}
	layout := desc.VertexBuffers[0]
	if layout.Stride != 16 {
		t.Errorf("Stride = %d, want 16", layout.Stride)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(layout.Attributes))
	}
	if layout.Attributes[1].Offset != 8 || layout.Attributes[1].ShaderLocation != 1 {
		t.Errorf("attribute 1 = %+v, want offset 8 at location 1", layout.Attributes[1])
	}

	if len(desc.ColorTargets) != 1 {
		t.Fatalf("len(ColorTargets) = %d, want 1", len(desc.ColorTargets))
	}
	if desc.ColorTargets[0].Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("target format = %v", desc.ColorTargets[0].Format)
	}
	if desc.DepthStencil == nil || !desc.DepthStencil.WriteEnabled {
		t.Error("depth-stencil target not populated")
	}

	if len(meta.Attrs) != 2 {
		t.Errorf("len(meta.Attrs) = %d, want 2", len(meta.Attrs))
	}
	if meta.Attrs[0].Name != "position" || meta.Attrs[0].Location != 0 {
		t.Errorf("meta.Attrs[0] = %+v", meta.Attrs[0])
	}
	if len(meta.Blocks) != 1 || meta.Blocks[0].Slot != 0 {
		t.Errorf("meta.Blocks = %+v", meta.Blocks)
	}
	if len(meta.Targets) != 1 || meta.Targets[0].Index != 0 {
		t.Errorf("meta.Targets = %+v", meta.Targets)
	}
}

func TestInitLinkToMissingAttr(t *testing.T) {
	sig := testSignature()
	desc := NewDescriptor(TriangleList, FillRasterizer())

	init := Init{
		Vertex: VertexInit{
			Stride: 12,
			Attrs:  []AttrInit{{Name: "normal", Format: gputypes.VertexFormatFloat32x3}},
		},
	}

	_, err := init.LinkTo(desc, &sig)

	var ierr *InitError
	if !errors.As(err, &ierr) {
		t.Fatalf("LinkTo() error = %v, want *InitError", err)
	}
	if ierr.Var != "normal" {
		t.Errorf("Var = %q, want normal", ierr.Var)
	}
	if !errors.Is(err, ErrVarNotFound) {
		t.Errorf("error = %v, want ErrVarNotFound", err)
	}
}

func TestInitLinkToAttrFormatMismatch(t *testing.T) {
	sig := testSignature()
	desc := NewDescriptor(TriangleList, FillRasterizer())

	// "position" is reflected as Float32x2.
	init := Init{
		Vertex: VertexInit{
			Stride: 16,
			Attrs:  []AttrInit{{Name: "position", Format: gputypes.VertexFormatFloat32x4}},
		},
	}

	_, err := init.LinkTo(desc, &sig)
	if !errors.Is(err, ErrVarMismatch) {
		t.Errorf("LinkTo() error = %v, want ErrVarMismatch", err)
	}
}

func TestInitLinkToResourceKindMismatch(t *testing.T) {
	sig := testSignature()
	desc := NewDescriptor(TriangleList, FillRasterizer())

	// "globals" is a uniform block, not a texture.
	init := Init{Textures: []string{"globals"}}

	_, err := init.LinkTo(desc, &sig)

	var ierr *InitError
	if !errors.As(err, &ierr) {
		t.Fatalf("LinkTo() error = %v, want *InitError", err)
	}
	if ierr.Var != "globals" {
		t.Errorf("Var = %q, want globals", ierr.Var)
	}
	if !errors.Is(err, ErrVarMismatch) {
		t.Errorf("error = %v, want ErrVarMismatch", err)
	}
}

func TestInitLinkToFirstOffendingSlotWins(t *testing.T) {
	sig := testSignature()
	desc := NewDescriptor(TriangleList, FillRasterizer())

	init := Init{Blocks: []string{"missing_a", "missing_b"}}

	_, err := init.LinkTo(desc, &sig)

	var ierr *InitError
	if !errors.As(err, &ierr) {
		t.Fatalf("LinkTo() error = %v, want *InitError", err)
	}
	if ierr.Var != "missing_a" {
		t.Errorf("Var = %q, want the first offending slot", ierr.Var)
	}
}

func TestInitLinkToOpenCategories(t *testing.T) {
	// A backend that cannot reflect a category leaves it nil; lookups
	// then succeed and slots are assigned by declaration order.
	sig := Signature{}
	desc := NewDescriptor(TriangleList, FillRasterizer())

	init := Init{
		Vertex: VertexInit{
			Stride: 8,
			Attrs:  []AttrInit{{Name: "anything", Format: gputypes.VertexFormatFloat32x2}},
		},
		Blocks:   []string{"a"},
		Textures: []string{"b"},
	}

	meta, err := init.LinkTo(desc, &sig)
	if err != nil {
		t.Fatalf("LinkTo() error = %v", err)
	}
	if meta.Attrs[0].Location != 0 {
		t.Errorf("Location = %d, want declaration-order 0", meta.Attrs[0].Location)
	}
	if meta.Blocks[0].Slot != 0 || meta.Textures[0].Slot != 0 {
		t.Errorf("slots = %d/%d, want declaration-order", meta.Blocks[0].Slot, meta.Textures[0].Slot)
	}
}

func TestInitLinkToCopiesDepthStencil(t *testing.T) {
	sig := testSignature()
	desc := NewDescriptor(TriangleList, FillRasterizer())

	ds := DepthStencilTarget{Format: gputypes.TextureFormatDepth24PlusStencil8}
	init := Init{DepthStencil: &ds}

	if _, err := init.LinkTo(desc, &sig); err != nil {
		t.Fatalf("LinkTo() error = %v", err)
	}
	if desc.DepthStencil == &ds {
		t.Error("descriptor should hold a copy, not the caller's value")
	}
	if desc.DepthStencil.Format != ds.Format {
		t.Errorf("Format = %v", desc.DepthStencil.Format)
	}
}

func TestSignatureLookups(t *testing.T) {
	sig := testSignature()

	if v, ok := sig.Input("uv"); !ok || v.Location != 1 {
		t.Errorf("Input(uv) = %+v, %v", v, ok)
	}
	if _, ok := sig.Input("nope"); ok {
		t.Error("Input(nope) should fail on a reflected category")
	}
	if v, ok := sig.Resource("tex_sampler"); !ok || v.Kind != ResourceSampler {
		t.Errorf("Resource(tex_sampler) = %+v, %v", v, ok)
	}
	if v, ok := sig.Output("frag_color"); !ok || v.Index != 0 {
		t.Errorf("Output(frag_color) = %+v, %v", v, ok)
	}
}
