package gpu

import (
	"fmt"

	"github.com/gogpu/gfx"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"
	"github.com/gogpu/wgpu/hal"
)

// shaderModule is the backend object carried by a gfx.Shader: the hal
// module plus the lowered IR it was compiled from. The IR feeds program
// signature reflection at link time.
type shaderModule struct {
	module hal.ShaderModule
	ir     *ir.Module
}

// compileWGSL parses and lowers WGSL source, compiles it to SPIR-V and
// creates a hal shader module.
func (d *Device) compileWGSL(label string, source []byte) (*shaderModule, error) {
	ast, err := naga.Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("gpu: parse shader: %w", err)
	}
	irmod, err := naga.Lower(ast)
	if err != nil {
		return nil, fmt.Errorf("gpu: lower shader: %w", err)
	}
	spv, err := spirv.NewBackend(spirv.DefaultOptions()).Compile(irmod)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spv)/4)
	for i := range words {
		words[i] = uint32(spv[i*4]) |
			uint32(spv[i*4+1])<<8 |
			uint32(spv[i*4+2])<<16 |
			uint32(spv[i*4+3])<<24
	}

	module, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create shader module: %w", err)
	}

	gfx.Logger().Debug("gpu: shader compiled",
		"label", label, "spirv_words", len(words), "globals", len(irmod.GlobalVariables))
	return &shaderModule{module: module, ir: irmod}, nil
}

// CreateShaderVertex implements gfx.Device.
func (d *Device) CreateShaderVertex(code []byte) (*gfx.Shader, error) {
	sm, err := d.compileWGSL(d.label+"_vs", code)
	if err != nil {
		return nil, err
	}
	dev := d.device
	return gfx.NewShader(sm, gfx.StageVertex, func() {
		dev.DestroyShaderModule(sm.module)
	}), nil
}

// CreateShaderPixel implements gfx.Device.
func (d *Device) CreateShaderPixel(code []byte) (*gfx.Shader, error) {
	sm, err := d.compileWGSL(d.label+"_ps", code)
	if err != nil {
		return nil, err
	}
	dev := d.device
	return gfx.NewShader(sm, gfx.StagePixel, func() {
		dev.DestroyShaderModule(sm.module)
	}), nil
}

// program is the backend object carried by a gfx.Program. Linking on
// the hal happens at pipeline creation; the program holds the stage
// modules until then.
type program struct {
	vertex *shaderModule
	pixel  *shaderModule
}

// CreateProgram implements gfx.Device. The simple set must carry both
// stages; the signature is reflected from the stages' IR.
func (d *Device) CreateProgram(set gfx.ShaderSet) (*gfx.Program, error) {
	if set.Vertex == nil || set.Pixel == nil {
		return nil, fmt.Errorf("gpu: shader set requires vertex and pixel stages")
	}
	vs, ok := set.Vertex.Raw().(*shaderModule)
	if !ok {
		return nil, fmt.Errorf("gpu: vertex shader is not a gpu backend shader")
	}
	ps, ok := set.Pixel.Raw().(*shaderModule)
	if !ok {
		return nil, fmt.Errorf("gpu: pixel shader is not a gpu backend shader")
	}

	sig := reflectSignature(vs.ir, ps.ir)

	// The program keeps the stage modules alive past the caller's
	// shader handles.
	set.Vertex.Retain()
	set.Pixel.Retain()
	vsHandle, psHandle := set.Vertex, set.Pixel
	return gfx.NewProgram(&program{vertex: vs, pixel: ps}, sig, func() {
		vsHandle.Release()
		psHandle.Release()
	}), nil
}

// reflectSignature builds a program signature from the stage IRs.
//
// The naga IR exposes resource bind points; vertex input and pixel
// output reflection is not available through it, so those categories
// stay nil and gfx treats them as open. Resource categories beyond the
// name are likewise not exposed; entries are marked kind-unknown and
// gfx skips the kind check.
func reflectSignature(irs ...*ir.Module) gfx.Signature {
	var resources []gfx.ResourceVar
	seen := make(map[string]bool)
	for _, m := range irs {
		if m == nil {
			continue
		}
		for _, gv := range m.GlobalVariables {
			if gv.Name == "" || seen[gv.Name] {
				continue
			}
			seen[gv.Name] = true
			resources = append(resources, gfx.ResourceVar{
				Name: gv.Name,
				Slot: len(resources),
				Kind: gfx.ResourceUnknown,
			})
		}
	}
	if resources == nil {
		resources = []gfx.ResourceVar{}
	}
	return gfx.Signature{Resources: resources}
}
