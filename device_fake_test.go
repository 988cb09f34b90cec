package gfx

import (
	"sync/atomic"

	"github.com/gogpu/gputypes"
)

// fakeDevice is a test double for Device. Every operation succeeds by
// default; per-test behavior is injected through the func fields, and
// call counts are tracked for ordering and short-circuit assertions.
type fakeDevice struct {
	caps Capabilities

	createShaderVertexFunc func(code []byte) (*Shader, error)
	createShaderPixelFunc  func(code []byte) (*Shader, error)
	createProgramFunc      func(set ShaderSet) (*Program, error)
	createPipelineRawFunc  func(prog *Program, desc *Descriptor) (*RawPipeline, error)
	createBufferFunc       func(data []byte, role BufferRole) (*Buffer, error)
	createTextureFunc      func(info TextureInfo) (*Texture, error)
	createTextureStatFunc  func(info TextureInfo, data []uint32) (*Texture, error)
	generateMipmapFunc     func(tex *Texture) error

	// Track calls for verification
	vertexCalls   int32
	pixelCalls    int32
	programCalls  int32
	pipelineCalls int32
	bufferCalls   int32
	textureCalls  int32
	mipmapCalls   int32
	samplerCalls  int32

	// Last observed arguments
	lastBufferData  []byte
	lastBufferRole  BufferRole
	lastTextureInfo TextureInfo
	lastSamplerInfo SamplerInfo
	lastVertexCode  []byte
	lastPixelCode   []byte
}

var _ Device = (*fakeDevice)(nil)

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		caps: Capabilities{
			ShaderModel:    ShaderModel50,
			MaxVertexCount: 1 << 20,
			MaxTextureSize: 4096,
		},
	}
}

func (d *fakeDevice) Capabilities() Capabilities { return d.caps }

func (d *fakeDevice) CreateShaderVertex(code []byte) (*Shader, error) {
	atomic.AddInt32(&d.vertexCalls, 1)
	d.lastVertexCode = code
	if d.createShaderVertexFunc != nil {
		return d.createShaderVertexFunc(code)
	}
	return NewShader("fake-vs", StageVertex, nil), nil
}

func (d *fakeDevice) CreateShaderPixel(code []byte) (*Shader, error) {
	atomic.AddInt32(&d.pixelCalls, 1)
	d.lastPixelCode = code
	if d.createShaderPixelFunc != nil {
		return d.createShaderPixelFunc(code)
	}
	return NewShader("fake-ps", StagePixel, nil), nil
}

func (d *fakeDevice) CreateProgram(set ShaderSet) (*Program, error) {
	atomic.AddInt32(&d.programCalls, 1)
	if d.createProgramFunc != nil {
		return d.createProgramFunc(set)
	}
	return NewProgram("fake-prog", Signature{}, nil), nil
}

func (d *fakeDevice) CreatePipelineRaw(prog *Program, desc *Descriptor) (*RawPipeline, error) {
	atomic.AddInt32(&d.pipelineCalls, 1)
	if d.createPipelineRawFunc != nil {
		return d.createPipelineRawFunc(prog, desc)
	}
	return NewRawPipeline("fake-pso", nil), nil
}

func (d *fakeDevice) CreateBufferStatic(data []byte, role BufferRole) (*Buffer, error) {
	atomic.AddInt32(&d.bufferCalls, 1)
	d.lastBufferData = data
	d.lastBufferRole = role
	if d.createBufferFunc != nil {
		return d.createBufferFunc(data, role)
	}
	return NewBuffer("fake-buf", role, len(data), nil), nil
}

func (d *fakeDevice) CreateTexture(info TextureInfo) (*Texture, error) {
	atomic.AddInt32(&d.textureCalls, 1)
	d.lastTextureInfo = info
	if d.createTextureFunc != nil {
		return d.createTextureFunc(info)
	}
	return NewTexture("fake-tex", info, nil), nil
}

func (d *fakeDevice) CreateTextureStatic(info TextureInfo, data []uint32) (*Texture, error) {
	atomic.AddInt32(&d.textureCalls, 1)
	d.lastTextureInfo = info
	if d.createTextureStatFunc != nil {
		return d.createTextureStatFunc(info, data)
	}
	return NewTexture("fake-tex-static", info, nil), nil
}

func (d *fakeDevice) GenerateMipmap(tex *Texture) error {
	atomic.AddInt32(&d.mipmapCalls, 1)
	if d.generateMipmapFunc != nil {
		return d.generateMipmapFunc(tex)
	}
	return nil
}

func (d *fakeDevice) CreateSampler(info SamplerInfo) *Sampler {
	atomic.AddInt32(&d.samplerCalls, 1)
	d.lastSamplerInfo = info
	return NewSampler("fake-sampler", info, nil)
}

// testSignature is the reflected signature used by descriptor tests: a
// position/uv vertex layout, a uniform block, a texture with sampler
// and one color output.
func testSignature() Signature {
	return Signature{
		Inputs: []InputVar{
			{Name: "position", Location: 0, Format: gputypes.VertexFormatFloat32x2},
			{Name: "uv", Location: 1, Format: gputypes.VertexFormatFloat32x2},
		},
		Outputs: []OutputVar{
			{Name: "frag_color", Index: 0},
		},
		Resources: []ResourceVar{
			{Name: "globals", Slot: 0, Kind: ResourceUniformBlock},
			{Name: "tex_color", Slot: 1, Kind: ResourceTexture},
			{Name: "tex_sampler", Slot: 2, Kind: ResourceSampler},
		},
	}
}
