package gpu

import (
	"fmt"
	"math"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Device implements gfx.Device over a hal device and queue.
//
// A Device either owns its hal instance (Open) or borrows device and
// queue from a host application (FromProvider). Close destroys only
// what the Device owns.
//
// Resource creation follows the gfx single-threaded contract; the
// handles it returns are shareable afterwards.
type Device struct {
	instance hal.Instance // nil when the device is shared
	device   hal.Device
	queue    hal.Queue
	caps     gfx.Capabilities
	label    string
	owned    bool
}

var _ gfx.Device = (*Device)(nil)

// Open creates a device on its own hal instance. It picks the first
// discrete or integrated GPU adapter, falling back to whatever the
// instance exposes.
func Open(opts ...Option) (*Device, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bk, ok := hal.GetBackend(o.backend)
	if !ok {
		return nil, fmt.Errorf("gpu: %v backend: %w", o.backend, backend.ErrBackendNotAvailable)
	}
	instance, err := bk.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("gpu: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, backend.ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("gpu: open adapter: %w", err)
	}

	d := &Device{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		caps:     capabilitiesFor(selected.Info.DeviceType),
		label:    o.label,
		owned:    true,
	}
	gfx.Logger().Info("gpu: adapter selected",
		"name", selected.Info.Name,
		"type", selected.Info.DeviceType,
		"model", d.caps.ShaderModel)
	return d, nil
}

// FromProvider creates a device sharing the GPU of a host application.
// The provider must expose hal handles via HalDevice()/HalQueue(); the
// returned Device borrows them and never destroys them.
func FromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Device, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hp, ok := provider.(interface {
		HalDevice() any
		HalQueue() any
	})
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose hal handles")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}

	d := &Device{
		device: device,
		queue:  queue,
		caps:   capabilitiesFor(gputypes.DeviceTypeDiscreteGPU),
		label:  o.label,
	}
	gfx.Logger().Info("gpu: sharing host device", "label", o.label)
	return d, nil
}

// capabilitiesFor maps an adapter device type to the gfx capability
// tiers. The WGSL/SPIR-V path exercises shader model 5.0 features on
// hardware adapters; software adapters report a tier lower.
func capabilitiesFor(deviceType gputypes.DeviceType) gfx.Capabilities {
	model := gfx.ShaderModel40
	switch deviceType {
	case gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU:
		model = gfx.ShaderModel50
	}
	limits := gputypes.DefaultLimits()
	return gfx.Capabilities{
		ShaderModel:    model,
		MaxVertexCount: math.MaxUint32,
		MaxTextureSize: int(limits.MaxTextureDimension2D),
	}
}

// Capabilities implements gfx.Device.
func (d *Device) Capabilities() gfx.Capabilities { return d.caps }

// Close destroys the device if this Device owns it. Shared devices
// remain untouched; the host keeps responsibility for them.
func (d *Device) Close() {
	if !d.owned || d.device == nil {
		return
	}
	d.device.Destroy()
	d.device = nil
	d.queue = nil
	d.instance = nil
}
