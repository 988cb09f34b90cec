package gpu

import (
	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gputypes"
)

// init registers the gpu driver on package import.
// This enables automatic driver selection via backend.Default().
func init() {
	backend.Register(backend.BackendGPU, func() backend.Driver {
		return &driver{}
	})
}

type driver struct{}

func (driver) Name() string { return backend.BackendGPU }

func (driver) Open() (gfx.Device, error) {
	return Open()
}

// Option configures device opening.
type Option func(*options)

type options struct {
	label   string
	backend gputypes.Backend
}

func defaultOptions() options {
	return options{
		label:   "gfx",
		backend: gputypes.BackendVulkan,
	}
}

// WithLabel sets the debug label prefix used for hal resources the
// device creates.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithBackend selects the hal backend kind. The default is Vulkan.
func WithBackend(kind gputypes.Backend) Option {
	return func(o *options) { o.backend = kind }
}
