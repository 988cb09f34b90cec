package backend

import (
	"errors"

	"github.com/gogpu/gfx"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoAdapter is returned when a backend finds no usable GPU adapter.
	ErrNoAdapter = errors.New("backend: no GPU adapter found")
)

// Backend name constants.
const (
	// BackendGPU is the name of the hal-based GPU backend (gogpu/wgpu).
	BackendGPU = "gpu"
)

// Driver is the interface a device backend registers with this package.
// It abstracts device construction, allowing the library to support
// multiple device implementations (pure Go hal, FFI, test fakes).
//
// Drivers must be registered via Register() and are selected via
// Get() or Default().
type Driver interface {
	// Name returns the driver identifier (e.g., "gpu").
	Name() string

	// Open creates a device with the driver's default configuration.
	// The returned device implements the full gfx.Device contract and
	// is owned by the caller.
	Open() (gfx.Device, error)
}
