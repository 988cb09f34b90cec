// Package backend provides a pluggable device backend abstraction.
//
// The backend package allows the gfx library to support multiple device
// implementations. The hal-based GPU backend lives in backend/gpu; test
// suites register fakes through the same registry.
//
// # Driver Registration
//
// Drivers are registered via init() functions and selected at runtime.
// The GPU driver is registered by importing its package:
//
//	import _ "github.com/gogpu/gfx/backend/gpu"
//
// # Driver Selection
//
// Use Default() to get the best available driver, or Get() to request
// a specific driver by name:
//
//	// Get the default (best available) driver
//	d := backend.Default()
//
//	// Or request a specific driver
//	d := backend.Get("gpu")
//
// # Opening a Device
//
// A driver opens devices implementing the gfx.Device contract:
//
//	dev, err := backend.OpenDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	prog, err := gfx.LinkProgramSource(dev, vsSrc, psSrc)
//
// # Available Drivers
//
// - "gpu": pure Go hal device via gogpu/wgpu (registered by backend/gpu)
package backend
