// Package gpu implements the gfx.Device contract on the pure Go
// gogpu/wgpu hal.
//
// Shaders are WGSL: source blobs handed to the device are parsed and
// lowered with gogpu/naga, compiled to SPIR-V, and reflected for the
// program signature. Entry points follow the usual WGSL convention,
// vs_main for the vertex stage and fs_main for the pixel stage.
//
// Importing the package registers the "gpu" driver with the backend
// registry:
//
//	import _ "github.com/gogpu/gfx/backend/gpu"
//
//	dev, err := backend.OpenDefault()
//
// A device can also share the GPU of a host application instead of
// owning its own hal instance; see FromProvider.
package gpu
