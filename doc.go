// Package gfx is a thin, strongly-typed resource factory for graphics
// device backends.
//
// # Overview
//
// gfx sits between application code and a graphics device backend. Client
// code describes GPU resources (buffers, textures, samplers, shader
// programs, pipeline state objects) in backend-agnostic terms; gfx
// translates those descriptions into backend creation calls and checks
// pipeline configuration against the reflected shader program signature
// before anything reaches the device. Failures are tagged with the exact
// construction stage, so a mismatch is caught at the call site instead of
// surfacing as silently wrong bindings at draw time.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gfx"
//		_ "github.com/gogpu/gfx/backend/gpu"
//	)
//
//	dev, err := backend.MustDefault().Open()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Link a program, picking the source tier for the device.
//	prog, err := gfx.LinkProgramSource(dev, vertexSrc, pixelSrc)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Build a pipeline validated against the program signature.
//	pso, err := gfx.NewPipelineState(dev, set, gfx.TriangleList,
//		gfx.FillRasterizer(), init)
//
// # Architecture
//
// The library is organized into:
//   - Core contracts: Device, GraphicsContext, ProcProvider
//   - Construction: LinkProgram, NewPipelineState, resource shortcuts
//   - Validation: ShaderSource tier selection, PipelineInit signature checks
//   - Backends: backend/gpu (gogpu/wgpu), registered via backend
//   - Windowing: glfwcontext adapts a GLFW window and loader
//
// # Ownership
//
// Every handle gfx returns is reference counted: Retain shares it,
// Release drops it, and the release that drops the last reference
// destroys the backend resource exactly once. Creation calls must run on
// the thread holding the graphics context current; created handles may
// be shared read-only across goroutines.
package gfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
