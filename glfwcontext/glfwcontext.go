// Package glfwcontext adapts a GLFW window to the gfx context
// contracts.
//
// The package does not create windows or run event loops; the caller
// owns the window and its lifetime. Like all GLFW context operations,
// everything here must run on the thread that owns the context.
//
//	window, err := glfw.CreateWindow(800, 600, "demo", nil, nil)
//	...
//	adapter, provider := glfwcontext.New(window)
//	defer adapter.Close()
package glfwcontext

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gfx"
)

// Window wraps a glfw.Window as a gfx.GraphicsContext. The window stays
// owned by the caller; the wrapper must not outlive it.
type Window struct {
	win *glfw.Window
}

var _ gfx.GraphicsContext = (*Window)(nil)

// MakeCurrent makes the window's GL context current on the calling
// thread.
func (w *Window) MakeCurrent() {
	w.win.MakeContextCurrent()
}

// SwapBuffers presents the window's back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// provider resolves GPU entry points through the GLFW loader. GLFW
// resolves against the context current on the calling thread, so the
// provider is only meaningful while the adapted context is current.
type provider struct{}

func (provider) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (provider) SupportsExtension(name string) bool {
	return glfw.ExtensionSupported(name)
}

// Option configures the adapter.
type Option func(*config)

type config struct {
	swapInterval int
}

// WithVSync sets the swap interval applied after the context is made
// current: 1 synchronizes presentation to the display refresh, 0
// presents immediately.
func WithVSync(on bool) Option {
	return func(c *config) {
		if on {
			c.swapInterval = 1
		} else {
			c.swapInterval = 0
		}
	}
}

// New adapts a GLFW window into a context adapter and a scoped proc
// provider. The window's context is made current on the calling thread
// as a side effect. The provider is valid until the adapter is closed;
// it borrows GLFW's global loader and must not be retained past device
// initialization.
func New(window *glfw.Window, opts ...Option) (*gfx.ContextAdapter, *gfx.ScopedProvider) {
	cfg := config{swapInterval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	adapter, scoped := gfx.NewContextAdapter(&Window{win: window}, provider{})
	glfw.SwapInterval(cfg.swapInterval)
	return adapter, scoped
}

// Detach releases the current context from the calling thread. Useful
// when handing the context to another thread.
func Detach() {
	glfw.DetachCurrentContext()
}
