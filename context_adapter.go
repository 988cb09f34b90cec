// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"sync"
	"unsafe"
)

// GraphicsContext is the windowing-layer contract a context adapter
// forwards to: make the GPU context current on the calling thread and
// present the back buffer. Both calls are fire-and-forget; failures are
// backend-reported, not surfaced here.
type GraphicsContext interface {
	MakeCurrent()
	SwapBuffers()
}

// ProcProvider resolves GPU entry points and extension support from the
// windowing library's loader. Providers borrow loader state that is only
// valid while the owning context lives.
type ProcProvider interface {
	// ProcAddress returns the address of a GPU entry point, nil when
	// the name cannot be resolved.
	ProcAddress(name string) unsafe.Pointer
	// SupportsExtension reports whether the context supports the named
	// extension.
	SupportsExtension(name string) bool
}

// ContextAdapter owns an adapted windowing context. Construction makes
// the context current; MakeCurrent and SwapBuffers forward to it.
//
// A context may be current on one thread at a time; calls that touch
// the context must be externally serialized on that thread.
type ContextAdapter struct {
	ctx      GraphicsContext
	provider *ScopedProvider
}

// NewContextAdapter adapts a windowing context and its proc provider.
// The context is made current as a side effect. The returned provider is
// scoped to the adapter: Close (or ScopedProvider.Invalidate) ends its
// validity, after which queries fail instead of touching a dead loader.
func NewContextAdapter(ctx GraphicsContext, provider ProcProvider) (*ContextAdapter, *ScopedProvider) {
	ctx.MakeCurrent()
	sp := &ScopedProvider{provider: provider}
	return &ContextAdapter{ctx: ctx, provider: sp}, sp
}

// MakeCurrent makes the underlying context current on the calling
// thread.
func (a *ContextAdapter) MakeCurrent() {
	a.ctx.MakeCurrent()
}

// SwapBuffers presents the underlying context's back buffer.
func (a *ContextAdapter) SwapBuffers() {
	a.ctx.SwapBuffers()
}

// Close invalidates the adapter's scoped provider. The underlying
// windowing context itself stays owned by the windowing layer and is
// destroyed there.
func (a *ContextAdapter) Close() {
	a.provider.Invalidate()
}

// ScopedProvider wraps a ProcProvider with an explicit validity scope.
// While valid it forwards queries; after Invalidate it returns zero
// values and Err reports ErrProviderInvalid. This keeps a borrowed
// loader from being used past the life of the context that backs it.
type ScopedProvider struct {
	mu       sync.RWMutex
	provider ProcProvider
}

var _ ProcProvider = (*ScopedProvider)(nil)

// ProcAddress resolves a GPU entry point, nil once the scope has ended.
func (s *ScopedProvider) ProcAddress(name string) unsafe.Pointer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.provider == nil {
		return nil
	}
	return s.provider.ProcAddress(name)
}

// SupportsExtension reports extension support, false once the scope has
// ended.
func (s *ScopedProvider) SupportsExtension(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.provider == nil {
		return false
	}
	return s.provider.SupportsExtension(name)
}

// Err returns nil while the provider is valid and ErrProviderInvalid
// after the scope has ended.
func (s *ScopedProvider) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.provider == nil {
		return ErrProviderInvalid
	}
	return nil
}

// Invalidate ends the provider's validity scope. Safe to call more than
// once.
func (s *ScopedProvider) Invalidate() {
	s.mu.Lock()
	s.provider = nil
	s.mu.Unlock()
}
