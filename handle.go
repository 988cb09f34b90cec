// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "sync/atomic"

// handle is the shared-ownership core embedded in every resource handle.
//
// A handle starts with one reference. Retain adds one, Release drops one;
// the release that drops the count to zero runs the destroy hook exactly
// once. Further Release or Retain calls on a dead handle are no-ops, so
// double release is safe.
//
// The count is atomic: once created, handles may be retained and released
// from any goroutine. Creation itself follows the single-threaded device
// rules documented on Device.
type handle struct {
	refs    atomic.Int32
	destroy func()
}

func (h *handle) init(destroy func()) {
	h.refs.Store(1)
	h.destroy = destroy
}

// Retain adds a reference. Retaining a released handle is a no-op.
func (h *handle) Retain() {
	for {
		n := h.refs.Load()
		if n <= 0 {
			return
		}
		if h.refs.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// Release drops a reference. The call that drops the last reference
// destroys the underlying resource. Releasing past zero is a no-op.
func (h *handle) Release() {
	for {
		n := h.refs.Load()
		if n <= 0 {
			return
		}
		if !h.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n == 1 && h.destroy != nil {
			h.destroy()
		}
		return
	}
}

// Alive reports whether the handle still holds at least one reference.
func (h *handle) Alive() bool { return h.refs.Load() > 0 }
