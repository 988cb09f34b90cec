// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

// Program is a reference-counted linked shader program handle. The
// signature reflected at link time travels with it and drives descriptor
// validation.
type Program struct {
	handle
	raw any
	sig Signature
}

// NewProgram wraps a backend program object and its reflected signature
// in a handle. Intended for Device implementations.
func NewProgram(raw any, sig Signature, destroy func()) *Program {
	p := &Program{raw: raw, sig: sig}
	p.init(destroy)
	return p
}

// Raw returns the backend program object.
func (p *Program) Raw() any { return p.raw }

// Signature returns the program's reflected signature. The result
// aliases the program's own copy; callers must not mutate it.
func (p *Program) Signature() *Signature { return &p.sig }
