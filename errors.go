// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"errors"
	"fmt"
)

// Common factory errors.
var (
	// ErrModelNotSupported is returned by ShaderSource.Choose when the
	// source set has no variant at or below the active shader model.
	ErrModelNotSupported = errors.New("gfx: no shader source for active shader model")

	// ErrVertexCountRange is returned by CreateVertexBuffer when the
	// element count does not fit the device's vertex count range.
	ErrVertexCountRange = errors.New("gfx: vertex data exceeds device vertex count range")

	// ErrProviderInvalid is returned by a ScopedProvider after its
	// owning context adapter has been closed or invalidated.
	ErrProviderInvalid = errors.New("gfx: proc provider used outside its context scope")

	// ErrVarNotFound reports a pipeline init variable with no matching
	// entry in the program signature.
	ErrVarNotFound = errors.New("gfx: variable not found in program signature")

	// ErrVarMismatch reports a pipeline init variable whose declared
	// format or kind conflicts with the program signature.
	ErrVarMismatch = errors.New("gfx: variable incompatible with program signature")
)

// ProgramStage identifies the stage at which program construction failed.
type ProgramStage uint8

const (
	// StageVertex is the vertex shader compilation stage.
	StageVertex ProgramStage = iota
	// StagePixel is the pixel shader compilation stage.
	StagePixel
	// StageLink is the program link stage.
	StageLink
)

// String returns the stage name.
func (s ProgramStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StagePixel:
		return "pixel"
	case StageLink:
		return "link"
	default:
		return fmt.Sprintf("ProgramStage(%d)", uint8(s))
	}
}

// ProgramError reports a failed program construction. Exactly one stage is
// reported per failed call; the first failing stage wins and later stages
// are not attempted.
type ProgramError struct {
	// Stage is the stage that failed.
	Stage ProgramStage
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ProgramError) Error() string {
	return fmt.Sprintf("gfx: %s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ProgramError) Unwrap() error { return e.Err }

// PipelineStage identifies the stage at which pipeline state construction
// failed. The stages form a fixed order: program link, descriptor init,
// device create. At most one is reported per call.
type PipelineStage uint8

const (
	// StageProgramLink is the shader program creation stage.
	StageProgramLink PipelineStage = iota
	// StageDescriptorInit is the descriptor population and signature
	// validation stage.
	StageDescriptorInit
	// StageDeviceCreate is the backend pipeline realization stage.
	StageDeviceCreate
)

// String returns the stage name.
func (s PipelineStage) String() string {
	switch s {
	case StageProgramLink:
		return "program link"
	case StageDescriptorInit:
		return "descriptor init"
	case StageDeviceCreate:
		return "device create"
	default:
		return fmt.Sprintf("PipelineStage(%d)", uint8(s))
	}
}

// PipelineStateError reports a failed pipeline state construction.
//
// When Stage is StageDescriptorInit, Program holds the already linked
// program so the caller can inspect or release it; the factory does not
// release it internally. Program is nil for every other stage.
type PipelineStateError struct {
	// Stage is the stage that failed.
	Stage PipelineStage
	// Err is the underlying cause.
	Err error
	// Program is the linked program recovered from a descriptor init
	// failure, nil otherwise.
	Program *Program
}

// Error implements the error interface.
func (e *PipelineStateError) Error() string {
	return fmt.Sprintf("gfx: %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PipelineStateError) Unwrap() error { return e.Err }

// InitError reports the first pipeline init variable that failed signature
// validation during Descriptor population.
type InitError struct {
	// Var is the offending variable name.
	Var string
	// Err is ErrVarNotFound or ErrVarMismatch.
	Err error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return fmt.Sprintf("gfx: init var %q: %v", e.Var, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InitError) Unwrap() error { return e.Err }
