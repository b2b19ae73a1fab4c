// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resolve

import (
	"fmt"

	"github.com/gogpu/spvreq/spirv"
)

// ErrorKind categorizes requirement resolution errors.
type ErrorKind uint8

const (
	// ErrUnmetCapability indicates a required capability (or every
	// alternative) is unavailable on the target.
	ErrUnmetCapability ErrorKind = iota

	// ErrUnmetExtension indicates a required extension is not supported
	// by the target.
	ErrUnmetExtension

	// ErrMalformedInstruction indicates an instruction too short or
	// otherwise unreadable for requirement analysis.
	ErrMalformedInstruction

	// ErrInvalidModule indicates the module as a whole is malformed.
	ErrInvalidModule
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnmetCapability:
		return "UnmetCapability"
	case ErrUnmetExtension:
		return "UnmetExtension"
	case ErrMalformedInstruction:
		return "MalformedInstruction"
	case ErrInvalidModule:
		return "InvalidModule"
	default:
		return "Unknown"
	}
}

// InstrRef identifies the instruction an error refers to.
type InstrRef struct {
	// Index is the instruction's position in the module's instruction
	// stream.
	Index int

	// Op is the instruction's opcode.
	Op spirv.OpCode
}

// Error represents a requirement resolution error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string

	// Instr optionally identifies the offending instruction.
	Instr *InstrRef
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Instr != nil {
		return fmt.Sprintf("resolve %s at instruction %d (%s): %s", e.Kind, e.Instr.Index, e.Instr.Op, e.Message)
	}
	return fmt.Sprintf("resolve %s: %s", e.Kind, e.Message)
}

// NewError creates a resolution error without an instruction reference.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewErrorAt creates a resolution error pointing at an instruction.
func NewErrorAt(kind ErrorKind, message string, index int, op spirv.OpCode) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Instr:   &InstrRef{Index: index, Op: op},
	}
}

// IsUnmetCapability returns true if the error is ErrUnmetCapability.
func (e *Error) IsUnmetCapability() bool {
	return e.Kind == ErrUnmetCapability
}

// IsUnmetExtension returns true if the error is ErrUnmetExtension.
func (e *Error) IsUnmetExtension() bool {
	return e.Kind == ErrUnmetExtension
}
