// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr

import (
	"errors"
	"fmt"

	"github.com/fasetto/hostfxr/status"
)

var (
	// ErrContextClosed is returned when a closed RuntimeContext is used.
	ErrContextClosed = errors.New("hostfxr: runtime context is closed")
	// ErrNilContext is returned when a nil RuntimeContext is used.
	ErrNilContext = errors.New("hostfxr: nil runtime context")
	// ErrHostBusy is returned when a runtime context is initialized while
	// another initialization is in flight on the same Host.
	ErrHostBusy = errors.New("hostfxr: another runtime context initialization is in progress")
	// ErrInvalidDelegateKind is returned for a DelegateKind outside the
	// hostfxr_delegate_type enumeration.
	ErrInvalidDelegateKind = errors.New("hostfxr: invalid runtime delegate kind")
	// ErrInvalidDelegateType is returned for the zero DelegateType.
	ErrInvalidDelegateType = errors.New("hostfxr: invalid delegate type")

	errLibraryClosed = errors.New("library is closed")
)

// Error represents the interface for all hosting errors.
type Error interface {
	// Error extends the builtin `error` interface.
	error
	// Code returns the hosting status code.
	Code() status.Code
	// Unwrap unwraps the underlying error, if any. It is meant to be used with
	// the `errors` package.
	Unwrap() error
}

// BaseError represents the base structure for all hosting errors.
type BaseError struct {
	// details holds the encapsulated error.
	details error
	// msg holds the error string.
	msg string
	// code holds the status code, either returned by the native call or
	// chosen from the status table for failures detected on the Go side.
	code status.Code
}

// Code implements the Error interface.
func (err *BaseError) Code() status.Code {
	return err.code
}

// Unwrap implements the Error interface.
func (err *BaseError) Unwrap() error {
	return err.details
}

// Error implements the error interface.
func (err *BaseError) Error() string {
	if err.details != nil {
		return fmt.Sprintf("%s: %v", err.msg, err.details)
	}
	return err.msg
}

// LibraryLoadError is returned when the hosting library cannot be mapped:
// invalid path, missing dependencies or architecture mismatch.
type LibraryLoadError struct {
	BaseError
	// Path is the path handed to the platform loader.
	Path string
}

// newLibraryLoadError creates a LibraryLoadError wrapping the loader error.
func newLibraryLoadError(path string, cause error) *LibraryLoadError {
	return &LibraryLoadError{
		BaseError: BaseError{
			details: cause,
			msg:     fmt.Sprintf("hostfxr: failed to load library %q", path),
			code:    status.CoreHostLibLoadFailure,
		},
		Path: path,
	}
}

// SymbolNotFoundError is returned when a required export is missing from the
// hosting library.
type SymbolNotFoundError struct {
	BaseError
	// Symbol is the name of the missing export.
	Symbol string
}

// newSymbolNotFoundError creates a SymbolNotFoundError.
func newSymbolNotFoundError(symbol string, cause error) *SymbolNotFoundError {
	return &SymbolNotFoundError{
		BaseError: BaseError{
			details: cause,
			msg:     fmt.Sprintf("hostfxr: export %q not found", symbol),
			code:    status.CoreHostEntryPointFailure,
		},
		Symbol: symbol,
	}
}

// RuntimeInitializationError is returned when
// hostfxr_initialize_for_runtime_config fails.
type RuntimeInitializationError struct {
	BaseError
	// Path is the runtime configuration path.
	Path string
}

// newRuntimeInitializationError creates a RuntimeInitializationError from a
// status code.
func newRuntimeInitializationError(path string, code status.Code) *RuntimeInitializationError {
	return &RuntimeInitializationError{
		BaseError: BaseError{
			msg:  fmt.Sprintf("hostfxr: failed to initialize runtime config %q: %s", path, code),
			code: code,
		},
		Path: path,
	}
}

// DelegateResolutionError is returned when hostfxr_get_runtime_delegate fails.
type DelegateResolutionError struct {
	BaseError
	// Kind is the requested delegate kind.
	Kind DelegateKind
}

// newDelegateResolutionError creates a DelegateResolutionError from a status
// code.
func newDelegateResolutionError(kind DelegateKind, code status.Code) *DelegateResolutionError {
	return &DelegateResolutionError{
		BaseError: BaseError{
			msg:  fmt.Sprintf("hostfxr: failed to get runtime delegate %s: %s", kind, code),
			code: code,
		},
		Kind: kind,
	}
}

// AssemblyLoadError is returned when the load_assembly_and_get_function_pointer
// delegate fails.
type AssemblyLoadError struct {
	BaseError
	// Assembly is the assembly path.
	Assembly string
	// Type is the assembly qualified type name.
	Type string
	// Method is the method name.
	Method string
}

// newAssemblyLoadError creates an AssemblyLoadError from a status code.
func newAssemblyLoadError(assembly, typeName, method string, code status.Code) *AssemblyLoadError {
	return &AssemblyLoadError{
		BaseError: BaseError{
			msg:  fmt.Sprintf("hostfxr: failed to load assembly and get function pointer for %s.%s: %s", typeName, method, code),
			code: code,
		},
		Assembly: assembly,
		Type:     typeName,
		Method:   method,
	}
}

// CloseError is returned when hostfxr_close reports a failure.
type CloseError struct {
	BaseError
}

// newCloseError creates a CloseError from a status code.
func newCloseError(code status.Code) *CloseError {
	return &CloseError{
		BaseError{
			msg:  fmt.Sprintf("hostfxr: failed to close runtime context: %s", code),
			code: code,
		},
	}
}
