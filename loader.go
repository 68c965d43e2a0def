// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr

import (
	"context"
	"runtime"
	"unsafe"

	"go.uber.org/zap"

	"github.com/fasetto/hostfxr/native"
	"github.com/fasetto/hostfxr/status"
)

// AssemblyLoader wraps the load_assembly_and_get_function_pointer runtime
// delegate. It does not depend on the runtime context it was obtained from.
type AssemblyLoader struct {
	// delegate is the raw address of the runtime delegate.
	delegate uintptr

	// loadAssemblyAndGetFunctionPointer is bound to delegate.
	loadAssemblyAndGetFunctionPointer func(assemblyPath, typeName, methodName unsafe.Pointer, delegateTypeName uintptr, reserved uintptr, fn *uintptr) int32

	logger *zap.Logger
	tracer stageTracer
}

// NewAssemblyLoader binds a load_assembly_and_get_function_pointer delegate
// obtained with DelegateLoadAssemblyAndGetFunctionPointer.
func NewAssemblyLoader(delegate uintptr, opts ...Option) (*AssemblyLoader, error) {
	if delegate == 0 {
		return nil, newDelegateResolutionError(DelegateLoadAssemblyAndGetFunctionPointer, status.InvalidArgFailure)
	}
	return newAssemblyLoader(delegate, newSettings(opts)), nil
}

func newAssemblyLoader(delegate uintptr, s settings) *AssemblyLoader {
	l := &AssemblyLoader{
		delegate: delegate,
		logger:   s.logger.Named("hostfxr"),
		tracer:   newStageTracer(s.tracerProvider),
	}
	native.Bind(&l.loadAssemblyAndGetFunctionPointer, delegate)
	return l
}

// Delegate returns the raw address of the runtime delegate.
func (l *AssemblyLoader) Delegate() uintptr {
	return l.delegate
}

// LoadAssemblyAndGetFunctionPointer loads the assembly at assemblyPath and
// returns a native function pointer to methodName of typeName.
//
// delegateType selects how the method is called: UnmanagedCallersOnly()
// for a method marked [UnmanagedCallersOnly], NamedDelegate(name) for a
// method described by a managed delegate type. reserved is forwarded as is
// and should be 0.
//
// The caller must invoke the returned pointer with the exact signature and
// calling convention implied by delegateType.
func (l *AssemblyLoader) LoadAssemblyAndGetFunctionPointer(ctx context.Context, assemblyPath, typeName, methodName string, delegateType DelegateType, reserved uintptr) (_ uintptr, err error) {
	if !delegateType.Valid() {
		return 0, ErrInvalidDelegateType
	}

	_, span := l.tracer.start(ctx, spanLoadAssembly,
		attrAssembly.String(assemblyPath),
		attrTypeName.String(typeName),
		attrMethod.String(methodName),
		attrDelegateType.String(delegateType.String()))
	defer func() { endSpan(span, err) }()

	var args [3]unsafe.Pointer
	for i, s := range []string{assemblyPath, typeName, methodName} {
		if args[i], err = native.StringPtr(s); err != nil {
			e := newAssemblyLoadError(assemblyPath, typeName, methodName, status.InvalidArgFailure)
			e.details = err
			return 0, e
		}
	}

	var (
		delegateTypeArg  uintptr
		delegateTypeName unsafe.Pointer
	)
	if delegateType.IsUnmanagedCallersOnly() {
		delegateTypeArg = unmanagedCallersOnlyMethod
	} else {
		if delegateTypeName, err = native.StringPtr(delegateType.Name()); err != nil {
			e := newAssemblyLoadError(assemblyPath, typeName, methodName, status.InvalidArgFailure)
			e.details = err
			return 0, e
		}
		delegateTypeArg = uintptr(delegateTypeName)
	}

	var fn uintptr
	code := status.FromNative(l.loadAssemblyAndGetFunctionPointer(args[0], args[1], args[2], delegateTypeArg, reserved, &fn))
	runtime.KeepAlive(args)
	runtime.KeepAlive(delegateTypeName)
	recordStatus(span, code)
	l.logger.Debug("native call",
		zap.String("delegate", DelegateLoadAssemblyAndGetFunctionPointer.String()),
		zap.String("assembly", assemblyPath),
		zap.String("type", typeName),
		zap.String("method", methodName),
		zap.Stringer("delegate_type", delegateType),
		zap.Stringer("status", code),
		zap.Uintptr("function", fn))

	if code != status.Success {
		return 0, newAssemblyLoadError(assemblyPath, typeName, methodName, code)
	}
	if fn == 0 {
		return 0, newAssemblyLoadError(assemblyPath, typeName, methodName, status.HostInvalidState)
	}
	return fn, nil
}

// GetUnmanagedCallersOnly resolves a method marked [UnmanagedCallersOnly].
func (l *AssemblyLoader) GetUnmanagedCallersOnly(ctx context.Context, assemblyPath, typeName, methodName string) (uintptr, error) {
	return l.LoadAssemblyAndGetFunctionPointer(ctx, assemblyPath, typeName, methodName, UnmanagedCallersOnly(), 0)
}

// GetDelegate resolves a method called through the managed delegate type
// delegateTypeName.
func (l *AssemblyLoader) GetDelegate(ctx context.Context, assemblyPath, typeName, methodName, delegateTypeName string) (uintptr, error) {
	return l.LoadAssemblyAndGetFunctionPointer(ctx, assemblyPath, typeName, methodName, NamedDelegate(delegateTypeName), 0)
}
