// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"unsafe"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fasetto/hostfxr/native"
	"github.com/fasetto/hostfxr/status"
)

// Host drives the exports of a hosting library.
type Host struct {
	// initializeForRuntimeConfig is bound to hostfxr_initialize_for_runtime_config.
	initializeForRuntimeConfig func(runtimeConfigPath unsafe.Pointer, parameters unsafe.Pointer, handle *uintptr) int32

	// getRuntimeDelegate is bound to hostfxr_get_runtime_delegate.
	getRuntimeDelegate func(handle uintptr, kind int32, delegate *uintptr) int32

	// closeContext is bound to hostfxr_close.
	closeContext func(handle uintptr) int32

	settings settings
	logger   *zap.Logger
	tracer   stageTracer

	// initializing is set while a context initialization is in flight.
	initializing atomic.Bool
}

// NewHost resolves the hosting exports from symbols.
func NewHost(symbols SymbolResolver, opts ...Option) (*Host, error) {
	s := newSettings(opts)
	h := &Host{
		settings: s,
		logger:   s.logger.Named("hostfxr"),
		tracer:   newStageTracer(s.tracerProvider),
	}

	exports := []struct {
		name string
		fptr any
	}{
		{exportInitializeForRuntimeConfig, &h.initializeForRuntimeConfig},
		{exportGetRuntimeDelegate, &h.getRuntimeDelegate},
		{exportClose, &h.closeContext},
	}
	for _, export := range exports {
		addr, err := symbols.Resolve(export.name)
		if err != nil {
			var notFound *SymbolNotFoundError
			if !errors.As(err, &notFound) {
				err = newSymbolNotFoundError(export.name, err)
			}
			return nil, err
		}
		if addr == 0 {
			return nil, newSymbolNotFoundError(export.name, nil)
		}
		native.Bind(export.fptr, addr)
		h.logger.Debug("export resolved", zap.String("export", export.name), zap.Uintptr("address", addr))
	}
	return h, nil
}

// InitializeForRuntimeConfig initializes a runtime context from the runtime
// configuration file at path.
//
// Status Success and Success_HostAlreadyInitialized are accepted. On any
// other status the partially created context is closed and a
// *RuntimeInitializationError is returned.
//
// ctx only parents the tracing span: native calls cannot be cancelled.
func (h *Host) InitializeForRuntimeConfig(ctx context.Context, path string) (_ *RuntimeContext, err error) {
	if !h.initializing.CompareAndSwap(false, true) {
		return nil, ErrHostBusy
	}
	defer h.initializing.Store(false)

	ctx, span := h.tracer.start(ctx, spanInitialize, attrRuntimeConfig.String(path))
	defer func() { endSpan(span, err) }()

	cpath, err := native.StringPtr(path)
	if err != nil {
		e := newRuntimeInitializationError(path, status.InvalidArgFailure)
		e.details = err
		return nil, e
	}

	var handle uintptr
	code := status.FromNative(h.initializeForRuntimeConfig(cpath, nil, &handle))
	runtime.KeepAlive(cpath)
	recordStatus(span, code)
	h.logger.Debug("native call",
		zap.String("export", exportInitializeForRuntimeConfig),
		zap.String("runtime_config", path),
		zap.Stringer("status", code),
		zap.Uintptr("handle", handle))

	if !code.IsInitSuccess() || handle == 0 {
		if code.IsInitSuccess() {
			code = status.HostInvalidState
		}
		err = newRuntimeInitializationError(path, code)
		if handle != 0 {
			err = multierr.Append(err, h.close(ctx, handle))
		}
		return nil, err
	}

	span.SetAttributes(attrAlreadyStarted.Bool(code == status.SuccessHostAlreadyInitialized))
	return newRuntimeContext(h, handle, path, code), nil
}

// GetRuntimeDelegate returns the runtime delegate of the given kind from an
// open context.
//
// On failure rc is closed before the *DelegateResolutionError is returned.
// On success the delegate outlives rc, which the caller still has to close.
func (h *Host) GetRuntimeDelegate(ctx context.Context, rc *RuntimeContext, kind DelegateKind) (_ uintptr, err error) {
	if rc == nil {
		return 0, ErrNilContext
	}

	ctx, span := h.tracer.start(ctx, spanGetDelegate,
		attrRuntimeConfig.String(rc.configPath),
		attrDelegateKind.String(kind.String()))
	defer func() { endSpan(span, err) }()

	if !kind.Valid() {
		_, cerr := rc.release(ctx)
		return 0, multierr.Append(ErrInvalidDelegateKind, cerr)
	}

	var (
		delegate uintptr
		code     status.Code
	)
	if err := rc.use(func(handle uintptr) {
		code = status.FromNative(h.getRuntimeDelegate(handle, int32(kind), &delegate))
	}); err != nil {
		return 0, err
	}
	recordStatus(span, code)
	h.logger.Debug("native call",
		zap.String("export", exportGetRuntimeDelegate),
		zap.Stringer("kind", kind),
		zap.Stringer("status", code),
		zap.Uintptr("delegate", delegate))

	if code != status.Success || delegate == 0 {
		if code == status.Success {
			code = status.HostInvalidState
		}
		_, cerr := rc.release(ctx)
		return 0, multierr.Append(newDelegateResolutionError(kind, code), cerr)
	}
	return delegate, nil
}

// WithRuntimeContext initializes a runtime context from path, calls f with it
// and closes it exactly once, whether f returns, fails or panics.
func (h *Host) WithRuntimeContext(ctx context.Context, path string, f func(rc *RuntimeContext) error) (err error) {
	rc, err := h.InitializeForRuntimeConfig(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		_, cerr := rc.release(ctx)
		err = multierr.Append(err, cerr)
	}()
	return f(rc)
}

// LoadAssemblyLoader opens a runtime context from the runtime configuration
// at path, borrows its load_assembly_and_get_function_pointer delegate and
// closes the context.
func (h *Host) LoadAssemblyLoader(ctx context.Context, path string) (_ *AssemblyLoader, err error) {
	ctx, span := h.tracer.start(ctx, spanLoadAssemblyLoader, attrRuntimeConfig.String(path))
	defer func() { endSpan(span, err) }()

	var delegate uintptr
	err = h.WithRuntimeContext(ctx, path, func(rc *RuntimeContext) error {
		var err error
		delegate, err = h.GetRuntimeDelegate(ctx, rc, DelegateLoadAssemblyAndGetFunctionPointer)
		return err
	})
	if err != nil {
		return nil, err
	}
	h.logger.Info("runtime initialized",
		zap.String("runtime_config", path),
		zap.Uintptr("load_assembly_and_get_function_pointer", delegate))
	return newAssemblyLoader(delegate, h.settings), nil
}

// close calls hostfxr_close on a raw handle.
func (h *Host) close(ctx context.Context, handle uintptr) (err error) {
	_, span := h.tracer.start(ctx, spanClose)
	defer func() { endSpan(span, err) }()

	code := status.FromNative(h.closeContext(handle))
	recordStatus(span, code)
	h.logger.Debug("native call",
		zap.String("export", exportClose),
		zap.Uintptr("handle", handle),
		zap.Stringer("status", code))
	if code != status.Success {
		h.logger.Warn("hostfxr_close failed", zap.Stringer("status", code))
		return newCloseError(code)
	}
	return nil
}
