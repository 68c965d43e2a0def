// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/fasetto/hostfxr/status"
)

// RuntimeContext wraps a `hostfxr_handle` obtained from
// hostfxr_initialize_for_runtime_config.
//
// The owner must call Close exactly once. Runtime delegates obtained from the
// context stay valid after it is closed.
type RuntimeContext struct {
	// host is the Host the context was initialized from.
	host *Host

	// handle is the native `hostfxr_handle`.
	handle uintptr

	// configPath is the runtime configuration path used for initialization.
	configPath string

	// code is the status returned by the initialization.
	code status.Code

	mu     sync.Mutex
	closed bool
}

// newRuntimeContext wraps an open native handle.
func newRuntimeContext(host *Host, handle uintptr, configPath string, code status.Code) *RuntimeContext {
	rc := &RuntimeContext{
		host:       host,
		handle:     handle,
		configPath: configPath,
		code:       code,
	}
	runtime.SetFinalizer(rc, (*RuntimeContext).finalize)
	return rc
}

// Handle returns the raw native handle.
func (rc *RuntimeContext) Handle() uintptr {
	return rc.handle
}

// ConfigPath returns the runtime configuration path.
func (rc *RuntimeContext) ConfigPath() string {
	return rc.configPath
}

// Status returns the status of the initialization: status.Success, or
// status.SuccessHostAlreadyInitialized when an existing runtime was reused.
func (rc *RuntimeContext) Status() status.Code {
	return rc.code
}

// Closed reports whether the context has been closed.
func (rc *RuntimeContext) Closed() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.closed
}

// Close closes the context through hostfxr_close.
// Closing a context twice does not reach the native library and returns
// ErrContextClosed.
func (rc *RuntimeContext) Close() error {
	if rc == nil {
		return ErrNilContext
	}
	released, err := rc.release(context.Background())
	if !released {
		rc.host.logger.Warn("runtime context closed twice",
			zap.String("runtime_config", rc.configPath),
			zap.Uintptr("handle", rc.handle))
		return ErrContextClosed
	}
	return err
}

// use calls f with the native handle while holding the context open.
func (rc *RuntimeContext) use(f func(handle uintptr)) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.closed {
		return ErrContextClosed
	}
	f(rc.handle)
	return nil
}

// release closes the native handle if it is still open. It reports whether
// this call performed the close.
func (rc *RuntimeContext) release(ctx context.Context) (bool, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.closed {
		return false, nil
	}
	rc.closed = true
	runtime.SetFinalizer(rc, nil)
	return true, rc.host.close(ctx, rc.handle)
}

// finalize closes a context that was dropped while open.
func (rc *RuntimeContext) finalize() {
	rc.host.logger.Warn("runtime context garbage collected while open, closing it",
		zap.String("runtime_config", rc.configPath),
		zap.Uintptr("handle", rc.handle))
	_, _ = rc.release(context.Background())
}
