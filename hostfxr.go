// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

// Package hostfxr loads the .NET hosting library into a Go process and drives
// its native API to obtain callable function pointers to managed methods.
//
// The bootstrap follows four stages:
//
//	lib, _ := hostfxr.LoadLibrary("")                    // map libhostfxr
//	host, _ := hostfxr.NewHost(lib)                      // resolve the exports
//	loader, _ := host.LoadAssemblyLoader(ctx, rtconfig)  // open, borrow, close
//	fn, _ := loader.LoadAssemblyAndGetFunctionPointer(ctx,
//		"App.dll", "App.Program, App", "Run", hostfxr.UnmanagedCallersOnly(), 0)
//
// A Host is meant to be driven by a single goroutine.
package hostfxr

import (
	"sync"

	"github.com/fasetto/hostfxr/native"
)

// Names of the exports consumed from the hosting library.
const (
	exportInitializeForRuntimeConfig = "hostfxr_initialize_for_runtime_config"
	exportGetRuntimeDelegate         = "hostfxr_get_runtime_delegate"
	exportClose                      = "hostfxr_close"
)

// SymbolResolver resolves exported symbols of a hosting library.
type SymbolResolver interface {
	// Resolve returns the non-zero address of the export name.
	Resolve(name string) (uintptr, error)
}

// Library wraps a handle to a loaded hosting library. Resolve and Close are
// safe for concurrent use.
type Library struct {
	// path is the path the library was loaded from.
	path string

	mu sync.Mutex
	// handle is the platform handle to the library, zero once closed.
	handle   native.Handle
	closed   bool
	closeErr error
}

// LoadLibrary loads the hosting library at path. An empty path loads
// native.LibraryName through the platform library search path.
//
// The library is never unloaded implicitly: managed code may keep running on
// it for the lifetime of the process.
func LoadLibrary(path string) (*Library, error) {
	if path == "" {
		path = native.LibraryName
	}
	h, err := native.Open(path)
	if err != nil {
		return nil, newLibraryLoadError(path, err)
	}
	return &Library{
		path:   path,
		handle: h,
	}, nil
}

// Path returns the path the library was loaded from.
func (lib *Library) Path() string {
	return lib.path
}

// Resolve implements SymbolResolver.
func (lib *Library) Resolve(name string) (uintptr, error) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if lib.handle == 0 {
		return 0, newSymbolNotFoundError(name, errLibraryClosed)
	}
	addr, err := native.Lookup(lib.handle, name)
	if err != nil {
		return 0, newSymbolNotFoundError(name, err)
	}
	if addr == 0 {
		return 0, newSymbolNotFoundError(name, nil)
	}
	return addr, nil
}

// Close unloads the library. Function pointers obtained from it, including
// the ones resolved from managed code, must not be used afterwards.
func (lib *Library) Close() error {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if !lib.closed {
		lib.closed = true
		lib.closeErr = native.Close(lib.handle)
		lib.handle = 0
	}
	return lib.closeErr
}
