// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

//go:build (darwin || linux || windows) && (amd64 || arm64)

package hostfxr_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/fasetto/hostfxr/native"
	"github.com/fasetto/hostfxr/status"
)

// loadCall records one call to the load_assembly_and_get_function_pointer
// delegate.
type loadCall struct {
	assembly string
	typeName string
	method   string
	// delegateType is the raw fourth argument.
	delegateType uintptr
	// sentinel is set when delegateType is the (char_t*)-1 marker.
	sentinel bool
	// delegateTypeName is the decoded fourth argument when it is a string.
	delegateTypeName string
	reserved         uintptr
}

// stubHostfxr is a hosting library made of Go callbacks. It hands out
// pre-programmed statuses and records every native call it receives.
type stubHostfxr struct {
	mu sync.Mutex

	// missing lists the exports Resolve fails on.
	missing map[string]bool

	initStatus     status.Code
	initHandle     uintptr
	delegateStatus status.Code
	delegate       uintptr
	closeStatus    status.Code
	loadStatus     status.Code
	loadFunction   uintptr

	// initEntered and initRelease, when set, block the initialization
	// export until initRelease is closed.
	initEntered chan struct{}
	initRelease chan struct{}

	initCalls     []string
	initParams    []uintptr
	delegateCalls []int32
	closeCalls    []uintptr
	loadCalls     []loadCall

	// libraryCloses counts how many times the stub library was unloaded.
	libraryCloses int
}

var (
	callbacksOnce sync.Once

	initCallback     uintptr
	delegateCallback uintptr
	closeCallback    uintptr
	loadCallback     uintptr

	// current is the stub the callbacks dispatch to.
	current atomic.Pointer[stubHostfxr]

	// handleSeq makes every stub hand out a distinct context handle.
	handleSeq atomic.Uintptr
)

const stubFunction = uintptr(0xF00D0000)

func registerCallbacks() {
	callbacksOnce.Do(func() {
		initCallback = purego.NewCallback(func(path, params, out uintptr) uintptr {
			if s := current.Load(); s != nil {
				return uintptr(s.initialize(path, params, out))
			}
			return uintptr(status.HostInvalidState)
		})
		delegateCallback = purego.NewCallback(func(handle, kind, out uintptr) uintptr {
			if s := current.Load(); s != nil {
				return uintptr(s.getRuntimeDelegate(handle, int32(kind), out))
			}
			return uintptr(status.HostInvalidState)
		})
		closeCallback = purego.NewCallback(func(handle uintptr) uintptr {
			if s := current.Load(); s != nil {
				return uintptr(s.close(handle))
			}
			return uintptr(status.HostInvalidState)
		})
		loadCallback = purego.NewCallback(func(assembly, typeName, method, delegateType, reserved, out uintptr) uintptr {
			if s := current.Load(); s != nil {
				return uintptr(s.load(assembly, typeName, method, delegateType, reserved, out))
			}
			return uintptr(status.HostInvalidState)
		})
	})
}

// newStub installs a fresh stub hosting library for the duration of t.
func newStub(t *testing.T) *stubHostfxr {
	t.Helper()
	registerCallbacks()

	s := &stubHostfxr{
		missing:      map[string]bool{},
		initHandle:   0xC0000000 + handleSeq.Add(1)*0x10,
		delegate:     loadCallback,
		loadFunction: stubFunction,
	}
	current.Store(s)
	t.Cleanup(func() { current.CompareAndSwap(s, nil) })
	return s
}

// Resolve implements hostfxr.SymbolResolver.
func (s *stubHostfxr) Resolve(name string) (uintptr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.missing[name] {
		return 0, fmt.Errorf("undefined symbol: %s", name)
	}
	switch name {
	case "hostfxr_initialize_for_runtime_config":
		return initCallback, nil
	case "hostfxr_get_runtime_delegate":
		return delegateCallback, nil
	case "hostfxr_close":
		return closeCallback, nil
	}
	return 0, fmt.Errorf("undefined symbol: %s", name)
}

// Close unloads the stub library.
func (s *stubHostfxr) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.libraryCloses++
	return nil
}

func (s *stubHostfxr) unloadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.libraryCloses
}

func (s *stubHostfxr) initialize(path, params, out uintptr) status.Code {
	if s.initEntered != nil {
		close(s.initEntered)
		<-s.initRelease
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initCalls = append(s.initCalls, native.GoString(path))
	s.initParams = append(s.initParams, params)
	*(*uintptr)(unsafe.Pointer(out)) = s.initHandle
	return s.initStatus
}

func (s *stubHostfxr) getRuntimeDelegate(handle uintptr, kind int32, out uintptr) status.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delegateCalls = append(s.delegateCalls, kind)
	if handle != s.initHandle {
		return status.InvalidArgFailure
	}
	if s.delegateStatus == status.Success {
		*(*uintptr)(unsafe.Pointer(out)) = s.delegate
	}
	return s.delegateStatus
}

func (s *stubHostfxr) close(handle uintptr) status.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCalls = append(s.closeCalls, handle)
	return s.closeStatus
}

func (s *stubHostfxr) load(assembly, typeName, method, delegateType, reserved, out uintptr) status.Code {
	call := loadCall{
		assembly:     native.GoString(assembly),
		typeName:     native.GoString(typeName),
		method:       native.GoString(method),
		delegateType: delegateType,
		sentinel:     delegateType == ^uintptr(0),
		reserved:     reserved,
	}
	if !call.sentinel {
		call.delegateTypeName = native.GoString(delegateType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadCalls = append(s.loadCalls, call)
	if s.loadStatus == status.Success {
		*(*uintptr)(unsafe.Pointer(out)) = s.loadFunction
	}
	return s.loadStatus
}

// closeCount returns how many times the stub's context handle was closed.
func (s *stubHostfxr) closeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.closeCalls {
		if h == s.initHandle {
			n++
		}
	}
	return n
}

func (s *stubHostfxr) recorded() ([]string, []int32, []loadCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.initCalls...),
		append([]int32(nil), s.delegateCalls...),
		append([]loadCall(nil), s.loadCalls...)
}
