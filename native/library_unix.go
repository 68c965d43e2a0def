// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

//go:build darwin || freebsd || linux

package native

import (
	"errors"

	"github.com/ebitengine/purego"
)

// Open maps the shared library at path into the process.
// A bare file name is resolved through the dynamic loader search path.
func Open(path string) (Handle, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, errors.New("dlopen returned a nil handle")
	}
	return Handle(h), nil
}

// Lookup returns the address of the exported symbol name.
func Lookup(h Handle, name string) (uintptr, error) {
	return purego.Dlsym(uintptr(h), name)
}

// Close unmaps the library.
func Close(h Handle) error {
	if h == 0 {
		return nil
	}
	return purego.Dlclose(uintptr(h))
}
