// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

//go:build windows

package native

import (
	"golang.org/x/sys/windows"
)

// Open maps the shared library at path into the process.
// A bare file name is resolved through the standard DLL search order.
func Open(path string) (Handle, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return Handle(h), nil
}

// Lookup returns the address of the exported symbol name.
func Lookup(h Handle, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

// Close unmaps the library.
func Close(h Handle) error {
	if h == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(h))
}
