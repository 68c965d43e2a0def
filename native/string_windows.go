// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

//go:build windows

package native

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// StringPtr returns a NUL-terminated UTF-16 copy of s.
// It fails if s contains a NUL character.
func StringPtr(s string) (unsafe.Pointer, error) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(p), nil
}

// GoString copies the NUL-terminated UTF-16 string at p.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(p)))
}
