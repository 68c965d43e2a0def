// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

//go:build darwin || freebsd || linux

package native

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// StringPtr returns a NUL-terminated UTF-8 copy of s.
// It fails if s contains a NUL byte.
func StringPtr(s string) (unsafe.Pointer, error) {
	p, err := unix.BytePtrFromString(s)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(p), nil
}

// GoString copies the NUL-terminated UTF-8 string at p.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return unix.BytePtrToString((*byte)(unsafe.Pointer(p)))
}
