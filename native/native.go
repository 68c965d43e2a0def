// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

// Package native wraps the platform dynamic loader and the C string
// conventions of the .NET hosting library.
//
// Strings crossing the hosting ABI are `char_t*`: UTF-8 on Unix, UTF-16 on
// Windows. StringPtr and GoString hide that difference from callers.
package native

import (
	"github.com/ebitengine/purego"
)

// Handle is an opaque handle to a loaded shared library.
type Handle uintptr

// Bind binds the function pointed to by fptr to the native function located
// at addr. fptr must be a pointer to a nil function variable, see
// purego.RegisterFunc.
func Bind(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
