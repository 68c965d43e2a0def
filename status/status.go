// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

// Package status describes the integer status codes of the .NET hosting
// library.
package status

import "fmt"

// Code is a status code returned by a hosting export or runtime delegate.
// Failures have the high bit set, so the raw int32 returned by the native
// call is reinterpreted as unsigned.
type Code uint32

// FromNative converts the int32 returned by a native call into a Code.
func FromNative(rc int32) Code {
	return Code(uint32(rc))
}

// Known reports whether the code is part of the hosting status table.
func (c Code) Known() bool {
	_, ok := codeNameMap[c]
	return ok
}

// String returns the symbolic name of the code followed by its hex form.
func (c Code) String() string {
	if name, ok := codeNameMap[c]; ok {
		return fmt.Sprintf("%s (%s)", name, c.Hex())
	}
	return fmt.Sprintf("unknown status (%s)", c.Hex())
}

// Hex returns the code formatted as `0x%08x`.
func (c Code) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// Description returns the human readable description of the code, or an
// empty string for codes outside the table.
func (c Code) Description() string {
	return codeDescriptionMap[c]
}

// IsSuccess reports whether the code is exactly Success.
func (c Code) IsSuccess() bool {
	return c == Success
}

// IsInitSuccess reports whether the code is accepted as a successful
// runtime context initialization: Success, or Success_HostAlreadyInitialized
// when a compatible runtime instance was reused.
func (c Code) IsInitSuccess() bool {
	return c == Success || c == SuccessHostAlreadyInitialized
}

// IsFailure reports whether the high bit of the code is set.
func (c Code) IsFailure() bool {
	return c&0x80000000 != 0
}
