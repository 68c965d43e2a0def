// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr

import "fmt"

// DelegateKind selects which runtime delegate hostfxr_get_runtime_delegate
// returns. Values mirror the hostfxr_delegate_type enumeration.
type DelegateKind int32

const (
	DelegateComActivation DelegateKind = iota
	DelegateLoadInMemoryAssembly
	DelegateWinRTActivation
	DelegateComRegister
	DelegateComUnregister
	DelegateLoadAssemblyAndGetFunctionPointer
	DelegateGetFunctionPointer
	DelegateLoadAssembly
	DelegateLoadAssemblyBytes
)

// delegateKindMap is a map kind -> native enumerator name.
var delegateKindMap = map[DelegateKind]string{
	DelegateComActivation:                     "hdt_com_activation",
	DelegateLoadInMemoryAssembly:              "hdt_load_in_memory_assembly",
	DelegateWinRTActivation:                   "hdt_winrt_activation",
	DelegateComRegister:                       "hdt_com_register",
	DelegateComUnregister:                     "hdt_com_unregister",
	DelegateLoadAssemblyAndGetFunctionPointer: "hdt_load_assembly_and_get_function_pointer",
	DelegateGetFunctionPointer:                "hdt_get_function_pointer",
	DelegateLoadAssembly:                      "hdt_load_assembly",
	DelegateLoadAssemblyBytes:                 "hdt_load_assembly_bytes",
}

// Valid reports whether k is part of the enumeration.
func (k DelegateKind) Valid() bool {
	_, ok := delegateKindMap[k]
	return ok
}

// String returns the native enumerator name of k.
func (k DelegateKind) String() string {
	if name, ok := delegateKindMap[k]; ok {
		return name
	}
	return fmt.Sprintf("DelegateKind(%d)", int32(k))
}

// unmanagedCallersOnlyMethod is the `(char_t*)-1` marker passed in place of a
// delegate type name when the target method is marked
// [UnmanagedCallersOnly].
const unmanagedCallersOnlyMethod = ^uintptr(0)

// DelegateType tells the load_assembly_and_get_function_pointer delegate how
// the target method is to be called. It is either UnmanagedCallersOnly() or
// NamedDelegate(name). The zero value is invalid.
type DelegateType struct {
	name      string
	unmanaged bool
}

// UnmanagedCallersOnly selects a method that is directly callable with the
// native calling convention.
func UnmanagedCallersOnly() DelegateType {
	return DelegateType{unmanaged: true}
}

// NamedDelegate selects a method called through the managed delegate type
// name, given as an assembly qualified type name such as
// "App.Program+RunDelegate, App".
func NamedDelegate(name string) DelegateType {
	return DelegateType{name: name}
}

// IsUnmanagedCallersOnly reports whether t is the UnmanagedCallersOnly
// variant.
func (t DelegateType) IsUnmanagedCallersOnly() bool {
	return t.unmanaged
}

// Name returns the delegate type name of a NamedDelegate, or "".
func (t DelegateType) Name() string {
	return t.name
}

// Valid reports whether t is one of the two variants.
func (t DelegateType) Valid() bool {
	return t.unmanaged != (t.name != "")
}

// String implements fmt.Stringer.
func (t DelegateType) String() string {
	switch {
	case t.unmanaged:
		return "UNMANAGEDCALLERSONLY_METHOD"
	case t.name != "":
		return t.name
	}
	return "<invalid>"
}
