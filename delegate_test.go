// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fasetto/hostfxr"
)

func TestDelegateKind(t *testing.T) {
	tests := []struct {
		kind  hostfxr.DelegateKind
		value int32
		name  string
	}{
		{hostfxr.DelegateComActivation, 0, "hdt_com_activation"},
		{hostfxr.DelegateLoadInMemoryAssembly, 1, "hdt_load_in_memory_assembly"},
		{hostfxr.DelegateWinRTActivation, 2, "hdt_winrt_activation"},
		{hostfxr.DelegateComRegister, 3, "hdt_com_register"},
		{hostfxr.DelegateComUnregister, 4, "hdt_com_unregister"},
		{hostfxr.DelegateLoadAssemblyAndGetFunctionPointer, 5, "hdt_load_assembly_and_get_function_pointer"},
		{hostfxr.DelegateGetFunctionPointer, 6, "hdt_get_function_pointer"},
		{hostfxr.DelegateLoadAssembly, 7, "hdt_load_assembly"},
		{hostfxr.DelegateLoadAssemblyBytes, 8, "hdt_load_assembly_bytes"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.value, int32(tc.kind))
		assert.Equal(t, tc.name, tc.kind.String())
		assert.True(t, tc.kind.Valid())
	}

	for _, kind := range []hostfxr.DelegateKind{-1, 9, 1 << 20} {
		assert.False(t, kind.Valid())
	}
	assert.Equal(t, "DelegateKind(9)", hostfxr.DelegateKind(9).String())
}

func TestDelegateType(t *testing.T) {
	direct := hostfxr.UnmanagedCallersOnly()
	assert.True(t, direct.Valid())
	assert.True(t, direct.IsUnmanagedCallersOnly())
	assert.Empty(t, direct.Name())
	assert.Equal(t, "UNMANAGEDCALLERSONLY_METHOD", direct.String())

	named := hostfxr.NamedDelegate("Sample.Program+CallMeDelegate, Sample")
	assert.True(t, named.Valid())
	assert.False(t, named.IsUnmanagedCallersOnly())
	assert.Equal(t, "Sample.Program+CallMeDelegate, Sample", named.Name())
	assert.Equal(t, named.Name(), named.String())

	var zero hostfxr.DelegateType
	assert.False(t, zero.Valid())
	assert.False(t, hostfxr.NamedDelegate("").Valid())
	assert.Equal(t, "<invalid>", zero.String())
}
