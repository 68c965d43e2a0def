// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fasetto/hostfxr/status"
)

func TestFromNative(t *testing.T) {
	assert.Equal(t, status.Success, status.FromNative(0))
	assert.Equal(t, status.SuccessHostAlreadyInitialized, status.FromNative(1))
	assert.Equal(t, status.FrameworkMissingFailure, status.FromNative(-2147450730))
}

func TestInitSuccess(t *testing.T) {
	assert.True(t, status.Success.IsInitSuccess())
	assert.True(t, status.SuccessHostAlreadyInitialized.IsInitSuccess())
	assert.False(t, status.SuccessDifferentRuntimeProperties.IsInitSuccess())
	assert.False(t, status.InvalidConfigFile.IsInitSuccess())

	assert.True(t, status.Success.IsSuccess())
	assert.False(t, status.SuccessHostAlreadyInitialized.IsSuccess())
}

func TestIsFailure(t *testing.T) {
	assert.False(t, status.Success.IsFailure())
	assert.False(t, status.SuccessDifferentRuntimeProperties.IsFailure())
	assert.True(t, status.InvalidArgFailure.IsFailure())
	assert.True(t, status.Code(0x80000000).IsFailure())
}

func TestString(t *testing.T) {
	assert.Equal(t, "FrameworkMissingFailure (0x80008096)", status.FrameworkMissingFailure.String())
	assert.Equal(t, "Success (0x00000000)", status.Success.String())
	assert.Equal(t, "unknown status (0x12345678)", status.Code(0x12345678).String())
	assert.Equal(t, "0x80008096", status.FrameworkMissingFailure.Hex())
}

func TestTable(t *testing.T) {
	for _, c := range []status.Code{
		status.Success,
		status.InvalidArgFailure,
		status.InvalidConfigFile,
		status.HostFeatureDisabled,
	} {
		assert.True(t, c.Known(), c.Hex())
		assert.NotEmpty(t, c.Description(), c.Hex())
	}
	assert.False(t, status.Code(0x80008086).Known())
	assert.Empty(t, status.Code(0x80008086).Description())
}
