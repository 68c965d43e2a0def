// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

//go:build linux || freebsd

package native

// LibraryName is the well-known file name of the hosting library.
const LibraryName = "libhostfxr.so"
