// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr

// OpenedLibrary is the library type handed to Open by its loader.
type OpenedLibrary = library

// SetLibraryOpener replaces the library loader used by Open until the
// returned function is called.
func SetLibraryOpener(open func(path string) (OpenedLibrary, error)) (restore func()) {
	prev := openLibrary
	openLibrary = open
	return func() { openLibrary = prev }
}
