//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"golang.org/x/sys/unix"
)

// CanExecute reports whether the OS would permit the current process to
// execute path. It uses the access(2) X_OK check rather than mode-bit
// arithmetic, so effective uid/gid, ancestor-directory traversal permissions,
// and noexec mounts are all accounted for. Directories can pass this check
// (X_OK on a directory means "searchable"); callers that need a runnable file
// must combine it with IsDir.
func CanExecute(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
