// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"os"
)

// Exists reports whether path resolves to an existing file or directory.
// Symlinks are followed, so a dangling symlink reports false.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path resolves to a directory.
// Symlinks are followed.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsSymlink reports whether path itself is a symbolic link,
// without following it.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// IsBrokenSymlink reports whether path is a symbolic link whose target
// cannot be resolved to an existing file or directory.
func IsBrokenSymlink(path string) bool {
	return IsSymlink(path) && !Exists(path)
}

// DirHasEntries reports whether path is a readable directory containing at
// least one entry. An unreadable or missing directory reports false.
func DirHasEntries(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}
