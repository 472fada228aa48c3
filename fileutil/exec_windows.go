//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultPathExt mirrors the cmd.exe default when PATHEXT is not set.
const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// CanExecute reports whether Windows would treat path as an executable file.
// Windows has no execute permission bit; executability is determined by the
// file extension against PATHEXT.
func CanExecute(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	pathExt := os.Getenv("PATHEXT")
	if pathExt == "" {
		pathExt = defaultPathExt
	}

	ext := strings.ToUpper(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, allowed := range strings.Split(pathExt, ";") {
		if strings.ToUpper(strings.TrimSpace(allowed)) == ext {
			return true
		}
	}
	return false
}
