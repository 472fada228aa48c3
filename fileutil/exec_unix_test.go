//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanExecute(t *testing.T) {
	dir := t.TempDir()

	executable := filepath.Join(dir, "runnable")
	if err := os.WriteFile(executable, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	plain := filepath.Join(dir, "plain")
	if err := os.WriteFile(plain, []byte("data"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if !CanExecute(executable) {
		t.Errorf("CanExecute(%s) = false, want true", executable)
	}
	if os.Geteuid() != 0 && CanExecute(plain) {
		// root passes X_OK whenever any execute bit is set, so only assert
		// the negative case for unprivileged users.
		t.Errorf("CanExecute(%s) = true, want false", plain)
	}
	if CanExecute(filepath.Join(dir, "absent")) {
		t.Error("CanExecute on missing path = true, want false")
	}
}

func TestCanExecuteDirectory(t *testing.T) {
	// X_OK on a directory means searchable, which access(2) grants.
	// The diagnostic engine pairs CanExecute with IsDir for this reason.
	dir := t.TempDir()
	if !CanExecute(dir) {
		t.Errorf("CanExecute(%s) = false, want true for searchable dir", dir)
	}
}
