// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the
// captured output. The original stdout is always restored, even if the
// function returns an error.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    fmt.Println("test output")
//	    return nil
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// WriteFile creates a plain, non-executable file under dir and returns its
// full path.
func WriteFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("contents"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// WriteExecutable creates an executable file under dir and returns its full
// path. On Windows the executable bit is meaningless; pick a name with an
// executable extension there if the test relies on executability.
func WriteExecutable(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Symlink creates a symbolic link at filepath.Join(dir, name) pointing to
// target and returns the link path. The target does not need to exist, which
// allows staging broken links. Tests using this helper should skip on
// platforms where symlink creation needs elevation.
func Symlink(t *testing.T, dir, name, target string) string {
	t.Helper()

	link := filepath.Join(dir, name)
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to symlink %s -> %s: %v", link, target, err)
	}
	return link
}

// PathValue joins directories into a PATH-style value using the platform
// list separator.
func PathValue(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}
