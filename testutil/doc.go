// Package testutil provides common testing utilities for the whichprob
// packages. It includes helpers for capturing stdout and for building
// throwaway PATH directory trees: regular files, executable files, and
// symlinks under t.TempDir, so diagnostic scenarios (duplicate names, broken
// links, permission failures) can be staged in a few lines.
package testutil
