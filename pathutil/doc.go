// Package pathutil locates executables in well-known install directories
// that are not on the PATH. It backs the "installed but not on your PATH"
// part of a lookup diagnosis: when no PATH entry matched, these directories
// often hold the binary the user thought they were running.
//
// The directory lists are per-OS conventions (package managers, language
// toolchains, user-local bins), not an exhaustive filesystem search.
package pathutil
