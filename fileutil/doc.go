// Package fileutil provides the filesystem predicates used by the PATH
// diagnostic engine: existence, directory and symlink checks, and an
// effective-executability check that delegates to the operating system.
//
// # Executability
//
// CanExecute asks the OS whether the current process could actually execute
// the path, rather than inspecting mode bits. On Unix this is
// unix.Access(path, unix.X_OK), which accounts for effective uid/gid,
// parent-directory traversal permissions, and mount flags such as noexec.
// On Windows it falls back to a file-extension check (PATHEXT semantics),
// since the execute bit has no meaning there.
//
// # Symlinks
//
// IsSymlink reports on the link itself (Lstat). A broken symlink is a link
// whose target cannot be resolved; the diagnostic engine classifies it from
// these primitives rather than from mode bits, because a dangling link can
// still carry executable permissions.
//
// # Example
//
//	if fileutil.IsSymlink(path) && !fileutil.Exists(path) {
//	    // dangling link
//	}
//	if fileutil.CanExecute(path) {
//	    // exec of this path would succeed, permission-wise
//	}
package fileutil
