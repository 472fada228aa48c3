// Package shellutil identifies the shell that invoked the current process.
//
// PATH semantics are shell-mediated: the value whichprob inspects is whatever
// the invoking shell exported, so reports annotate which shell that was.
// Detection checks the SHELL environment variable first, then falls back to
// walking the process ancestry with github.com/shirou/gopsutil/v4/process
// looking for a known shell name. gopsutil uses platform-specific APIs
// (/proc on Linux, sysctl on macOS/BSD, native API on Windows), which keeps
// the walk reliable across platforms.
//
// # Example
//
//	shell := shellutil.CurrentShell()
//	if shell != shellutil.ShellUnknown {
//	    fmt.Printf("invoked from %s\n", shell)
//	}
package shellutil
