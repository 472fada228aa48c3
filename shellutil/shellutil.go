// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Shell identifiers used in reports.
const (
	// ShellBash is the Bourne Again Shell (default on most Unix systems).
	ShellBash = "bash"

	// ShellCmd is the Windows Command Prompt.
	ShellCmd = "cmd"

	// ShellFish is the Friendly Interactive Shell.
	ShellFish = "fish"

	// ShellPowerShell is Windows PowerShell (5.1 and earlier).
	ShellPowerShell = "powershell"

	// ShellPwsh is PowerShell Core (6.0+, cross-platform).
	ShellPwsh = "pwsh"

	// ShellSh is the POSIX shell.
	ShellSh = "sh"

	// ShellZsh is the Z Shell.
	ShellZsh = "zsh"

	// ShellUnknown is reported when no shell could be identified.
	ShellUnknown = ""
)

// knownShells are the process names recognized during the ancestry walk.
var knownShells = map[string]string{
	"bash":           ShellBash,
	"cmd":            ShellCmd,
	"cmd.exe":        ShellCmd,
	"fish":           ShellFish,
	"powershell":     ShellPowerShell,
	"powershell.exe": ShellPowerShell,
	"pwsh":           ShellPwsh,
	"pwsh.exe":       ShellPwsh,
	"sh":             ShellSh,
	"zsh":            ShellZsh,
}

// maxAncestors bounds the process ancestry walk. Shells sit one or two
// levels up in practice (shell -> whichprob, or shell -> go run -> whichprob).
const maxAncestors = 8

// CurrentShell returns the name of the shell that invoked the current
// process, or ShellUnknown if none could be identified. The SHELL
// environment variable wins when set; otherwise the process ancestry is
// inspected.
func CurrentShell() string {
	if shell := shellFromEnv(); shell != ShellUnknown {
		return shell
	}
	return shellFromAncestry(os.Getppid())
}

// shellFromEnv derives the shell name from the SHELL environment variable.
func shellFromEnv() string {
	value := os.Getenv("SHELL")
	if value == "" {
		return ShellUnknown
	}
	return normalizeShellName(filepath.Base(value))
}

// shellFromAncestry walks up the process tree from pid looking for a known
// shell. Lookup failures (exited parents, permission limits) end the walk
// quietly; this is informational only.
func shellFromAncestry(pid int) string {
	current := int32(pid)
	for range maxAncestors {
		if current <= 1 {
			return ShellUnknown
		}
		proc, err := process.NewProcess(current)
		if err != nil {
			return ShellUnknown
		}
		name, err := proc.Name()
		if err != nil {
			return ShellUnknown
		}
		if shell := normalizeShellName(name); shell != ShellUnknown {
			return shell
		}
		parent, err := proc.Ppid()
		if err != nil {
			return ShellUnknown
		}
		current = parent
	}
	return ShellUnknown
}

// normalizeShellName maps a process or binary name to a shell identifier.
func normalizeShellName(name string) string {
	if shell, ok := knownShells[strings.ToLower(name)]; ok {
		return shell
	}
	return ShellUnknown
}
