// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jongio/whichprob/fileutil"
)

// CommonInstallDirs returns the well-known install directories for the
// current OS, in rough likelihood order. Directories that do not exist are
// still returned; callers probe them.
func CommonInstallDirs() []string {
	if runtime.GOOS == "windows" {
		return []string{
			"C:\\Program Files\\nodejs",
			"C:\\Program Files\\Git\\cmd",
			"C:\\Program Files\\Docker\\Docker\\resources\\bin",
			"C:\\Program Files\\dotnet",
			"C:\\Program Files\\Python312",
			"C:\\Program Files\\Python311",
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "Python"),
			filepath.Join(os.Getenv("APPDATA"), "npm"),
			filepath.Join(os.Getenv("USERPROFILE"), "go", "bin"),
			filepath.Join(os.Getenv("USERPROFILE"), ".cargo", "bin"),
		}
	}

	homeDir, _ := os.UserHomeDir()
	return []string{
		"/usr/local/bin",
		"/usr/bin",
		"/bin",
		"/usr/sbin",
		"/sbin",
		"/opt/homebrew/bin",
		"/snap/bin",
		filepath.Join(homeDir, ".local", "bin"),
		filepath.Join(homeDir, ".cargo", "bin"),
		filepath.Join(homeDir, ".rbenv", "shims"),
		filepath.Join(homeDir, "go", "bin"),
		filepath.Join(homeDir, "bin"),
	}
}

// SearchOffPath looks for an executable named program in the common install
// directories, skipping any directory already present in onPath. It returns
// the full paths of executable matches, in directory order.
func SearchOffPath(program string, onPath []string) []string {
	if program == "" {
		return nil
	}

	searched := make(map[string]bool, len(onPath))
	for _, dir := range onPath {
		searched[filepath.Clean(dir)] = true
	}

	exeName := program
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(program), ".exe") {
		exeName = program + ".exe"
	}

	var found []string
	for _, dir := range CommonInstallDirs() {
		if dir == "" || searched[filepath.Clean(dir)] {
			continue
		}
		fullPath := filepath.Join(dir, exeName)
		if fileutil.Exists(fullPath) && fileutil.CanExecute(fullPath) && !fileutil.IsDir(fullPath) {
			found = append(found, fullPath)
		}
	}
	return found
}

// installHints maps common development tools to their install instructions.
var installHints = map[string]string{
	"node":   "Install from https://nodejs.org/",
	"npm":    "Install Node.js from https://nodejs.org/",
	"pnpm":   "Install from https://pnpm.io/installation",
	"yarn":   "Install from https://yarnpkg.com/getting-started/install",
	"python": "Install from https://www.python.org/downloads/",
	"pip":    "Install Python from https://www.python.org/downloads/",
	"poetry": "Install from https://python-poetry.org/docs/#installation",
	"uv":     "Install from https://docs.astral.sh/uv/getting-started/installation/",
	"ruby":   "Install from https://www.ruby-lang.org/en/documentation/installation/",
	"gem":    "Install Ruby from https://www.ruby-lang.org/en/documentation/installation/",
	"bundle": "Run `gem install bundler` or install Ruby from https://www.ruby-lang.org/",
	"rake":   "Run `gem install rake` or install Ruby from https://www.ruby-lang.org/",
	"docker": "Install Docker Desktop from https://www.docker.com/products/docker-desktop",
	"git":    "Install from https://git-scm.com/downloads",
	"gh":     "Install from https://cli.github.com/",
	"go":     "Install from https://go.dev/dl/",
	"cargo":  "Install Rust from https://rustup.rs/",
	"rustc":  "Install Rust from https://rustup.rs/",
	"dotnet": "Install from https://dotnet.microsoft.com/download",
	"java":   "Install from https://adoptium.net/",
	"mvn":    "Install from https://maven.apache.org/install.html",
	"gradle": "Install from https://gradle.org/install/",
}

// InstallHint returns install instructions for a well-known tool, or the
// empty string when the tool is not recognized.
func InstallHint(program string) string {
	return installHints[program]
}
