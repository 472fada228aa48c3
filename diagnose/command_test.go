// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/whichprob/cliout"
	"github.com/jongio/whichprob/testutil"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cliout.NoColor()
	var runErr error
	out := testutil.CaptureOutput(t, func() error {
		cmd := NewCommand()
		cmd.SetArgs(args)
		runErr = cmd.Execute()
		return nil
	})
	return out, runErr
}

func TestCommandFound(t *testing.T) {
	skipIfWindows(t)
	dir := t.TempDir()
	testutil.WriteExecutable(t, dir, "node")

	out, err := runCommand(t, "--path", dir, "--cwd", dir, "node")
	require.NoError(t, err)
	assert.Contains(t, out, `Program "node" found at`)
}

func TestCommandNotFoundStillSucceeds(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "--path", dir, "--cwd", dir, "node")
	require.NoError(t, err, "a not-found diagnosis is a successful run")
	assert.Contains(t, out, `Program "node" not found`)
}

func TestCommandRequiresProgramArg(t *testing.T) {
	_, err := runCommand(t)
	require.Error(t, err)
}

func TestCommandPathFlagOverridesEnv(t *testing.T) {
	skipIfWindows(t)
	empty := t.TempDir()
	t.Setenv("PATH", empty)

	dir := t.TempDir()
	testutil.WriteExecutable(t, dir, "node")

	out, err := runCommand(t, "--path", dir, "--cwd", dir, "node")
	require.NoError(t, err)
	assert.Contains(t, out, `found at`)
}

func TestCommandSuggestFlag(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "noda")
	testutil.WriteFile(t, dir, "nodb")
	testutil.WriteFile(t, dir, "nodc")

	out, err := runCommand(t, "--path", dir, "--cwd", dir, "--suggest", "1", "node")
	require.NoError(t, err)
	assert.Contains(t, out, `"noda"`)
	assert.NotContains(t, out, `"nodb"`)
}

func TestCommandJSONOutput(t *testing.T) {
	skipIfWindows(t)
	dir := t.TempDir()
	testutil.WriteExecutable(t, dir, "node")

	require.NoError(t, cliout.SetFormat("json"))
	t.Cleanup(func() { _ = cliout.SetFormat("default") })

	out, err := runCommand(t, "--path", dir, "--cwd", dir, "node")
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "node", report.Program)
	assert.Equal(t, OutcomeFound, report.Outcome)
	require.Len(t, report.Candidates, 1)
	assert.Equal(t, FileExecutable, report.Candidates[0].Status)
}
