package version

import (
	"strings"
	"testing"

	"github.com/jongio/whichprob/cliout"
	"github.com/jongio/whichprob/testutil"
)

func TestNew(t *testing.T) {
	info := New("whichprob")
	if info.Name != "whichprob" {
		t.Errorf("Name = %q, want whichprob", info.Name)
	}
	if info.Version != "0.0.0-dev" {
		t.Errorf("Version = %q, want 0.0.0-dev", info.Version)
	}
}

func TestString(t *testing.T) {
	info := &Info{Name: "whichprob", Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-02"}
	got := info.String()
	for _, want := range []string{"whichprob", "1.2.3", "abc123", "2026-01-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestCommandDefaultOutput(t *testing.T) {
	cliout.NoColor()
	info := &Info{Name: "whichprob", Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-02"}
	cmd := NewCommand(info)

	output := testutil.CaptureOutput(t, func() error {
		return cmd.RunE(cmd, nil)
	})
	if !strings.Contains(output, "1.2.3") || !strings.Contains(output, "abc123") {
		t.Errorf("version output missing fields: %q", output)
	}
}

func TestCommandQuiet(t *testing.T) {
	info := &Info{Name: "whichprob", Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-02"}
	cmd := NewCommand(info)
	if err := cmd.Flags().Set("quiet", "true"); err != nil {
		t.Fatalf("set quiet flag: %v", err)
	}

	output := testutil.CaptureOutput(t, func() error {
		return cmd.RunE(cmd, nil)
	})
	if strings.TrimSpace(output) != "1.2.3" {
		t.Errorf("quiet output = %q, want bare version", output)
	}
}

func TestCommandJSON(t *testing.T) {
	defer func() { _ = cliout.SetFormat("default") }()
	if err := cliout.SetFormat("json"); err != nil {
		t.Fatalf("SetFormat: %v", err)
	}

	info := &Info{Name: "whichprob", Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-02"}
	cmd := NewCommand(info)

	output := testutil.CaptureOutput(t, func() error {
		return cmd.RunE(cmd, nil)
	})
	if !strings.Contains(output, `"version": "1.2.3"`) {
		t.Errorf("json output missing version: %q", output)
	}
}
