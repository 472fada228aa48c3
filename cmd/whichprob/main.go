// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command whichprob diagnoses why an executable lookup on the PATH failed
// or resolved to an unexpected binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jongio/whichprob/cliout"
	"github.com/jongio/whichprob/diagnose"
	"github.com/jongio/whichprob/logutil"
	"github.com/jongio/whichprob/mcptool"
	"github.com/jongio/whichprob/version"
)

// Set via ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		outputFormat string
		noColor      bool
		debug        bool
	)

	root := diagnose.NewCommand()
	root.Version = buildVersion

	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", "default", "Output format (default, json, yaml)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cliout.SetFormat(outputFormat); err != nil {
			return err
		}
		if noColor {
			cliout.NoColor()
		}
		logutil.SetupLogger(debug || logutil.IsDebugEnabled(), cliout.IsStructured())
		return nil
	}

	info := version.New("whichprob")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	root.AddCommand(version.NewCommand(info))
	root.AddCommand(mcptool.NewCommand(info.Name, info.Version))

	return root
}
