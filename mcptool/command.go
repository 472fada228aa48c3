// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mcptool

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the cobra command that runs the MCP server over stdio.
func NewCommand(name, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run as a Model Context Protocol server over stdio",
		Long: `Runs an MCP server on stdin/stdout exposing one tool, "diagnose",
which accepts a program name and returns the full lookup diagnosis as JSON.
Intended to be launched by an MCP client, not interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Serve(name, version)
		},
	}
}
