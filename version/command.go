package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/whichprob/cliout"
)

// NewCommand creates a version command that displays tool version info.
// Output honors the global cliout format: structured formats emit the raw
// Info object, the default format renders labeled lines.
func NewCommand(info *Info) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cliout.IsStructured() {
				return cliout.PrintStructured(info)
			}

			if quiet {
				cliout.Plain("%s", info.Version)
				return nil
			}

			cliout.Header(fmt.Sprintf("%s Version", info.Name))
			cliout.Label("Version", info.Version)
			cliout.Label("Build Date", info.BuildDate)
			cliout.Label("Git Commit", info.GitCommit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
