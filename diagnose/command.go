// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/whichprob/cliout"
)

// NewCommand creates the cobra command that runs a diagnosis. It is the
// root command of the whichprob CLI; presentation concerns (output format,
// color) are handled by the caller's persistent flags.
func NewCommand() *cobra.Command {
	var (
		pathOverride string
		cwd          string
		guessLimit   int
	)

	cmd := &cobra.Command{
		Use:   "whichprob <program>",
		Short: "Diagnose why an executable lookup failed",
		Long: `whichprob explains why running a program by name failed or picked an
unexpected binary. It walks the PATH search list in order, classifies every
directory entry, checks effective executability of every exact-name match by
asking the OS, and suggests close spellings when nothing matched.

The program is never executed; whichprob only reads filesystem metadata.`,
		Example: `  whichprob bundle
  whichprob --path "/usr/local/bin:/usr/bin" bundle
  whichprob -o json node`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := New(args[0])
			if cmd.Flags().Changed("path") {
				w.PathEnv = pathOverride
			}
			if cwd != "" {
				w.Cwd = cwd
			}
			w.GuessLimit = guessLimit

			report, err := w.Diagnose()
			if err != nil {
				return fmt.Errorf("diagnosis failed: %w", err)
			}

			if cliout.IsStructured() {
				return cliout.PrintStructured(report)
			}
			RenderText(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&pathOverride, "path", "", "PATH value to scan instead of the process environment")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Working directory for resolving relative PATH entries")
	cmd.Flags().IntVar(&guessLimit, "suggest", DefaultGuessLimit, "Maximum spelling suggestions to offer (0 disables)")

	return cmd
}
