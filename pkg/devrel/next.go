// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package devrel

import (
	"strings"

	"github.com/spf13/cobra"
)

// getNextExamples returns next command examples based on rootPath.
func getNextExamples(rootPath string) string {
	examples := []string{
		rootPath + " next",
		rootPath + " next --beta",
	}
	return strings.Join(examples, "\n")
}

// getNext returns a command that displays the next development release.
func (c *command) getNext() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Display next development release",
		Long: `Display the next development release of the declared base version.

Existing releases are read from the tags of the git repository. The sequence
number of the latest release is incremented within its channel, or the first
alpha is used if there is no release yet. With --beta, the first beta follows
the latest alpha.`,
		Example: getNextExamples(c.opts.rootPath),
		Args:    cobra.NoArgs,
		PreRunE: c.initApp,
	}

	beta := cmd.Flags().Bool("beta", false, "promote to the beta channel")
	noBeta := cmd.Flags().Bool("no-beta", false, "stay on the channel of the latest release (default)")
	cmd.MarkFlagsMutuallyExclusive("beta", "no-beta")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return c.app.Next(*beta && !*noBeta)
	}

	return cmd
}
