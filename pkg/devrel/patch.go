// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package devrel

import (
	"github.com/spf13/cobra"
)

// getPatch returns a command that rewrites a setup script for a development distribution.
func (c *command) getPatch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <version>",
		Short: "Patch setup script",
		Long: `Rewrite the setup script for a development distribution of version.

The distribution name, version, long description and repository URL are
replaced, and the homepage and changelog URLs are removed. Each change that
could not be made is reported. The script is then marked assume-unchanged in
its git repository.`,
		Example: c.opts.rootPath + " patch 1.18.0a3",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.initPatchApp,
	}

	strict := cmd.Flags().Bool("strict", false, "do not write the script unless every change is made")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return c.app.Patch(args[0], *strict)
	}

	return cmd
}
