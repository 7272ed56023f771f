// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package devrel

import (
	"github.com/spf13/cobra"
)

// getConfig returns a command that displays the effective configuration.
func (c *command) getConfig() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Display configuration",
		Long:    "Display the effective configuration, after applying defaults, file, environment and flags.",
		Example: c.opts.rootPath + " config",
		Args:    cobra.NoArgs,
		PreRunE: c.initConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cfg.Write(cmd.OutOrStdout())
		},
		DisableFlagsInUseLine: true,
	}
}
