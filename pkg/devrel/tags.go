// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package devrel

import (
	"github.com/spf13/cobra"
)

// getTags returns a command that lists the existing development releases.
func (c *command) getTags() *cobra.Command {
	return &cobra.Command{
		Use:     "tags",
		Short:   "List development releases",
		Long:    "List the development releases of the declared base version, oldest first.",
		Example: c.opts.rootPath + " tags",
		Args:    cobra.NoArgs,
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Tags()
		},
		DisableFlagsInUseLine: true,
	}
}
