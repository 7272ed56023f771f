// Copyright (c) 2021-2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package devrel adds devrel commands to a parent cobra.Command.
package devrel

import (
	"log/slog"
	"path/filepath"

	"github.com/cdce8p/devrel/internal/app/devrel"
	"github.com/cdce8p/devrel/internal/pkg/config"
	"github.com/cdce8p/devrel/internal/pkg/git"
	"github.com/cdce8p/devrel/internal/pkg/logging"
	"github.com/cdce8p/devrel/internal/pkg/pkgfile"
	"github.com/spf13/cobra"
)

// command contains options and command state.
type command struct {
	opts commandOpts
	cfg  *config.Config
	app  *devrel.App
}

// commandOpts contains configured options.
type commandOpts struct {
	rootPath string
	loadOpts []config.LoadOpt
}

// CommandOpt are used to configure optional command behavior.
type CommandOpt func(*commandOpts) error

// OptWithConfig specifies options applied when loading configuration, ahead of those derived
// from command line flags.
func OptWithConfig(opts ...config.LoadOpt) CommandOpt {
	return func(co *commandOpts) error {
		co.loadOpts = append(co.loadOpts, opts...)
		return nil
	}
}

// loadConfig loads configuration according to c.opts and the flags of cmd.
func (c *command) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := append([]config.LoadOpt{}, c.opts.loadOpts...)

	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		opts = append(opts, config.OptLoadFile(f.Value.String()))
	}

	opts = append(opts, config.OptLoadFlags(cmd.Flags()))

	return config.Load(opts...)
}

// newTagLister returns the tag source selected by cfg.
func newTagLister(cfg *config.Config, l *slog.Logger) (devrel.TagLister, error) {
	if cfg.TagSource == config.TagSourceExec {
		return newExecutable(cfg, cfg.RepositoryPath, l)
	}
	return git.NewRepository(cfg.RepositoryPath), nil
}

// newExecutable returns a git executable that runs within dir.
func newExecutable(cfg *config.Config, dir string, l *slog.Logger) (*git.Executable, error) {
	opts := []git.ExecutableOpt{git.OptExecutableLogger(l)}

	if cfg.GitPath != "" {
		opts = append(opts, git.OptExecutablePath(cfg.GitPath))
	}

	return git.NewExecutable(dir, opts...)
}

// initConfig loads configuration.
func (c *command) initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig(cmd)
	c.cfg = cfg
	return err
}

// initLogger loads configuration and returns the logger it describes.
func (c *command) initLogger(cmd *cobra.Command) (*slog.Logger, error) {
	if err := c.initConfig(cmd, nil); err != nil {
		return nil, err
	}

	return logging.New(c.cfg.Log.Level, c.cfg.Log.Format, cmd.ErrOrStderr()), nil
}

// newApp creates an App writing to the streams of cmd and logging to l, configured with opts.
func (c *command) newApp(cmd *cobra.Command, l *slog.Logger, opts ...devrel.AppOpt) error {
	opts = append([]devrel.AppOpt{
		devrel.OptAppOutput(cmd.OutOrStdout()),
		devrel.OptAppError(cmd.ErrOrStderr()),
		devrel.OptAppLogger(l),
	}, opts...)

	app, err := devrel.New(opts...)
	c.app = app
	return err
}

// initApp initializes an App able to compute versions.
func (c *command) initApp(cmd *cobra.Command, _ []string) error {
	l, err := c.initLogger(cmd)
	if err != nil {
		return err
	}

	tl, err := newTagLister(c.cfg, l)
	if err != nil {
		return err
	}

	vr, err := pkgfile.NewVersionReader(c.cfg.VersionFile, c.cfg.VersionVariable)
	if err != nil {
		return err
	}

	return c.newApp(cmd, l, devrel.OptAppTags(tl), devrel.OptAppVersion(vr))
}

// initPatchApp initializes an App able to patch setup scripts.
func (c *command) initPatchApp(cmd *cobra.Command, _ []string) error {
	l, err := c.initLogger(cmd)
	if err != nil {
		return err
	}

	p, err := pkgfile.NewPatcher(pkgfile.Metadata{
		Name:        c.cfg.Package.Name,
		Repository:  c.cfg.Package.Repository,
		Description: c.cfg.Package.Description,
	})
	if err != nil {
		return err
	}

	var iu devrel.IndexUpdater
	if c.cfg.AssumeUnchanged {
		e, err := newExecutable(c.cfg, filepath.Dir(c.cfg.SetupFile), l)
		if err != nil {
			return err
		}
		iu = e
	}

	return c.newApp(cmd, l, devrel.OptAppPatcher(c.cfg.SetupFile, p, iu))
}

// AddCommands adds devrel commands to cmd according to opts, along with the persistent flags
// they share.
//
// The next command computes the next development release from the tags of a git repository,
// the tags command lists the existing releases, and the patch command rewrites a setup script
// for a development distribution.
func AddCommands(cmd *cobra.Command, opts ...CommandOpt) error {
	c := command{
		opts: commandOpts{
			rootPath: cmd.CommandPath(),
		},
	}

	for _, opt := range opts {
		if err := opt(&c.opts); err != nil {
			return err
		}
	}

	fs := cmd.PersistentFlags()
	fs.String("config", "", "configuration file (default \""+config.DefaultFile+"\" if present)")
	fs.String("log-level", "", "logging level (debug, info, warn, error)")
	fs.String("log-format", "", "logging format (text, json)")

	cmd.AddCommand(
		c.getNext(),
		c.getTags(),
		c.getPatch(),
		c.getConfig(),
	)

	return nil
}
