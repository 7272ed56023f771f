// Copyright (c) 2021-2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package devrel implements the operations of the devrel command.
package devrel

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/cdce8p/devrel/internal/pkg/logging"
)

// TagLister lists the names of tags in a repository.
type TagLister interface {
	Tags() ([]string, error)
}

// VersionReader reads the version declared by a project.
type VersionReader interface {
	Version() (string, error)
}

// IndexUpdater marks a file as assumed unchanged in a repository index.
type IndexUpdater interface {
	AssumeUnchanged(path string) error
}

// appOpts contains configured options.
type appOpts struct {
	out     io.Writer
	err     io.Writer
	logger  *slog.Logger
	tags    TagLister
	version VersionReader
	patcher *patchOpts
}

// patchOpts contains options used when patching a setup script.
type patchOpts struct {
	path    string
	patcher Patcher
	index   IndexUpdater
}

// AppOpt are used to configure optional behavior.
type AppOpt func(*appOpts) error

// App holds state and configured options.
type App struct {
	opts appOpts
}

// OptAppOutput specifies that output should be written to w.
func OptAppOutput(w io.Writer) AppOpt {
	return func(o *appOpts) error {
		o.out = w
		return nil
	}
}

// OptAppError specifies that diagnostics should be written to w.
func OptAppError(w io.Writer) AppOpt {
	return func(o *appOpts) error {
		o.err = w
		return nil
	}
}

// OptAppLogger specifies the logger.
func OptAppLogger(l *slog.Logger) AppOpt {
	return func(o *appOpts) error {
		o.logger = l
		return nil
	}
}

// OptAppTags specifies the source of repository tags.
func OptAppTags(tl TagLister) AppOpt {
	return func(o *appOpts) error {
		o.tags = tl
		return nil
	}
}

// OptAppVersion specifies the source of the declared project version.
func OptAppVersion(vr VersionReader) AppOpt {
	return func(o *appOpts) error {
		o.version = vr
		return nil
	}
}

// OptAppPatcher specifies that the setup script at path is rewritten with p. If iu is not nil, the
// script is marked as assumed unchanged after being written.
func OptAppPatcher(path string, p Patcher, iu IndexUpdater) AppOpt {
	return func(o *appOpts) error {
		o.patcher = &patchOpts{path: path, patcher: p, index: iu}
		return nil
	}
}

// New creates a new App configured with opts.
func New(opts ...AppOpt) (*App, error) {
	a := App{
		opts: appOpts{
			out:    os.Stdout,
			err:    os.Stderr,
			logger: logging.Discard(),
		},
	}

	for _, opt := range opts {
		if err := opt(&a.opts); err != nil {
			return nil, err
		}
	}

	return &a, nil
}

var (
	errNoTagSource     = errors.New("no tag source configured")
	errNoVersionSource = errors.New("no version source configured")
	errNoPatcher       = errors.New("no setup script patcher configured")
)
