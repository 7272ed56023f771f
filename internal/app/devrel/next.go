// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package devrel

import (
	"fmt"
	"log/slog"

	"github.com/cdce8p/devrel/pkg/version"
)

// base returns the declared base version, without any local version label.
func (a *App) base() (string, error) {
	if a.opts.version == nil {
		return "", errNoVersionSource
	}

	s, err := a.opts.version.Version()
	if err != nil {
		return "", fmt.Errorf("while reading version: %w", err)
	}

	v, err := version.ParseBase(s)
	if err != nil {
		return "", fmt.Errorf("while reading version: %w", err)
	}

	a.opts.logger.Debug("Read declared version",
		slog.String("declared", s),
		slog.String("base", v.String()))

	return v.String(), nil
}

// existing returns the release tags of base, in ascending order.
func (a *App) existing(base string) ([]version.Version, error) {
	if a.opts.tags == nil {
		return nil, errNoTagSource
	}

	tags, err := a.opts.tags.Tags()
	if err != nil {
		return nil, fmt.Errorf("while listing tags: %w", err)
	}

	vs := version.FilterAndSort(tags, base)

	a.opts.logger.Debug("Listed tags",
		slog.Int("total", len(tags)),
		slog.Int("matching", len(vs)))

	return vs, nil
}

// NextVersion returns the next development release of the declared base version. If
// promoteToBeta is set, the release is placed on the beta channel.
func (a *App) NextVersion(promoteToBeta bool) (string, error) {
	base, err := a.base()
	if err != nil {
		return "", err
	}

	vs, err := a.existing(base)
	if err != nil {
		return "", err
	}

	next := version.Next(base, vs, promoteToBeta)

	a.opts.logger.Info("Computed next version",
		slog.String("version", next),
		slog.Bool("beta", promoteToBeta))

	return next, nil
}

// Next writes the next development release of the declared base version to the output.
func (a *App) Next(promoteToBeta bool) error {
	next, err := a.NextVersion(promoteToBeta)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.opts.out, next)
	return err
}

// Tags writes the existing release tags of the declared base version to the output, in
// ascending order.
func (a *App) Tags() error {
	base, err := a.base()
	if err != nil {
		return err
	}

	vs, err := a.existing(base)
	if err != nil {
		return err
	}

	for _, v := range vs {
		if _, err := fmt.Fprintln(a.opts.out, v); err != nil {
			return err
		}
	}
	return nil
}
