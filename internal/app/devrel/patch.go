// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package devrel

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cdce8p/devrel/internal/pkg/pkgfile"
	"github.com/cdce8p/devrel/pkg/version"
	"github.com/fatih/color"
)

// ErrPatchIncomplete is returned by a strict patch when one or more rules could not be applied.
var ErrPatchIncomplete = errors.New("setup script only partially patched")

// Patcher rewrites a setup script.
type Patcher interface {
	PatchFile(path, ver string) (string, pkgfile.Results, error)
}

// checkVersion returns an error if ver is neither a development release nor a base version.
func checkVersion(ver string) error {
	_, err := version.Parse(ver)
	if err == nil {
		return nil
	}

	if _, berr := version.ParseBase(ver); berr == nil {
		return nil
	}

	return err
}

// Patch rewrites the configured setup script to describe a development distribution of version
// ver. Each rule that could not be applied is reported. If strict is set and any rule could not
// be applied, the script is left untouched and ErrPatchIncomplete is returned.
func (a *App) Patch(ver string, strict bool) error {
	po := a.opts.patcher
	if po == nil {
		return errNoPatcher
	}

	if err := checkVersion(ver); err != nil {
		return err
	}

	a.opts.logger.Info("Patching setup script",
		slog.String("path", po.path),
		slog.String("version", ver))

	data, rs, err := po.patcher.PatchFile(po.path, ver)
	if err != nil {
		return fmt.Errorf("while patching setup script: %w", err)
	}

	failed := rs.Failed()

	label := color.New(color.FgRed, color.Bold).Sprint("ERROR:")
	for _, r := range failed {
		fmt.Fprintln(a.opts.err, label, r)
	}

	if strict && len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d rules failed", ErrPatchIncomplete, len(failed), len(rs))
	}

	a.opts.logger.Info("Writing setup script", slog.String("path", po.path))

	if err := pkgfile.WriteFile(po.path, data); err != nil {
		return fmt.Errorf("while writing setup script: %w", err)
	}

	if po.index == nil {
		return nil
	}

	a.opts.logger.Info("Marking setup script assume-unchanged", slog.String("path", po.path))

	if err := po.index.AssumeUnchanged(filepath.Base(po.path)); err != nil {
		return fmt.Errorf("while updating index: %w", err)
	}
	return nil
}
