// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package pkgfile reads and rewrites the packaging files of a Python project.
package pkgfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
)

var (
	// ErrFileNotFound is returned when a packaging file does not exist.
	ErrFileNotFound = errors.New("packaging file not found")

	// ErrVersionNotFound is returned when a version file does not declare a version.
	ErrVersionNotFound = errors.New("version declaration not found")
)

// readFile returns the contents of the file at path.
func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %v", ErrFileNotFound, path)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VersionReader reads the version declared in a Python module.
type VersionReader struct {
	path string
	re   *regexp.Regexp
}

// NewVersionReader returns a VersionReader for the module at path, which declares its version by
// assigning a string literal to variable, for example `__version__ = "1.18.0+dev"`.
func NewVersionReader(path, variable string) (*VersionReader, error) {
	re, err := regexp.Compile(`(?m)^` + regexp.QuoteMeta(variable) + `\s*(?::[^=\n]*)?=\s*["']([^"'\n]*)["']`)
	if err != nil {
		return nil, err
	}

	return &VersionReader{path: path, re: re}, nil
}

// Path returns the path of the version file.
func (r *VersionReader) Path() string {
	return r.path
}

// Version returns the declared version, as written. Any local version label such as "+dev" is
// included.
func (r *VersionReader) Version() (string, error) {
	data, err := readFile(r.path)
	if err != nil {
		return "", err
	}

	m := r.re.FindStringSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%w: %v", ErrVersionNotFound, r.path)
	}

	return m[1], nil
}
