// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package git

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/cli/safeexec"
)

// ErrExecutableNotFound is returned when the git executable cannot be found in PATH.
var ErrExecutableNotFound = errors.New("git executable not found")

// Executable runs the git executable.
type Executable struct {
	path   string
	dir    string
	logger *slog.Logger
}

// ExecutableOpt are used to configure optional Executable behavior.
type ExecutableOpt func(*Executable) error

// OptExecutablePath specifies the path of the git executable, rather than searching PATH.
func OptExecutablePath(path string) ExecutableOpt {
	return func(e *Executable) error {
		e.path = path
		return nil
	}
}

// OptExecutableLogger specifies the logger that commands are logged to.
func OptExecutableLogger(l *slog.Logger) ExecutableOpt {
	return func(e *Executable) error {
		e.logger = l
		return nil
	}
}

// NewExecutable returns an Executable that runs git within dir, configured with opts.
func NewExecutable(dir string, opts ...ExecutableOpt) (*Executable, error) {
	e := Executable{
		dir:    dir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(&e); err != nil {
			return nil, err
		}
	}

	if e.path == "" {
		path, err := safeexec.LookPath("git")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExecutableNotFound, err)
		}
		e.path = path
	}

	return &e, nil
}

// output runs git with args and returns its standard output.
func (e *Executable) output(args ...string) (string, error) {
	args = append([]string{"-C", e.dir}, args...)

	e.logger.Debug("Executing git command",
		slog.String("cmd", e.path),
		slog.Any("args", args))

	var stderr bytes.Buffer
	cmd := exec.Command(e.path, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "not a git repository") {
			return "", fmt.Errorf("%w: %v", ErrRepositoryNotFound, e.dir)
		}
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, msg)
	}

	return string(out), nil
}

// Tags returns the names of all tags in the repository, as listed by "git tag --list".
func (e *Executable) Tags() ([]string, error) {
	out, err := e.output("tag", "--list")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// AssumeUnchanged marks path, relative to the working directory, as assumed unchanged in the
// index so that local modifications are not reported.
func (e *Executable) AssumeUnchanged(path string) error {
	_, err := e.output("update-index", "--assume-unchanged", path)
	return err
}
