// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package version

import (
	"errors"
	"fmt"
)

// ErrMalformedVersion is matched by every error returned when a string is not a valid version.
var ErrMalformedVersion = errors.New("malformed version")

// MalformedVersionError records a string that could not be parsed as a version.
type MalformedVersionError struct {
	Text   string // offending string
	Reason string // optional detail
}

func (e *MalformedVersionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("malformed version %q: %s", e.Text, e.Reason)
	}
	return fmt.Sprintf("malformed version %q", e.Text)
}

// Is reports whether target is ErrMalformedVersion, or a *MalformedVersionError with a matching
// (or empty) Text.
func (e *MalformedVersionError) Is(target error) bool {
	if target == ErrMalformedVersion {
		return true
	}

	t, ok := target.(*MalformedVersionError)
	if !ok {
		return false
	}
	return e.Text == t.Text || t.Text == ""
}
