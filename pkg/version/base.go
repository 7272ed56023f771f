// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package version

import (
	"strings"

	"github.com/blang/semver/v4"
)

// StripLocal returns s without a local version label, such as the "+dev" in "1.18.0+dev".
func StripLocal(s string) string {
	base, _, _ := strings.Cut(strings.TrimSpace(s), "+")
	return base
}

// ParseBase parses s as a base version of the form MAJOR.MINOR.PATCH. A local version label is
// ignored. If s has fewer than three components or carries a pre-release part, an error wrapping
// ErrMalformedVersion is returned.
func ParseBase(s string) (semver.Version, error) {
	v, err := semver.Parse(StripLocal(s))
	if err != nil {
		return semver.Version{}, &MalformedVersionError{Text: s, Reason: err.Error()}
	}

	if len(v.Pre) > 0 {
		return semver.Version{}, &MalformedVersionError{Text: s, Reason: "pre-release part not allowed in base version"}
	}

	return v, nil
}
