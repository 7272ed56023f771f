// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func Test_writeVersion(t *testing.T) {
	defer func(v, c, s string) { version, commit, state = v, c, s }(version, commit, state)

	version, commit, state = "0.1.0", "3f2a9c1", "dirty"

	var b bytes.Buffer
	if err := writeVersion(&b); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Version:  0.1.0\n",
		"Commit:   3f2a9c1 (dirty)\n",
		"Runtime:  " + runtime.Version(),
		"Scheme:   MAJOR.MINOR.PATCH{a|b}N\n",
	} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("output %q does not contain %q", b.String(), want)
		}
	}
}
