// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package version

import (
	"errors"
	"testing"
)

func TestStripLocal(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"Plain", "1.18.0", "1.18.0"},
		{"Dev", "1.18.0+dev", "1.18.0"},
		{"DevHash", "1.18.0+dev.3f2a9c1", "1.18.0"},
		{"Whitespace", " 1.18.0+dev\n", "1.18.0"},
		{"Empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := StripLocal(tt.s), tt.want; got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    string
		wantErr error
	}{
		{
			name: "Plain",
			s:    "1.18.0",
			want: "1.18.0",
		},
		{
			name: "Dev",
			s:    "1.18.0+dev",
			want: "1.18.0",
		},
		{
			name:    "MissingPatch",
			s:       "1.18",
			wantErr: &MalformedVersionError{Text: "1.18"},
		},
		{
			name:    "PreRelease",
			s:       "1.18.0-alpha",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "Garbage",
			s:       "main",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "Empty",
			s:       "",
			wantErr: ErrMalformedVersion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseBase(tt.s)

			if got, want := err, tt.wantErr; !errors.Is(got, want) {
				t.Fatalf("got error %v, want %v", got, want)
			}

			if err == nil {
				if got, want := v.String(), tt.want; got != want {
					t.Errorf("got %v, want %v", got, want)
				}
			}
		})
	}
}
