// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    Version
		wantErr error
	}{
		{
			name: "Alpha",
			s:    "1.18.0a3",
			want: Version{Major: 1, Minor: 18, Patch: 0, Channel: Alpha, Seq: 3},
		},
		{
			name: "Beta",
			s:    "1.18.0b1",
			want: Version{Major: 1, Minor: 18, Patch: 0, Channel: Beta, Seq: 1},
		},
		{
			name: "MultiDigit",
			s:    "10.200.3000a45",
			want: Version{Major: 10, Minor: 200, Patch: 3000, Channel: Alpha, Seq: 45},
		},
		{
			name: "LeadingZeros",
			s:    "1.018.0a03",
			want: Version{Major: 1, Minor: 18, Patch: 0, Channel: Alpha, Seq: 3},
		},
		{
			name:    "Empty",
			s:       "",
			wantErr: &MalformedVersionError{Text: ""},
		},
		{
			name:    "NoPreRelease",
			s:       "1.18.0",
			wantErr: &MalformedVersionError{Text: "1.18.0"},
		},
		{
			name:    "MissingPatch",
			s:       "1.18",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "ReleaseCandidate",
			s:       "1.18.0rc1",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "NoSequence",
			s:       "1.18.0a",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "ZeroSequence",
			s:       "1.18.0a0",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "PrefixV",
			s:       "v1.18.0a1",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "TrailingText",
			s:       "1.18.0a1-fix",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "SemVerPreRelease",
			s:       "1.18.0-alpha.1",
			wantErr: ErrMalformedVersion,
		},
		{
			name:    "Overflow",
			s:       "1.18.0a99999999999999999999",
			wantErr: ErrMalformedVersion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.s)

			if got, want := err, tt.wantErr; !errors.Is(got, want) {
				t.Fatalf("got error %v, want %v", got, want)
			}

			if got, want := v, tt.want; got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestMalformedVersionError(t *testing.T) {
	_, err := Parse("unrelated-tag")

	var me *MalformedVersionError
	if !errors.As(err, &me) {
		t.Fatalf("got %T, want *MalformedVersionError", err)
	}

	if got, want := me.Text, "unrelated-tag"; got != want {
		t.Errorf("got text %q, want %q", got, want)
	}

	if got, want := err.Error(), `malformed version "unrelated-tag"`; got != want {
		t.Errorf("got message %q, want %q", got, want)
	}

	if errors.Is(err, &MalformedVersionError{Text: "other"}) {
		t.Errorf("error matched a different text")
	}
}

func TestVersion_String(t *testing.T) {
	for _, s := range []string{"1.18.0a1", "1.18.0a10", "1.18.0b2", "0.0.0a1", "2.1.13b999"} {
		t.Run(s, func(t *testing.T) {
			if got, want := MustParse(s).String(), s; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestChannel(t *testing.T) {
	tests := []struct {
		name       string
		c          Channel
		wantLetter string
		wantString string
	}{
		{"Alpha", Alpha, "a", "alpha"},
		{"Beta", Beta, "b", "beta"},
		{"Unknown", Channel(7), "?", "Channel(7)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.c.Letter(), tt.wantLetter; got != want {
				t.Errorf("got letter %v, want %v", got, want)
			}
			if got, want := tt.c.String(), tt.wantString; got != want {
				t.Errorf("got string %v, want %v", got, want)
			}
		})
	}

	if !(Alpha < Beta) {
		t.Errorf("alpha does not order before beta")
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"Equal", "1.18.0a1", "1.18.0a1", 0},
		{"NumericSequence", "1.18.0a10", "1.18.0a2", 1},
		{"NumericSequenceReverse", "1.18.0a2", "1.18.0a10", -1},
		{"ChannelDominatesSequence", "1.18.0b1", "1.18.0a999", 1},
		{"ChannelDominatesSequenceReverse", "1.18.0a999", "1.18.0b1", -1},
		{"PatchDominatesChannel", "1.18.1a1", "1.18.0b5", 1},
		{"MinorNumeric", "1.9.0b9", "1.18.0a1", -1},
		{"MajorDominates", "2.0.0a1", "1.99.99b99", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)

			if got, want := a.Compare(b), tt.want; got != want {
				t.Errorf("got %v, want %v", got, want)
			}

			if got, want := b.Compare(a), -tt.want; got != want {
				t.Errorf("reverse: got %v, want %v", got, want)
			}

			if got, want := a.Less(b), tt.want < 0; got != want {
				t.Errorf("less: got %v, want %v", got, want)
			}
		})
	}
}

func TestVersion_Base(t *testing.T) {
	b := MustParse("1.18.3b2").Base()

	if got, want := b.String(), "1.18.3"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
