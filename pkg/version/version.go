// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package version parses, orders and sequences development release identifiers of the form
// MAJOR.MINOR.PATCH{a|b}N, such as "1.18.0a3" or "1.18.0b1".
package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/blang/semver/v4"
)

// Channel is a pre-release channel.
type Channel uint8

// Channels, in ascending order of maturity.
const (
	Alpha Channel = 0
	Beta  Channel = 1
)

// Letter returns the single letter code of the channel.
func (c Channel) Letter() string {
	switch c {
	case Alpha:
		return "a"
	case Beta:
		return "b"
	}
	return "?"
}

// String returns a human readable name of the channel.
func (c Channel) String() string {
	switch c {
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	}
	return fmt.Sprintf("Channel(%d)", uint8(c))
}

// channelFromLetter returns the channel identified by letter l.
func channelFromLetter(l string) (Channel, bool) {
	switch l {
	case "a":
		return Alpha, true
	case "b":
		return Beta, true
	}
	return 0, false
}

// Version is a parsed development release identifier.
type Version struct {
	Major   uint64
	Minor   uint64
	Patch   uint64
	Channel Channel
	Seq     uint64
}

var pattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)([ab])(\d+)$`)

// Parse parses s as a development release identifier. If s is not of the form
// MAJOR.MINOR.PATCH{a|b}N, an error wrapping ErrMalformedVersion is returned.
func Parse(s string) (Version, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &MalformedVersionError{Text: s}
	}

	var nums [4]uint64
	for i, g := range []string{m[1], m[2], m[3], m[5]} {
		n, err := strconv.ParseUint(g, 10, 64)
		if err != nil {
			return Version{}, &MalformedVersionError{Text: s, Reason: err.Error()}
		}
		nums[i] = n
	}

	if nums[3] == 0 {
		return Version{}, &MalformedVersionError{Text: s, Reason: "sequence must be positive"}
	}

	c, _ := channelFromLetter(m[4])

	return Version{
		Major:   nums[0],
		Minor:   nums[1],
		Patch:   nums[2],
		Channel: c,
		Seq:     nums[3],
	}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Base returns the MAJOR.MINOR.PATCH triple of v.
func (v Version) Base() semver.Version {
	return semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

// String returns v in the form MAJOR.MINOR.PATCH{a|b}N.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d%s%d", v.Major, v.Minor, v.Patch, v.Channel.Letter(), v.Seq)
}

// Compare returns -1, 0 or 1 depending on whether v is less than, equal to or greater than o.
// The base triple takes precedence over the channel, and the channel over the sequence number.
func (v Version) Compare(o Version) int {
	if c := v.Base().Compare(o.Base()); c != 0 {
		return c
	}

	switch {
	case v.Channel < o.Channel:
		return -1
	case v.Channel > o.Channel:
		return 1
	case v.Seq < o.Seq:
		return -1
	case v.Seq > o.Seq:
		return 1
	}
	return 0
}

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}
