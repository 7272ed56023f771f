// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package version

import (
	"slices"
	"strconv"
	"strings"
)

// FilterAndSort returns the tags that begin with prefix and parse as versions, sorted in
// ascending order. Tags that do not parse are assumed to be unrelated to the release scheme and
// are skipped.
func FilterAndSort(tags []string, prefix string) []Version {
	vs := make([]Version, 0, len(tags))

	for _, tag := range tags {
		if !strings.HasPrefix(tag, prefix) {
			continue
		}

		v, err := Parse(tag)
		if err != nil {
			continue
		}

		vs = append(vs, v)
	}

	slices.SortStableFunc(vs, Version.Compare)

	return vs
}

// Next returns the version that follows existing, which must be sorted in ascending order.
//
// With no existing versions, the first alpha of base is returned. Otherwise the sequence number of
// the last version is incremented within its channel. If promoteToBeta is set and the channel is
// still alpha, the first beta is returned instead. Promoting when the last version is already a
// beta continues the beta sequence.
func Next(base string, existing []Version, promoteToBeta bool) string {
	c, n := Alpha, uint64(1)

	if len(existing) > 0 {
		last := existing[len(existing)-1]
		c, n = last.Channel, last.Seq+1
	}

	if promoteToBeta && c == Alpha {
		c, n = Beta, 1
	}

	return base + c.Letter() + strconv.FormatUint(n, 10)
}
