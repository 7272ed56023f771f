// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package pkgfile

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Action describes how a rule modifies a setup script.
type Action int

const (
	Replace Action = iota
	Remove
)

func (a Action) String() string {
	if a == Remove {
		return "remove"
	}
	return "replace"
}

// Metadata describes the distribution written into a setup script.
type Metadata struct {
	Name        string // distribution name
	Repository  string // source repository URL
	Description string // long description
}

// rule rewrites the first match of a pattern in a setup script.
type rule struct {
	field  string
	key    string
	action Action
	re     *regexp.Regexp
	tmpl   func(version string) string
}

// Result is the outcome of applying a single rule.
type Result struct {
	Field   string // setup() keyword
	Key     string // key within Field, if any
	Action  Action
	Applied bool
}

// String returns a description of a rule that could not be applied, such as
// "Could not replace 'name'".
func (r Result) String() string {
	target := "'" + r.Field + "'"
	if r.Key != "" {
		target += " - '" + r.Key + "'"
	}

	if r.Applied {
		return fmt.Sprintf("Applied %v %v", r.Action, target)
	}
	return fmt.Sprintf("Could not %v %v", r.Action, target)
}

// Results is the outcome of patching a setup script.
type Results []Result

// Failed returns the results of rules that could not be applied.
func (rs Results) Failed() Results {
	var failed Results
	for _, r := range rs {
		if !r.Applied {
			failed = append(failed, r)
		}
	}
	return failed
}

// Patcher rewrites a setup script so that it describes a development distribution.
type Patcher struct {
	rules []rule
}

// escape returns s with "$" escaped for use in a regexp replacement template.
func escape(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// NewPatcher returns a Patcher that writes m into setup scripts.
func NewPatcher(m Metadata) (*Patcher, error) {
	specs := []struct {
		field  string
		key    string
		action Action
		expr   string
		tmpl   func(string) string
	}{
		{
			field: "long_description",
			expr:  `(?s)(long_description = """).*("""\.lstrip\(\))`,
			tmpl:  func(string) string { return "${1}\n" + escape(m.Description) + "\n${2}" },
		},
		{
			field: "name",
			expr:  `(    name=")[\w-]+(",)`,
			tmpl:  func(string) string { return "${1}" + escape(m.Name) + "${2}" },
		},
		{
			field: "version",
			expr:  `(    version=).+(,)`,
			tmpl:  func(v string) string { return `${1}"` + escape(v) + `"${2}` },
		},
		{
			field:  "url",
			action: Remove,
			expr:   `    url=".+",\n`,
		},
		{
			field: "project_urls",
			key:   "Repository",
			expr:  `(        "Repository": ")[\w:/.-]+(",)`,
			tmpl:  func(string) string { return "${1}" + escape(m.Repository) + "${2}" },
		},
		{
			field:  "project_urls",
			key:    "Changelog",
			action: Remove,
			expr:   `        "Changelog": "[\w:/.#-]+",\n`,
		},
	}

	p := Patcher{rules: make([]rule, 0, len(specs))}

	for _, s := range specs {
		re, err := regexp.Compile(s.expr)
		if err != nil {
			return nil, fmt.Errorf("while compiling %v rule: %w", s.field, err)
		}

		tmpl := s.tmpl
		if tmpl == nil {
			tmpl = func(string) string { return "" }
		}

		p.rules = append(p.rules, rule{
			field:  s.field,
			key:    s.key,
			action: s.action,
			re:     re,
			tmpl:   tmpl,
		})
	}

	return &p, nil
}

// replaceFirst replaces the first match of re in src with the expansion of tmpl. The boolean
// result reports whether a match was found.
func replaceFirst(re *regexp.Regexp, src, tmpl string) (string, bool) {
	loc := re.FindStringSubmatchIndex(src)
	if loc == nil {
		return src, false
	}

	dst := re.ExpandString(nil, tmpl, src, loc)

	return src[:loc[0]] + string(dst) + src[loc[1]:], true
}

// Patch applies each rule to data in turn, setting the version to ver. The rewritten script is
// returned along with the outcome of each rule. Rules that do not match leave data unchanged.
func (p *Patcher) Patch(data, ver string) (string, Results) {
	rs := make(Results, 0, len(p.rules))

	for _, r := range p.rules {
		var ok bool
		data, ok = replaceFirst(r.re, data, r.tmpl(ver))

		rs = append(rs, Result{
			Field:   r.field,
			Key:     r.key,
			Action:  r.action,
			Applied: ok,
		})
	}

	return data, rs
}

// PatchFile reads the setup script at path and patches it as described by Patch. The file itself
// is not modified.
func (p *Patcher) PatchFile(path, ver string) (string, Results, error) {
	data, err := readFile(path)
	if err != nil {
		return "", nil, err
	}

	data, rs := p.Patch(data, ver)
	return data, rs, nil
}

// WriteFile writes data to the existing file at path, preserving its permissions.
func WriteFile(path, data string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(data), fi.Mode().Perm())
}
