// Copyright (c) 2026, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		s    string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got, want := Level(tt.s), tt.want; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var b bytes.Buffer

	l := New("debug", "json", &b)
	l.Debug("Listing tags", slog.String("source", "go-git"))

	var rec map[string]any
	if err := json.Unmarshal(b.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}

	if got, want := rec["msg"], "Listing tags"; got != want {
		t.Errorf("got msg %v, want %v", got, want)
	}

	if got, want := rec["source"], "go-git"; got != want {
		t.Errorf("got source %v, want %v", got, want)
	}

	run, _ := rec["run"].(string)
	if _, err := uuid.Parse(run); err != nil {
		t.Errorf("run %q is not a UUID: %v", run, err)
	}
}

func TestNew_Level(t *testing.T) {
	var b bytes.Buffer

	l := New("warn", "text", &b)
	l.Info("dropped")
	l.Warn("kept")

	if got := b.String(); strings.Contains(got, "dropped") || !strings.Contains(got, "msg=kept") {
		t.Errorf("unexpected output %q", got)
	}
}
