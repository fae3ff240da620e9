package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name   string
		frames map[int]core.Direction
	}{
		{"none", map[int]core.Direction{0: core.DirNone, 100: core.DirNone}},
		{"left", map[int]core.Direction{0: core.DirLeft, 100: core.DirLeft}},
		{"right", map[int]core.Direction{0: core.DirRight, 100: core.DirRight}},
		{"sweep", map[int]core.Direction{0: core.DirLeft, 29: core.DirLeft, 30: core.DirNone, 60: core.DirRight, 90: core.DirLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := parseIntent(tt.name)
			if err != nil {
				t.Fatalf("parseIntent(%q) failed: %v", tt.name, err)
			}
			for frame, expected := range tt.frames {
				if got := intent(frame); got != expected {
					t.Errorf("intent(%d) = %v, expected %v", frame, got, expected)
				}
			}
		})
	}

	if _, err := parseIntent("up"); err == nil {
		t.Error("parseIntent(\"up\") should fail")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	intent, _ := parseIntent("sweep")

	run := func() simResult {
		res, err := simulate(arkanoid.New(config.DefaultArkanoidConfig()), 900, intent, nil)
		if err != nil {
			t.Fatalf("simulate() failed: %v", err)
		}
		return res
	}

	a, b := run(), run()
	if a.Hash != b.Hash {
		t.Errorf("hashes differ: %016x vs %016x", a.Hash, b.Hash)
	}
	if a.Frames != 900 {
		t.Errorf("Frames = %d, expected 900", a.Frames)
	}
	if a.Total != 120 {
		t.Errorf("Total = %d, expected 120", a.Total)
	}
	if destroyed := a.Events[core.EventBlockDestroyed]; destroyed != a.Total-a.Blocks {
		t.Errorf("%d destroy events for %d destroyed blocks", destroyed, a.Total-a.Blocks)
	}
}

func TestSimulateReportsEvents(t *testing.T) {
	intent, _ := parseIntent("none")
	var kinds []core.EventKind

	_, err := simulate(arkanoid.New(config.DefaultArkanoidConfig()), 120, intent, func(_ uint64, ev core.Event) {
		kinds = append(kinds, ev.Kind)
	})
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if len(kinds) == 0 {
		t.Error("expected events within 120 frames")
	}
}

func TestSimGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	logPath := filepath.Join(t.TempDir(), "sim.log")
	oldLogFile, oldVerbose := flagLogFile, flagVerbose
	flagLogFile, flagVerbose = logPath, true
	t.Cleanup(func() { flagLogFile, flagVerbose = oldLogFile, oldVerbose })

	intent, _ := parseIntent("none")
	var out bytes.Buffer
	if err := simGame(&out, "arkanoid", 120, intent); err != nil {
		t.Fatalf("simGame() failed: %v", err)
	}
	if !strings.Contains(out.String(), "frames:    120") {
		t.Errorf("output = %q, expected frame count", out.String())
	}

	// Failures come back as errors, so the log file is still closed.
	if err := simGame(&out, "missing", 10, intent); err == nil {
		t.Error("simGame() with unknown game should fail")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "simulating") {
		t.Errorf("log = %q, expected debug output", data)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown", "frame", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "arkanoid") {
		t.Errorf("output = %q, expected message with prefix", out)
	}
}
