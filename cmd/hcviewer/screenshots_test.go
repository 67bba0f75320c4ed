package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunScreenshotsModeWritesAllCharts(t *testing.T) {
	dir := t.TempDir()
	if err := RunScreenshotsMode(dir); err != nil {
		t.Fatalf("RunScreenshotsMode: %v", err)
	}
	want := []string{
		"defaults.png",
		"steep_curve.png",
		"shallow_curve.png",
		"clamped_flow.png",
		"selected_only.png",
	}
	for _, name := range want {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("missing screenshot %s: %v", name, err)
		}
		if fi.Size() == 0 {
			t.Fatalf("screenshot %s is empty", name)
		}
	}
}
