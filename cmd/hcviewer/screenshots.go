package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/chartrender"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/viewstate"
)

// RunScreenshotsMode renders a curated set of charts and writes them as PNGs
// under outDir. It runs headlessly without creating a UI window.
func RunScreenshotsMode(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	defaults := viewstate.Defaults()

	steep := viewstate.Defaults()
	steep.SetSlope(2.5)
	steep.SetOutdoor(-12)

	shallow := viewstate.Defaults()
	shallow.SetSlope(0.4)
	shallow.SetRoom(21.5)

	clamped := viewstate.Defaults()
	clamped.SetSlope(4.0)
	clamped.SetFlowMax(60)
	clamped.SetOutdoor(-15)

	selectedOnly := viewstate.Defaults()
	selectedOnly.ShowAll = false
	selectedOnly.ShowGuides = false

	toRender := []struct {
		name   string
		params viewstate.Params
	}{
		{"defaults.png", defaults},
		{"steep_curve.png", steep},
		{"shallow_curve.png", shallow},
		{"clamped_flow.png", clamped},
		{"selected_only.png", selectedOnly},
	}

	for _, item := range toRender {
		img := chartrender.RenderImage(item.params, 1100, 687)
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("[viewer] wrote %s\n", outPath)
	}
	return nil
}
