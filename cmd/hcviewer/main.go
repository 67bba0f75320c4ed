package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	png "image/png"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/cmd/hcviewer/uihelpers"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/chartrender"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/heatcurve"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/viewstate"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	params viewstate.Params

	// widgets
	chartCanvas *canvas.Image
	resultLabel *widget.Label
	metaLabel   *widget.Label

	roomSlider    *widget.Slider
	outdoorSlider *widget.Slider
	slopeSlider   *widget.Slider
	flowMinSlider *widget.Slider
	flowMaxSlider *widget.Slider

	roomValue    *widget.Label
	outdoorValue *widget.Label
	slopeValue   *widget.Label
	flowMinValue *widget.Label
	flowMaxValue *widget.Label

	allChk    *widget.Check
	gridChk   *widget.Check
	guidesChk *widget.Check
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var screenshotsDir string
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render a curated set of charts into this directory and exit")
	flag.Parse()

	if screenshotsDir != "" {
		if err := RunScreenshotsMode(screenshotsDir); err != nil {
			fmt.Fprintf(os.Stderr, "screenshots: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.vaillant.hcviewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("calorMATIC 630 Heating Curves")
	w.Resize(fyne.NewSize(1280, 860))

	state := &uiState{
		app:    a,
		window: w,
		params: viewstate.Defaults(),
	}
	loadPrefs(state)

	// Sliders without callbacks first; we'll wire them after the canvas exists
	state.roomSlider = widget.NewSlider(viewstate.RoomMin, viewstate.RoomMax)
	state.roomSlider.Step = viewstate.RoomStep
	state.outdoorSlider = widget.NewSlider(viewstate.OutdoorMin, viewstate.OutdoorMax)
	state.outdoorSlider.Step = viewstate.OutdoorStep
	state.slopeSlider = widget.NewSlider(heatcurve.SlopeMin, heatcurve.SlopeMax)
	state.slopeSlider.Step = viewstate.SlopeStep
	state.flowMinSlider = widget.NewSlider(viewstate.FlowMinMin, viewstate.FlowMinMax)
	state.flowMinSlider.Step = viewstate.FlowMinStep
	state.flowMaxSlider = widget.NewSlider(viewstate.FlowMaxMin, viewstate.FlowMaxMax)
	state.flowMaxSlider.Step = viewstate.FlowMaxStep

	state.roomValue = widget.NewLabel("")
	state.outdoorValue = widget.NewLabel("")
	state.slopeValue = widget.NewLabel("")
	state.flowMinValue = widget.NewLabel("")
	state.flowMaxValue = widget.NewLabel("")

	// layer toggles (callbacks assigned later, after the canvas exists)
	state.allChk = widget.NewCheck("All curves", nil)
	state.gridChk = widget.NewCheck("Grid", nil)
	state.guidesChk = widget.NewCheck("Guides", nil)

	state.resultLabel = widget.NewLabel("")
	state.resultLabel.TextStyle = fyne.TextStyle{Bold: true}
	state.metaLabel = widget.NewLabel("")

	// chart placeholder
	state.chartCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(700, 437))

	// slope can also be typed exactly
	slopeEntry := widget.NewEntry()
	slopeEntry.SetPlaceHolder("1.00")
	slopeEntry.OnSubmitted = func(s string) {
		v, err := uihelpers.ParseValue(s)
		if err != nil {
			fmt.Printf("[viewer] ignoring slope input %q: %v\n", s, err)
			return
		}
		state.params.SetSlope(v)
		applyParamsToControls(state)
		savePrefs(state)
		redraw(state)
	}

	paramRow := func(name string, slider *widget.Slider, value *widget.Label) fyne.CanvasObject {
		return container.NewBorder(nil, nil, widget.NewLabel(name), value, slider)
	}
	paramGrid := container.NewVBox(
		paramRow("Room target °C", state.roomSlider, state.roomValue),
		paramRow("Outdoor °C", state.outdoorSlider, state.outdoorValue),
		paramRow("Heating curve", state.slopeSlider, state.slopeValue),
		paramRow("Min flow °C", state.flowMinSlider, state.flowMinValue),
		paramRow("Max flow °C", state.flowMaxSlider, state.flowMaxValue),
	)

	top := container.NewVBox(
		paramGrid,
		container.NewHBox(
			state.allChk, state.gridChk, state.guidesChk,
			widget.NewLabel("Slope:"), slopeEntry,
			widget.NewButton("Reset", func() { resetParams(state) }),
		),
	)
	bottom := container.NewVBox(state.resultLabel, state.metaLabel)
	content := container.NewBorder(top, bottom, nil, nil, state.chartCanvas)
	w.SetContent(content)

	// Redraw the chart on window resize so it scales with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { redraw(state) })
					}
				}
			}
		}()
	}

	// Now that the canvas is ready, assign slider and checkbox callbacks
	state.roomSlider.OnChanged = func(v float64) {
		state.params.SetRoom(v)
		state.roomValue.SetText(uihelpers.FormatValue(state.params.Room, 1))
		savePrefs(state)
		redraw(state)
	}
	state.outdoorSlider.OnChanged = func(v float64) {
		state.params.SetOutdoor(v)
		state.outdoorValue.SetText(uihelpers.FormatValue(state.params.Outdoor, 0))
		savePrefs(state)
		redraw(state)
	}
	state.slopeSlider.OnChanged = func(v float64) {
		state.params.SetSlope(v)
		state.slopeValue.SetText(uihelpers.FormatValue(state.params.Slope, 2))
		savePrefs(state)
		redraw(state)
	}
	state.flowMinSlider.OnChanged = func(v float64) {
		state.params.SetFlowMin(v)
		state.flowMinValue.SetText(uihelpers.FormatValue(state.params.FlowMin, 0))
		savePrefs(state)
		redraw(state)
	}
	state.flowMaxSlider.OnChanged = func(v float64) {
		state.params.SetFlowMax(v)
		state.flowMaxValue.SetText(uihelpers.FormatValue(state.params.FlowMax, 0))
		savePrefs(state)
		redraw(state)
	}
	state.allChk.OnChanged = func(b bool) { state.params.ShowAll = b; savePrefs(state); redraw(state) }
	state.gridChk.OnChanged = func(b bool) { state.params.ShowGrid = b; savePrefs(state); redraw(state) }
	state.guidesChk.OnChanged = func(b bool) { state.params.ShowGuides = b; savePrefs(state); redraw(state) }

	buildMenus(state)
	applyParamsToControls(state)
	redraw(state)

	w.ShowAndRun()
}

// menus and dialogs
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Chart…", func() { exportChartPNG(state, "heating_curves.png") }),
		fyne.NewMenuItem("Copy Link", func() { copyChartLink(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset", func() { resetParams(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { exportChartPNG(state, "heating_curves.png") })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { exportChartPNG(state, "heating_curves.png") })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// chartSize computes a chart size based on the current window width so the
// curve family uses the available X-axis space.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 1100, 687
	}
	sz := state.window.Canvas().Size()
	// Use ~95% of the available width, minus a small margin for padding
	return uihelpers.ComputeChartDimensions(int(sz.Width*0.95) - 12)
}

func redraw(state *uiState) {
	if state == nil || state.chartCanvas == nil {
		return
	}
	cw, chh := chartSize(state)
	state.chartCanvas.Image = chartrender.RenderImage(state.params, cw, chh)
	state.chartCanvas.Refresh()

	result, meta := chartrender.Summary(state.params)
	state.resultLabel.SetText(result)
	state.metaLabel.SetText(meta)
}

// applyParamsToControls pushes state.params into the widgets without firing
// their callbacks twice; Fyne suppresses OnChanged when the value is equal.
func applyParamsToControls(state *uiState) {
	state.roomSlider.SetValue(state.params.Room)
	state.outdoorSlider.SetValue(state.params.Outdoor)
	state.slopeSlider.SetValue(state.params.Slope)
	state.flowMinSlider.SetValue(state.params.FlowMin)
	state.flowMaxSlider.SetValue(state.params.FlowMax)

	state.roomValue.SetText(uihelpers.FormatValue(state.params.Room, 1))
	state.outdoorValue.SetText(uihelpers.FormatValue(state.params.Outdoor, 0))
	state.slopeValue.SetText(uihelpers.FormatValue(state.params.Slope, 2))
	state.flowMinValue.SetText(uihelpers.FormatValue(state.params.FlowMin, 0))
	state.flowMaxValue.SetText(uihelpers.FormatValue(state.params.FlowMax, 0))

	state.allChk.SetChecked(state.params.ShowAll)
	state.gridChk.SetChecked(state.params.ShowGrid)
	state.guidesChk.SetChecked(state.params.ShowGuides)
}

func resetParams(state *uiState) {
	state.params = viewstate.Defaults()
	fmt.Printf("[viewer] parameters reset to defaults\n")
	applyParamsToControls(state)
	savePrefs(state)
	redraw(state)
}

func exportChartPNG(state *uiState, defaultName string) {
	if state == nil || state.window == nil || state.chartCanvas == nil || state.chartCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, state.chartCanvas.Image)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// copyChartLink puts a shareable chart URL query on the clipboard; pasting
// it against a running heatcurvectl serve instance reproduces the current view.
func copyChartLink(state *uiState) {
	if state == nil || state.window == nil {
		return
	}
	link := "/chart.png?" + state.params.Encode().Encode()
	state.window.Clipboard().SetContent(link)
	fmt.Printf("[viewer] copied link: %s\n", link)
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetFloat("room", state.params.Room)
	prefs.SetFloat("outdoor", state.params.Outdoor)
	prefs.SetFloat("slope", state.params.Slope)
	prefs.SetFloat("flowMin", state.params.FlowMin)
	prefs.SetFloat("flowMax", state.params.FlowMax)
	prefs.SetBool("showAll", state.params.ShowAll)
	prefs.SetBool("showGrid", state.params.ShowGrid)
	prefs.SetBool("showGuides", state.params.ShowGuides)
}

func loadPrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	// Setters re-clamp, so a hand-edited prefs file cannot push the view
	// outside its domain.
	state.params.SetRoom(prefs.FloatWithFallback("room", state.params.Room))
	state.params.SetOutdoor(prefs.FloatWithFallback("outdoor", state.params.Outdoor))
	state.params.SetSlope(prefs.FloatWithFallback("slope", state.params.Slope))
	state.params.SetFlowMin(prefs.FloatWithFallback("flowMin", state.params.FlowMin))
	state.params.SetFlowMax(prefs.FloatWithFallback("flowMax", state.params.FlowMax))
	state.params.ShowAll = prefs.BoolWithFallback("showAll", state.params.ShowAll)
	state.params.ShowGrid = prefs.BoolWithFallback("showGrid", state.params.ShowGrid)
	state.params.ShowGuides = prefs.BoolWithFallback("showGuides", state.params.ShowGuides)
}
