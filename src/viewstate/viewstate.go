// Package viewstate holds the mutable parameter set the chart renderer reads
// on every redraw, plus its flat key/value encoding used by the HTTP server
// and the viewer's copy-link share.
package viewstate

import (
	"math"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/heatcurve"
)

// Input ranges and steps of the parameter sliders. Setters clamp to the range
// and snap to the step before writing, so the rendering path always observes
// values a slider could produce.
const (
	RoomMin, RoomMax, RoomStep          = 15.0, 24.0, 0.1
	OutdoorMin, OutdoorMax, OutdoorStep = -20.0, 20.0, 1.0
	SlopeStep                           = 0.01
	FlowMinMin, FlowMinMax, FlowMinStep = 15.0, 40.0, 1.0
	FlowMaxMin, FlowMaxMax, FlowMaxStep = 40.0, 90.0, 1.0
)

// Params is the single-owner view state: room setpoint, outdoor temperature,
// heating-curve slope, flow bounds and the display toggles. The renderer only
// reads it; all writes go through the setters.
type Params struct {
	Room    float64
	Outdoor float64
	Slope   float64
	FlowMin float64
	FlowMax float64

	ShowAll    bool
	ShowGrid   bool
	ShowGuides bool
}

// Defaults returns the startup parameter set.
func Defaults() Params {
	return Params{
		Room:       20.0,
		Outdoor:    0.0,
		Slope:      1.0,
		FlowMin:    25.0,
		FlowMax:    90.0,
		ShowAll:    true,
		ShowGrid:   true,
		ShowGuides: true,
	}
}

// SetRoom clamps to [15,24] °C and snaps to 0.1 °C.
func (p *Params) SetRoom(v float64) { p.Room = snap(clampRange(v, RoomMin, RoomMax), RoomStep) }

// SetOutdoor clamps to [-20,20] °C and snaps to 1 °C.
func (p *Params) SetOutdoor(v float64) {
	p.Outdoor = snap(clampRange(v, OutdoorMin, OutdoorMax), OutdoorStep)
}

// SetSlope clamps to the calibration table's slope domain and snaps to 0.01.
func (p *Params) SetSlope(v float64) {
	p.Slope = snap(clampRange(v, heatcurve.SlopeMin, heatcurve.SlopeMax), SlopeStep)
}

// SetFlowMin clamps to [15,40] °C and snaps to 1 °C. Keeping FlowMin ≤
// FlowMax is the caller's responsibility; see heatcurve.FlowTemperature.
func (p *Params) SetFlowMin(v float64) {
	p.FlowMin = snap(clampRange(v, FlowMinMin, FlowMinMax), FlowMinStep)
}

// SetFlowMax clamps to [40,90] °C and snaps to 1 °C.
func (p *Params) SetFlowMax(v float64) {
	p.FlowMax = snap(clampRange(v, FlowMaxMin, FlowMaxMax), FlowMaxStep)
}

func clampRange(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// snap rounds v to the nearest multiple of step, then to six decimals to keep
// slider/entry round-trips free of float dust.
func snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	v = math.Round(v/step) * step
	return math.Round(v*1e6) / 1e6
}
