// Package heatcurve models the heating curves of a Vaillant calorMATIC 630
// weather-compensated controller: a calibrated gain table indexed by the
// heating-curve number printed on the official chart, and the flow
// temperature derived from it.
//
// Vaillant does not publish an exact formula; the anchor table below is a
// calibrated approximation of the chart (Fig. 3.4 in the user manual). To use
// a more precise digitization, update the anchors; everything else follows.
package heatcurve

import "math"

// Slope domain covered by the calibration table.
const (
	SlopeMin = 0.2
	SlopeMax = 4.0
)

// Chart axis domain, matching the calorMATIC chart layout: outdoor
// temperature runs warm to cold from left to right, flow temperature bottom
// to top.
const (
	OutdoorMax  = 20.0
	OutdoorMin  = -20.0
	FlowAxisMin = 20.0
	FlowAxisMax = 90.0
)

// Anchor is one calibrated point of the gain curve. Gain is
// (Tflow-Troom)/(Troom-Tout) read off the 20 °C room baseline of the chart.
type Anchor struct {
	Slope float64
	Gain  float64
}

// anchors is the fixed calibration table, strictly increasing in slope.
// The 4.0 entry comes from the reliable chart point Tflow≈82 °C at +5 °C
// outdoor: (82-20)/(20-5) = 4.133.
var anchors = []Anchor{
	{0.2, 0.40},
	{0.4, 0.70},
	{0.6, 1.00},
	{0.8, 1.40},
	{1.0, 1.75},
	{1.2, 1.90},
	{1.5, 2.00},
	{2.0, 2.25},
	{2.5, 2.50},
	{3.0, 2.75},
	{3.5, 3.40},
	{4.0, 4.133},
}

// GainAt returns the heating-curve gain for a slope value, linearly
// interpolated through the anchor table. Slopes outside [SlopeMin, SlopeMax]
// saturate to the table edges; the result is total, monotone non-decreasing
// and continuous at every anchor.
func GainAt(slope float64) float64 {
	if slope <= anchors[0].Slope {
		return anchors[0].Gain
	}
	last := anchors[len(anchors)-1]
	if slope >= last.Slope {
		return last.Gain
	}
	for i := 1; i < len(anchors); i++ {
		if slope <= anchors[i].Slope {
			lo, hi := anchors[i-1], anchors[i]
			return lo.Gain + (slope-lo.Slope)/(hi.Slope-lo.Slope)*(hi.Gain-lo.Gain)
		}
	}
	// Unreachable for a well-formed table; saturate at the upper edge.
	return last.Gain
}

// FlowTemperature computes the supply temperature for the given room
// setpoint, outdoor temperature and heating-curve slope, clamped to
// [flowMin, flowMax]. The clamp keeps the max(min, min(max, v)) ordering:
// when flowMin > flowMax the result is flowMin, which callers are expected
// to prevent by keeping flowMin ≤ flowMax.
func FlowTemperature(room, outdoor, slope, flowMin, flowMax float64) float64 {
	raw := room + GainAt(slope)*(room-outdoor)
	return clamp(raw, flowMin, flowMax)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
