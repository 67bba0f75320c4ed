package chartrender

import "github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/heatcurve"

// Mapper converts between the chart's fixed temperature domain and a pixel
// viewport. Both maps are affine, stateless, and recomputed per frame from
// the current surface size.
type Mapper struct {
	W, H float64
}

// X maps an outdoor temperature onto [0..W]. The axis is reversed like the
// calorMATIC chart: OutdoorMax (warm) sits at the left edge, OutdoorMin
// (cold) at the right. A zero-width viewport degrades to a constant 0.
func (m Mapper) X(outdoor float64) float64 {
	if m.W <= 0 {
		return 0
	}
	return (heatcurve.OutdoorMax - outdoor) / (heatcurve.OutdoorMax - heatcurve.OutdoorMin) * m.W
}

// Y maps a flow temperature onto [H..0]: larger temperatures draw higher.
// A zero-height viewport degrades to a constant 0.
func (m Mapper) Y(flow float64) float64 {
	if m.H <= 0 {
		return 0
	}
	return m.H - (flow-heatcurve.FlowAxisMin)/(heatcurve.FlowAxisMax-heatcurve.FlowAxisMin)*m.H
}
