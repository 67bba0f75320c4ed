package chartrender

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/heatcurve"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/viewstate"
)

// Summary returns the headline flow-temperature line and the parameter meta
// line shown under the chart.
func Summary(p viewstate.Params) (result, meta string) {
	tf := heatcurve.FlowTemperature(p.Room, p.Outdoor, p.Slope, p.FlowMin, p.FlowMax)
	result = "Flow: " + formatTemp(tf) + " °C"
	meta = fmt.Sprintf("s=%.2f, room=%.1f °C, outdoor=%.0f °C, min=%.0f °C, max=%.0f °C",
		p.Slope, p.Room, p.Outdoor, p.FlowMin, p.FlowMax)
	return result, meta
}

// formatTemp renders a temperature with at most one decimal, dropping a
// trailing ".0".
func formatTemp(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
