package chartrender

import (
	"image"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/heatcurve"
	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/viewstate"
)

// Dark palette lifted from the original calorMATIC chart styling.
var (
	colorBGTop  = drawing.ColorFromHex("0f172a") // slate-900
	colorBGBot  = drawing.ColorFromHex("0b1224") // plot background
	colorGrid   = drawing.ColorFromHex("94a3b8") // slate-400
	colorMuted  = drawing.ColorFromHex("94a3b8")
	colorText   = drawing.ColorFromHex("e5e7eb") // gray-200
	colorFamily = drawing.ColorFromHex("60a5fa") // blue-400
	colorAccent = drawing.ColorFromHex("22c55e") // green-500
)

const (
	// curveSegments is the sampling density of the family and the selected
	// curve; guideSegments matches the original's lighter guide sampling.
	curveSegments = 400
	guideSegments = 200

	familyStep   = 0.2
	stepEpsilon  = 1e-9
	labelOutdoor = -18.0

	gridStepX = 5.0
	gridStepY = 10.0
)

// guideRooms are the room setpoints of the faint reference curves (the
// 18/20/22 °C lines of the manual's chart), always evaluated at slope 1.0.
var guideRooms = [...]float64{18, 20, 22}

// labeledSlopes is the fixed subset of family curves that get a text label
// near their right-edge sample.
var labeledSlopes = map[float64]bool{
	0.2: true, 0.6: true, 1.0: true, 1.5: true,
	2.0: true, 2.5: true, 3.0: true, 4.0: true,
}

// curveSpec parametrizes one polyline: which room/slope/bounds to evaluate
// and how densely to sample. Guides, the faint family and the selected curve
// all share the same generator and differ only in parameters and style.
type curveSpec struct {
	room     float64
	slope    float64
	flowMin  float64
	flowMax  float64
	segments int
}

// Frame draws one complete chart for the given parameters onto dst, back to
// front. Invoking it twice with unchanged inputs produces an identical draw
// sequence.
func Frame(dst Surface, p viewstate.Params) {
	w, h := dst.Size()
	m := Mapper{W: w, H: h}

	dst.Clear(colorBGBot)
	dst.FillGradient(colorBGTop, colorBGBot)

	if p.ShowGrid {
		drawGrid(dst, m)
	}

	if p.ShowGuides {
		for _, rt := range guideRooms {
			// Guides clamp to the Y axis range, not to the configured flow
			// bounds, so they stay put while flowMin/flowMax move.
			drawCurve(dst, m, curveSpec{
				room: rt, slope: 1.0,
				flowMin: heatcurve.FlowAxisMin, flowMax: heatcurve.FlowAxisMax,
				segments: guideSegments,
			}, LineStyle{Color: colorMuted, Width: 0.8, Opacity: 0.35}, "")
		}
	}

	if p.ShowAll {
		for s := heatcurve.SlopeMin; s <= heatcurve.SlopeMax+stepEpsilon; s += familyStep {
			sl := math.Min(s, heatcurve.SlopeMax)
			label := ""
			if rounded := math.Round(sl*10) / 10; labeledSlopes[rounded] {
				label = strconv.FormatFloat(rounded, 'f', 1, 64)
			}
			drawCurve(dst, m, curveSpec{
				room: p.Room, slope: sl,
				flowMin: p.FlowMin, flowMax: p.FlowMax,
				segments: curveSegments,
			}, LineStyle{Color: colorFamily, Width: 1.0, Opacity: 0.35}, label)
		}
	}

	// Selected curve on top of the family, heavier and nearly opaque.
	drawCurve(dst, m, curveSpec{
		room: p.Room, slope: p.Slope,
		flowMin: p.FlowMin, flowMax: p.FlowMax,
		segments: curveSegments,
	}, LineStyle{Color: colorAccent, Width: 2.6, Opacity: 0.95}, "")

	// Operating point with a translucent halo ring.
	tf := heatcurve.FlowTemperature(p.Room, p.Outdoor, p.Slope, p.FlowMin, p.FlowMax)
	px, py := m.X(p.Outdoor), m.Y(tf)
	dst.StrokeCircle(px, py, 9, LineStyle{Color: colorAccent, Width: 2, Opacity: 0.35})
	dst.FillCircle(px, py, 4.5, colorAccent)
}

// drawGrid strokes vertical lines every 5 outdoor degrees with labels along
// the bottom and horizontal lines every 10 flow degrees with labels on the
// left.
func drawGrid(dst Surface, m Mapper) {
	st := LineStyle{Color: colorGrid, Width: 1, Opacity: 0.25}
	labelStyle := TextStyle{Color: colorMuted, Size: 10, Align: AlignCenter}

	for x := heatcurve.OutdoorMin; x <= heatcurve.OutdoorMax+stepEpsilon; x += gridStepX {
		px := m.X(x)
		dst.Polyline([]Point{{px, 0}, {px, m.H}}, st)
		dst.Text(strconv.FormatFloat(x, 'f', 0, 64), px, m.H-6, labelStyle)
	}
	leftStyle := TextStyle{Color: colorMuted, Size: 10, Align: AlignLeft}
	for y := heatcurve.FlowAxisMin; y <= heatcurve.FlowAxisMax+stepEpsilon; y += gridStepY {
		py := m.Y(y)
		dst.Polyline([]Point{{0, py}, {m.W, py}}, st)
		dst.Text(strconv.FormatFloat(y, 'f', 0, 64), 4, py-3, leftStyle)
	}
}

// drawCurve samples the flow-temperature function at segments+1 evenly
// spaced outdoor temperatures across the X domain, maps each sample to pixel
// space and strokes them as one polyline. An optional label is placed near
// the curve's sample at labelOutdoor.
func drawCurve(dst Surface, m Mapper, cs curveSpec, st LineStyle, label string) {
	span := heatcurve.OutdoorMin - heatcurve.OutdoorMax
	pts := make([]Point, 0, cs.segments+1)
	for i := 0; i <= cs.segments; i++ {
		out := heatcurve.OutdoorMax + span*float64(i)/float64(cs.segments)
		tf := heatcurve.FlowTemperature(cs.room, out, cs.slope, cs.flowMin, cs.flowMax)
		pts = append(pts, Point{X: m.X(out), Y: m.Y(tf)})
	}
	dst.Polyline(pts, st)

	if label != "" {
		tf := heatcurve.FlowTemperature(cs.room, labelOutdoor, cs.slope, cs.flowMin, cs.flowMax)
		dst.Text(label, m.X(labelOutdoor), m.Y(tf)-3, TextStyle{Color: colorText.WithAlpha(178), Size: 10, Align: AlignLeft})
	}
}

// RenderImage renders one frame at the given pixel size and returns it.
func RenderImage(p viewstate.Params, w, h int) image.Image {
	s := NewImageSurface(w, h)
	Frame(s, p)
	return s.Image()
}
