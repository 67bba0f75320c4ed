// Package chartrender draws the heating-curve chart: gradient background,
// gridlines, the 18/20/22 °C guide curves, the faint slope family, the
// selected curve and the operating point. Rendering is a stateless pass over
// (viewstate.Params, surface size): the same inputs produce the same draw
// sequence, so the frame can go to a raster surface for display/export or to
// a recording surface in tests.
package chartrender

import "github.com/wcharczuk/go-chart/v2/drawing"

// Point is a position in surface pixel space.
type Point struct {
	X, Y float64
}

// LineStyle configures a stroked polyline. Opacity multiplies the color's
// alpha so the faint family and guide curves reuse full-strength palette
// colors.
type LineStyle struct {
	Color   drawing.Color
	Width   float64
	Opacity float64
}

// TextAlign positions text horizontally relative to its anchor point.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextStyle configures a text draw. Size is in points; the anchor Y is the
// text baseline.
type TextStyle struct {
	Color drawing.Color
	Size  float64
	Align TextAlign
}

// Surface is the capability set the renderer needs from a drawing backend.
// ImageSurface rasterizes for display and PNG export; tests substitute a
// recording implementation.
type Surface interface {
	// Size reports the drawable area in device-independent pixels.
	Size() (w, h float64)
	Clear(c drawing.Color)
	// FillGradient paints a full-surface vertical gradient.
	FillGradient(top, bottom drawing.Color)
	FillRect(x, y, w, h float64, c drawing.Color)
	Polyline(pts []Point, st LineStyle)
	FillCircle(x, y, r float64, c drawing.Color)
	StrokeCircle(x, y, r float64, st LineStyle)
	Text(s string, x, y float64, st TextStyle)
}

// alpha applies a style's opacity to its color.
func (st LineStyle) alpha() drawing.Color {
	o := st.Opacity
	if o <= 0 || o > 1 {
		return st.Color
	}
	return st.Color.WithAlpha(uint8(o * float64(st.Color.A)))
}
