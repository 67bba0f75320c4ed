package chartrender

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/PR0TX/Vaillant-calorMATIC-630-Heating-Curves/src/viewstate"
)

// recordSurface captures the draw sequence as op strings so tests can assert
// on layer structure without rasterizing.
type recordSurface struct {
	w, h float64
	ops  []string
}

func newRecordSurface(w, h float64) *recordSurface { return &recordSurface{w: w, h: h} }

func (r *recordSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordSurface) Clear(c drawing.Color) {
	r.ops = append(r.ops, "clear")
}

func (r *recordSurface) FillGradient(top, bottom drawing.Color) {
	r.ops = append(r.ops, "gradient")
}

func (r *recordSurface) FillRect(x, y, w, h float64, c drawing.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect %.1f,%.1f %dx%d", x, y, int(w), int(h)))
}

func (r *recordSurface) Polyline(pts []Point, st LineStyle) {
	r.ops = append(r.ops, fmt.Sprintf("line n=%d w=%.1f", len(pts), st.Width))
}

func (r *recordSurface) FillCircle(x, y, rad float64, c drawing.Color) {
	r.ops = append(r.ops, fmt.Sprintf("fillcircle r=%.1f", rad))
}

func (r *recordSurface) StrokeCircle(x, y, rad float64, st LineStyle) {
	r.ops = append(r.ops, fmt.Sprintf("strokecircle r=%.1f", rad))
}

func (r *recordSurface) Text(s string, x, y float64, st TextStyle) {
	r.ops = append(r.ops, "text "+s)
}

func countPrefix(ops []string, prefix string) int {
	n := 0
	for _, op := range ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func TestFrameIsDeterministic(t *testing.T) {
	p := viewstate.Defaults()
	a := newRecordSurface(1100, 680)
	b := newRecordSurface(1100, 680)
	Frame(a, p)
	Frame(b, p)
	if diff := cmp.Diff(a.ops, b.ops); diff != "" {
		t.Fatalf("two frames with identical inputs diverged:\n%s", diff)
	}
}

func TestFrameLayerCounts(t *testing.T) {
	p := viewstate.Defaults()
	s := newRecordSurface(1100, 680)
	Frame(s, p)

	// Background layers come first.
	if s.ops[0] != "clear" || s.ops[1] != "gradient" {
		t.Fatalf("frame does not start with clear+gradient: %v", s.ops[:2])
	}

	// 9 vertical + 8 horizontal gridlines, 3 guides, 20 family curves and
	// the selected curve.
	if got, want := countPrefix(s.ops, "line"), 9+8+3+20+1; got != want {
		t.Fatalf("polyline count = %d, want %d", got, want)
	}
	if got := countPrefix(s.ops, "strokecircle"); got != 1 {
		t.Fatalf("halo count = %d, want 1", got)
	}
	if got := countPrefix(s.ops, "fillcircle"); got != 1 {
		t.Fatalf("marker count = %d, want 1", got)
	}

	// 9 + 8 axis labels plus the 6 family labels reachable with a 0.2 step
	// (1.5 and 2.5 are skipped by the stepping).
	if got, want := countPrefix(s.ops, "text"), 9+8+6; got != want {
		t.Fatalf("text count = %d, want %d", got, want)
	}
}

func TestFrameTogglesRemoveLayers(t *testing.T) {
	p := viewstate.Defaults()
	p.ShowGrid = false
	p.ShowGuides = false
	p.ShowAll = false
	s := newRecordSurface(1100, 680)
	Frame(s, p)

	// Only the selected curve remains.
	if got := countPrefix(s.ops, "line"); got != 1 {
		t.Fatalf("polyline count with toggles off = %d, want 1", got)
	}
	if got := countPrefix(s.ops, "text"); got != 0 {
		t.Fatalf("text count with toggles off = %d, want 0", got)
	}
}

func TestFrameSelectedCurveDrawsLast(t *testing.T) {
	p := viewstate.Defaults()
	s := newRecordSurface(1100, 680)
	Frame(s, p)

	// The final three draw ops are selected curve, halo, marker.
	n := len(s.ops)
	if n < 3 {
		t.Fatalf("too few ops: %d", n)
	}
	if got := s.ops[n-3]; got != fmt.Sprintf("line n=%d w=2.6", curveSegments+1) {
		t.Fatalf("third-from-last op = %q, want the selected curve", got)
	}
	if countPrefix(s.ops[n-2:], "strokecircle") != 1 || countPrefix(s.ops[n-1:], "fillcircle") != 1 {
		t.Fatalf("frame does not end with halo+marker: %v", s.ops[n-2:])
	}
}

func TestRenderImageSize(t *testing.T) {
	img := RenderImage(viewstate.Defaults(), 320, 200)
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("image size = %dx%d, want 320x200", b.Dx(), b.Dy())
	}
}

func TestSummary(t *testing.T) {
	p := viewstate.Defaults()
	p.SetFlowMax(75)
	result, meta := Summary(p)
	if result != "Flow: 55 °C" {
		t.Fatalf("result = %q, want %q", result, "Flow: 55 °C")
	}
	want := "s=1.00, room=20.0 °C, outdoor=0 °C, min=25 °C, max=75 °C"
	if meta != want {
		t.Fatalf("meta = %q, want %q", meta, want)
	}
}

func TestSummaryKeepsHalfDegrees(t *testing.T) {
	p := viewstate.Defaults()
	p.SetRoom(20.5)
	p.SetOutdoor(0)
	p.SetSlope(0.2)
	// 20.5 + 0.40*(20.5-0) = 28.7
	result, _ := Summary(p)
	if result != "Flow: 28.7 °C" {
		t.Fatalf("result = %q, want %q", result, "Flow: 28.7 °C")
	}
}
