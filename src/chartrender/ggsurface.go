package chartrender

import (
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ImageSurface renders to an in-memory RGBA image via fogleman/gg.
type ImageSurface struct {
	dc   *gg.Context
	w, h float64
}

// NewImageSurface creates a raster surface of the given pixel size. Sizes
// below 1x1 are raised so a degenerate viewport still yields a valid image.
func NewImageSurface(w, h int) *ImageSurface {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ImageSurface{dc: gg.NewContext(w, h), w: float64(w), h: float64(h)}
}

func (s *ImageSurface) Size() (float64, float64) { return s.w, s.h }

func (s *ImageSurface) Clear(c drawing.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *ImageSurface) FillGradient(top, bottom drawing.Color) {
	grad := gg.NewLinearGradient(0, 0, 0, s.h)
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(0, 0, s.w, s.h)
	s.dc.Fill()
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c drawing.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *ImageSurface) Polyline(pts []Point, st LineStyle) {
	if len(pts) < 2 {
		return
	}
	s.dc.SetColor(st.alpha())
	s.dc.SetLineWidth(st.Width)
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.Stroke()
}

func (s *ImageSurface) FillCircle(x, y, r float64, c drawing.Color) {
	s.dc.SetColor(c)
	s.dc.DrawCircle(x, y, r)
	s.dc.Fill()
}

func (s *ImageSurface) StrokeCircle(x, y, r float64, st LineStyle) {
	s.dc.SetColor(st.alpha())
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawCircle(x, y, r)
	s.dc.Stroke()
}

func (s *ImageSurface) Text(txt string, x, y float64, st TextStyle) {
	s.dc.SetFontFace(faceForSize(st.Size))
	s.dc.SetColor(st.Color)
	ax := 0.0
	switch st.Align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1.0
	}
	// ay=0 keeps y as the baseline.
	s.dc.DrawStringAnchored(txt, x, y, ax, 0)
}

// Image returns the rendered frame.
func (s *ImageSurface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the current frame as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error { return png.Encode(w, s.dc.Image()) }

var (
	fontOnce sync.Once
	fontSrc  *sfnt.Font
	faceMu   sync.Mutex
	faces    = map[float64]font.Face{}
)

// faceForSize returns a Go Regular face at the given point size, cached per
// size since the renderer only uses a handful of them.
func faceForSize(size float64) font.Face {
	fontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic("chartrender: parse embedded font: " + err.Error())
		}
		fontSrc = f
	})
	if size <= 0 {
		size = 11
	}
	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faces[size]; ok {
		return f
	}
	face, err := opentype.NewFace(fontSrc, &opentype.FaceOptions{Size: size, DPI: 96, Hinting: font.HintingFull})
	if err != nil {
		panic("chartrender: build font face: " + err.Error())
	}
	faces[size] = face
	return face
}
