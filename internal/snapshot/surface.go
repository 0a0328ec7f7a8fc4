package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

const lineWidth = 1.0

// Surface renders engine frames into an offscreen RGBA image.
type Surface struct {
	dc *gg.Context
}

// NewSurface allocates a transparent width x height canvas.
func NewSurface(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(lineWidth)
	return &Surface{dc: dc}
}

// Clear makes the region transparent again.
func (s *Surface) Clear(x, y, w, h float64) {
	dst, ok := s.dc.Image().(draw.Image)
	if !ok {
		return
	}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	draw.Draw(dst, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(clr)
	s.dc.Fill()
}

func (s *Surface) StrokeRect(x, y, w, h float64, clr color.Color) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(clr)
	s.dc.Stroke()
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.dc.DrawCircle(cx, cy, r)
	s.dc.SetColor(clr)
	s.dc.Fill()
}

func (s *Surface) StrokeCircle(cx, cy, r float64, clr color.Color) {
	s.dc.DrawCircle(cx, cy, r)
	s.dc.SetColor(clr)
	s.dc.Stroke()
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.SetColor(clr)
	s.dc.Stroke()
}

// Image returns the rendered canvas.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// Save writes the canvas to path, scaled by scale. The format follows the
// file extension.
func (s *Surface) Save(path string, scale float64) error {
	if !(scale > 0) {
		return fmt.Errorf("snapshot scale %v must be positive", scale)
	}
	img := s.Image()
	if scale != 1 {
		width := int(math.Round(float64(img.Bounds().Dx()) * scale))
		if width < 1 {
			width = 1
		}
		img = imaging.Resize(img, width, 0, imaging.NearestNeighbor)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving snapshot %q: %w", path, err)
	}
	return nil
}
