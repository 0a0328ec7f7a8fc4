package snapshot

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"raycaster/internal/raycast"
)

func rgba(c color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}

func renderFrame(t *testing.T) (*Surface, *raycast.Engine) {
	t.Helper()
	grid := raycast.DefaultGrid()
	e, err := raycast.NewEngine(grid, raycast.DefaultSettings())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	s := NewSurface(int(grid.Width()), int(grid.Height()))
	e.Frame(s)
	return s, e
}

func TestSurface_RendersMap(t *testing.T) {
	s, e := renderFrame(t)
	img := s.Image()

	// Tile (0,0) is a wall, tile (1,1) is open.
	if r, g, b, a := rgba(img.At(16, 16)); r != 0 || g != 0 || b != 0 || a != 255 {
		t.Errorf("wall pixel = %d,%d,%d,%d, want opaque black", r, g, b, a)
	}
	if r, g, b, _ := rgba(img.At(48, 48)); r != 255 || g != 255 || b != 255 {
		t.Errorf("open pixel = %d,%d,%d, want white", r, g, b)
	}

	p := e.Player()
	if r, g, _, _ := rgba(img.At(int(p.X), int(p.Y))); r < 200 || g > 60 {
		t.Errorf("player pixel = %d,%d, want red", r, g)
	}
}

func TestSurface_Clear(t *testing.T) {
	s, _ := renderFrame(t)
	s.Clear(0, 0, 64, 64)
	if _, _, _, a := rgba(s.Image().At(16, 16)); a != 0 {
		t.Errorf("expected cleared pixel, alpha %d", a)
	}
	if _, _, _, a := rgba(s.Image().At(100, 100)); a == 0 {
		t.Error("clear leaked outside its region")
	}
}

func TestSurface_SaveScaled(t *testing.T) {
	s, _ := renderFrame(t)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.Save(path, 2); err != nil {
		t.Fatalf("Save: %v", err)
	}
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := img.Bounds().Dx(); got != 2*raycast.MapCols*raycast.CellSize {
		t.Errorf("expected width %v, got %d", 2*raycast.MapCols*raycast.CellSize, got)
	}
	if err := s.Save(path, 0); err == nil {
		t.Error("expected an error for a zero scale")
	}
}
