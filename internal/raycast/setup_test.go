package raycast

import (
	"image/color"
	"testing"
)

// drawCall is one primitive captured by recordingSurface.
type drawCall struct {
	op     string
	coords [4]float64
	clr    color.Color
}

// recordingSurface captures draw calls in order.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) add(op string, clr color.Color, v ...float64) {
	var c drawCall
	c.op = op
	c.clr = clr
	copy(c.coords[:], v)
	s.calls = append(s.calls, c)
}

func (s *recordingSurface) Clear(x, y, w, h float64) { s.add("clear", nil, x, y, w, h) }
func (s *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.add("fillRect", clr, x, y, w, h)
}
func (s *recordingSurface) StrokeRect(x, y, w, h float64, clr color.Color) {
	s.add("strokeRect", clr, x, y, w, h)
}
func (s *recordingSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.add("fillCircle", clr, cx, cy, r)
}
func (s *recordingSurface) StrokeCircle(cx, cy, r float64, clr color.Color) {
	s.add("strokeCircle", clr, cx, cy, r)
}
func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	s.add("line", clr, x0, y0, x1, y1)
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// borderedCells returns a rows x cols map with walls only on the border.
func borderedCells(rows, cols int) [][]uint8 {
	cells := make([][]uint8, rows)
	for r := range cells {
		cells[r] = make([]uint8, cols)
		for c := range cells[r] {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				cells[r][c] = 1
			}
		}
	}
	return cells
}

func mustGrid(t *testing.T, cells [][]uint8) *Grid {
	t.Helper()
	g, err := NewGrid(cells, CellSize)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}
