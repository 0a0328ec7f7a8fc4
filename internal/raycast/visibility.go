package raycast

import "image/color"

var hitTileColor = color.RGBA{0, 200, 255, 255}

// hitStamps marks the wall tiles struck by the latest ray fan. Each mark
// stores the generation it was written in, so starting a new frame is a
// counter bump instead of a clear.
type hitStamps struct {
	stamp []uint32
	gen   uint32
	cols  int
	count int
}

// reset starts a new generation sized for g.
func (h *hitStamps) reset(g *Grid) {
	if len(h.stamp) != g.rows*g.cols {
		h.stamp = make([]uint32, g.rows*g.cols)
		h.gen = 0
	}
	h.cols = g.cols
	if h.gen == ^uint32(0) {
		for i := range h.stamp {
			h.stamp[i] = 0
		}
		h.gen = 1
	} else {
		h.gen++
	}
	h.count = 0
}

// mark records the tile struck by every hit ray.
func (h *hitStamps) mark(g *Grid, rays []Ray) {
	h.reset(g)
	for i := range rays {
		row, col, ok := rays[i].wallCell(g)
		if !ok || row < 0 || row >= g.rows || col < 0 || col >= g.cols {
			continue
		}
		idx := row*h.cols + col
		if h.stamp[idx] != h.gen {
			h.stamp[idx] = h.gen
			h.count++
		}
	}
}

// isHit reports whether (row, col) was struck in the current generation.
func (h *hitStamps) isHit(row, col int) bool {
	if h.gen == 0 || row < 0 || col < 0 || col >= h.cols {
		return false
	}
	idx := row*h.cols + col
	if idx >= len(h.stamp) {
		return false
	}
	return h.stamp[idx] == h.gen
}

// render outlines every struck tile.
func (h *hitStamps) render(s Surface, g *Grid) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if !h.isHit(row, col) {
				continue
			}
			s.StrokeRect(float64(col)*g.cellSize, float64(row)*g.cellSize, g.cellSize, g.cellSize, hitTileColor)
		}
	}
}
