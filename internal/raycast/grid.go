package raycast

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Map dimensions and tile size of the built-in level.
const (
	CellSize = 32.0
	MapRows  = 11
	MapCols  = 15
)

// ErrInvalidMap is returned when a tile map cannot back a Grid.
var ErrInvalidMap = errors.New("invalid tile map")

var (
	wallColor     = color.RGBA{0, 0, 0, 255}
	openColor     = color.RGBA{255, 255, 255, 255}
	gridLineColor = color.RGBA{0, 0, 0, 255}
)

// DefaultCells returns a fresh copy of the built-in 15x11 level.
func DefaultCells() [][]uint8 {
	return [][]uint8{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1},
		{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
}

// Grid is an immutable tile map addressed by (row, col). A cell value of 1
// is a wall, 0 is open floor.
type Grid struct {
	cells    [][]uint8
	rows     int
	cols     int
	cellSize float64
}

// NewGrid validates cells and returns a Grid holding its own copy of them.
func NewGrid(cells [][]uint8, cellSize float64) (*Grid, error) {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidMap, cellSize)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: empty map", ErrInvalidMap)
	}
	cols := len(cells[0])
	copied := make([][]uint8, len(cells))
	for row, line := range cells {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMap, row, len(line), cols)
		}
		for col, v := range line {
			if v > 1 {
				return nil, fmt.Errorf("%w: cell (%d,%d) has value %d", ErrInvalidMap, row, col, v)
			}
		}
		copied[row] = append([]uint8(nil), line...)
	}
	return &Grid{cells: copied, rows: len(cells), cols: cols, cellSize: cellSize}, nil
}

// DefaultGrid builds the built-in level.
func DefaultGrid() *Grid {
	g, err := NewGrid(DefaultCells(), CellSize)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows reports the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols reports the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize reports the edge length of one tile in world units.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Width is the world-space extent along x.
func (g *Grid) Width() float64 { return float64(g.cols) * g.cellSize }

// Height is the world-space extent along y.
func (g *Grid) Height() float64 { return float64(g.rows) * g.cellSize }

// Cell returns the stored value at (row, col), or 1 outside the map.
func (g *Grid) Cell(row, col int) uint8 {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 1
	}
	return g.cells[row][col]
}

// HasWall reports whether the world coordinate is blocked. Anything outside
// the map counts as wall. Movement and ray marching both rely on this.
func (g *Grid) HasWall(x, y float64) bool {
	if !(x >= 0 && x < g.Width() && y >= 0 && y < g.Height()) {
		return true
	}
	col := int(math.Floor(x / g.cellSize))
	row := int(math.Floor(y / g.cellSize))
	return g.Cell(row, col) == 1
}

// cellAt converts a world coordinate to its containing (row, col).
func (g *Grid) cellAt(x, y float64) (int, int) {
	return int(math.Floor(y / g.cellSize)), int(math.Floor(x / g.cellSize))
}

// Render draws every tile as a filled square with a thin outline.
func (g *Grid) Render(s Surface) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			x := float64(col) * g.cellSize
			y := float64(row) * g.cellSize
			fill := openColor
			if g.cells[row][col] == 1 {
				fill = wallColor
			}
			s.FillRect(x, y, g.cellSize, g.cellSize, fill)
			s.StrokeRect(x, y, g.cellSize, g.cellSize, gridLineColor)
		}
	}
}
