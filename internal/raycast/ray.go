package raycast

import (
	"image/color"
	"math"
)

const twoPi = 2 * math.Pi

// axisEpsilon is the |sin| or |cos| below which a ray is treated as parallel
// to one family of grid lines.
const axisEpsilon = 1e-9

var rayColor = color.RGBA{255, 0, 0, 80}

// NormalizeAngle folds any angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}

// Ray is one cast from the player toward Angle. When Hit is false the ray
// found no wall and Distance is math.MaxFloat64.
type Ray struct {
	Angle float64

	FacingUp    bool
	FacingDown  bool
	FacingLeft  bool
	FacingRight bool

	WallX    float64
	WallY    float64
	Distance float64
	Hit      bool
	// Vertical is set when the hit came from a vertical grid line.
	Vertical bool
}

// gridHit is the result of a single-axis scan.
type gridHit struct {
	x, y  float64
	found bool
}

// CastRay marches from (px, py) along angle and returns the nearest wall.
func CastRay(g *Grid, px, py, angle float64) Ray {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return Ray{Angle: angle, WallX: px, WallY: py, Distance: math.MaxFloat64}
	}
	a := NormalizeAngle(angle)
	r := Ray{Angle: a}
	r.FacingDown = a >= 0 && a <= math.Pi
	r.FacingUp = !r.FacingDown
	r.FacingRight = a < math.Pi/2 || a > 3*math.Pi/2
	r.FacingLeft = !r.FacingRight

	horz := r.scanHorizontal(g, px, py)
	vert := r.scanVertical(g, px, py)

	horzDist := hitDistance(px, py, horz)
	vertDist := hitDistance(px, py, vert)

	switch {
	case horz.found && horzDist <= vertDist:
		r.WallX, r.WallY, r.Distance, r.Hit = horz.x, horz.y, horzDist, true
	case vert.found:
		r.WallX, r.WallY, r.Distance, r.Hit, r.Vertical = vert.x, vert.y, vertDist, true, true
	default:
		r.WallX, r.WallY, r.Distance = px, py, math.MaxFloat64
	}
	return r
}

// maxScanSteps bounds every scan so degenerate stepping cannot spin forever.
func maxScanSteps(g *Grid) int {
	return int(math.Ceil(math.Hypot(float64(g.cols), float64(g.rows)))) + 1
}

// inScanBounds reports whether an intersection still lies on the map,
// edges included.
func inScanBounds(g *Grid, x, y float64) bool {
	return x >= 0 && x <= g.Width() && y >= 0 && y <= g.Height()
}

// scanHorizontal walks the crossings with horizontal grid lines.
func (r *Ray) scanHorizontal(g *Grid, px, py float64) gridHit {
	if math.Abs(math.Sin(r.Angle)) < axisEpsilon {
		return gridHit{}
	}
	tan := math.Tan(r.Angle)
	if math.IsInf(tan, 0) || math.IsNaN(tan) || tan == 0 {
		return gridHit{}
	}
	cs := g.cellSize

	yIntercept := math.Floor(py/cs) * cs
	if r.FacingDown {
		yIntercept += cs
	}
	xIntercept := px + (yIntercept-py)/tan

	yStep := cs
	if r.FacingUp {
		yStep = -cs
	}
	xStep := cs / tan
	if r.FacingLeft && xStep > 0 {
		xStep = -xStep
	}
	if r.FacingRight && xStep < 0 {
		xStep = -xStep
	}

	nextX, nextY := xIntercept, yIntercept
	limit := maxScanSteps(g)
	for i := 0; i < limit; i++ {
		if !inScanBounds(g, nextX, nextY) {
			break
		}
		checkY := nextY
		if r.FacingUp {
			checkY--
		}
		if g.HasWall(nextX, checkY) {
			return gridHit{x: nextX, y: nextY, found: true}
		}
		nextX += xStep
		nextY += yStep
	}
	return gridHit{}
}

// scanVertical walks the crossings with vertical grid lines.
func (r *Ray) scanVertical(g *Grid, px, py float64) gridHit {
	if math.Abs(math.Cos(r.Angle)) < axisEpsilon {
		return gridHit{}
	}
	tan := math.Tan(r.Angle)
	if math.IsInf(tan, 0) || math.IsNaN(tan) {
		return gridHit{}
	}
	cs := g.cellSize

	xIntercept := math.Floor(px/cs) * cs
	if r.FacingRight {
		xIntercept += cs
	}
	yIntercept := py + (xIntercept-px)*tan

	xStep := cs
	if r.FacingLeft {
		xStep = -cs
	}
	yStep := cs * tan
	if r.FacingUp && yStep > 0 {
		yStep = -yStep
	}
	if r.FacingDown && yStep < 0 {
		yStep = -yStep
	}

	nextX, nextY := xIntercept, yIntercept
	limit := maxScanSteps(g)
	for i := 0; i < limit; i++ {
		if !inScanBounds(g, nextX, nextY) {
			break
		}
		checkX := nextX
		if r.FacingLeft {
			checkX--
		}
		if g.HasWall(checkX, nextY) {
			return gridHit{x: nextX, y: nextY, found: true}
		}
		nextX += xStep
		nextY += yStep
	}
	return gridHit{}
}

// hitDistance is the Euclidean distance to h, or MaxFloat64 for a miss.
func hitDistance(px, py float64, h gridHit) float64 {
	if !h.found {
		return math.MaxFloat64
	}
	return math.Hypot(h.x-px, h.y-py)
}

// wallCell returns the tile the ray actually struck. Hit points sit on grid
// lines, so rays travelling up or left must look one unit back.
func (r *Ray) wallCell(g *Grid) (int, int, bool) {
	if !r.Hit {
		return 0, 0, false
	}
	x, y := r.WallX, r.WallY
	if r.Vertical && r.FacingLeft {
		x--
	}
	if !r.Vertical && r.FacingUp {
		y--
	}
	row, col := g.cellAt(x, y)
	return row, col, true
}

// Render draws the ray from the origin to its hit. Misses draw nothing.
func (r *Ray) Render(s Surface, px, py float64) {
	if !r.Hit {
		return
	}
	s.StrokeLine(px, py, r.WallX, r.WallY, rayColor)
}
