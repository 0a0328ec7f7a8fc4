package raycast

import (
	"image/color"
	"math"
	"strings"
)

const (
	defaultMoveSpeed     = 2.0
	defaultTurnSpeed     = 2 * math.Pi / 180
	playerMarkerRadius   = 3.0
	playerFacingLineSize = 20.0
)

var playerColor = color.RGBA{255, 0, 0, 255}

// Player is the single observer walking the grid.
//
// Direction and TurnDirection are intent flags written by key handlers and
// consumed by Update. Only the exact values 1 and -1 act; anything else is
// treated as no input for that axis.
type Player struct {
	X, Y          float64
	Angle         float64
	MoveSpeed     float64
	TurnSpeed     float64
	Direction     int
	TurnDirection int
}

// NewPlayer places a player at (x, y) facing angle.
func NewPlayer(x, y, angle float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Angle:     NormalizeAngle(angle),
		MoveSpeed: defaultMoveSpeed,
		TurnSpeed: defaultTurnSpeed,
	}
}

// NewDefaultPlayer returns the starting player for g.
func NewDefaultPlayer(g *Grid) *Player {
	return NewPlayer(g.Height()/2, g.Height()/2, math.Pi/2)
}

// Update applies the current intent. The candidate position is tested as one
// point, so a diagonal step into a corner is refused even if either axis alone
// would clear it.
func (p *Player) Update(g *Grid) {
	if p.Direction == 1 || p.Direction == -1 {
		step := p.MoveSpeed * float64(p.Direction)
		nx := p.X + math.Cos(p.Angle)*step
		ny := p.Y + math.Sin(p.Angle)*step
		if !g.HasWall(nx, ny) {
			p.X, p.Y = nx, ny
		}
	}
	if p.TurnDirection == 1 || p.TurnDirection == -1 {
		p.Angle = NormalizeAngle(p.Angle + p.TurnSpeed*float64(p.TurnDirection))
	}
}

// KeyDown maps a pressed key to intent. Unknown keys are ignored.
func (p *Player) KeyDown(key string) {
	switch strings.ToUpper(key) {
	case "W":
		p.Direction = 1
	case "S":
		p.Direction = -1
	case "A":
		p.TurnDirection = -1
	case "D":
		p.TurnDirection = 1
	}
}

// KeyUp clears the intent axis owned by key.
func (p *Player) KeyUp(key string) {
	switch strings.ToUpper(key) {
	case "W", "S":
		p.Direction = 0
	case "A", "D":
		p.TurnDirection = 0
	}
}

// Render draws the facing indicator and the player marker.
func (p *Player) Render(s Surface) {
	s.StrokeLine(
		p.X,
		p.Y,
		p.X+math.Cos(p.Angle)*playerFacingLineSize,
		p.Y+math.Sin(p.Angle)*playerFacingLineSize,
		playerColor,
	)
	s.FillCircle(p.X, p.Y, playerMarkerRadius, playerColor)
}
