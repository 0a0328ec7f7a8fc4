package raycast

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestPlayer_MovesForwardAndBack(t *testing.T) {
	g := mustGrid(t, borderedCells(11, 15))
	p := NewPlayer(240, 176, 0)

	p.Direction = 1
	p.Update(g)
	if math.Abs(p.X-242) > eps || math.Abs(p.Y-176) > eps {
		t.Fatalf("expected (242,176), got (%v,%v)", p.X, p.Y)
	}

	p.Direction = -1
	p.Update(g)
	p.Update(g)
	if math.Abs(p.X-238) > eps {
		t.Fatalf("expected x=238, got %v", p.X)
	}
}

func TestPlayer_BlockedByWall(t *testing.T) {
	g := mustGrid(t, borderedCells(11, 15))
	// One unit away from the east border wall at x=448.
	p := NewPlayer(447, 176, 0)
	p.Direction = 1
	p.Update(g)
	if p.X != 447 || p.Y != 176 {
		t.Errorf("expected player to stay put, got (%v,%v)", p.X, p.Y)
	}
}

func TestPlayer_CornerIsBlockedAsSinglePoint(t *testing.T) {
	cells := borderedCells(5, 5)
	cells[2][2] = 1
	g := mustGrid(t, cells)

	// Diagonal step from just outside the corner of (2,2). Either axis alone
	// would stay in an open tile, but the combined point lands inside it.
	p := NewPlayer(63, 63, math.Pi/4)
	p.MoveSpeed = 2
	p.Direction = 1
	p.Update(g)
	if p.X != 63 || p.Y != 63 {
		t.Errorf("expected corner to block, got (%v,%v)", p.X, p.Y)
	}
}

func TestPlayer_NeverEntersWall(t *testing.T) {
	g := DefaultGrid()
	for y := 1.0; y < g.Height(); y += 5 {
		for x := 1.0; x < g.Width(); x += 5 {
			if g.HasWall(x, y) {
				continue
			}
			for a := 0.0; a < twoPi; a += math.Pi / 7 {
				for _, dir := range []int{1, -1} {
					p := NewPlayer(x, y, a)
					p.MoveSpeed = 9
					p.Direction = dir
					p.Update(g)
					moved := p.X != x || p.Y != y
					if moved && g.HasWall(p.X, p.Y) {
						t.Fatalf("player moved into wall: from (%v,%v) to (%v,%v)", x, y, p.X, p.Y)
					}
				}
			}
		}
	}
}

func TestPlayer_IntentOutsideUnitIsInert(t *testing.T) {
	g := mustGrid(t, borderedCells(11, 15))
	p := NewPlayer(240, 176, 1)
	p.Direction = 2
	p.TurnDirection = -3
	p.Update(g)
	if p.X != 240 || p.Y != 176 || p.Angle != 1 {
		t.Errorf("expected no change, got (%v,%v) angle %v", p.X, p.Y, p.Angle)
	}
}

func TestPlayer_TurnKeepsAngleNormalized(t *testing.T) {
	g := DefaultGrid()
	p := NewPlayer(100, 100, 0)
	p.TurnSpeed = 0.5
	p.TurnDirection = -1
	p.Update(g)
	want := twoPi - 0.5
	if math.Abs(p.Angle-want) > eps {
		t.Errorf("expected %v, got %v", want, p.Angle)
	}
	for i := 0; i < 100; i++ {
		p.Update(g)
		if p.Angle < 0 || p.Angle >= twoPi {
			t.Fatalf("angle %v escaped [0, 2π)", p.Angle)
		}
	}
}

func TestPlayer_KeyMapping(t *testing.T) {
	tests := []struct {
		key          string
		down         bool
		wantDir      int
		wantTurn     int
		startDir     int
		startTurnDir int
	}{
		{"W", true, 1, 0, 0, 0},
		{"S", true, -1, 0, 0, 0},
		{"A", true, 0, -1, 0, 0},
		{"D", true, 0, 1, 0, 0},
		{"w", true, 1, 0, 0, 0},
		{"W", false, 0, 1, 1, 1},
		{"S", false, 0, 1, -1, 1},
		{"A", false, 1, 0, 1, -1},
		{"D", false, 1, 0, 1, 1},
		{"Q", true, 1, 1, 1, 1},
		{"SPACE", false, -1, -1, -1, -1},
	}
	for _, tt := range tests {
		p := NewPlayer(0, 0, 0)
		p.Direction, p.TurnDirection = tt.startDir, tt.startTurnDir
		if tt.down {
			p.KeyDown(tt.key)
		} else {
			p.KeyUp(tt.key)
		}
		if p.Direction != tt.wantDir || p.TurnDirection != tt.wantTurn {
			t.Errorf("key %q down=%v: got dir=%d turn=%d, want %d/%d",
				tt.key, tt.down, p.Direction, p.TurnDirection, tt.wantDir, tt.wantTurn)
		}
	}
}

func TestPlayer_Render(t *testing.T) {
	p := NewPlayer(10, 20, 0)
	s := &recordingSurface{}
	p.Render(s)
	if len(s.calls) != 2 || s.calls[0].op != "line" || s.calls[1].op != "fillCircle" {
		t.Fatalf("unexpected calls %+v", s.calls)
	}
	if s.calls[0].coords != [4]float64{10, 20, 30, 20} {
		t.Errorf("facing line %v", s.calls[0].coords)
	}
}

func TestNewDefaultPlayer(t *testing.T) {
	g := DefaultGrid()
	p := NewDefaultPlayer(g)
	if p.X != g.Height()/2 || p.Y != g.Height()/2 {
		t.Errorf("unexpected start (%v,%v)", p.X, p.Y)
	}
	if g.HasWall(p.X, p.Y) {
		t.Error("default start is inside a wall")
	}
}
