package main

import (
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// forwardKeys delivers this tick's key presses and releases to the engine as
// upper-case key names. The engine ignores keys it does not know.
func (g *Game) forwardKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.engine.KeyDown(strings.ToUpper(k.String()))
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.engine.KeyUp(strings.ToUpper(k.String()))
	}
}

// enableAutoWalk schedules scripted movement for a limited duration. stop is
// called once the walk ends.
func (g *Game) enableAutoWalk(duration time.Duration, stop func()) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	if g.autoWalkRand == nil {
		g.autoWalkRand = rand.New(rand.NewSource(time.Now().UnixNano() + 3))
	}
	g.autoWalkFrameCount = 0
	g.stopProfile = stop
	p := g.engine.Player()
	g.autoWalkLastX, g.autoWalkLastY = p.X, p.Y
}

// autoWalkStep drives the player through the same key interface a person
// would use, turning whenever it stops making progress.
func (g *Game) autoWalkStep() {
	if time.Now().After(g.autoWalkDeadline) {
		g.finishAutoWalk()
		return
	}
	p := g.engine.Player()
	blocked := p.X == g.autoWalkLastX && p.Y == g.autoWalkLastY
	g.autoWalkLastX, g.autoWalkLastY = p.X, p.Y
	if g.autoWalkFrameCount <= 0 || blocked {
		g.randomizeAutoWalkTurn(blocked)
	}
	g.autoWalkFrameCount--
}

// randomizeAutoWalkTurn picks a new turn intent for the next stretch.
func (g *Game) randomizeAutoWalkTurn(blocked bool) {
	g.engine.KeyDown("W")
	choice := g.autoWalkRand.Intn(3)
	if blocked && choice == 0 {
		choice = 1 + g.autoWalkRand.Intn(2)
	}
	switch choice {
	case 0:
		g.engine.KeyUp("A")
	case 1:
		g.engine.KeyDown("A")
	case 2:
		g.engine.KeyDown("D")
	}
	g.autoWalkFrameCount = autoWalkMinFrames + g.autoWalkRand.Intn(autoWalkFrameSpread)
}

// finishAutoWalk releases the scripted keys and stops profiling.
func (g *Game) finishAutoWalk() {
	g.autoWalk = false
	g.engine.KeyUp("W")
	g.engine.KeyUp("A")
	if g.stopProfile != nil {
		g.stopProfile()
		g.stopProfile = nil
		g.log.WithField("path", pgoProfilePath).Info("PGO recording finished.")
	}
}
