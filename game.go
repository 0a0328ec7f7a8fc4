package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raycaster/internal/config"
	"raycaster/internal/raycast"
	"raycaster/pkg/logger"
)

// Game adapts the raycasting engine to Ebitengine. Update collects input and
// tuning changes; Draw runs one engine frame. Ebitengine calls both from the
// same goroutine, so the engine is never touched concurrently.
type Game struct {
	engine *raycast.Engine
	keys   []ebiten.Key
	tuning <-chan config.Tuning

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       *rand.Rand
	autoWalkFrameCount int
	autoWalkLastX      float64
	autoWalkLastY      float64
	stopProfile        func()

	log *logrus.Entry
}

// newGame wraps engine. tuning may be nil when no config file is watched.
func newGame(engine *raycast.Engine, tuning <-chan config.Tuning) *Game {
	return &Game{
		engine:       engine,
		tuning:       tuning,
		autoWalkRand: rand.New(rand.NewSource(time.Now().UnixNano() + 2)),
		log:          logger.Component("game"),
	}
}

// Update applies pending tuning and forwards key transitions to the engine.
func (g *Game) Update() error {
	g.applyTuning()
	if g.autoWalk {
		g.autoWalkStep()
		return nil
	}
	g.forwardKeys()
	return nil
}

// applyTuning takes at most one reloaded tuning without blocking.
func (g *Game) applyTuning() {
	select {
	case t, ok := <-g.tuning:
		if !ok {
			g.tuning = nil
			return
		}
		if err := g.engine.ApplySettings(t.Settings()); err != nil {
			g.log.WithError(err).Warn("Rejected reloaded tuning.")
			return
		}
		g.log.WithFields(logrus.Fields{
			"fov_deg":     t.FOVDegrees,
			"strip_width": t.StripWidth,
		}).Info("Tuning applied.")
	default:
	}
}
