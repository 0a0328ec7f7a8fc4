package raycast

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"raycaster/pkg/logger"
)

// Engine owns the whole simulation: grid, player, tunables and the ray fan
// of the last frame. It is not safe for concurrent use; the host drives it
// from a single goroutine.
type Engine struct {
	grid     *Grid
	player   *Player
	settings Settings
	rays     []Ray
	hits     hitStamps
	frames   uint64
	log      *logrus.Entry
}

// NewEngine builds an engine for g with the player at its default start.
func NewEngine(g *Grid, settings Settings) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: engine needs a grid", ErrInvalidSettings)
	}
	return NewEngineWithPlayer(g, NewDefaultPlayer(g), settings)
}

// NewEngineWithPlayer builds an engine around an existing player.
func NewEngineWithPlayer(g *Grid, p *Player, settings Settings) (*Engine, error) {
	if g == nil || p == nil {
		return nil, fmt.Errorf("%w: engine needs a grid and a player", ErrInvalidSettings)
	}
	e := &Engine{
		grid:   g,
		player: p,
		log:    logger.Component("engine"),
	}
	if err := e.ApplySettings(settings); err != nil {
		return nil, err
	}
	return e, nil
}

// ApplySettings validates s and makes it current from the next frame on.
func (e *Engine) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("applying settings: %w", err)
	}
	e.settings = s
	e.player.MoveSpeed = s.MoveSpeed
	e.player.TurnSpeed = s.TurnSpeed
	columns := s.Columns(e.grid.Width())
	if cap(e.rays) < columns {
		e.rays = make([]Ray, 0, columns)
	}
	e.log.WithFields(logrus.Fields{
		"fov":     s.FieldOfView,
		"columns": columns,
		"move":    s.MoveSpeed,
		"turn":    s.TurnSpeed,
	}).Debug("Settings applied.")
	return nil
}

// Settings returns the current tunables.
func (e *Engine) Settings() Settings { return e.settings }

// Grid returns the map the engine runs on.
func (e *Engine) Grid() *Grid { return e.grid }

// Player returns the simulated player.
func (e *Engine) Player() *Player { return e.player }

// Rays returns the fan computed by the last frame. The slice is reused by
// the next frame.
func (e *Engine) Rays() []Ray { return e.rays }

// HitTiles reports how many distinct wall tiles the last fan struck. It is
// only tracked while HighlightHits is on.
func (e *Engine) HitTiles() int { return e.hits.count }

// Frames reports how many frames have run.
func (e *Engine) Frames() uint64 { return e.frames }

// KeyDown forwards a key press to the player.
func (e *Engine) KeyDown(key string) { e.player.KeyDown(key) }

// KeyUp forwards a key release to the player.
func (e *Engine) KeyUp(key string) { e.player.KeyUp(key) }

// Step applies the pending intent and rebuilds the ray fan without drawing.
func (e *Engine) Step() {
	e.player.Update(e.grid)
	e.rays = CastFan(e.grid, e.player, e.settings.FieldOfView, e.settings.Columns(e.grid.Width()), e.rays)
	if e.settings.HighlightHits {
		e.hits.mark(e.grid, e.rays)
	}
	e.frames++
}

// Frame runs one full tick: clear, grid, update, cast, then player and rays.
func (e *Engine) Frame(s Surface) {
	s.Clear(0, 0, e.grid.Width(), e.grid.Height())
	e.grid.Render(s)
	e.Step()
	if e.settings.HighlightHits {
		e.hits.render(s, e.grid)
	}
	e.player.Render(s)
	if e.settings.ShowRays {
		for i := range e.rays {
			e.rays[i].Render(s, e.player.X, e.player.Y)
		}
	}
}
