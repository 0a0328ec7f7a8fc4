package raycast

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the engine tunables that may change between frames.
type Settings struct {
	// FieldOfView is the angular width of the ray fan in radians.
	FieldOfView float64
	// StripWidth is the number of world units covered by each column.
	StripWidth    float64
	MoveSpeed     float64
	TurnSpeed     float64
	ShowRays      bool
	HighlightHits bool
}

// DefaultSettings returns a 60° fan with one ray per world unit.
func DefaultSettings() Settings {
	return Settings{
		FieldOfView: 60 * math.Pi / 180,
		StripWidth:  1,
		MoveSpeed:   defaultMoveSpeed,
		TurnSpeed:   defaultTurnSpeed,
		ShowRays:    true,
	}
}

// Validate rejects settings the engine cannot run with.
func (s Settings) Validate() error {
	switch {
	case !(s.FieldOfView > 0 && s.FieldOfView <= twoPi):
		return fmt.Errorf("%w: field of view %v must be in (0, 2π]", ErrInvalidSettings, s.FieldOfView)
	case !(s.StripWidth >= 1) || math.IsInf(s.StripWidth, 0):
		return fmt.Errorf("%w: strip width %v must be at least 1", ErrInvalidSettings, s.StripWidth)
	case !(s.MoveSpeed >= 0) || math.IsInf(s.MoveSpeed, 0):
		return fmt.Errorf("%w: move speed %v", ErrInvalidSettings, s.MoveSpeed)
	case !(s.TurnSpeed >= 0) || math.IsInf(s.TurnSpeed, 0):
		return fmt.Errorf("%w: turn speed %v", ErrInvalidSettings, s.TurnSpeed)
	}
	return nil
}

// Columns is the number of rays needed to cover a surface of the given width.
func (s Settings) Columns(width float64) int {
	return int(math.Floor(width / s.StripWidth))
}
