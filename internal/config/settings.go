package config

import (
	"math"

	"raycaster/internal/raycast"
)

// Settings converts t to engine settings, degrees to radians.
func (t Tuning) Settings() raycast.Settings {
	return raycast.Settings{
		FieldOfView:   t.FOVDegrees * math.Pi / 180,
		StripWidth:    t.StripWidth,
		MoveSpeed:     t.MoveSpeed,
		TurnSpeed:     t.TurnSpeedDegrees * math.Pi / 180,
		ShowRays:      t.ShowRays,
		HighlightHits: t.HighlightHits,
	}
}
