package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Tuning holds the user-facing tunables, in the units people think in.
type Tuning struct {
	FOVDegrees       float64 `json:"fov_deg"`
	StripWidth       float64 `json:"strip_width"`
	MoveSpeed        float64 `json:"move_speed"`
	TurnSpeedDegrees float64 `json:"turn_speed_deg"`
	ShowRays         bool    `json:"show_rays"`
	HighlightHits    bool    `json:"highlight_hits"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		FOVDegrees:       60,
		StripWidth:       1,
		MoveSpeed:        2,
		TurnSpeedDegrees: 2,
		ShowRays:         true,
	}
}

// Load reads the tuning file at path on top of base. Fields missing from the
// file keep their base values. A missing file is created from base.
func Load(path string, base Tuning) (Tuning, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, base); err != nil {
			return base, err
		}
		return base, nil
	}
	return read(path, base)
}

// Save writes t to path as indented JSON.
func Save(path string, t Tuning) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tuning: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// read decodes path over a copy of base.
func read(path string, base Tuning) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading %q: %w", path, err)
	}
	t := base
	if err := json.Unmarshal(raw, &t); err != nil {
		return base, fmt.Errorf("decoding %q: %w", path, err)
	}
	return t, nil
}
