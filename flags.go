package main

import (
	"flag"

	"raycaster/internal/config"
)

// Command-line flags that control rendering, tuning and the run mode. Tuning
// flags form the base that an optional -config file overrides.
var (
	// configPathFlag points at a JSON tuning file that is hot-reloaded.
	configPathFlag = flag.String("config", "", "JSON tuning file; created from flag values if missing, reloaded on change")

	// fovDegreesFlag sets the width of the ray fan.
	fovDegreesFlag = flag.Float64("fov-deg", config.Default().FOVDegrees, "field of view of the ray fan (degrees)")

	// stripWidthFlag sets how many world units each ray column covers.
	stripWidthFlag = flag.Float64("strip-width", config.Default().StripWidth, "world units per ray column (>= 1)")

	moveSpeedFlag = flag.Float64("move-speed", config.Default().MoveSpeed, "player movement per frame (world units)")

	turnSpeedFlag = flag.Float64("turn-speed-deg", config.Default().TurnSpeedDegrees, "player rotation per frame (degrees)")

	// showRaysFlag toggles drawing of the ray fan.
	showRaysFlag = flag.Bool("show-rays", config.Default().ShowRays, "draw every cast ray")

	// highlightHitsFlag outlines the wall tiles struck by the fan.
	highlightHitsFlag = flag.Bool("highlight-hits", config.Default().HighlightHits, "outline wall tiles hit by the ray fan")

	// debugFlag enables the FPS and player state overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and player state overlay")

	windowScaleFlag = flag.Int("window-scale", 2, "window size multiplier")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")

	// snapshotFlag switches to headless mode and writes one image.
	snapshotFlag = flag.String("snapshot", "", "render headless and write the last frame to this image file")

	snapshotFramesFlag = flag.Int("snapshot-frames", 1, "frames to simulate before writing the snapshot")

	// snapshotKeysFlag lists keys held down for every snapshot frame, e.g. "WD".
	snapshotKeysFlag = flag.String("snapshot-keys", "", "keys held during snapshot frames")

	snapshotScaleFlag = flag.Float64("snapshot-scale", 1, "scale factor applied to the snapshot image")
)

// flagTuning collects the tuning flags.
func flagTuning() config.Tuning {
	return config.Tuning{
		FOVDegrees:       *fovDegreesFlag,
		StripWidth:       *stripWidthFlag,
		MoveSpeed:        *moveSpeedFlag,
		TurnSpeedDegrees: *turnSpeedFlag,
		ShowRays:         *showRaysFlag,
		HighlightHits:    *highlightHitsFlag,
	}
}
