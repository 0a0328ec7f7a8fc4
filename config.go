package main

import "time"

// Host-side constants for the interactive window and scripted walking. The
// simulation tunables live in internal/config.
const (
	defaultTPS          = 60
	windowTitle         = "Raycaster"
	pgoRecordDuration   = 15 * time.Second
	pgoProfilePath      = "default.pgo"
	autoWalkMinFrames   = 20
	autoWalkFrameSpread = 50
)
