package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"raycaster/pkg/logger"
)

// startDefaultPGORecording begins writing a CPU profile to path. The returned
// stop function is safe to call more than once.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	logger.Component("pgo").WithField("path", path).Info("CPU profile recording started.")
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				logger.Component("pgo").WithError(err).Warn("Closing profile failed.")
			}
		})
	}
	return stop, nil
}
