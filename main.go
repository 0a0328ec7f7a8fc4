package main

import (
	"context"
	"flag"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raycaster/internal/config"
	"raycaster/internal/raycast"
	"raycaster/internal/snapshot"
	"raycaster/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())
	log := logger.Component("main")

	tuning := flagTuning()
	if *configPathFlag != "" {
		t, err := config.Load(*configPathFlag, tuning)
		if err != nil {
			log.WithError(err).Fatal("Failed to load tuning file.")
		}
		tuning = t
	}

	engine, err := raycast.NewEngine(raycast.DefaultGrid(), tuning.Settings())
	if err != nil {
		log.WithError(err).Fatal("Failed to create engine.")
	}

	if *snapshotFlag != "" {
		if err := runSnapshot(engine, *snapshotFlag); err != nil {
			log.WithError(err).Fatal("Snapshot failed.")
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var updates <-chan config.Tuning
	if *configPathFlag != "" {
		updates, err = config.Watch(ctx, *configPathFlag, tuning)
		if err != nil {
			log.WithError(err).Warn("Tuning hot reload disabled.")
		}
	}

	g := newGame(engine, updates)
	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(pgoProfilePath)
		if err != nil {
			log.WithError(err).Fatal("Failed to start PGO recording.")
		}
		defer stop()
		g.enableAutoWalk(pgoRecordDuration, stop)
	}

	grid := engine.Grid()
	scale := *windowScaleFlag
	if scale < 1 {
		scale = 1
	}
	ebiten.SetTPS(defaultTPS)
	ebiten.SetWindowSize(int(grid.Width())*scale, int(grid.Height())*scale)
	ebiten.SetWindowTitle(windowTitle)
	log.WithField("rays", engine.Settings().Columns(grid.Width())).Info("Starting raycaster.")
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("Game loop failed.")
	}
}

// runSnapshot simulates the requested frames headless and writes the last one.
func runSnapshot(engine *raycast.Engine, path string) error {
	frames := *snapshotFramesFlag
	if frames < 1 {
		frames = 1
	}
	for _, k := range *snapshotKeysFlag {
		engine.KeyDown(string(k))
	}
	grid := engine.Grid()
	surface := snapshot.NewSurface(int(grid.Width()), int(grid.Height()))
	for i := 0; i < frames; i++ {
		engine.Frame(surface)
	}
	if err := surface.Save(path, *snapshotScaleFlag); err != nil {
		return err
	}
	p := engine.Player()
	logger.Component("snapshot").WithFields(logrus.Fields{
		"path":   path,
		"frames": frames,
		"x":      p.X,
		"y":      p.Y,
	}).Info("Snapshot written.")
	return nil
}
