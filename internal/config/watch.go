package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"raycaster/pkg/logger"
)

// Watch reloads path whenever it is written or recreated and sends each
// successfully decoded Tuning on the returned channel. Decoding is done over
// base. The channel is closed when ctx is cancelled or the watcher fails.
//
// The watcher goroutine is the only sender; the receiver is expected to
// drain the channel without blocking from its own loop.
func Watch(ctx context.Context, path string, base Tuning) (<-chan Tuning, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %q: %w", dir, err)
	}

	log := logger.Component("config").WithField("path", path)
	target := filepath.Clean(path)
	out := make(chan Tuning, 1)

	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				t, err := read(path, base)
				if err != nil {
					log.WithError(err).Warn("Ignoring unreadable tuning file.")
					continue
				}
				log.Info("Tuning reloaded.")
				// Keep only the newest value if the consumer is behind.
				select {
				case <-out:
				default:
				}
				select {
				case out <- t:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Error("Watcher error.")
			}
		}
	}()
	return out, nil
}
