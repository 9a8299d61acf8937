// ABOUTME: Live config reload via filesystem notifications.
// ABOUTME: Watches the config directory and reloads on writes to config.json.

package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchConfig reloads the config whenever the file at path changes and hands
// the result to onChange. The parent directory is watched rather than the
// file itself, since most editors replace the file on save.
// The returned watcher must be closed to stop the goroutine.
func watchConfig(path string, onChange func(*Config)) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		// Coalesce bursts of events from editors that write in several steps.
		var pending <-chan time.Time

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				pending = time.After(100 * time.Millisecond)

			case <-pending:
				pending = nil
				cfg, err := LoadConfig(path)
				if err != nil {
					log.Printf("config reload failed: %v", err)
					continue
				}
				onChange(cfg)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config watcher error: %v", err)
			}
		}
	}()

	return watcher, nil
}
