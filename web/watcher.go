package web

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watch re-parses the templates whenever an .html file in the renderer's
// directory changes. It blocks until ctx is cancelled.
func (r *Renderer) Watch(ctx context.Context) error {
	if r.dir == "" {
		return errors.New("watch requires a template directory")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(r.dir); err != nil {
		return err
	}
	log.Printf("WATCHER: Watching templates in %s", r.dir)

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			log.Println("WATCHER: Context cancelled, shutting down watcher.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".html" {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(reloadDebounce, func() {
				if err := r.Reload(); err != nil {
					log.Printf("WATCHER ERROR: Reload failed, keeping previous templates: %v", err)
					return
				}
				log.Printf("WATCHER: Templates reloaded after change to %s", filepath.Base(event.Name))
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("WATCHER ERROR: %v", err)
		}
	}
}
