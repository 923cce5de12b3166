package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file at path or the dotenv file
// changes and delivers
// the result on out, replacing any value still waiting there; out must be
// buffered. Reload failures go to onErr and leave the previous config in
// place. Watch blocks until ctx is done.
//
// The directory is watched rather than the file, so editors that save by
// renaming a temporary file are still seen.
func Watch(ctx context.Context, path, dotenv string, out chan Config, onErr func(error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	watched := map[string]bool{abs: true}
	if dotenv != "" {
		absEnv, err := filepath.Abs(dotenv)
		if err != nil {
			return fmt.Errorf("watch %s: %w", dotenv, err)
		}
		dotenv = absEnv
		watched[dotenv] = true
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	dirs := map[string]bool{}
	for name := range watched {
		dir := filepath.Dir(name)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	deb := newDebouncer(0)
	defer deb.cancel()
	reload := func() {
		cfg, err := Load(abs, dotenv)
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return
		}
		deliver(out, cfg)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				deb.trigger(reload)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if onErr != nil {
				onErr(fmt.Errorf("watch %s: %w", path, err))
			}
		}
	}
}

// deliver replaces a pending config on out with cfg without blocking.
func deliver(out chan Config, cfg Config) {
	for {
		select {
		case out <- cfg:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
