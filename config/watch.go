package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file on change and calls onChange with each
// successfully loaded configuration. It blocks until ctx is cancelled.
// Reload errors are logged and skipped; the previous configuration stays
// in effect. Editors that replace the file (rename + create) are handled
// by watching the directory rather than the file itself.
func Watch(ctx context.Context, path string, log *slog.Logger, onChange func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				log.ErrorContext(ctx, "config reload failed",
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
				continue
			}
			log.InfoContext(ctx, "config reloaded", slog.String("path", path))
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.ErrorContext(ctx, "config watcher error", slog.String("error", err.Error()))
		}
	}
}
