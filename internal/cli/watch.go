// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce coalesces the burst of events a single save produces.
const watchDebounce = 200 * time.Millisecond

// watch calls onChange after dataset files in the data directory settle,
// until ctx is done.
func (a *app) watch(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(a.cfg.DataDir); err != nil {
		return fmt.Errorf("watch %s: %w", a.cfg.DataDir, err)
	}
	a.log.Info("watching dataset", zap.String("dir", a.cfg.DataDir))

	ticker := time.NewTicker(watchDebounce)
	defer ticker.Stop()

	var last time.Time
	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isDatasetFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				a.log.Debug("dataset changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
				pending, last = true, time.Now()
			}

		case <-ticker.C:
			if pending && time.Since(last) >= watchDebounce {
				pending = false
				onChange()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", zap.Error(err))
		}
	}
}

func isDatasetFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}
