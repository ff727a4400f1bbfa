package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Erotemic/ahoy/internal/core/domain"
	"github.com/Erotemic/ahoy/internal/logger"
)

// Editors fire bursts of events per save; one regeneration per window is
// plenty for a file that only changes on save.
const watchWindow = 500 * time.Millisecond

// runWatch regenerates the aggregator file whenever a source file in the
// package changes, until the context is cancelled.
func runWatch(cmd *cobra.Command, target string, opts domain.Options) error {
	pkgPath, err := initService.ResolvePackage(target)
	if err != nil {
		return fmt.Errorf("watching %s: %w", target, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(pkgPath); err != nil {
		return fmt.Errorf("watching %s: %w", pkgPath, err)
	}

	if err := generateOnce(cmd, target, opts); err != nil {
		return err
	}
	cmd.Println(warnStyle.Render("watching ") + pathStyle.Render(pkgPath))

	limiter := rate.NewLimiter(rate.Every(watchWindow), 1)
	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantChange(event) {
				continue
			}
			// Collapse editor event bursts; our own write of the
			// aggregator file is filtered out by relevantChange.
			if !limiter.Allow() {
				continue
			}
			logger.Debug("change detected: %s", event.Name)
			if err := generateOnce(cmd, target, opts); err != nil {
				logger.Error("regeneration failed: %v", err)
			}
		}
	}
}

// relevantChange reports whether the event concerns a source file other
// than the aggregator file itself (which we rewrite on every run).
func relevantChange(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if name == "__init__.py" || strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(name, ".py")
}
