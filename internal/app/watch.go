package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/quill/internal/adapters/resource"
	"go.trai.ch/quill/internal/adapters/watcher"
	"go.trai.ch/quill/internal/engine/lifecycle"
	"go.trai.ch/quill/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Jobs bounds precompile parallelism.
	Jobs int
	// OnPrecompile is called with the result of the initial precompile.
	OnPrecompile func(result PrecompileResult, err error)
	// OnWatching is called once the template root is watched.
	OnWatching func(home string)
	// OnReload is called after every reload.
	OnReload func(report scheduler.Report, err error)
}

// Watch precompiles every template, then reloads changed templates until ctx ends.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	engine, err := a.Engine()
	if err != nil {
		return err
	}
	defer a.closeTelemetry()

	result, err := a.precompile(ctx, engine, opts.Jobs)
	if err != nil {
		// A broken template must not stop the watch.
		a.logger.Error(err)
	}
	if opts.OnPrecompile != nil {
		opts.OnPrecompile(result, err)
	}

	if err := a.watcher.Start(ctx, engine.Config.Home); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()
	a.logger.Info(fmt.Sprintf("watching %s", engine.Config.Home))
	if opts.OnWatching != nil {
		opts.OnWatching(engine.Config.Home)
	}

	r := &reloader{app: a, engine: engine, opts: opts}
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		r.reload(ctx, paths)
	})

	events := a.watcher.Events()
	for event := range events {
		if ctx.Err() != nil {
			break
		}
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// reloader turns a batch of changed paths into a precompile of the affected units.
type reloader struct {
	// mu serialises reloads; batches may fire while a reload runs.
	mu     sync.Mutex
	app    *App
	engine *Engine
	opts   WatchOptions
}

func (r *reloader) reload(ctx context.Context, paths []string) {
	if ctx.Err() != nil {
		return
	}
	changed := r.changedKeys(paths)
	if len(changed) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	keys := r.withDependents(changed)

	report, err := r.app.precompiler.Run(ctx, scheduler.ManagerEngine{Manager: r.engine.Manager}, keys, r.opts.Jobs)
	if err != nil {
		r.app.logger.Error(zerr.Wrap(err, "reload failed"))
	} else {
		r.app.logger.Info(fmt.Sprintf("reloaded %d templates", len(report.Order)))
	}
	if r.opts.OnReload != nil {
		r.opts.OnReload(report, err)
	}
}

// changedKeys maps paths to template keys and marks them dirty. Removed files are dropped.
func (r *reloader) changedKeys(paths []string) []string {
	var keys []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		key, ok := r.engine.Locator.KeyFor(abs)
		if !ok {
			continue
		}
		if info, err := os.Stat(abs); err != nil || !info.Mode().IsRegular() {
			r.app.logger.Info(fmt.Sprintf("%s removed", key))
			continue
		}
		r.engine.Locator.MarkDirty(key)
		keys = append(keys, key)
	}
	return keys
}

// withDependents adds every live unit that extends one of changed, directly or not.
func (r *reloader) withDependents(changed []string) []string {
	keys := slices.Clone(changed)
	for _, u := range r.engine.Manager.Cache().Units() {
		if u.Root() != u {
			continue
		}
		key := u.StableKey()
		if strings.HasPrefix(key, resource.InlinePrefix) || slices.Contains(keys, key) {
			continue
		}
		if extendsAny(u, changed) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

func extendsAny(u *lifecycle.Unit, keys []string) bool {
	seen := map[*lifecycle.Unit]bool{u: true}
	for p := u.Extends(); p != nil && !seen[p]; p = p.Extends() {
		if slices.Contains(keys, p.StableKey()) {
			return true
		}
		seen[p] = true
	}
	return false
}
