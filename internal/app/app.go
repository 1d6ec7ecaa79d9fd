// Package app implements the application layer for quill.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/quill/internal/adapters/cas"
	"go.trai.ch/quill/internal/adapters/enhancer"
	qfs "go.trai.ch/quill/internal/adapters/fs"
	"go.trai.ch/quill/internal/adapters/resource"
	"go.trai.ch/quill/internal/adapters/sanitize"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/engine/lifecycle"
	"go.trai.ch/quill/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	parser       ports.Parser
	compiler     ports.SourceCompiler
	loader       ports.Loader
	telemetry    ports.Telemetry
	walker       ports.TemplateWalker
	hasher       *qfs.Hasher
	watcher      ports.Watcher
	precompiler  *scheduler.Precompiler
	workDir      string
}

// Deps lists the collaborators of an App.
type Deps struct {
	ConfigLoader ports.ConfigLoader
	Logger       ports.Logger
	Parser       ports.Parser
	Compiler     ports.SourceCompiler
	Loader       ports.Loader
	Telemetry    ports.Telemetry
	Walker       ports.TemplateWalker
	Hasher       *qfs.Hasher
	Watcher      ports.Watcher
	Precompiler  *scheduler.Precompiler
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{
		configLoader: deps.ConfigLoader,
		logger:       deps.Logger,
		parser:       deps.Parser,
		compiler:     deps.Compiler,
		loader:       deps.Loader,
		telemetry:    deps.Telemetry,
		walker:       deps.Walker,
		hasher:       deps.Hasher,
		watcher:      deps.Watcher,
		precompiler:  deps.Precompiler,
		workDir:      ".",
	}
}

// WithWorkDir sets the directory the configuration is searched from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Engine is a configured template engine.
type Engine struct {
	Config  *domain.Config
	Manager *lifecycle.Manager
	Locator *resource.Locator
}

// Engine loads the configuration and builds the template engine it describes.
func (a *App) Engine() (*Engine, error) {
	dir, err := filepath.Abs(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	a.logger.SetLevel(cfg.LogLevel)
	a.logger.SetJSON(cfg.LogJSON)

	enhancers, err := enhancer.Chain(cfg.Enhancers)
	if err != nil {
		return nil, err
	}

	compiler := a.compiler
	if cfg.Cache {
		store := cas.NewStore(filepath.Join(cfg.Root, domain.DefaultStorePath()))
		compiler = cas.NewCachingCompiler(compiler, store, a.hasher, a.logger)
	}

	locator := resource.NewLocator(cfg, a.hasher)
	deps := lifecycle.Deps{
		Locator:   locator,
		Parser:    a.parser,
		Compiler:  compiler,
		Enhancers: enhancers,
		Loader:    a.loader,
		Logger:    a.logger,
		Telemetry: a.telemetry,
		Defaults:  cfg.DefaultArgs,
	}

	sanitizer, err := sanitize.New(cfg.Sanitize)
	if err != nil {
		return nil, err
	}
	if sanitizer != nil {
		deps.Sanitizer = sanitizer
	}

	return &Engine{
		Config:  cfg,
		Manager: lifecycle.NewManager(deps),
		Locator: locator,
	}, nil
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// Template is a template path relative to the template root, or inline template text.
	Template string
	// Named binds arguments by name.
	Named map[string]any
	// Positional binds arguments by declaration order. It is ignored when Named is set.
	Positional []any
}

// Render renders one template.
func (a *App) Render(ctx context.Context, opts RenderOptions) (string, error) {
	engine, err := a.Engine()
	if err != nil {
		return "", err
	}
	defer a.closeTelemetry()

	args := lifecycle.ByPosition(opts.Positional...)
	if len(opts.Named) > 0 {
		args = lifecycle.ByName(opts.Named)
	}
	return engine.Manager.Render(ctx, opts.Template, args)
}

// PrecompileResult is the outcome of a precompile run.
type PrecompileResult struct {
	Report scheduler.Report
	Units  []domain.UnitInfo
}

// Precompile refreshes, compiles, enhances and loads every template under the template root.
func (a *App) Precompile(ctx context.Context, jobs int) (PrecompileResult, error) {
	engine, err := a.Engine()
	if err != nil {
		return PrecompileResult{}, err
	}
	defer a.closeTelemetry()

	return a.precompile(ctx, engine, jobs)
}

func (a *App) precompile(ctx context.Context, engine *Engine, jobs int) (PrecompileResult, error) {
	keys, err := a.templates(engine.Config)
	if err != nil {
		return PrecompileResult{}, err
	}

	report, err := a.precompiler.Run(ctx, scheduler.ManagerEngine{Manager: engine.Manager}, keys, jobs)
	result := PrecompileResult{Report: report, Units: engine.Manager.Units()}
	if err != nil {
		return result, err
	}
	a.logger.Info(fmt.Sprintf("precompiled %d templates", report.Count(domain.StatusCompleted)))
	return result, nil
}

// templates lists the template keys under the template root in walk order.
func (a *App) templates(cfg *domain.Config) ([]string, error) {
	var keys []string
	for key, err := range a.walker.Walk(cfg.Home, cfg.Extensions) {
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

// Clean removes the on-disk artifact store.
func (a *App) Clean(_ context.Context) error {
	dir, err := filepath.Abs(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve working directory")
	}
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	path := filepath.Join(cfg.Root, domain.DefaultStorePath())
	a.logger.Info("removing artifact store...")
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove artifact store"), "path", path)
	}
	a.logger.Info("removed artifact store")
	return nil
}

func (a *App) closeTelemetry() {
	if err := a.telemetry.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		a.logger.Warn("telemetry: " + err.Error())
	}
}
