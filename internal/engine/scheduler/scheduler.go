// Package scheduler implements the precompiler: it prepares every template in extends order.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"sync"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Engine is the part of the template engine the precompiler drives.
type Engine interface {
	// Plan refreshes the template under key and returns the stable key of its parent, if any.
	Plan(ctx context.Context, key string) (parent string, err error)
	// Prepare compiles, enhances and loads the template under key.
	Prepare(ctx context.Context, key string) error
}

// Report summarises a precompile run.
type Report struct {
	// Order is the processing order, parents first.
	Order []string
	// Status maps each stable key to its final status.
	Status map[string]domain.RunStatus
}

// Count returns the number of units with the given status.
func (r Report) Count(status domain.RunStatus) int {
	n := 0
	for _, s := range r.Status {
		if s == status {
			n++
		}
	}
	return n
}

// Precompiler prepares templates in dependency waves with bounded parallelism.
type Precompiler struct {
	logger ports.Logger

	mu         sync.RWMutex
	unitStatus map[string]domain.RunStatus
}

// NewPrecompiler creates a new Precompiler.
func NewPrecompiler(logger ports.Logger) *Precompiler {
	return &Precompiler{
		logger:     logger,
		unitStatus: make(map[string]domain.RunStatus),
	}
}

// Run plans every key, orders the extends graph and prepares each wave in turn.
// A unit whose parent failed is skipped. jobs below one means GOMAXPROCS.
func (p *Precompiler) Run(ctx context.Context, engine Engine, keys []string, jobs int) (Report, error) {
	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}

	graph, err := p.plan(ctx, engine, keys, jobs)
	if err != nil {
		return Report{}, err
	}

	var order []string
	for node := range graph.Walk() {
		order = append(order, node.Key)
	}
	p.initStatuses(order)

	var errs error
	for _, wave := range graph.Waves() {
		if err := ctx.Err(); err != nil {
			errs = errors.Join(errs, err)
			break
		}
		errs = errors.Join(errs, p.runWave(ctx, engine, graph, wave, jobs))
	}

	return Report{Order: order, Status: p.statuses()}, errs
}

// plan refreshes every key in parallel and builds the extends graph.
func (p *Precompiler) plan(ctx context.Context, engine Engine, keys []string, jobs int) (*domain.Graph, error) {
	parents := make([]string, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, key := range keys {
		g.Go(func() error {
			parent, err := engine.Plan(gctx, key)
			if err != nil {
				return zerr.With(err, "unit", key)
			}
			parents[i] = parent
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	graph := domain.NewGraph()
	known := make(map[string]bool, len(keys))
	for _, key := range keys {
		known[key] = true
	}
	for i, key := range keys {
		parent := parents[i]
		if parent != "" && !known[parent] {
			// Parents outside the walked set are prepared through their child.
			parent = ""
		}
		if err := graph.AddNode(domain.GraphNode{Key: key, Parent: parent}); err != nil {
			return nil, err
		}
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	return graph, nil
}

func (p *Precompiler) runWave(ctx context.Context, engine Engine, graph *domain.Graph, wave []string, jobs int) error {
	var (
		mu   sync.Mutex
		errs error
		g    errgroup.Group
	)
	g.SetLimit(jobs)
	for _, key := range wave {
		node, _ := graph.Node(key)
		if node.Parent != "" && p.getStatus(node.Parent) != domain.StatusCompleted {
			p.updateStatus(key, domain.StatusSkipped)
			continue
		}

		p.updateStatus(key, domain.StatusRunning)
		g.Go(func() error {
			if err := engine.Prepare(ctx, key); err != nil {
				p.updateStatus(key, domain.StatusFailed)
				p.logger.Warn(fmt.Sprintf("precompile: %s failed", key))
				mu.Lock()
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrPrecompileFailed.Error()), "unit", key))
				mu.Unlock()
				return nil
			}
			p.updateStatus(key, domain.StatusCompleted)
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

// initStatuses resets the run and sets every unit to Pending.
func (p *Precompiler) initStatuses(keys []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	clear(p.unitStatus)
	for _, key := range keys {
		p.unitStatus[key] = domain.StatusPending
	}
}

// updateStatus updates the status of a unit.
func (p *Precompiler) updateStatus(key string, status domain.RunStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unitStatus[key] = status
}

// getStatus retrieves the status of a unit.
func (p *Precompiler) getStatus(key string) domain.RunStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unitStatus[key]
}

func (p *Precompiler) statuses() map[string]domain.RunStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.unitStatus)
}
