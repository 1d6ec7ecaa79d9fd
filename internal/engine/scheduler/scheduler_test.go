package scheduler_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports/mocks"
	"go.trai.ch/quill/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

// fakeEngine records the order of Prepare calls.
type fakeEngine struct {
	parents map[string]string
	failing map[string]bool
	planErr error

	mu       sync.Mutex
	prepared []string
	active   atomic.Int32
	peak     atomic.Int32
}

func (e *fakeEngine) Plan(_ context.Context, key string) (string, error) {
	if e.planErr != nil {
		return "", e.planErr
	}
	return e.parents[key], nil
}

func (e *fakeEngine) Prepare(_ context.Context, key string) error {
	n := e.active.Add(1)
	defer e.active.Add(-1)
	for {
		peak := e.peak.Load()
		if n <= peak || e.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	e.mu.Lock()
	e.prepared = append(e.prepared, key)
	e.mu.Unlock()
	if e.failing[key] {
		return errors.New("boom")
	}
	return nil
}

func (e *fakeEngine) index(key string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Index(e.prepared, key)
}

func newPrecompiler(t *testing.T) *scheduler.Precompiler {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return scheduler.NewPrecompiler(logger)
}

func TestPrecompiler_ParentsFirst(t *testing.T) {
	engine := &fakeEngine{parents: map[string]string{
		"page.html":   "layout.html",
		"about.html":  "layout.html",
		"layout.html": "base.html",
	}}
	keys := []string{"page.html", "about.html", "layout.html", "base.html", "solo.html"}

	report, err := newPrecompiler(t).Run(context.Background(), engine, keys, 4)
	require.NoError(t, err)

	assert.Len(t, engine.prepared, len(keys))
	assert.Less(t, engine.index("base.html"), engine.index("layout.html"))
	assert.Less(t, engine.index("layout.html"), engine.index("page.html"))
	assert.Less(t, engine.index("layout.html"), engine.index("about.html"))
	assert.Equal(t, len(keys), report.Count(domain.StatusCompleted))
	assert.Less(t, slices.Index(report.Order, "base.html"), slices.Index(report.Order, "page.html"))
}

func TestPrecompiler_FailedParentSkipsChildren(t *testing.T) {
	engine := &fakeEngine{
		parents: map[string]string{"page.html": "layout.html", "deep.html": "page.html"},
		failing: map[string]bool{"layout.html": true},
	}
	p := newPrecompiler(t)

	report, err := p.Run(context.Background(), engine, []string{"layout.html", "page.html", "deep.html", "other.html"}, 2)
	require.Error(t, err)
	assert.True(t, domain.HasKind(err, domain.ErrPrecompileFailed), "%v", err)

	assert.Equal(t, domain.StatusFailed, report.Status["layout.html"])
	assert.Equal(t, domain.StatusSkipped, report.Status["page.html"])
	assert.Equal(t, domain.StatusSkipped, report.Status["deep.html"])
	assert.Equal(t, domain.StatusCompleted, report.Status["other.html"])
	assert.Equal(t, domain.StatusCompleted, p.GetUnitStatus("other.html"))
	assert.Equal(t, -1, engine.index("page.html"))
}

func TestPrecompiler_BoundedParallelism(t *testing.T) {
	engine := &fakeEngine{}
	keys := []string{"a.html", "b.html", "c.html", "d.html", "e.html", "f.html"}

	_, err := newPrecompiler(t).Run(context.Background(), engine, keys, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), engine.peak.Load())
}

func TestPrecompiler_ParentOutsideSet(t *testing.T) {
	engine := &fakeEngine{parents: map[string]string{"page.html": "shared/layout.html"}}

	report, err := newPrecompiler(t).Run(context.Background(), engine, []string{"page.html"}, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, report.Status["page.html"])
}

func TestPrecompiler_CycleDetected(t *testing.T) {
	engine := &fakeEngine{parents: map[string]string{"a.html": "b.html", "b.html": "a.html"}}

	_, err := newPrecompiler(t).Run(context.Background(), engine, []string{"a.html", "b.html"}, 2)
	assert.True(t, domain.HasKind(err, domain.ErrCycleDetected), "%v", err)
	assert.Empty(t, engine.prepared)
}

func TestPrecompiler_PlanFailure(t *testing.T) {
	engine := &fakeEngine{planErr: domain.ErrParse}

	_, err := newPrecompiler(t).Run(context.Background(), engine, []string{"a.html"}, 1)
	assert.True(t, domain.HasKind(err, domain.ErrParse), "%v", err)
}

func TestPrecompiler_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	engine := &fakeEngine{}

	_, err := newPrecompiler(t).Run(ctx, engine, []string{"a.html"}, 1)
	require.Error(t, err)
	assert.Empty(t, engine.prepared)
}
