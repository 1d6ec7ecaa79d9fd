package lifecycle_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/engine/lifecycle"
)

func TestCache_NextVersionIsUniqueAcrossGoroutines(t *testing.T) {
	c := lifecycle.NewCache()

	const workers, perWorker = 8, 200
	results := make([][]int64, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Go(func() {
			for range perWorker {
				results[w] = append(results[w], c.NextVersion())
			}
		})
	}
	wg.Wait()

	seen := make(map[int64]bool, workers*perWorker)
	for _, versions := range results {
		for i, v := range versions {
			require.False(t, seen[v], "version %d handed out twice", v)
			seen[v] = true
			if i > 0 {
				require.Greater(t, v, versions[i-1])
			}
		}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestCache_UnitsAreOrderedSnapshots(t *testing.T) {
	f := newFixture(
		newResource("b.html", "b"),
		newResource("a.html", "@def x() {x}\na"),
	)
	m := f.manager()
	ctx := context.Background()
	resolve(t, m, "b.html")
	a := resolve(t, m, "a.html")
	_, err := a.Compile(ctx)
	require.NoError(t, err)

	units := m.Units()
	require.Len(t, units, 3)
	names := []string{units[0].VersionedName, units[1].VersionedName, units[2].VersionedName}
	assert.IsNonDecreasing(t, names)

	var inner domain.UnitInfo
	for _, info := range units {
		if info.Inner {
			inner = info
		}
	}
	assert.Equal(t, domain.InnerName(a.VersionedName(), "x"), inner.Identity)
	assert.Equal(t, a.Version(), inner.Version)
	assert.Equal(t, domain.StageCompiled, inner.Stage)
}

func TestCache_RegenerationDropsInnerUnits(t *testing.T) {
	res := newResource("a.html", "@def x() {x}\na")
	f := newFixture(res)
	m := f.manager()
	ctx := context.Background()

	a := resolve(t, m, "a.html")
	_, err := a.Compile(ctx)
	require.NoError(t, err)
	inner, ok := a.Inner("x")
	require.True(t, ok)
	oldInner := inner.VersionedName()

	res.set("a")
	_, err = a.Refresh(ctx)
	require.NoError(t, err)

	_, ok = a.Inner("x")
	assert.False(t, ok)
	_, ok = m.Cache().ByName(oldInner)
	assert.False(t, ok)
}

func TestCache_TagMovesWithItsUnit(t *testing.T) {
	res := newResource("tags/t.html", "@tag(first)\nt")
	f := newFixture(res)
	m := f.manager()
	ctx := context.Background()

	u := resolve(t, m, "tags/t.html")
	got, ok := m.Cache().ByTag("first")
	require.True(t, ok)
	assert.Same(t, u, got)

	res.set("@tag(second)\nt")
	_, err := u.Refresh(ctx)
	require.NoError(t, err)

	_, ok = m.Cache().ByTag("first")
	assert.False(t, ok)
	got, ok = m.Cache().ByTag("second")
	require.True(t, ok)
	assert.Same(t, u, got)
}
