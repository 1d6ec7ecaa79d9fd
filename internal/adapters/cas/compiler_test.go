package cas_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/cas"
	qfs "go.trai.ch/quill/internal/adapters/fs"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type memSink struct {
	mu       sync.Mutex
	code     map[string]string
	compiled map[string]string
	inners   map[string]string
}

func newSink(code map[string]string) *memSink {
	return &memSink{code: code, compiled: map[string]string{}, inners: map[string]string{}}
}

func (s *memSink) GeneratedCode(name string) (string, bool) {
	c, ok := s.code[name]
	return c, ok
}

func (s *memSink) SetCompiled(name string, artifact []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compiled[name] = string(artifact)
}

func (s *memSink) AddInner(rootName, local string, artifact []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inners[domain.InnerName(rootName, local)] = string(artifact)
}

// upperCompiler upper-cases the generated code and emits one inner unit per name.
type upperCompiler struct {
	calls []string
}

func (c *upperCompiler) CompileByName(_ context.Context, names []string, sink ports.ArtifactSink) error {
	for _, name := range names {
		c.calls = append(c.calls, name)
		code, _ := sink.GeneratedCode(name)
		sink.SetCompiled(name, []byte(strings.ToUpper(code)+" "+name))
		sink.AddInner(name, "x", []byte("inner of "+name))
	}
	return nil
}

func newCaching(t *testing.T, next ports.SourceCompiler) *cas.CachingCompiler {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return cas.NewCachingCompiler(next, cas.NewStore(t.TempDir()), qfs.NewHasher(), logger)
}

func TestCachingCompiler_ReplaysUnderNewName(t *testing.T) {
	next := &upperCompiler{}
	c := newCaching(t, next)
	ctx := context.Background()

	first := newSink(map[string]string{"a__qu1": "code of a__qu1"})
	require.NoError(t, c.CompileByName(ctx, []string{"a__qu1"}, first))
	assert.Equal(t, "CODE OF A__QU1 a__qu1", first.compiled["a__qu1"])

	second := newSink(map[string]string{"a__qu7": "code of a__qu7"})
	require.NoError(t, c.CompileByName(ctx, []string{"a__qu7"}, second))

	assert.Equal(t, []string{"a__qu1"}, next.calls, "same source under a new version is a hit")
	assert.Equal(t, "CODE OF A__QU1 a__qu7", second.compiled["a__qu7"])
	assert.Equal(t, "inner of a__qu7", second.inners["a__qu7$x"])
}

func TestCachingCompiler_CompilesOnlyMisses(t *testing.T) {
	next := &upperCompiler{}
	c := newCaching(t, next)
	ctx := context.Background()

	require.NoError(t, c.CompileByName(ctx, []string{"a__qu1"}, newSink(map[string]string{"a__qu1": "one"})))

	sink := newSink(map[string]string{"a__qu2": "one", "b__qu3": "two"})
	require.NoError(t, c.CompileByName(ctx, []string{"a__qu2", "b__qu3"}, sink))

	assert.Equal(t, []string{"a__qu1", "b__qu3"}, next.calls)
	assert.Len(t, sink.compiled, 2)
}

func TestCachingCompiler_MarksVertexCached(t *testing.T) {
	next := &upperCompiler{}
	c := newCaching(t, next)
	require.NoError(t, c.CompileByName(context.Background(), []string{"a__qu1"}, newSink(map[string]string{"a__qu1": "one"})))

	ctrl := gomock.NewController(t)
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Cached()
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	require.NoError(t, c.CompileByName(ctx, []string{"a__qu2"}, newSink(map[string]string{"a__qu2": "one"})))
}

func TestCachingCompiler_ChangedSourceMisses(t *testing.T) {
	next := &upperCompiler{}
	c := newCaching(t, next)
	ctx := context.Background()

	require.NoError(t, c.CompileByName(ctx, []string{"a__qu1"}, newSink(map[string]string{"a__qu1": "one"})))
	require.NoError(t, c.CompileByName(ctx, []string{"a__qu2"}, newSink(map[string]string{"a__qu2": "uno"})))

	assert.Equal(t, []string{"a__qu1", "a__qu2"}, next.calls)
}
