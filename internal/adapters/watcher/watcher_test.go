package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/watcher"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	views := filepath.Join(root, "views")
	require.NoError(t, os.MkdirAll(views, 0o750))
	page := filepath.Join(views, "page.html")
	require.NoError(t, os.WriteFile(page, []byte("a"), 0o600))

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(logger)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(page, []byte("b"), 0o600))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Path == page {
				return
			}
		case <-deadline:
			t.Fatal("no event for the edited template")
		}
	}
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	w, err := watcher.NewWatcher(logger)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), t.TempDir()))
	require.NoError(t, w.Stop())

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		assert.Fail(t, "events did not end after stop")
	}
}
