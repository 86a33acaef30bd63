package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"opsdash/internal/app/bus"
	"opsdash/internal/app/stream"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

func newMockLogger(ctrl *gomock.Controller) logger.Logger {
	mockLog := logger.NewMockLogger(ctrl)
	componentLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent("CATALOG").Return(componentLog).AnyTimes()
	componentLog.EXPECT().Debug().Return(nil).AnyTimes()
	componentLog.EXPECT().Info().Return(nil).AnyTimes()
	componentLog.EXPECT().Warn().Return(nil).AnyTimes()
	componentLog.EXPECT().Error().Return(nil).AnyTimes()

	return mockLog
}

func watchConfig(paths ...string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Catalog.Paths = paths
	cfg.Catalog.Watch = true
	cfg.Catalog.Debounce = 20 * time.Millisecond

	return cfg
}

func waitForEvent(t *testing.T, ch <-chan bus.Message, eventType bus.MessageType) bus.Message {
	t.Helper()

	timeout := time.After(3 * time.Second)

	for {
		select {
		case msg := <-ch:
			if msg.Type == eventType {
				return msg
			}
		case <-timeout:
			t.Fatalf("Timed out waiting for %s", eventType)
			return bus.Message{}
		}
	}
}

func Test_Watcher_DisabledIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.DefaultConfig()
	cfg.Catalog.Paths = []string{"*.yaml"}

	w := NewWatcher(cfg, NewLoaderAt(t.TempDir()), bus.NoOp(), newMockLogger(ctrl))

	require.NoError(t, w.Start(context.Background()))

	impl := w.(*watcher)
	assert.False(t, impl.started)
	assert.Nil(t, impl.fsWatcher)

	w.Close()
	w.Close()
}

func Test_Watcher_InvalidGlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := NewWatcher(watchConfig("[bad"), NewLoaderAt(t.TempDir()), bus.NoOp(), newMockLogger(ctrl))

	assert.Error(t, w.Start(context.Background()))
}

func Test_Watcher_PublishesReloadOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	writeFile(t, root, "catalog.yaml", yamlCatalog)

	cfg := watchConfig("*.yaml")

	b := bus.New(cfg, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := b.Subscribe(ctx)

	w := NewWatcher(cfg, NewLoaderAt(root), b, newMockLogger(ctrl))
	require.NoError(t, w.Start(ctx))

	defer w.Close()

	writeFile(t, root, "catalog.yaml", "templates:\n  - level: error\n    message: disk full on {pod}\n")

	msg := waitForEvent(t, events, bus.EventCatalogReloaded)

	data, ok := msg.Data.(bus.CatalogReloaded)
	require.True(t, ok)
	assert.Equal(t, []string{"catalog.yaml"}, data.Files)
	assert.Equal(t, stream.Catalog{{Level: stream.LevelError, Message: "disk full on {pod}"}}, data.Catalog)
}

func Test_Watcher_PublishesFailureOnBadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	writeFile(t, root, "catalog.yaml", yamlCatalog)

	cfg := watchConfig("*.yaml")

	b := bus.New(cfg, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := b.Subscribe(ctx)

	w := NewWatcher(cfg, NewLoaderAt(root), b, newMockLogger(ctrl))
	require.NoError(t, w.Start(ctx))

	defer w.Close()

	writeFile(t, root, "catalog.yaml", "templates:\n  - level: verbose\n    message: nope\n")

	msg := waitForEvent(t, events, bus.EventCatalogFailed)

	data, ok := msg.Data.(bus.CatalogFailed)
	require.True(t, ok)
	assert.Contains(t, data.Files, "catalog.yaml")
	assert.Error(t, data.Error)
}

func Test_Watcher_IgnoresUnmatchedFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	writeFile(t, root, "catalog.yaml", yamlCatalog)

	loader := NewMockLoader(ctrl)
	loader.EXPECT().Root().Return(root)
	loader.EXPECT().Load(gomock.Any()).Times(0)

	w := NewWatcher(watchConfig("*.yaml"), loader, bus.NoOp(), newMockLogger(ctrl))
	require.NoError(t, w.Start(context.Background()))

	writeFile(t, root, "notes.txt", "hello")
	time.Sleep(100 * time.Millisecond)

	w.Close()
}

func Test_Watcher_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()

	w := NewWatcher(watchConfig("*.yaml"), NewLoaderAt(root), bus.NoOp(), newMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))

	cancel()

	impl := w.(*watcher)
	assert.Eventually(t, func() bool {
		impl.mu.RLock()
		defer impl.mu.RUnlock()

		return impl.closed
	}, time.Second, 5*time.Millisecond)
}
