package dashboard

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"opsdash/internal/app/bus"
	"opsdash/internal/app/catalog"
	"opsdash/internal/app/controller"
	appErrors "opsdash/internal/app/errors"
	"opsdash/internal/app/monitor"
	"opsdash/internal/app/stream"
	"opsdash/internal/config"
)

func Test_UI_Run_Failures(t *testing.T) {
	tests := []struct {
		name   string
		before func(loader *catalog.MockLoader)
		opts   controller.Options
		err    error
		msg    string
	}{
		{
			name: "catalog cannot be loaded",
			before: func(loader *catalog.MockLoader) {
				loader.EXPECT().Load(gomock.Any()).Return(catalog.Result{}, appErrors.ErrNoCatalogFiles)
			},
			err: appErrors.ErrNoCatalogFiles,
			msg: "failed to load catalog",
		},
		{
			name: "invalid level override",
			before: func(loader *catalog.MockLoader) {
				loader.EXPECT().Load(gomock.Any()).Return(catalog.Result{Catalog: stream.DefaultCatalog()}, nil)
			},
			opts: controller.Options{Level: "verbose"},
			err:  appErrors.ErrInvalidLevelFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := catalog.NewMockLoader(ctrl)
			watcher := catalog.NewMockWatcher(ctrl)
			tt.before(loader)

			u := NewUI(config.DefaultConfig(), loader, watcher, bus.NoOp(), monitor.NewMockMonitor(ctrl), newTestLogger(ctrl))

			err := u.Run(context.Background(), tt.opts)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))

			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func Test_UI_ForwardSignals(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := bus.NewMockBus(ctrl)
	b.EXPECT().Publish(gomock.Cond(func(msg bus.Message) bool {
		return msg.Type == bus.EventSignal && msg.Critical
	}))

	u := &ui{bus: b, log: newTestLogger(ctrl)}

	sigChan := make(chan os.Signal, 1)
	sigChan <- syscall.SIGTERM

	u.forwardSignals(context.Background(), sigChan)
}

func Test_UI_ForwardSignals_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := bus.NewMockBus(ctrl)

	u := &ui{bus: b, log: newTestLogger(ctrl)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	u.forwardSignals(ctx, make(chan os.Signal))
}
