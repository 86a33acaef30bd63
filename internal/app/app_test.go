package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"opsdash/internal/app/cli"
	"opsdash/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner records the requested exit code
type mockShutdowner struct {
	calls int
	err   error
}

func (m *mockShutdowner) Shutdown(...fx.ShutdownOption) error {
	m.calls++
	return m.err
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	application := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
	assert.NotNil(t, application.done)
}

func Test_execute(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		expected int
	}{
		{name: "Success", code: 0, expected: 0},
		{name: "Failure", code: 1, err: errors.New("runner failed"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCLI := cli.NewMockCLI(ctrl)
			mockLogger := logger.NewMockLogger(ctrl)
			mockLogger.EXPECT().Debug().Return(nil).AnyTimes()

			app := &App{cli: mockCLI, log: mockLogger}

			mockCLI.EXPECT().Execute().Return(tt.code, tt.err)

			assert.Equal(t, tt.expected, app.execute())
		})
	}
}

func Test_App_Run(t *testing.T) {
	tests := []struct {
		name        string
		shutdownErr error
	}{
		{name: "shuts down with the exit code"},
		{name: "logs a failed shutdown", shutdownErr: errors.New("already stopped")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCLI := cli.NewMockCLI(ctrl)
			mockLogger := logger.NewMockLogger(ctrl)
			mockLogger.EXPECT().Error().Return(nil).AnyTimes()

			shutdowner := &mockShutdowner{err: tt.shutdownErr}
			app := NewApp(mockCLI, shutdowner, mockLogger)

			mockCLI.EXPECT().Execute().Return(0, nil)

			app.Run()

			assert.Equal(t, 1, shutdowner.calls)

			select {
			case <-app.done:
			default:
				t.Fatal("done was not closed")
			}
		})
	}
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	app := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	var registered bool

	var capturedHook fx.Hook

	testLifecycle := &mockLifecycle{
		onAppend: func(hook fx.Hook) {
			registered = true
			capturedHook = hook
		},
	}

	Register(testLifecycle, app)

	assert.True(t, registered)
	assert.NotNil(t, capturedHook.OnStart)
	assert.NotNil(t, capturedHook.OnStop)
}

func Test_Register_Hooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockCLI.EXPECT().Execute().Return(0, nil)

	mockLogger := logger.NewMockLogger(ctrl)
	shutdowner := &mockShutdowner{}
	app := NewApp(mockCLI, shutdowner, mockLogger)

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	assert.NoError(t, capturedHook.OnStart(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, capturedHook.OnStop(ctx))
}

func Test_Register_OnStopTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := NewApp(cli.NewMockCLI(ctrl), &mockShutdowner{}, logger.NewMockLogger(ctrl))

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, capturedHook.OnStop(ctx), context.Canceled)
}
