package stream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdash/internal/app/errors"
)

func Test_NewScheduler_InvalidInterval(t *testing.T) {
	_, err := NewScheduler(0)
	assert.ErrorIs(t, err, errors.ErrInvalidInterval)

	_, err = NewScheduler(-time.Second)
	assert.ErrorIs(t, err, errors.ErrInvalidInterval)
}

func Test_Scheduler_DeliversTicks(t *testing.T) {
	s, err := NewScheduler(5 * time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.True(t, s.Running())

	select {
	case <-s.Ticks():
	case <-time.After(time.Second):
		t.Fatal("Expected tick")
	}
}

func Test_Scheduler_StartTwice(t *testing.T) {
	s, err := NewScheduler(time.Hour)
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.ErrorIs(t, s.Start(context.Background()), errors.ErrSchedulerRunning)
}

func Test_Scheduler_StopIsIdempotent(t *testing.T) {
	s, err := NewScheduler(time.Hour)
	require.NoError(t, err)

	s.Stop()

	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	s.Stop()

	assert.False(t, s.Running())
}

func Test_Scheduler_NoTickAfterStop(t *testing.T) {
	s, err := NewScheduler(time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	select {
	case <-s.Ticks():
		t.Fatal("Unexpected tick after stop")
	case <-time.After(20 * time.Millisecond):
	}
}

func Test_Scheduler_Restart(t *testing.T) {
	s, err := NewScheduler(5 * time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	s.Stop()

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case <-s.Ticks():
	case <-time.After(time.Second):
		t.Fatal("Expected tick after restart")
	}
}

func Test_Scheduler_ContextCancel(t *testing.T) {
	s, err := NewScheduler(time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	cancel()

	assert.Eventually(t, func() bool { return !s.Running() }, time.Second, time.Millisecond)

	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}
