package catalog

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Debouncer_Trigger(t *testing.T) {
	var (
		mu            sync.Mutex
		called        int
		receivedFiles []string
	)

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		called++
		receivedFiles = files
	})
	defer d.Stop()

	d.Trigger("c.yaml")
	d.Trigger("a.yaml")
	d.Trigger("b.yaml")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, called)
	assert.Equal(t, []string{"a.yaml", "b.yaml", "c.yaml"}, receivedFiles)
	mu.Unlock()
}

func Test_Debouncer_CoalescesRapidEvents(t *testing.T) {
	var (
		mu        sync.Mutex
		callCount int
	)

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		callCount++
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger("catalog.yaml")
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, callCount)
	mu.Unlock()
}

func Test_Debouncer_Stop(t *testing.T) {
	var (
		mu     sync.Mutex
		called bool
	)

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		called = true
	})

	d.Trigger("catalog.yaml")
	d.Stop()
	d.Trigger("catalog.yaml")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.False(t, called)
	mu.Unlock()
}

func Test_Debouncer_UniqueFiles(t *testing.T) {
	done := make(chan []string, 1)

	d := NewDebouncer(20*time.Millisecond, func(files []string) {
		done <- files
	})
	defer d.Stop()

	d.Trigger("catalog.yaml")
	d.Trigger("catalog.yaml")

	select {
	case files := <-done:
		assert.Equal(t, []string{"catalog.yaml"}, files)
	case <-time.After(time.Second):
		t.Fatal("Expected callback")
	}
}
