package relay

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_OrderPreservedPerKey(t *testing.T) {
	d := NewDispatcher()

	var mu sync.Mutex
	var got []int
	for n := 0; n < 100; n++ {
		n := n
		d.Submit("user-1", func() {
			mu.Lock()
			got = append(got, n)
			mu.Unlock()
		})
	}
	d.Wait()

	want := make([]int, 100)
	for n := range want {
		want[n] = n
	}
	assert.Equal(t, want, got)
}

func TestDispatcher_KeysRunIndependently(t *testing.T) {
	d := NewDispatcher()

	release := make(chan struct{})
	done := make(chan struct{})

	// Key A is stuck until released; key B must not wait for it.
	d.Submit("a", func() { <-release })
	d.Submit("b", func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("work for key b was blocked behind key a")
	}

	close(release)
	d.Wait()
}

func TestDispatcher_ReusesKeyAfterDrain(t *testing.T) {
	d := NewDispatcher()

	var mu sync.Mutex
	count := 0
	bump := func() {
		mu.Lock()
		count++
		mu.Unlock()
	}

	d.Submit("user-1", bump)
	d.Wait()

	// The worker for the key has exited; a new submission must start a
	// fresh one rather than queueing into the void.
	d.Submit("user-1", bump)
	d.Wait()

	assert.Equal(t, 2, count)
}
