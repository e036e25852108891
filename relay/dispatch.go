package relay

import "sync"

// Dispatcher serializes work per conversation while letting distinct
// conversations run in parallel. Events for the same key (user ID or thread
// ID) execute in submission order on one goroutine; unrelated keys never
// wait on each other.
type Dispatcher struct {
	mu     sync.Mutex
	queues map[string][]func()
	wg     sync.WaitGroup
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{queues: make(map[string][]func())}
}

// Submit enqueues fn under key. If no worker is draining that key's queue,
// one is started; it exits once the queue runs dry.
func (d *Dispatcher) Submit(key string, fn func()) {
	d.mu.Lock()
	queue, running := d.queues[key]
	d.queues[key] = append(queue, fn)
	d.mu.Unlock()

	if running {
		return
	}

	d.wg.Add(1)
	go d.drain(key)
}

func (d *Dispatcher) drain(key string) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		queue := d.queues[key]
		if len(queue) == 0 {
			delete(d.queues, key)
			d.mu.Unlock()
			return
		}
		fn := queue[0]
		d.queues[key] = queue[1:]
		d.mu.Unlock()

		fn()
	}
}

// Wait blocks until every queued function has run. Used on shutdown so
// in-flight relays finish before the session closes.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
