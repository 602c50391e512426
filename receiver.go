package shotgun

import "context"

// A Receiver is the consuming half of a channel. Receivers are handles: any
// number of duplicates made with Clone refer to the same underlying cell,
// and every one of them observes the single transmitted value. All methods
// are safe for concurrent use by multiple goroutines.
type Receiver[T any] struct {
	cell *cell[T]
}

// Clone returns a new independent handle on the same channel. Duplicating a
// receiver copies the reference, never the value.
func (r *Receiver[T]) Clone() *Receiver[T] { return &Receiver[T]{cell: r.cell} }

// TryRecv reports whether a value has been transmitted, and if so returns
// it. It never blocks. Before Send it reports a zero value and false; after
// Send it reports the sent value and true, on every call, on every
// duplicate, forever.
func (r *Receiver[T]) TryRecv() (T, bool) {
	c := r.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.ok
}

// Poll implements the low-level wait contract for callers driving their own
// scheduling loop: it reports the value as TryRecv does, but when no value
// is present it first registers w to be woken by Send. Checking and
// registering happen atomically, so a value sent after a pending Poll
// always reaches w.
//
// Registration is idempotent per waker: polling repeatedly with the same w
// does not grow the registry. A nil w checks without registering. Once Poll
// has reported a value it reports that same value on every later call,
// whether or not w was ever woken.
func (r *Receiver[T]) Poll(w *Waker) (T, bool) {
	c := r.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ok && w != nil && !c.registered(w) {
		c.wakers = append(c.wakers, w)
	}
	return c.value, c.ok
}

// registered reports whether w is already in the registry.
// The caller must hold c.mu.
func (c *cell[T]) registered(w *Waker) bool {
	for _, old := range c.wakers {
		if old == w {
			return true
		}
	}
	return false
}

// Recv blocks until a value has been transmitted, and returns it. If ctx
// ends first, Recv returns a zero value and the error from ctx. If the
// value is already present, Recv returns it immediately.
//
// Callers wanting a timeout or cancellation compose it through ctx; the
// channel itself has no deadline mechanism.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	w := NewWaker()
	for {
		if v, ok := r.Poll(w); ok {
			return v, nil
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-w.Sleep():
			// Woken by Send; re-poll to pick up the value.
		}
	}
}

// Ready returns a channel that is closed when the value has been
// transmitted. If the value is already present, the returned channel is
// already closed. All duplicates share one ready channel, so Ready
// composes with select across any number of consumers.
func (r *Receiver[T]) Ready() <-chan struct{} {
	c := r.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready == nil {
		c.ready = make(chan struct{})
		if c.ok {
			close(c.ready)
		}
	}
	return c.ready
}
