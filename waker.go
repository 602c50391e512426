package shotgun

// A Waker is the wake handle used with [Receiver.Poll]. A waiter registers
// its Waker by polling, sleeps on the channel returned by Sleep, and is
// woken when the value is sent.
//
// Wakers are single-waiter: one Waker belongs to one waiting task. Distinct
// tasks waiting on the same channel each register their own.
type Waker struct {
	ch chan struct{}
}

// NewWaker constructs a new Waker.
func NewWaker() *Waker {
	// The 1-slot buffer debounces: at most one wakeup is queued between
	// sleeps, and Wake never blocks.
	return &Waker{ch: make(chan struct{}, 1)}
}

// Wake requests that the owning waiter re-poll. It never blocks, and waking
// a waiter that has already given up (or was already woken) is a no-op.
func (w *Waker) Wake() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// Sleep returns the channel the owning waiter blocks on; it delivers one
// token per pending wakeup.
func (w *Waker) Sleep() <-chan struct{} { return w.ch }
