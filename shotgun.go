// Package shotgun implements a one-shot single-producer multi-consumer
// (SPMC) channel: a [Sender] transmits at most one value for the lifetime
// of the channel, and any number of [Receiver] handles observe that same
// value, either by non-blocking polling or by waiting until it arrives.
package shotgun

import "sync"

// New creates a fresh, empty channel and returns the sender and receiver
// for it. The sender can transmit exactly one value; the receiver can be
// duplicated with [Receiver.Clone] so that any number of independent
// consumers share the result.
func New[T any]() (*Sender[T], *Receiver[T]) {
	c := new(cell[T])
	return &Sender[T]{cell: c}, &Receiver[T]{cell: c}
}

// A cell is the state shared by the sender and all receiver duplicates of
// one channel. All fields are protected by mu, so that checking for a value
// and registering to be woken is a single atomic step.
type cell[T any] struct {
	mu     sync.Mutex
	value  T
	ok     bool          // whether value has been set; never cleared
	wakers []*Waker      // wake handles pending while ok is false
	ready  chan struct{} // lazily created, closed when value is set
}

// set stores v and releases everyone waiting for it. The single-use
// contract of Sender ensures set is called at most once per cell.
func (c *cell[T]) set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value, c.ok = v, true
	if c.ready != nil {
		close(c.ready)
	}
	for _, w := range c.wakers {
		w.Wake() // in registration order
	}
	c.wakers = nil
}

// A Sender is the transmitting half of a channel. It is a single-use
// capability: the one permitted call to Send spends it.
//
// A Sender is owned by a single goroutine; it is not safe for concurrent
// use, and does not need to be, since it supports only one operation.
type Sender[T any] struct {
	cell *cell[T]
}

// Send transmits v to every receiver duplicate of the channel, waking any
// that are blocked. Send spends s: calling it a second time panics.
//
// Sending succeeds even if no receiver remains to observe the value; the
// write simply has no audience. There is no way to "close" the channel
// without sending: a sender discarded unused leaves every receiver empty
// forever, indistinguishable from a value that has not yet arrived.
func (s *Sender[T]) Send(v T) {
	c := s.cell
	if c == nil {
		panic("Send on a spent Sender")
	}
	s.cell = nil
	c.set(v)
}
