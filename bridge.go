package panes

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrConsumed is returned by Pending.Wait once the result was already taken.
var ErrConsumed = errors.New("panes: pending result already taken")

// Bridge tracks asynchronous actions fired at a host by ticket. Issuing an
// action takes the next ticket; the host signals completion with Complete.
// Completions are only counted and are matched to tickets by issue order,
// so an action finishing before an earlier one resolves the earlier ticket.
type Bridge struct {
	tickets   atomic.Uint64
	completed atomic.Uint64

	mu      sync.Mutex
	waiters []waiter
}

type waiter struct {
	ticket uint64
	ch     chan struct{}
}

// NewBridge creates a bridge with both counters at zero.
func NewBridge() *Bridge {
	return &Bridge{}
}

// issue returns the next ticket.
func (b *Bridge) issue() uint64 {
	return b.tickets.Add(1) - 1
}

// Complete records that one outstanding action finished. Hosts call it from
// the done callback passed to ComponentHost.LoadModule.
func (b *Bridge) Complete() {
	n := b.completed.Add(1)
	b.mu.Lock()
	kept := b.waiters[:0]
	for _, w := range b.waiters {
		if n > w.ticket {
			close(w.ch)
			continue
		}
		kept = append(kept, w)
	}
	clear(b.waiters[len(kept):])
	b.waiters = kept
	b.mu.Unlock()
}

// Issued returns the number of tickets handed out.
func (b *Bridge) Issued() uint64 {
	return b.tickets.Load()
}

// Completed returns the number of completions signaled.
func (b *Bridge) Completed() uint64 {
	return b.completed.Load()
}

func (b *Bridge) ready(ticket uint64) bool {
	return b.completed.Load() > ticket
}

// notify returns a channel closed once ticket is ready.
func (b *Bridge) notify(ticket uint64) <-chan struct{} {
	ch := make(chan struct{})
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready(ticket) {
		close(ch)
		return ch
	}
	b.waiters = append(b.waiters, waiter{ticket: ticket, ch: ch})
	return ch
}

// PollState is the result of polling a Pending.
type PollState uint8

const (
	PollPending  PollState = iota // action not completed yet
	PollReady                     // value delivered by this poll
	PollConsumed                  // value was delivered by an earlier poll
)

// String implements fmt.Stringer.
func (s PollState) String() string {
	switch s {
	case PollPending:
		return "pending"
	case PollReady:
		return "ready"
	case PollConsumed:
		return "consumed"
	default:
		return "unknown"
	}
}

// Pending is the result of an action that was fired at issue time. It only
// observes completion: polling does not drive the action, and dropping a
// Pending does not cancel it. An action that never completes leaves its
// Pending pending forever.
type Pending[T any] struct {
	bridge   *Bridge
	ticket   uint64
	value    T
	consumed bool
	done     <-chan struct{}
}

func newPending[T any](b *Bridge, ticket uint64, value T) *Pending[T] {
	return &Pending[T]{bridge: b, ticket: ticket, value: value}
}

// Ticket returns the ticket captured when the action was issued.
func (p *Pending[T]) Ticket() uint64 {
	return p.ticket
}

// Poll returns PollReady together with the value the first time it is called
// after the bridge has seen more completions than the ticket number.
// Earlier calls return PollPending, later ones PollConsumed.
func (p *Pending[T]) Poll() (T, PollState) {
	var zero T
	if p.consumed {
		return zero, PollConsumed
	}
	if !p.bridge.ready(p.ticket) {
		return zero, PollPending
	}
	p.consumed = true
	return p.value, PollReady
}

// Done returns a channel that is closed once the action completed.
func (p *Pending[T]) Done() <-chan struct{} {
	if p.done == nil {
		p.done = p.bridge.notify(p.ticket)
	}
	return p.done
}

// Wait blocks until the action completed or ctx is done, then polls.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-p.Done():
	case <-ctx.Done():
		return zero, ctx.Err()
	}
	v, st := p.Poll()
	if st == PollConsumed {
		return zero, ErrConsumed
	}
	return v, nil
}
