// Package mailbox provides a single-slot, latest-wins handoff between one
// producer and one consumer. A publish never blocks: it overwrites any
// unread value, so a slow consumer observes only the most recent state.
package mailbox

import "time"

// Mailbox is a bounded channel of capacity one with overwrite-on-full
// semantics. At most one unread value exists at any time.
type Mailbox[T any] struct {
	slot chan T
}

func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{slot: make(chan T, 1)}
}

// Publish places v in the slot, discarding any unread value. It never
// blocks the caller.
func (m *Mailbox[T]) Publish(v T) {
	for {
		select {
		case m.slot <- v:
			return
		default:
		}
		// Slot full: drop the stale value and retry. With a single
		// producer the second send cannot race another publisher, and a
		// concurrent Take consuming the stale value first is fine.
		select {
		case <-m.slot:
		default:
		}
	}
}

// Take blocks until a value is available or the timeout elapses. The second
// return is false on timeout.
func (m *Mailbox[T]) Take(timeout time.Duration) (T, bool) {
	select {
	case v := <-m.slot:
		return v, true
	default:
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case v := <-m.slot:
		return v, true
	case <-timer.C:
		var zero T
		return zero, false
	}
}
