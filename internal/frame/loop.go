// Package frame provides a requestAnimationFrame-style callback queue that
// the window host drains once per display refresh.
package frame

import (
	"time"

	"github.com/iburimskiy/portfolio-rain/internal/rain"
)

type pending struct {
	id rain.FrameID
	cb func(ts time.Duration)
}

// Loop queues one-shot frame callbacks. Callbacks scheduled while a Tick is
// running fire on the following Tick. Loop is owned by a single goroutine.
type Loop struct {
	nextID rain.FrameID
	queue  []pending

	// firing holds the batch of the Tick in progress so Cancel can reach it.
	firing []pending
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Schedule queues cb for the next Tick and returns its non-zero id.
func (l *Loop) Schedule(cb func(ts time.Duration)) rain.FrameID {
	l.nextID++
	l.queue = append(l.queue, pending{id: l.nextID, cb: cb})
	return l.nextID
}

// Cancel drops a queued callback. Unknown ids are ignored.
func (l *Loop) Cancel(id rain.FrameID) {
	if id == 0 {
		return
	}
	if remove(&l.queue, id) {
		return
	}
	for i := range l.firing {
		if l.firing[i].id == id {
			l.firing[i].cb = nil
			return
		}
	}
}

// Pending reports the number of queued callbacks.
func (l *Loop) Pending() int {
	return len(l.queue)
}

// Tick fires every callback queued before the call, in schedule order, and
// returns how many fired. A callback cancelled by an earlier one in the same
// tick does not fire.
func (l *Loop) Tick(now time.Duration) int {
	l.firing = l.queue
	l.queue = nil
	fired := 0
	for i := range l.firing {
		cb := l.firing[i].cb
		if cb == nil {
			continue
		}
		l.firing[i].cb = nil
		cb(now)
		fired++
	}
	l.firing = nil
	return fired
}

func remove(q *[]pending, id rain.FrameID) bool {
	for i, p := range *q {
		if p.id == id {
			*q = append((*q)[:i], (*q)[i+1:]...)
			return true
		}
	}
	return false
}
