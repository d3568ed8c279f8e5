package sim

import "sync"

// FrameID identifies a pending frame request.
type FrameID uint64

// Frames is the host's display-refresh callback. A requested callback runs
// once, on the next refresh, unless cancelled first.
type Frames interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue implements Frames for hosts that own their refresh loop: the
// host calls Pump once per refresh. Callbacks requested while pumping run on
// the following Pump.
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameID
	order   []FrameID
	pending map[FrameID]func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func())}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.pending, id)
}

// Pump runs every callback requested before the call and returns how many ran.
func (q *FrameQueue) Pump() int {
	q.mu.Lock()
	batch := q.order
	q.order = nil
	q.mu.Unlock()

	ran := 0
	for _, id := range batch {
		q.mu.Lock()
		fn, ok := q.pending[id]
		delete(q.pending, id)
		q.mu.Unlock()

		if ok {
			fn()
			ran++
		}
	}
	return ran
}

// Pending returns the number of callbacks waiting for the next Pump.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
