package sim

import (
	"sync"

	"github.com/arcticwabbit/pongexe/internal/game"
)

// PointerFunc receives pointer motion in host coordinates together with the
// rectangle the arena is drawn into.
type PointerFunc func(x, y float64, host game.Bounds)

// PointerSource delivers pointer motion until the returned cancel is called.
type PointerSource interface {
	Subscribe(fn PointerFunc) (cancel func())
}

// PointerHub is a PointerSource fed by the host's input loop.
type PointerHub struct {
	mu        sync.Mutex
	next      int
	listeners map[int]PointerFunc
}

func NewPointerHub() *PointerHub {
	return &PointerHub{listeners: make(map[int]PointerFunc)}
}

// Subscribe registers fn. The returned cancel is safe to call more than once.
func (h *PointerHub) Subscribe(fn PointerFunc) func() {
	h.mu.Lock()
	h.next++
	id := h.next
	h.listeners[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

// Move forwards a pointer position to every listener.
func (h *PointerHub) Move(x, y float64, host game.Bounds) {
	h.mu.Lock()
	fns := make([]PointerFunc, 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(x, y, host)
	}
}

// Listeners returns the number of registered listeners.
func (h *PointerHub) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// pointerSlot holds the latest pointer position until the next tick reads it.
type pointerSlot struct {
	mu   sync.Mutex
	x, y float64
	host game.Bounds
	set  bool
}

func (s *pointerSlot) store(x, y float64, host game.Bounds) {
	s.mu.Lock()
	s.x, s.y, s.host, s.set = x, y, host, true
	s.mu.Unlock()
}

func (s *pointerSlot) take() (x, y float64, host game.Bounds, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set {
		return 0, 0, game.Bounds{}, false
	}
	s.set = false
	return s.x, s.y, s.host, true
}

func (s *pointerSlot) reset() {
	s.mu.Lock()
	s.set = false
	s.mu.Unlock()
}
