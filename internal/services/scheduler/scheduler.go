package scheduler

import (
	"sync"
	"time"
)

// Handle cancels a scheduled action.
type Handle interface {
	// Cancel stops the action if it has not run yet and reports whether it did.
	Cancel() bool
}

// Scheduler runs actions after a delay. Every call schedules an independent
// action; nothing is coalesced.
type Scheduler struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*time.Timer
	stopped bool
}

// New creates an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{
		pending: make(map[uint64]*time.Timer),
	}
}

// After runs fn on its own goroutine once d has elapsed.
// After Stop, fn is never run and the returned handle is inert.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return noopHandle{}
	}

	s.nextID++
	id := s.nextID
	s.pending[id] = time.AfterFunc(d, func() {
		if !s.release(id) {
			return
		}
		fn()
	})
	return &timerHandle{scheduler: s, id: id}
}

// Pending returns the number of actions that have not run or been cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels every pending action and rejects new ones. It returns the
// number of actions cancelled.
func (s *Scheduler) Stop() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	cancelled := 0
	for id, timer := range s.pending {
		if timer.Stop() {
			cancelled++
		}
		delete(s.pending, id)
	}
	return cancelled
}

// release removes id from the pending set, reporting whether it was still there.
func (s *Scheduler) release(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}

type timerHandle struct {
	scheduler *Scheduler
	id        uint64
}

func (h *timerHandle) Cancel() bool {
	h.scheduler.mu.Lock()
	defer h.scheduler.mu.Unlock()
	timer, ok := h.scheduler.pending[h.id]
	if !ok {
		return false
	}
	delete(h.scheduler.pending, h.id)
	return timer.Stop()
}

type noopHandle struct{}

func (noopHandle) Cancel() bool { return false }
