// Package schedule runs keyed, cancellable delayed tasks.
package schedule

import (
	"sync"
	"time"
)

type task struct {
	timer *time.Timer
	gen   uint64
	fn    func()
}

// Scheduler runs a function after a delay. Scheduling again under the same
// key replaces the pending call, so it doubles as a debouncer.
type Scheduler struct {
	mutex  sync.Mutex
	tasks  map[string]*task
	gen    uint64
	closed bool
}

// New creates an empty scheduler
func New() *Scheduler {
	return &Scheduler{
		tasks: make(map[string]*task),
	}
}

// After schedules fn to run once d has elapsed. Any call pending under key
// is cancelled. It reports false if the scheduler is closed.
func (s *Scheduler) After(key string, d time.Duration, fn func()) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return false
	}
	if existing, ok := s.tasks[key]; ok {
		existing.timer.Stop()
	}

	s.gen++
	t := &task{gen: s.gen, fn: fn}
	t.timer = time.AfterFunc(d, func() { s.fire(key, t.gen) })
	s.tasks[key] = t
	return true
}

// fire runs the task only if it is still the current one for key. A timer
// whose Stop raced with expiry finds a newer generation or no entry and
// does nothing.
func (s *Scheduler) fire(key string, gen uint64) {
	s.mutex.Lock()
	t, ok := s.tasks[key]
	if !ok || t.gen != gen {
		s.mutex.Unlock()
		return
	}
	delete(s.tasks, key)
	s.mutex.Unlock()

	t.fn()
}

// Cancel drops the pending call for key
func (s *Scheduler) Cancel(key string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	t, ok := s.tasks[key]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.tasks, key)
	return true
}

// Flush runs the pending call for key immediately, on the caller's goroutine
func (s *Scheduler) Flush(key string) bool {
	s.mutex.Lock()
	t, ok := s.tasks[key]
	if ok {
		t.timer.Stop()
		delete(s.tasks, key)
	}
	s.mutex.Unlock()

	if ok {
		t.fn()
	}
	return ok
}

// Pending returns the number of calls waiting to run
func (s *Scheduler) Pending() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.tasks)
}

// Clear cancels all pending calls
func (s *Scheduler) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, key)
	}
}

// Close cancels all pending calls and rejects new ones
func (s *Scheduler) Close() {
	s.mutex.Lock()
	s.closed = true
	s.mutex.Unlock()
	s.Clear()
}
