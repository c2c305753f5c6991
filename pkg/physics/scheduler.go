package physics

import (
	"sync"
	"time"
)

// TickFunc runs one simulation tick. Returning false tells the
// scheduler to stop issuing ticks (simulation disabled or layout mode
// left force).
type TickFunc func() bool

// Scheduler drives a TickFunc at a fixed interval from a single
// goroutine, so no two ticks ever run concurrently and an in-flight
// tick always completes before the next scheduling decision. Step
// allows deterministic headless ticking in tests.
type Scheduler struct {
	interval time.Duration
	tick     TickFunc

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(interval time.Duration, tick TickFunc) *Scheduler {
	return &Scheduler{interval: interval, tick: tick}
}

// Start begins issuing ticks. Starting a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

// Stop cancels future ticks and waits for any in-flight tick to finish.
// Stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done
}

// Step runs exactly one synchronous tick, independent of the interval.
func (s *Scheduler) Step() {
	if !s.tick() {
		s.Stop()
	}
}

// Running reports whether the scheduler is issuing ticks.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !s.tick() {
				// The tick asked to stop; mark ourselves stopped
				// without racing a concurrent Stop.
				s.mu.Lock()
				if s.running {
					s.running = false
					close(s.stop)
				}
				s.mu.Unlock()
				return
			}
		}
	}
}
