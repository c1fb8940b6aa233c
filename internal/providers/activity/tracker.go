// Package activity simulates a GPS run session. State lives only in memory
// for the lifetime of the process; there is no durability contract.
package activity

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrAlreadyTracking = errors.New("session already tracking")
	ErrNotTracking     = errors.New("no active session")
)

// Snapshot is the current reading of a run session.
type Snapshot struct {
	DistanceKm  float64
	DurationSec int
	Tracking    bool
	Paused      bool
	StartedAt   time.Time
}

// Session accumulates simulated distance on a fixed tick, mirroring the
// reference tracker: one second and two meters per tick.
type Session struct {
	mu       sync.Mutex
	tick     time.Duration
	stepKm   float64
	ticker   *time.Ticker
	done     chan struct{}
	snapshot Snapshot
}

// NewSession builds an idle session. Zero values select the defaults of a
// one-second tick adding 0.002 km.
func NewSession(tick time.Duration, stepKm float64) *Session {
	if tick <= 0 {
		tick = time.Second
	}
	if stepKm <= 0 {
		stepKm = 0.002
	}
	return &Session{tick: tick, stepKm: stepKm}
}

// Start begins accumulating from zero.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.Tracking {
		return ErrAlreadyTracking
	}
	s.snapshot = Snapshot{Tracking: true, StartedAt: time.Now()}
	s.run()
	return nil
}

// Pause stops the tick without discarding accumulated state.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.snapshot.Tracking || s.snapshot.Paused {
		return ErrNotTracking
	}
	s.halt()
	s.snapshot.Paused = true
	return nil
}

// Resume restarts the tick after a pause.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.snapshot.Tracking || !s.snapshot.Paused {
		return ErrNotTracking
	}
	s.snapshot.Paused = false
	s.run()
	return nil
}

// Stop ends the session and returns the final reading.
func (s *Session) Stop() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.snapshot.Tracking {
		return Snapshot{}, ErrNotTracking
	}
	if !s.snapshot.Paused {
		s.halt()
	}
	final := s.snapshot
	final.Tracking = false
	s.snapshot = Snapshot{}
	return final, nil
}

// Current returns the live reading.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *Session) run() {
	s.ticker = time.NewTicker(s.tick)
	s.done = make(chan struct{})
	go func(t *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-t.C:
				s.mu.Lock()
				s.snapshot.DurationSec++
				s.snapshot.DistanceKm += s.stepKm
				s.mu.Unlock()
			case <-done:
				return
			}
		}
	}(s.ticker, s.done)
}

// halt must be called with the mutex held.
func (s *Session) halt() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
		s.ticker = nil
	}
}
