package phonebook

import (
	"sync"
	"time"
)

// Scheduler delivers MessageExpired events for ScheduleClear commands. It
// keeps at most one timer per slot: scheduling a slot again stops the timer
// of the message it replaces.
type Scheduler struct {
	mu      sync.Mutex
	timers  map[Slot]*time.Timer
	send    func(Event)
	stopped bool
}

// NewScheduler creates a scheduler that hands expired events to send. send is
// called from timer goroutines.
func NewScheduler(send func(Event)) *Scheduler {
	return &Scheduler{
		timers: make(map[Slot]*time.Timer),
		send:   send,
	}
}

func (s *Scheduler) Schedule(cmd ScheduleClear) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if t, ok := s.timers[cmd.Slot]; ok {
		t.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(cmd.After, func() {
		s.mu.Lock()
		current := s.timers[cmd.Slot] == timer
		if current {
			delete(s.timers, cmd.Slot)
		}
		stopped := s.stopped
		s.mu.Unlock()

		if current && !stopped {
			s.send(MessageExpired{Slot: cmd.Slot, ID: cmd.ID})
		}
	})
	s.timers[cmd.Slot] = timer
}

// Pending reports how many timers are armed.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every timer. Later Schedule calls are ignored.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for slot, t := range s.timers {
		t.Stop()
		delete(s.timers, slot)
	}
}
