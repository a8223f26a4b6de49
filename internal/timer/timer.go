package timer

import (
	"sort"
	"time"
)

// Handle identifies a single registration. The zero Handle is never issued.
type Handle uint32

// Scheduler is anything timers can be registered on.
type Scheduler interface {
	Register(delay time.Duration, f func()) Handle
	Cancel(h Handle)
	Now() time.Time
}

type entry struct {
	h   Handle
	due time.Time
	f   func()
}

// Service is a set of one-shot timers driven by the main loop. Nothing fires on its own; Advance runs every
// registration that is due.
type Service struct {
	now     time.Time
	next    Handle
	pending map[Handle]*entry
}

func NewService(now time.Time) *Service {
	return &Service{
		now:     now,
		pending: make(map[Handle]*entry),
	}
}

// Now is the time of the last Advance.
func (s *Service) Now() time.Time { return s.now }

// Register arranges for f to be called once, on the first Advance at or after delay from now.
func (s *Service) Register(delay time.Duration, f func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.next++
	if s.next == 0 {
		s.next++
	}
	s.pending[s.next] = &entry{h: s.next, due: s.now.Add(delay), f: f}
	return s.next
}

// Cancel prevents h from firing. Cancelling a handle that already fired or was already cancelled does nothing.
func (s *Service) Cancel(h Handle) {
	delete(s.pending, h)
}

// Pending is the number of registrations that have not fired or been cancelled.
func (s *Service) Pending() int { return len(s.pending) }

// Advance moves the clock to now and fires everything due, earliest first. Timers registered by callbacks are not
// considered until the next Advance, even with a zero delay. Returns the number of callbacks run.
func (s *Service) Advance(now time.Time) int {
	if now.After(s.now) {
		s.now = now
	}

	var due []*entry
	for _, e := range s.pending {
		if !e.due.After(s.now) {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].h < due[j].h
		}
		return due[i].due.Before(due[j].due)
	})

	fired := 0
	for _, e := range due {
		// an earlier callback in this batch may have cancelled it
		if _, ok := s.pending[e.h]; !ok {
			continue
		}
		delete(s.pending, e.h)
		e.f()
		fired++
	}
	return fired
}

// NewScope returns a view of the service that remembers what was registered through it.
func (s *Service) NewScope() *Scope {
	return &Scope{svc: s, handles: make(map[Handle]struct{})}
}

// Scope is the set of timers owned by one screen. CancelAll drops every registration still outstanding.
type Scope struct {
	svc     *Service
	handles map[Handle]struct{}
}

func (sc *Scope) Now() time.Time { return sc.svc.Now() }

func (sc *Scope) Register(delay time.Duration, f func()) Handle {
	var h Handle
	h = sc.svc.Register(delay, func() {
		delete(sc.handles, h)
		f()
	})
	sc.handles[h] = struct{}{}
	return h
}

func (sc *Scope) Cancel(h Handle) {
	if _, ok := sc.handles[h]; !ok {
		return
	}
	delete(sc.handles, h)
	sc.svc.Cancel(h)
}

func (sc *Scope) CancelAll() {
	for h := range sc.handles {
		sc.svc.Cancel(h)
	}
	sc.handles = make(map[Handle]struct{})
}

// Pending is the number of outstanding registrations made through this scope.
func (sc *Scope) Pending() int { return len(sc.handles) }
