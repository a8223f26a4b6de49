package timer

import (
	"time"
)

// Repeater emulates a periodic task with one-shot timers: every firing runs step once and registers the next firing
// if the repeater is still running.
type Repeater struct {
	sched    Scheduler
	interval time.Duration
	step     func()

	handle Handle
	active bool
	// gen is bumped on every Start and Stop so a registration from an earlier run can never step.
	gen uint32
}

func NewRepeater(sched Scheduler, interval time.Duration, step func()) *Repeater {
	return &Repeater{
		sched:    sched,
		interval: interval,
		step:     step,
	}
}

// Start (re)starts the repeater. Any registration from a previous Start is invalidated.
func (r *Repeater) Start() {
	r.cancel()
	r.active = true
	r.gen++
	r.arm()
}

// Stop is idempotent.
func (r *Repeater) Stop() {
	r.cancel()
	if r.active {
		r.gen++
	}
	r.active = false
}

func (r *Repeater) Active() bool { return r.active }

func (r *Repeater) arm() {
	gen := r.gen
	r.handle = r.sched.Register(r.interval, func() { r.fire(gen) })
}

func (r *Repeater) fire(gen uint32) {
	if !r.active || gen != r.gen {
		return
	}
	r.handle = 0
	r.step()
	// step may have stopped or restarted us
	if r.active && gen == r.gen {
		r.arm()
	}
}

func (r *Repeater) cancel() {
	if r.handle != 0 {
		r.sched.Cancel(r.handle)
		r.handle = 0
	}
}
