package scroll

import (
	"time"

	"github.com/ajanata/notepad/internal/timer"
)

// Mode is a continuous scrolling mode driven by a repeat timer.
type Mode uint8

const (
	ModeLongUp Mode = iota
	ModeLongDown
	ModeAuto

	numModes
)

func (m Mode) String() string {
	switch m {
	case ModeLongUp:
		return "long-up"
	case ModeLongDown:
		return "long-down"
	case ModeAuto:
		return "auto"
	default:
		return "INVALID"
	}
}

type Config struct {
	// LongDelta is how far one long-press tick moves, in pixels.
	LongDelta    int
	LongInterval time.Duration
	// AutoDelta is how far one auto-scroll tick moves toward the bottom, in pixels.
	AutoDelta    int
	AutoInterval time.Duration
}

// Controller tracks the vertical offset of a text view. Offsets are zero at the top and go negative as the content
// moves up; every change is clamped to [-(content-view), 0].
type Controller struct {
	cfg      Config
	offset   int
	content  int
	view     int
	onChange func(offset int)

	repeat [numModes]*timer.Repeater
}

// New returns a controller whose repeat modes are timed by sched. onChange is called after every change to the offset.
func New(sched timer.Scheduler, cfg Config, onChange func(offset int)) *Controller {
	c := &Controller{cfg: cfg, onChange: onChange}
	c.repeat[ModeLongUp] = timer.NewRepeater(sched, cfg.LongInterval, func() { c.Tick(ModeLongUp) })
	c.repeat[ModeLongDown] = timer.NewRepeater(sched, cfg.LongInterval, func() { c.Tick(ModeLongDown) })
	c.repeat[ModeAuto] = timer.NewRepeater(sched, cfg.AutoInterval, func() { c.Tick(ModeAuto) })
	return c
}

// Reset sets the content and viewport heights and returns to the top. Running modes are stopped.
func (c *Controller) Reset(content, view int) {
	c.StopAll()
	if content < 0 {
		content = 0
	}
	if view < 0 {
		view = 0
	}
	c.content, c.view = content, view
	c.set(0)
}

func (c *Controller) Offset() int { return c.offset }

// Min is the lowest offset, reached when the end of the content is at the bottom of the view.
func (c *Controller) Min() int {
	if c.content <= c.view {
		return 0
	}
	return c.view - c.content
}

// ScrollBy moves the content by delta pixels; positive moves toward the top. Returns whether the offset changed.
func (c *Controller) ScrollBy(delta int) bool {
	return c.set(c.offset + delta)
}

func (c *Controller) ScrollToTop() bool { return c.set(0) }

func (c *Controller) ScrollToBottom() bool { return c.set(c.Min()) }

func (c *Controller) AtBottom() bool { return c.offset == c.Min() }

func (c *Controller) Start(m Mode) {
	if m >= numModes {
		return
	}
	c.repeat[m].Start()
}

func (c *Controller) Stop(m Mode) {
	if m >= numModes {
		return
	}
	c.repeat[m].Stop()
}

func (c *Controller) StopAll() {
	for _, r := range c.repeat {
		r.Stop()
	}
}

func (c *Controller) Active(m Mode) bool {
	if m >= numModes {
		return false
	}
	return c.repeat[m].Active()
}

// Tick applies one step of m. Ticking a mode that is not running does nothing.
func (c *Controller) Tick(m Mode) {
	if !c.Active(m) {
		return
	}
	switch m {
	case ModeLongUp:
		c.ScrollBy(c.cfg.LongDelta)
	case ModeLongDown:
		c.ScrollBy(-c.cfg.LongDelta)
	case ModeAuto:
		c.ScrollBy(-c.cfg.AutoDelta)
		if c.AtBottom() {
			c.Stop(ModeAuto)
		}
	}
}

func (c *Controller) set(offset int) bool {
	if offset > 0 {
		offset = 0
	}
	if lo := c.Min(); offset < lo {
		offset = lo
	}
	if offset == c.offset {
		return false
	}
	c.offset = offset
	if c.onChange != nil {
		c.onChange(offset)
	}
	return true
}
