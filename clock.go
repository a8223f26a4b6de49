package notepad

import (
	"image"
	"strings"
	"time"

	"github.com/ajanata/notepad/internal/gesture"
	"github.com/ajanata/notepad/internal/media"
	"github.com/ajanata/notepad/internal/render"
	"github.com/ajanata/notepad/internal/timer"
	"github.com/ajanata/notepad/internal/unlock"
)

// clockScreen looks like an ordinary watch face. The only way off it is the unlock sequence.
type clockScreen struct {
	n      *Notepad
	timers *timer.Scope
	lock   unlock.Machine
	icon   image.Image
}

func newClockScreen(n *Notepad) *clockScreen {
	return &clockScreen{n: n}
}

func (s *clockScreen) Name() string { return "clock" }

func (s *clockScreen) Load(timers *timer.Scope) {
	s.timers = timers
	s.lock.Reset()
	s.icon = media.MustLoadImage(media.TypeIcon, "clock")
}

func (s *clockScreen) Appear() {
	s.n.redraw()
	s.armMinute()
}

func (s *clockScreen) Disappear() {}

func (s *clockScreen) Unload() {
	s.lock.Reset()
	s.icon = nil
}

// armMinute redraws at the next minute boundary, and again every minute after that.
func (s *clockScreen) armMinute() {
	now := s.timers.Now()
	next := now.Truncate(time.Minute).Add(time.Minute)
	s.timers.Register(next.Sub(now), func() {
		s.n.redraw()
		s.armMinute()
	})
}

func (s *clockScreen) Draw() {
	buf := s.n.text
	now := s.n.now
	w, h := buf.Size()

	buf.Clear()
	_ = buf.SetLine(h/2-1, center(now.Format("15:04"), w))
	_ = buf.SetLine(h/2+1, center(now.Format("Mon Jan 2"), w))
	_ = buf.Display()
	// textbuf has rendered by now and the panel is flushed at the end of the frame
	s.n.canvas.Icon(0, 0, s.icon, render.White)
}

func center(s string, width int16) string {
	pad := (int(width) - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func (s *clockScreen) Input(ev gesture.Event) {
	if ev.Kind != gesture.SingleClick {
		return
	}
	before := s.lock.State()
	if s.lock.Input(ev.Button) {
		s.n.log.Info("unlocked")
		s.n.stack.Pop(true)
		return
	}
	if before != unlock.Idle && s.lock.State() == unlock.Idle {
		s.n.log.Debug("unlock reset at " + before.String())
	}
}
