package notepad

import (
	"github.com/ajanata/notepad/internal/catalog"
	"github.com/ajanata/notepad/internal/gesture"
	"github.com/ajanata/notepad/internal/render"
	"github.com/ajanata/notepad/internal/scroll"
	"github.com/ajanata/notepad/internal/timer"
)

const autoMarker = "AUTO"

// noteScreen shows the text of one note. The text lives in the shared note buffer only while the screen is on the
// stack.
type noteScreen struct {
	n      *Notepad
	note   catalog.Note
	text   []byte
	lines  []render.Span
	scroll *scroll.Controller
}

func newNoteScreen(n *Notepad, note catalog.Note) *noteScreen {
	return &noteScreen{n: n, note: note}
}

func (s *noteScreen) Name() string { return "note" }

func (s *noteScreen) Load(timers *timer.Scope) {
	c := s.n.canvas
	l := s.n.catalog.Read(s.note.Resource, s.n.noteBuf)
	s.text = s.n.noteBuf[:l]
	s.lines = render.Wrap(s.text, c.Columns())

	cfg := s.n.cfg
	s.scroll = scroll.New(timers, scroll.Config{
		LongDelta:    cfg.LongScrollDelta,
		LongInterval: cfg.LongScrollInterval,
		AutoDelta:    cfg.AutoScrollDelta,
		AutoInterval: cfg.AutoScrollInterval,
	}, func(int) { s.n.redraw() })
	_, h := c.Size()
	s.scroll.Reset(len(s.lines)*render.LineHeight, int(h)-render.LineHeight)

	s.n.log.Debugf("loaded %s: %d of %d bytes, %d lines", s.note.Title, l, s.note.Length, len(s.lines))
}

func (s *noteScreen) Appear() { s.n.redraw() }

// Disappear stops scrolling; the stack cancels the timers behind it.
func (s *noteScreen) Disappear() {
	s.scroll.StopAll()
}

func (s *noteScreen) Unload() {
	s.scroll.StopAll()
	clear(s.n.noteBuf)
	s.text = nil
	s.lines = nil
}

func (s *noteScreen) Draw() {
	c := s.n.canvas
	w, h := c.Size()
	c.Clear()
	if s.scroll.Active(scroll.ModeAuto) {
		c.Header(s.note.Title, autoMarker)
	} else {
		c.Header(s.note.Title, "")
	}

	body := c.Clip(0, render.LineHeight, w, h-render.LineHeight)
	off := s.scroll.Offset()
	for i, sp := range s.lines {
		y := render.LineHeight + off + i*render.LineHeight
		if y+render.LineHeight <= render.LineHeight {
			continue
		}
		if y >= int(h) {
			break
		}
		body.TextBytes(1, int16(y), s.text[sp.Start:sp.End], render.White)
	}
}

func (s *noteScreen) Input(ev gesture.Event) {
	cfg := s.n.cfg
	switch ev.Button {
	case ButtonUp, ButtonDown:
		up := ev.Button == ButtonUp
		mode := scroll.ModeLongDown
		if up {
			mode = scroll.ModeLongUp
		}
		switch ev.Kind {
		case gesture.SingleClick:
			if up {
				s.scroll.ScrollBy(cfg.ScrollClickDelta)
			} else {
				s.scroll.ScrollBy(-cfg.ScrollClickDelta)
			}
		case gesture.MultiClick:
			if up {
				s.scroll.ScrollToTop()
			} else {
				s.scroll.ScrollToBottom()
			}
		case gesture.LongClickStart:
			s.scroll.Start(mode)
		case gesture.LongClickEnd:
			s.scroll.Stop(mode)
		}
	case ButtonSelect:
		switch ev.Kind {
		case gesture.SingleClick:
			if s.scroll.Active(scroll.ModeAuto) {
				s.scroll.Stop(scroll.ModeAuto)
				s.n.log.Info("auto-scroll off")
			} else {
				s.scroll.Start(scroll.ModeAuto)
				s.n.log.Info("auto-scroll on")
			}
			s.n.redraw()
		case gesture.LongClickStart:
			s.n.stack.Push(newClockScreen(s.n), true)
		}
	case ButtonBack:
		if ev.Kind == gesture.SingleClick {
			s.n.stack.Pop(true)
		}
	}
}

func (s *noteScreen) buttonConfig(b Button) gesture.ButtonConfig {
	cfg := s.n.cfg
	switch b {
	case ButtonUp, ButtonDown:
		return gesture.ButtonConfig{MultiClickTimeout: cfg.MultiClickTimeout, LongClickDelay: cfg.LongClickDelay}
	case ButtonSelect:
		return gesture.ButtonConfig{LongClickDelay: cfg.LongClickDelay}
	}
	return gesture.ButtonConfig{}
}
