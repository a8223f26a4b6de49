package notepad

import (
	"image"

	"github.com/ajanata/notepad/internal/gesture"
	"github.com/ajanata/notepad/internal/media"
	"github.com/ajanata/notepad/internal/render"
	"github.com/ajanata/notepad/internal/timer"
)

const menuTitle = "Your notes"

// menuScreen lists the notes. It is the base of the screen stack.
type menuScreen struct {
	n        *Notepad
	previews []string
	icon     image.Image
	selected int
	top      int
}

func newMenuScreen(n *Notepad) *menuScreen {
	return &menuScreen{n: n}
}

func (m *menuScreen) Name() string { return "menu" }

func (m *menuScreen) Load(_ *timer.Scope) {
	cat := m.n.catalog
	m.previews = make([]string, cat.Len())
	for i := range m.previews {
		m.previews[i] = cat.Preview(cat.Resolve(i), m.n.cfg.PreviewBytes)
	}

	icon, err := media.LoadImage(media.TypeIcon, "note")
	if err != nil {
		m.n.log.Info("menu icon: " + err.Error())
	}
	m.icon = icon
}

func (m *menuScreen) Appear() { m.n.redraw() }

func (m *menuScreen) Disappear() {}

func (m *menuScreen) Unload() {
	m.previews = nil
	m.icon = nil
}

// rows is how many notes fit below the header.
func (m *menuScreen) rows() int {
	_, h := m.n.canvas.Size()
	r := (int(h) - render.LineHeight) / render.RowHeight
	if r < 1 {
		r = 1
	}
	return r
}

func (m *menuScreen) Draw() {
	c := m.n.canvas
	c.Clear()
	c.Header(menuTitle, "")

	cat := m.n.catalog
	rows := m.rows()
	for i := 0; i < rows && m.top+i < cat.Len(); i++ {
		idx := m.top + i
		y := int16(render.LineHeight + i*render.RowHeight)
		c.Row(y, cat.Note(idx).Title, m.previews[idx], m.icon, idx == m.selected)
	}
}

func (m *menuScreen) Input(ev gesture.Event) {
	switch ev.Button {
	case ButtonUp, ButtonDown:
		switch ev.Kind {
		case gesture.SingleClick, gesture.LongClickStart, gesture.LongClickRepeat:
			if ev.Button == ButtonUp {
				m.move(-1)
			} else {
				m.move(1)
			}
		}
	case ButtonSelect:
		switch ev.Kind {
		case gesture.SingleClick:
			m.n.stack.Push(newNoteScreen(m.n, m.n.catalog.Note(m.selected)), true)
		case gesture.LongClickStart:
			m.n.stack.Push(newClockScreen(m.n), true)
		}
	}
}

func (m *menuScreen) move(d int) {
	sel := m.selected + d
	if sel < 0 || sel >= m.n.catalog.Len() {
		return
	}
	m.selected = sel
	if m.selected < m.top {
		m.top = m.selected
	}
	if rows := m.rows(); m.selected >= m.top+rows {
		m.top = m.selected - rows + 1
	}
	m.n.redraw()
}

func (m *menuScreen) buttonConfig(b Button) gesture.ButtonConfig {
	cfg := m.n.cfg
	switch b {
	case ButtonUp, ButtonDown:
		return gesture.ButtonConfig{LongClickDelay: cfg.LongClickDelay, LongClickRepeat: cfg.MenuRepeatInterval}
	case ButtonSelect:
		return gesture.ButtonConfig{LongClickDelay: cfg.LongClickDelay}
	}
	return gesture.ButtonConfig{}
}
