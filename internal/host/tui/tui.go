// Package tui shows the simulated display in a terminal with bubbletea.
//
// Terminals report key presses but not releases, so a key press is a short tap of the button. Long presses use the
// hold toggles: the button stays down until its toggle key is pressed again.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajanata/notepad"
	"github.com/ajanata/notepad/internal/gesture"
	"github.com/ajanata/notepad/internal/host"
)

// tapFrames is how many frames a tapped button stays down. Every tap is followed by one released frame so that
// quick taps of the same key reach the driver as separate presses.
const tapFrames = 2

var (
	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("16"))
	stackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	heldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type binding struct {
	key.Binding
	button notepad.Button
}

type keyMap struct {
	Taps  []binding
	Holds []binding
	Quit  key.Binding
}

var keys = keyMap{
	Taps: []binding{
		{key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")), notepad.ButtonUp},
		{key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")), notepad.ButtonDown},
		{key.NewBinding(key.WithKeys("enter", " ", "l"), key.WithHelp("enter/l", "select")), notepad.ButtonSelect},
		{key.NewBinding(key.WithKeys("esc", "backspace", "h"), key.WithHelp("esc/h", "back")), notepad.ButtonBack},
	},
	Holds: []binding{
		{key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "hold up")), notepad.ButtonUp},
		{key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "hold down")), notepad.ButtonDown},
		{key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "hold select")), notepad.ButtonSelect},
		{key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hold back")), notepad.ButtonBack},
	},
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(k.Taps)+1)
	for _, b := range k.Taps {
		out = append(out, b.Binding)
	}
	return append(out, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	holds := make([]key.Binding, 0, len(k.Holds))
	for _, b := range k.Holds {
		holds = append(holds, b.Binding)
	}
	return [][]key.Binding{k.ShortHelp(), holds}
}

type tickMsg time.Time

type Model struct {
	sim     *host.Sim
	// taps holds the queued per-frame state of each button, true for down
	taps    [gesture.NumButtons][]bool
	latched notepad.ButtonState
	help    help.Model
	err     error
}

func New(sim *host.Sim) Model {
	h := help.New()
	h.ShowAll = true
	return Model{sim: sim, help: h}
}

// Run starts the terminal UI and blocks until it exits.
func Run(sim *host.Sim) error {
	p := tea.NewProgram(New(sim), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return err
	}
	return m.(Model).err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.sim.App.FrameTime(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		for _, b := range keys.Taps {
			if key.Matches(msg, b.Binding) {
				m.taps[b.button] = queueTap(m.taps[b.button])
			}
		}
		for _, b := range keys.Holds {
			if !key.Matches(msg, b.Binding) {
				continue
			}
			if m.latched.Pressed(b.button) {
				m.latched = m.latched.Without(b.button)
			} else {
				m.latched = m.latched.With(b.button)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		for _, b := range gesture.Buttons {
			down := false
			if q := m.taps[b]; len(q) > 0 {
				down, m.taps[b] = q[0], q[1:]
			}
			m.sim.Driver.Set(b, down || m.latched.Pressed(b))
		}
		if err := m.sim.Step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func queueTap(q []bool) []bool {
	for i := 0; i < tapFrames; i++ {
		q = append(q, true)
	}
	return append(q, false)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(screenStyle.Render(Render(m.sim.Display)))
	b.WriteString("\n")
	b.WriteString(stackStyle.Render(strings.Join(m.sim.App.Screens(), " > ")))

	var held []string
	for _, btn := range gesture.Buttons {
		if m.latched.Pressed(btn) {
			held = append(held, btn.String())
		}
	}
	if len(held) > 0 {
		b.WriteString("  ")
		b.WriteString(heldStyle.Render("holding " + strings.Join(held, ", ")))
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

// Render draws the displayed frame with half blocks, two pixel rows per line of text.
func Render(fb *host.Framebuffer) string {
	w, h := fb.Size()
	var b strings.Builder
	for y := 0; y < int(h); y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < int(w); x++ {
			top, bottom := fb.Lit(x, y), fb.Lit(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
