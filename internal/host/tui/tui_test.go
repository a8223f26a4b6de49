package tui

import (
	"image/color"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajanata/notepad"
	"github.com/ajanata/notepad/internal/host"
)

func TestRender(t *testing.T) {
	fb := host.NewFramebuffer(3, 4)
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	fb.SetPixel(0, 0, white)
	fb.SetPixel(0, 1, white)
	fb.SetPixel(1, 0, white)
	fb.SetPixel(2, 3, white)
	_ = fb.Display()

	want := "█▀ \n  ▄"
	if got := Render(fb); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	m = next.(Model)
	if m.err != nil {
		t.Fatal(m.err)
	}
	return m
}

func frames(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = step(t, m, tickMsg(time.Time{}))
	}
	return m
}

func TestModelDrivesSim(t *testing.T) {
	drv := host.NewSimulatedDriver(time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC))
	sim, err := host.NewSim(notepad.DefaultConfig(), drv, nil)
	if err != nil {
		t.Fatal(err)
	}
	m := New(sim)
	if m.Init() == nil {
		t.Fatal("Init should start ticking")
	}

	m = frames(t, m, 100)
	if sim.App.TopScreen() != "menu" {
		t.Fatalf("top = %s", sim.App.TopScreen())
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = frames(t, m, 10)
	if sim.App.TopScreen() != "note" {
		t.Fatalf("enter should open a note, top = %s", sim.App.TopScreen())
	}

	// hold select until the clock shows, then let go
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	m = frames(t, m, 30)
	if !strings.Contains(m.View(), "holding select") {
		t.Fatal("view should show the held button")
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	m = frames(t, m, 2)
	if sim.App.TopScreen() != "clock" {
		t.Fatalf("long select should show the clock, top = %s", sim.App.TopScreen())
	}

	for _, k := range []tea.KeyType{tea.KeyUp, tea.KeyDown, tea.KeyUp, tea.KeyDown, tea.KeyEnter} {
		m = step(t, m, tea.KeyMsg{Type: k})
		m = frames(t, m, 3)
	}
	if sim.App.TopScreen() != "note" {
		t.Fatalf("unlock should return to the note, top = %s", sim.App.TopScreen())
	}
	if !strings.Contains(m.View(), "menu > note") {
		t.Fatal("view should show the screen stack")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestRepeatedTapsReleaseBetween(t *testing.T) {
	drv := host.NewSimulatedDriver(time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC))
	sim, err := host.NewSim(notepad.DefaultConfig(), drv, nil)
	if err != nil {
		t.Fatal(err)
	}
	m := New(sim)

	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}
	m = step(t, m, k)
	m = step(t, m, k)

	var got []bool
	for i := 0; i < 7; i++ {
		m = frames(t, m, 1)
		got = append(got, drv.Held(notepad.ButtonUp))
	}
	want := []bool{true, true, false, true, true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("up held per frame = %v, want %v", got, want)
		}
	}
}
