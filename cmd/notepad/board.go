//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/ajanata/textbuf"

	"github.com/ajanata/notepad"
)

// buttonPins are wired to ground through the buttons, so a pressed button reads low.
var buttonPins = [...]struct {
	button notepad.Button
	pin    machine.Pin
}{
	{notepad.ButtonUp, machine.GPIO10},
	{notepad.ButtonDown, machine.GPIO11},
	{notepad.ButtonSelect, machine.GPIO12},
	{notepad.ButtonBack, machine.GPIO13},
}

type board struct{}

func newBoard() *board {
	for _, bp := range buttonPins {
		bp.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return &board{}
}

func (*board) LateInit(buffer *textbuf.Buffer) {
	_ = buffer.Println("Buttons on GPIO10-13")
	if time.Now().Year() < 2000 {
		// there is no RTC; the clock counts from power on
		_ = buffer.Println("Clock not set")
	}
}

func (*board) Buttons() notepad.ButtonState {
	var s notepad.ButtonState
	for _, bp := range buttonPins {
		if !bp.pin.Get() {
			s = s.With(bp.button)
		}
	}
	return s
}

func (*board) Now() time.Time { return time.Now() }
