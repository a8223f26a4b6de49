package notepad

import (
	"time"

	"github.com/ajanata/textbuf"

	"github.com/ajanata/notepad/internal/gesture"
)

type Button = gesture.Button

const (
	ButtonNone   = gesture.ButtonNone
	ButtonUp     = gesture.ButtonUp
	ButtonDown   = gesture.ButtonDown
	ButtonSelect = gesture.ButtonSelect
	ButtonBack   = gesture.ButtonBack
)

// ButtonState is the set of buttons that are currently held down.
type ButtonState uint8

func (s ButtonState) Pressed(b Button) bool { return s&(1<<b) != 0 }

// With returns s with b held down as well.
func (s ButtonState) With(b Button) ButtonState { return s | 1<<b }

// Without returns s with b released.
func (s ButtonState) Without(b Button) ButtonState { return s &^ (1 << b) }

type Driver interface {
	// LateInit performs any late initialization (e.g. setting the clock from an RTC). The failure of anything in
	// LateInit should not cause the failure of the entire process. Boot messages may be freely logged.
	LateInit(buffer *textbuf.Buffer)

	// Buttons reports which buttons are held down right now. It is called once per frame; the caller works out
	// presses, releases and gestures from the changes between frames. The implementation should debounce if the
	// hardware needs it.
	Buttons() ButtonState

	// Now is the current wall clock time. It is also used to time gestures and timers, so it should not jump
	// backwards.
	Now() time.Time
}

type Blinker interface {
	Low()
	High()
}

// bootState indicates what the display is showing while starting up.
type bootState uint8

const (
	bootStateLog bootState = iota
	bootStateDone
)

func (s bootState) String() string {
	switch s {
	case bootStateLog:
		return "log"
	case bootStateDone:
		return "done"
	default:
		return "INVALID"
	}
}
