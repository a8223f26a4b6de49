package host

import (
	"time"

	"github.com/ajanata/textbuf"

	"github.com/ajanata/notepad"
)

// Driver is the simulator's side of notepad.Driver. Buttons are set by whichever front end is running. The clock is
// either the wall clock or a simulated one that only moves when Advance is called.
type Driver struct {
	buttons   notepad.ButtonState
	simulated bool
	now       time.Time
}

// NewDriver returns a driver on the wall clock.
func NewDriver() *Driver {
	return &Driver{}
}

// NewSimulatedDriver returns a driver whose clock starts at start and is moved with Advance.
func NewSimulatedDriver(start time.Time) *Driver {
	return &Driver{simulated: true, now: start}
}

func (d *Driver) LateInit(buffer *textbuf.Buffer) {
	if d.simulated {
		_ = buffer.Println("Simulated clock")
	} else {
		_ = buffer.Println("Host clock")
	}
}

func (d *Driver) Buttons() notepad.ButtonState { return d.buttons }

// Set presses or releases b.
func (d *Driver) Set(b notepad.Button, down bool) {
	if down {
		d.buttons = d.buttons.With(b)
	} else {
		d.buttons = d.buttons.Without(b)
	}
}

func (d *Driver) Held(b notepad.Button) bool { return d.buttons.Pressed(b) }

func (d *Driver) Now() time.Time {
	if d.simulated {
		return d.now
	}
	return time.Now()
}

// Advance moves a simulated clock forward. It does nothing on the wall clock.
func (d *Driver) Advance(dt time.Duration) {
	if d.simulated {
		d.now = d.now.Add(dt)
	}
}
