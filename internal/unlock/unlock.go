// Package unlock recognizes the button sequence that leaves the decoy clock: Up, Down, Up, Down, then Select.
package unlock

import (
	"github.com/ajanata/notepad/internal/gesture"
)

type State uint8

const (
	Idle State = iota
	SawUp
	SawUpDown
	SawUpDownUp
	SawUpDownUpDown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case SawUp:
		return "up"
	case SawUpDown:
		return "up-down"
	case SawUpDownUp:
		return "up-down-up"
	case SawUpDownUpDown:
		return "up-down-up-down"
	default:
		return "INVALID"
	}
}

// sequence[s] is the press that moves the machine out of state s.
var sequence = [...]gesture.Button{
	Idle:            gesture.ButtonUp,
	SawUp:           gesture.ButtonDown,
	SawUpDown:       gesture.ButtonUp,
	SawUpDownUp:     gesture.ButtonDown,
	SawUpDownUpDown: gesture.ButtonSelect,
}

// Machine is the unlock state machine. The zero value is ready to use.
type Machine struct {
	state State
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Reset() { m.state = Idle }

// Input advances the machine by one button press and reports whether the sequence just completed. Any press other
// than the expected one returns the machine to Idle.
func (m *Machine) Input(b gesture.Button) (unlocked bool) {
	if int(m.state) >= len(sequence) || b != sequence[m.state] {
		m.state = Idle
		return false
	}
	if m.state == SawUpDownUpDown {
		m.state = Idle
		return true
	}
	m.state++
	return false
}
