// Package gesture turns raw button transitions into clicks.
//
// The recognizer does not read the clock itself: the caller reports presses and releases with the time they were
// seen and calls Advance once per frame. Classification that depends on a quiet period (single vs. multi-click) or a
// hold (long-click) happens in Advance.
package gesture

import (
	"strconv"
	"time"
)

type Button uint8

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonDown
	ButtonSelect
	ButtonBack

	NumButtons
)

// Buttons lists the real buttons in dispatch order.
var Buttons = [...]Button{ButtonUp, ButtonDown, ButtonSelect, ButtonBack}

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonSelect:
		return "select"
	case ButtonBack:
		return "back"
	default:
		return "INVALID"
	}
}

// ParseButton is the inverse of Button.String for real buttons.
func ParseButton(s string) (Button, bool) {
	for _, b := range Buttons {
		if b.String() == s {
			return b, true
		}
	}
	return ButtonNone, false
}

type Kind uint8

const (
	SingleClick Kind = iota
	MultiClick
	LongClickStart
	LongClickRepeat
	LongClickEnd
)

func (k Kind) String() string {
	switch k {
	case SingleClick:
		return "single"
	case MultiClick:
		return "multi"
	case LongClickStart:
		return "long-start"
	case LongClickRepeat:
		return "long-repeat"
	case LongClickEnd:
		return "long-end"
	default:
		return "INVALID"
	}
}

type Event struct {
	Button Button
	Kind   Kind
	// Count is the number of presses for SingleClick (always 1) and MultiClick (2 or more).
	Count uint8
}

func (e Event) String() string {
	if e.Kind == MultiClick {
		return e.Button.String() + " " + e.Kind.String() + "(" + strconv.Itoa(int(e.Count)) + ")"
	}
	return e.Button.String() + " " + e.Kind.String()
}

// ButtonConfig controls how presses of one button are classified. A zero duration disables that feature: with no
// MultiClickTimeout a click is reported as soon as the button is released, with no LongClickDelay a hold is just a
// slow click, and with no LongClickRepeat a long click has no repeats between start and end.
type ButtonConfig struct {
	MultiClickTimeout time.Duration
	LongClickDelay    time.Duration
	LongClickRepeat   time.Duration
}

type phase uint8

const (
	phaseIdle phase = iota
	// button is down, not yet long
	phaseDown
	// released, waiting to see if another press follows
	phaseWaiting
	phaseLong
	// held across a Reset; swallowed until released
	phaseIgnore
)

type buttonState struct {
	phase      phase
	count      uint8
	pressedAt  time.Time
	releasedAt time.Time
	nextRepeat time.Time
}

type Recognizer struct {
	cfg [NumButtons]ButtonConfig
	st  [NumButtons]buttonState
	out []Event
}

func New() *Recognizer {
	return &Recognizer{}
}

func (r *Recognizer) Configure(b Button, c ButtonConfig) {
	if b == ButtonNone || b >= NumButtons {
		return
	}
	r.cfg[b] = c
}

// ConfigureAll sets every button to c.
func (r *Recognizer) ConfigureAll(c ButtonConfig) {
	for _, b := range Buttons {
		r.cfg[b] = c
	}
}

// Reset abandons every gesture in progress without reporting it. A button that is down at the time of the reset
// produces nothing until it has been released.
func (r *Recognizer) Reset() {
	for i := range r.st {
		switch r.st[i].phase {
		case phaseDown, phaseLong, phaseIgnore:
			r.st[i] = buttonState{phase: phaseIgnore}
		default:
			r.st[i] = buttonState{}
		}
	}
	r.out = nil
}

func (r *Recognizer) Press(b Button, now time.Time) {
	if b == ButtonNone || b >= NumButtons {
		return
	}
	st := &r.st[b]
	switch st.phase {
	case phaseIdle:
		*st = buttonState{phase: phaseDown, count: 1, pressedAt: now}
	case phaseWaiting:
		if now.Sub(st.releasedAt) >= r.cfg[b].MultiClickTimeout {
			// the window closed before Advance noticed; this press starts a new click
			r.emitClick(b, st.count)
			*st = buttonState{phase: phaseDown, count: 1, pressedAt: now}
			return
		}
		st.phase = phaseDown
		if st.count < 255 {
			st.count++
		}
		st.pressedAt = now
	}
}

func (r *Recognizer) Release(b Button, now time.Time) {
	if b == ButtonNone || b >= NumButtons {
		return
	}
	st := &r.st[b]
	switch st.phase {
	case phaseDown:
		if r.cfg[b].MultiClickTimeout <= 0 {
			r.emitClick(b, st.count)
			*st = buttonState{}
			return
		}
		st.phase = phaseWaiting
		st.releasedAt = now
	case phaseLong:
		r.out = append(r.out, Event{Button: b, Kind: LongClickEnd})
		*st = buttonState{}
	case phaseIgnore:
		*st = buttonState{}
	}
}

// Advance reports everything that has been decided by now, including clicks decided by Release since the last call.
func (r *Recognizer) Advance(now time.Time) []Event {
	for _, b := range Buttons {
		st := &r.st[b]
		cfg := r.cfg[b]
		switch st.phase {
		case phaseWaiting:
			if now.Sub(st.releasedAt) >= cfg.MultiClickTimeout {
				r.emitClick(b, st.count)
				*st = buttonState{}
			}
		case phaseDown:
			if cfg.LongClickDelay > 0 && now.Sub(st.pressedAt) >= cfg.LongClickDelay {
				// any taps before this hold are forgotten
				st.phase = phaseLong
				st.count = 0
				st.nextRepeat = st.pressedAt.Add(cfg.LongClickDelay + cfg.LongClickRepeat)
				r.out = append(r.out, Event{Button: b, Kind: LongClickStart})
			}
		case phaseLong:
			if cfg.LongClickRepeat > 0 && !now.Before(st.nextRepeat) {
				r.out = append(r.out, Event{Button: b, Kind: LongClickRepeat})
				st.nextRepeat = st.nextRepeat.Add(cfg.LongClickRepeat)
				if st.nextRepeat.Before(now) {
					// we fell behind; don't burst to catch up
					st.nextRepeat = now.Add(cfg.LongClickRepeat)
				}
			}
		}
	}

	out := r.out
	r.out = nil
	return out
}

// Busy reports whether any button is mid-gesture.
func (r *Recognizer) Busy() bool {
	for _, b := range Buttons {
		if r.st[b].phase != phaseIdle {
			return true
		}
	}
	return false
}

func (r *Recognizer) emitClick(b Button, count uint8) {
	if count <= 1 {
		r.out = append(r.out, Event{Button: b, Kind: SingleClick, Count: 1})
		return
	}
	r.out = append(r.out, Event{Button: b, Kind: MultiClick, Count: count})
}
