package screen

import (
	"github.com/ajanata/notepad/internal/gesture"
	"github.com/ajanata/notepad/internal/timer"
)

// Screen is one full-display mode. Only the screen at the top of a Stack receives input and draws.
type Screen interface {
	Name() string

	// Load is called once, when the screen is pushed. Every timer the screen uses must be registered through
	// timers; the stack cancels them when the screen is covered or popped.
	Load(timers *timer.Scope)
	// Appear is called whenever the screen becomes the top of the stack, after Load or after the screen above it
	// was popped.
	Appear()
	// Disappear is called when another screen is pushed on top of this one, and before Unload.
	Disappear()
	// Unload is called once, when the screen is popped. It must release everything the screen holds.
	Unload()

	Draw()
	Input(ev gesture.Event)
}

// Transition describes a change of the top screen.
type Transition struct {
	Top      Screen
	Animated bool
	// Push is false for a pop.
	Push bool
}

type entry struct {
	s      Screen
	timers *timer.Scope
}

// Stack is a LIFO of screens. The first screen pushed is the base and can not be popped.
type Stack struct {
	timers   *timer.Service
	entries  []entry
	onChange func(Transition)
}

// NewStack returns an empty stack that hands out timer scopes from timers. onChange, if not nil, is called after
// every push and pop with the new top.
func NewStack(timers *timer.Service, onChange func(Transition)) *Stack {
	return &Stack{timers: timers, onChange: onChange}
}

func (st *Stack) Push(s Screen, animated bool) {
	if n := len(st.entries); n > 0 {
		top := st.entries[n-1]
		top.s.Disappear()
		top.timers.CancelAll()
	}

	e := entry{s: s, timers: st.timers.NewScope()}
	st.entries = append(st.entries, e)
	s.Load(e.timers)
	s.Appear()
	st.changed(Transition{Top: s, Animated: animated, Push: true})
}

// Pop removes the top screen. Returns false, and does nothing, if the top screen is the base.
func (st *Stack) Pop(animated bool) bool {
	n := len(st.entries)
	if n <= 1 {
		return false
	}

	top := st.entries[n-1]
	top.s.Disappear()
	top.s.Unload()
	top.timers.CancelAll()
	st.entries[n-1] = entry{}
	st.entries = st.entries[:n-1]

	next := st.entries[n-2].s
	next.Appear()
	st.changed(Transition{Top: next, Animated: animated})
	return true
}

// Top is nil if nothing has been pushed yet.
func (st *Stack) Top() Screen {
	if len(st.entries) == 0 {
		return nil
	}
	return st.entries[len(st.entries)-1].s
}

func (st *Stack) Len() int { return len(st.entries) }

// Names lists the screens bottom first.
func (st *Stack) Names() []string {
	names := make([]string, len(st.entries))
	for i, e := range st.entries {
		names[i] = e.s.Name()
	}
	return names
}

func (st *Stack) changed(t Transition) {
	if st.onChange != nil {
		st.onChange(t)
	}
}
