package notepad

import (
	"errors"
	"time"
)

// Config holds every timing, distance and size the application uses. Start from DefaultConfig.
type Config struct {
	// Framerate is the number of main loop iterations per second.
	Framerate uint
	// Flip rotates the display by 180 degrees.
	Flip bool
	// BootLogTimeout is how long the boot log stays up if no button is pressed.
	BootLogTimeout time.Duration
	// TransitionFrames is the length of the push/pop wipe. Zero disables it.
	TransitionFrames int

	// NoteBufferBytes bounds how much of a note is loaded. Longer notes are cut off.
	NoteBufferBytes int
	// PreviewBytes is the length of the note preview shown in the menu.
	PreviewBytes int

	MultiClickTimeout time.Duration
	LongClickDelay    time.Duration
	// MenuRepeatInterval is how often a held Up or Down moves the menu selection.
	MenuRepeatInterval time.Duration

	// ScrollClickDelta is how far, in pixels, one click of Up or Down scrolls a note.
	ScrollClickDelta   int
	LongScrollDelta    int
	LongScrollInterval time.Duration
	AutoScrollDelta    int
	AutoScrollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Framerate:          30,
		BootLogTimeout:     3 * time.Second,
		TransitionFrames:   6,
		NoteBufferBytes:    2048,
		PreviewBytes:       20,
		MultiClickTimeout:  250 * time.Millisecond,
		LongClickDelay:     700 * time.Millisecond,
		MenuRepeatInterval: 150 * time.Millisecond,
		ScrollClickDelta:   20,
		LongScrollDelta:    4,
		LongScrollInterval: 40 * time.Millisecond,
		AutoScrollDelta:    1,
		AutoScrollInterval: 80 * time.Millisecond,
	}
}

func (c Config) validate() error {
	switch {
	case c.Framerate == 0:
		return errors.New("must run at least one frame per second")
	case c.NoteBufferBytes <= 0:
		return errors.New("note buffer must not be empty")
	case c.PreviewBytes < 0:
		return errors.New("preview length must not be negative")
	case c.TransitionFrames < 0:
		return errors.New("transition frames must not be negative")
	case c.BootLogTimeout < 0, c.MultiClickTimeout < 0, c.LongClickDelay < 0, c.MenuRepeatInterval < 0:
		return errors.New("timeouts must not be negative")
	case c.LongScrollInterval <= 0 || c.AutoScrollInterval <= 0:
		return errors.New("scroll intervals must be positive")
	case c.ScrollClickDelta <= 0 || c.LongScrollDelta <= 0 || c.AutoScrollDelta <= 0:
		return errors.New("scroll distances must be positive")
	}
	return nil
}
