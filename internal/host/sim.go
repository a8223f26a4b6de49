// Package host runs the notepad on a desktop: an in-memory display, a driver fed by the front end, and the glue to
// step the main loop from a window, a terminal or a script.
package host

import (
	"fmt"
	"time"

	"github.com/ajanata/notepad"
	"github.com/ajanata/notepad/internal/catalog"
)

const (
	DisplayWidth  = 128
	DisplayHeight = 64
)

// Sim is one notepad wired to a Framebuffer and a Driver.
type Sim struct {
	App     *notepad.Notepad
	Display *Framebuffer
	Driver  *Driver
	Notes   *catalog.Catalog
}

// NewSim builds and initializes a notepad with the built in notes. A nil logger discards everything.
func NewSim(cfg notepad.Config, drv *Driver, log notepad.Logger) (*Sim, error) {
	notes, err := catalog.Builtin()
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	return NewSimWith(cfg, drv, log, notes)
}

func NewSimWith(cfg notepad.Config, drv *Driver, log notepad.Logger, notes *catalog.Catalog) (*Sim, error) {
	fb := NewFramebuffer(DisplayWidth, DisplayHeight)
	app, err := notepad.New(cfg, fb, nil, drv, notes)
	if err != nil {
		return nil, fmt.Errorf("new notepad: %w", err)
	}
	app.SetLogger(log)
	if err = app.Init(); err != nil {
		return nil, fmt.Errorf("init notepad: %w", err)
	}
	return &Sim{App: app, Display: fb, Driver: drv, Notes: notes}, nil
}

// Step runs one frame. On a simulated clock the clock moves forward by one frame first.
func (s *Sim) Step() error {
	s.Driver.Advance(s.App.FrameTime())
	return s.App.RunTick()
}

// Run steps frames until d has passed on a simulated clock.
func (s *Sim) Run(d time.Duration) error {
	for end := s.Driver.Now().Add(d); s.Driver.Now().Before(end); {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}
