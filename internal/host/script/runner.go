package script

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ajanata/notepad/internal/gesture"
	"github.com/ajanata/notepad/internal/host"
)

// Runner plays scripts on a Sim. The Sim's driver should be on a simulated clock, or waits take real time.
type Runner struct {
	sim *host.Sim
	// Trace, if not nil, is called after every step.
	Trace func(step *Step, screens []string)
}

func NewRunner(sim *host.Sim) *Runner {
	return &Runner{sim: sim}
}

func (r *Runner) Run(s *Script) error {
	for _, step := range s.Steps {
		if err := r.step(step); err != nil {
			return fmt.Errorf("%s: %w", step.Pos, err)
		}
		if r.Trace != nil {
			r.Trace(step, r.sim.App.Screens())
		}
	}
	return nil
}

func (r *Runner) step(st *Step) error {
	switch {
	case st.Press != "":
		return r.set(st.Press, true)
	case st.Release != "":
		return r.set(st.Release, false)
	case len(st.Tap) > 0:
		for _, b := range st.Tap {
			if err := r.set(b, true); err != nil {
				return err
			}
			if err := r.set(b, false); err != nil {
				return err
			}
		}
		return nil
	case st.Hold != nil:
		if err := r.set(st.Hold.Button, true); err != nil {
			return err
		}
		if err := r.sim.Run(time.Duration(st.Hold.For)); err != nil {
			return err
		}
		return r.set(st.Hold.Button, false)
	case st.Wait != nil:
		return r.sim.Run(time.Duration(*st.Wait))
	case len(st.Expect) == 1:
		if top := r.sim.App.TopScreen(); top != st.Expect[0] {
			return fmt.Errorf("expected screen %s, got %s", st.Expect[0], top)
		}
		return nil
	case len(st.Expect) > 1:
		got := strings.Join(r.sim.App.Screens(), " ")
		if want := strings.Join(st.Expect, " "); got != want {
			return fmt.Errorf("expected screens %q, got %q", want, got)
		}
		return nil
	}
	return errors.New("empty step")
}

// set changes a button and runs one frame so the main loop sees it.
func (r *Runner) set(name string, down bool) error {
	b, ok := gesture.ParseButton(name)
	if !ok {
		return fmt.Errorf("unknown button %q", name)
	}
	r.sim.Driver.Set(b, down)
	return r.sim.Step()
}
