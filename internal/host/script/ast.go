package script

import (
	"strings"
	"time"

	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a list of steps run one after another on a simulated clock.
//
//	# open the first note and hide it behind the clock
//	wait 4s
//	tap select
//	hold select 800ms
//	expect menu note clock
type Script struct {
	Steps []*Step `@@*`
}

// Step is one command. Exactly one field is set.
type Step struct {
	Pos lexer.Position

	Press   string    `  "press" @Button`
	Release string    `| "release" @Button`
	Tap     []string  `| "tap" @Button+`
	Hold    *Hold     `| @@`
	Wait    *Duration `| "wait" @Duration`
	// Expect with one name checks the top screen; with more it checks the whole stack, bottom first.
	Expect []string `| "expect" @Ident+`
}

func (s *Step) String() string {
	switch {
	case s.Press != "":
		return "press " + s.Press
	case s.Release != "":
		return "release " + s.Release
	case len(s.Tap) > 0:
		return "tap " + strings.Join(s.Tap, " ")
	case s.Hold != nil:
		return "hold " + s.Hold.Button + " " + time.Duration(s.Hold.For).String()
	case s.Wait != nil:
		return "wait " + time.Duration(*s.Wait).String()
	case len(s.Expect) > 0:
		return "expect " + strings.Join(s.Expect, " ")
	}
	return "empty"
}

type Hold struct {
	Button string   `"hold" @Button`
	For    Duration `@Duration`
}

type Duration time.Duration

func (d *Duration) Capture(values []string) error {
	v, err := time.ParseDuration(values[0])
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
