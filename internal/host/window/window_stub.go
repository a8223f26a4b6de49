//go:build !tinygo && !cgo

package window

import (
	"errors"

	"github.com/ajanata/notepad/internal/host"
)

func Run(_ *host.Sim, _ string) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
