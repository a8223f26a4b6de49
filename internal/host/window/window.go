//go:build !tinygo && cgo

// Package window shows the simulated display in a desktop window and maps the keyboard to the four buttons.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ajanata/notepad"
	"github.com/ajanata/notepad/internal/gesture"
	"github.com/ajanata/notepad/internal/host"
)

const scale = 4

// Keys maps keyboard keys to buttons. Arrow keys move, Enter selects and Escape or Backspace goes back. Q closes the window.
var Keys = map[ebiten.Key]notepad.Button{
	ebiten.KeyArrowUp:   notepad.ButtonUp,
	ebiten.KeyArrowDown: notepad.ButtonDown,
	ebiten.KeyEnter:     notepad.ButtonSelect,
	ebiten.KeySpace:     notepad.ButtonSelect,
	ebiten.KeyEscape:    notepad.ButtonBack,
	ebiten.KeyBackspace: notepad.ButtonBack,
}

// Run opens the window and blocks until it is closed. The sim's driver should be on the wall clock.
func Run(sim *host.Sim, title string) error {
	g := &hostGame{sim: sim}
	w, h := sim.Display.Size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(w)*scale, int(h)*scale)
	ebiten.SetTPS(tps(sim))
	return ebiten.RunGame(g)
}

// tps runs one notepad frame per ebiten tick.
func tps(sim *host.Sim) int {
	ft := sim.App.FrameTime()
	if ft <= 0 {
		return ebiten.DefaultTPS
	}
	return int(1e9 / ft.Nanoseconds())
}

type hostGame struct {
	sim   *host.Sim
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.poll()
	return g.sim.Step()
}

// poll sets each button from whether any of its keys is down, so two keys for one button don't fight.
func (g *hostGame) poll() {
	var down notepad.ButtonState
	for key, b := range Keys {
		if ebiten.IsKeyPressed(key) {
			down = down.With(b)
		}
	}
	for _, b := range gesture.Buttons {
		g.sim.Driver.Set(b, down.Pressed(b))
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.sim.Display.Size()
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(int(w), int(h))
	}
	g.img = g.sim.Display.Image(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(_, _ int) (int, int) {
	w, h := g.sim.Display.Size()
	return int(w), int(h)
}
