// Package slide is the wipe played when a screen is pushed or popped.
package slide

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/ajanata/notepad/internal/animation"
)

var (
	black = color.RGBA{A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Anim reveals the screen underneath it a few columns per frame. A push reveals from the right edge, like the new
// screen sliding in over the old one; a pop reveals from the left.
type Anim struct {
	push   bool
	frames uint32
}

func New(push bool, frames int) *Anim {
	if frames < 1 {
		frames = 1
	}
	return &Anim{push: push, frames: uint32(frames)}
}

func (a *Anim) Activate(_ drivers.Displayer) {}

// DrawFrame covers the part of the display that has not been revealed yet. It expects the new screen to already be
// drawn underneath.
func (a *Anim) DrawFrame(disp drivers.Displayer, frame uint32) bool {
	if frame >= a.frames {
		return false
	}
	w, h := disp.Size()
	revealed := int16(int32(w) * int32(frame+1) / int32(a.frames))
	if a.push {
		edge := w - revealed
		animation.Fill(disp, 0, 0, edge, h, black)
		animation.Fill(disp, edge-1, 0, edge, h, white)
	} else {
		animation.Fill(disp, revealed, 0, w, h, black)
		animation.Fill(disp, revealed, 0, revealed+1, h, white)
	}
	return frame+1 < a.frames
}
