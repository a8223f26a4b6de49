// Package static shows a single centered image, used for the boot splash.
package static

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/ajanata/notepad/internal/animation"
	"github.com/ajanata/notepad/internal/media"
)

type Anim struct {
	img image.Image
}

func New(file string) (*Anim, error) {
	img, err := media.LoadImage(media.TypeSplash, file)
	if err != nil {
		return nil, err
	}

	return &Anim{
		img: img,
	}, nil
}

func (a *Anim) Activate(disp drivers.Displayer) {
	w, h := disp.Size()
	animation.Fill(disp, 0, 0, w, h, color.RGBA{A: 0xFF})
	b := a.img.Bounds()
	x := (w - int16(b.Dx())) / 2
	y := (h - int16(b.Dy())) / 2
	animation.DrawImage(disp, x, y, a.img, false)
}

func (a *Anim) DrawFrame(_ drivers.Displayer, _ uint32) bool { return true }
