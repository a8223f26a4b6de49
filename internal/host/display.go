package host

import (
	"image"
	"image/color"

	"github.com/ajanata/notepad/internal/media"
)

// Framebuffer is an in-memory RGB565 display. Drawing goes to a back buffer; Display copies it to the front buffer
// that Image and Lit read, the way a real panel only changes when it is flushed.
type Framebuffer struct {
	w, h   int16
	back   []media.RGB565
	front  []media.RGB565
	frames int
}

func NewFramebuffer(w, h int16) *Framebuffer {
	return &Framebuffer{
		w:     w,
		h:     h,
		back:  make([]media.RGB565, int(w)*int(h)),
		front: make([]media.RGB565, int(w)*int(h)),
	}
}

func (f *Framebuffer) Size() (x, y int16) { return f.w, f.h }

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.back[int(y)*int(f.w)+int(x)] = media.FromRGBA(c)
}

func (f *Framebuffer) Display() error {
	copy(f.front, f.back)
	f.frames++
	return nil
}

// Frames is the number of times Display has been called.
func (f *Framebuffer) Frames() int { return f.frames }

// Lit reports whether the displayed pixel at x, y is on.
func (f *Framebuffer) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= int(f.w) || y >= int(f.h) {
		return false
	}
	return f.front[y*int(f.w)+x].Lit()
}

// Image copies the displayed frame into img, allocating it if it is nil or the wrong size.
func (f *Framebuffer) Image(img *image.RGBA) *image.RGBA {
	r := image.Rect(0, 0, int(f.w), int(f.h))
	if img == nil || img.Bounds() != r {
		img = image.NewRGBA(r)
	}
	for i, p := range f.front {
		c := p.RGBA()
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xFF
	}
	return img
}
