package animation

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

type Animation interface {
	// Activate is called when the animation is being started on the display.
	// An animation may be re-used so this should be able to be called more than once.
	Activate(drivers.Displayer)
	// DrawFrame draws the given frame of the animation over whatever is already on the display.
	// Frames are counted from zero starting at Activate.
	// Returns whether the animation should continue.
	DrawFrame(disp drivers.Displayer, frame uint32) bool
}

// DrawImage draws the image on the display at the given coordinates.
// If wrap is true, off-screen coordinates will wrap around to the other side of the display.
// Otherwise, off-screen coordinates will be clipped.
//
// Wrapping negative offsets may not work correctly.
func DrawImage(disp drivers.Displayer, offX, offY int16, img image.Image, wrap bool) {
	w, h := disp.Size()
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		xx := int16(x-b.Min.X) + offX
		if xx < 0 || xx >= w {
			if !wrap {
				continue
			}
			xx = (xx%w + w) % w
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			yy := int16(y-b.Min.Y) + offY
			if yy < 0 || yy >= h {
				if !wrap {
					continue
				}
				yy = (yy%h + h) % h
			}
			r, g, b, a := img.At(x, y).RGBA()
			disp.SetPixel(xx, yy, color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			})
		}
	}
}

// Fill sets every pixel in the rectangle to c, clipped to the display.
func Fill(disp drivers.Displayer, x0, y0, x1, y1 int16, c color.RGBA) {
	w, h := disp.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w), min(y1, h)
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			disp.SetPixel(x, y, c)
		}
	}
}
