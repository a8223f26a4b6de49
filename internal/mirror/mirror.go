// Package mirror rotates a display by 180 degrees, for wearing the device on the other wrist.
package mirror

import (
	"image/color"

	"tinygo.org/x/drivers"
)

type Mirror struct {
	d    drivers.Displayer
	w, h int16
}

func New(d drivers.Displayer) *Mirror {
	w, h := d.Size()
	return &Mirror{
		d: d,
		w: w,
		h: h,
	}
}

func (m *Mirror) Size() (x, y int16) {
	return m.w, m.h
}

func (m *Mirror) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.d.SetPixel(m.w-x-1, m.h-y-1, c)
}

func (m *Mirror) Display() error {
	return m.d.Display()
}
