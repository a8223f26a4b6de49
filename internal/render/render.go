// Package render draws the notepad's screens onto a drivers.Displayer using tinyfont.
package render

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	// LineHeight is the height of one line of text in pixels.
	LineHeight = 10
	// RowHeight is the height of a menu row: a title line and a subtitle line.
	RowHeight = 2 * LineHeight
	// baseline offset from the top of a line
	ascent = 8

	iconSize   = 8
	iconMargin = 2
)

var (
	Black = color.RGBA{A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

type Canvas struct {
	d     *Window
	font  tinyfont.Fonter
	w, h  int16
	charW int16
}

func New(d drivers.Displayer) *Canvas {
	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, "0")
	charW := int16(outbox)
	if charW <= 0 {
		charW = 6
	}
	w, h := d.Size()
	return &Canvas{d: &Window{d: d, x1: w, y1: h}, font: font, w: w, h: h, charW: charW}
}

func (c *Canvas) Size() (w, h int16) { return c.w, c.h }

// Columns is how many characters fit on one line.
func (c *Canvas) Columns() int { return int(c.w / c.charW) }

// Lines is how many full lines of text fit on the display.
func (c *Canvas) Lines() int { return int(c.h / LineHeight) }

func (c *Canvas) Clear() { c.FillRect(0, 0, c.w, c.h, Black) }

func (c *Canvas) FillRect(x, y, w, h int16, col color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		if yy < 0 || yy >= c.h {
			continue
		}
		for xx := x; xx < x+w; xx++ {
			if xx < 0 || xx >= c.w {
				continue
			}
			c.d.SetPixel(xx, yy, col)
		}
	}
}

// Text draws s with the top of the line at y.
func (c *Canvas) Text(x, y int16, s string, col color.RGBA) {
	if y+LineHeight <= 0 || y >= c.h {
		return
	}
	tinyfont.WriteLine(c.d, c.font, x, y+ascent, s, col)
}

// TextBytes draws b one rune at a time, without converting it to a string.
func (c *Canvas) TextBytes(x, y int16, b []byte, col color.RGBA) {
	if y+LineHeight <= 0 || y >= c.h {
		return
	}
	for len(b) > 0 && x < c.w {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		tinyfont.DrawChar(c.d, c.font, x, y+ascent, r, col)
		x += c.charW
	}
}

// Header draws an inverted title bar across the top line, with tag (if any) at the right edge.
func (c *Canvas) Header(title, tag string) {
	c.FillRect(0, 0, c.w, LineHeight, White)
	if tag != "" {
		tw, _ := tinyfont.LineWidth(c.font, tag)
		tx := c.w - int16(tw) - 1
		c.Clip(0, 0, tx-c.charW, LineHeight).Text(1, 0, title, Black)
		c.Text(tx, 0, tag, Black)
		return
	}
	c.Text(1, 0, title, Black)
}

// Row draws one menu row with its top at y. icon may be nil.
func (c *Canvas) Row(y int16, title, subtitle string, icon image.Image, selected bool) {
	bg, fg := Black, White
	if selected {
		bg, fg = White, Black
	}
	c.FillRect(0, y, c.w, RowHeight, bg)

	x := int16(1)
	if icon != nil {
		c.Icon(iconMargin, y+(RowHeight-iconSize)/2, icon, fg)
		x = iconMargin + iconSize + iconMargin
	}
	row := c.Clip(0, y, c.w, RowHeight)
	row.Text(x, y, title, fg)
	row.Text(x, y+LineHeight, oneLine(subtitle), fg)
}

// Icon draws the lit pixels of img in col, leaving the rest untouched.
func (c *Canvas) Icon(x, y int16, img image.Image, col color.RGBA) {
	b := img.Bounds()
	for iy := b.Min.Y; iy < b.Max.Y; iy++ {
		for ix := b.Min.X; ix < b.Max.X; ix++ {
			r, g, bl, _ := img.At(ix, iy).RGBA()
			if r|g|bl == 0 {
				continue
			}
			xx, yy := x+int16(ix-b.Min.X), y+int16(iy-b.Min.Y)
			if xx < 0 || xx >= c.w || yy < 0 || yy >= c.h {
				continue
			}
			c.d.SetPixel(xx, yy, col)
		}
	}
}

// Clip returns a canvas that draws only inside the given rectangle. Coordinates are unchanged.
func (c *Canvas) Clip(x, y, w, h int16) *Canvas {
	win := c.d
	cc := *c
	cc.d = &Window{
		d:  win.d,
		x0: max(x, win.x0),
		y0: max(y, win.y0),
		x1: min(x+w, win.x1),
		y1: min(y+h, win.y1),
	}
	return &cc
}

// Window is a drivers.Displayer that drops pixels outside a rectangle of another display.
type Window struct {
	d              drivers.Displayer
	x0, y0, x1, y1 int16
}

func (w *Window) Size() (x, y int16) { return w.d.Size() }

func (w *Window) SetPixel(x, y int16, c color.RGBA) {
	if x < w.x0 || x >= w.x1 || y < w.y0 || y >= w.y1 {
		return
	}
	w.d.SetPixel(x, y, c)
}

func (w *Window) Display() error { return w.d.Display() }

func oneLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}
