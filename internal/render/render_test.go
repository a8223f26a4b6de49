package render

import (
	"image"
	"image/color"
	"testing"
)

type fakeDisplay struct {
	w, h int16
	px   map[[2]int16]color.RGBA
}

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, px: make(map[[2]int16]color.RGBA)}
}

func (f *fakeDisplay) Size() (x, y int16) { return f.w, f.h }

func (f *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		panic("pixel out of bounds")
	}
	f.px[[2]int16{x, y}] = c
}

func (f *fakeDisplay) Display() error { return nil }

func (f *fakeDisplay) lit(x0, y0, x1, y1 int16) int {
	n := 0
	for k, c := range f.px {
		if k[0] >= x0 && k[0] < x1 && k[1] >= y0 && k[1] < y1 && c != Black {
			n++
		}
	}
	return n
}

func TestWindowClips(t *testing.T) {
	d := newFakeDisplay(20, 20)
	w := &Window{d: d, x0: 5, y0: 5, x1: 10, y1: 10}
	w.SetPixel(4, 5, White)
	w.SetPixel(5, 5, White)
	w.SetPixel(9, 9, White)
	w.SetPixel(10, 9, White)
	if len(d.px) != 2 {
		t.Fatalf("expected 2 pixels inside the window, got %d", len(d.px))
	}
}

func TestTextStaysInClip(t *testing.T) {
	d := newFakeDisplay(128, 64)
	c := New(d)
	c.Clip(0, 20, 128, 10).Text(0, 15, "Hello", White)
	if d.lit(0, 0, 128, 20) != 0 || d.lit(0, 30, 128, 64) != 0 {
		t.Fatal("text drawn outside the clip rectangle")
	}
	if d.lit(0, 20, 128, 30) == 0 {
		t.Fatal("expected some text inside the clip rectangle")
	}
}

func TestHeaderAndRow(t *testing.T) {
	d := newFakeDisplay(128, 64)
	c := New(d)
	if c.Columns() <= 0 || c.Lines() != 6 {
		t.Fatalf("columns=%d lines=%d", c.Columns(), c.Lines())
	}

	c.Clear()
	c.Header("Your notes", "")
	if d.px[[2]int16{127, 0}] != White {
		t.Fatal("header bar should span the display")
	}

	icon := image.NewRGBA(image.Rect(0, 0, 8, 8))
	icon.Set(0, 0, color.White)
	c.Row(LineHeight, "Note 1", "line one\nline two", icon, true)
	if d.px[[2]int16{127, LineHeight}] != White {
		t.Fatal("selected row should have an inverted background")
	}
	iconY := int16(LineHeight + (RowHeight-iconSize)/2)
	if d.px[[2]int16{iconMargin, iconY}] != Black {
		t.Fatal("icon should be drawn in the foreground colour")
	}
}

func TestHeaderTag(t *testing.T) {
	d := newFakeDisplay(128, 64)
	c := New(d)
	c.Header("Note 1", "AUTO")
	// text is drawn black on the white bar
	black := 0
	for x := int16(100); x < 128; x++ {
		for y := int16(0); y < LineHeight; y++ {
			if d.px[[2]int16{x, y}] == Black {
				black++
			}
		}
	}
	if black == 0 {
		t.Fatal("expected the tag at the right edge of the header")
	}
}

func TestTextBytesMatchesText(t *testing.T) {
	a, b := newFakeDisplay(128, 16), newFakeDisplay(128, 16)
	New(a).Text(0, 0, "Hello, notes", White)
	New(b).TextBytes(0, 0, []byte("Hello, notes"), White)
	if len(a.px) == 0 || len(a.px) != len(b.px) {
		t.Fatalf("Text drew %d pixels, TextBytes drew %d", len(a.px), len(b.px))
	}
	for k, v := range a.px {
		if b.px[k] != v {
			t.Fatalf("pixel %v differs", k)
		}
	}
}

func TestRowOffscreenIsSafe(t *testing.T) {
	d := newFakeDisplay(64, 32)
	c := New(d)
	// the fake display panics on out of bounds pixels
	c.Row(25, "A long title that runs off the edge", "subtitle", nil, true)
	c.Text(0, -30, "gone", White)
	c.Text(0, 100, "gone", White)
}
