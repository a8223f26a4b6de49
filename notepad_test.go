package notepad

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/ajanata/textbuf"

	"github.com/ajanata/notepad/internal/catalog"
	"github.com/ajanata/notepad/internal/mirror"
	"github.com/ajanata/notepad/internal/scroll"
	"github.com/ajanata/notepad/internal/unlock"
)

const frame = 10 * time.Millisecond

type fakeDisplay struct {
	w, h    int16
	px      []color.RGBA
	flushes int
	// failures is how many of the next flushes fail
	failures int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{w: 128, h: 64, px: make([]color.RGBA, 128*64)}
}

func (d *fakeDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.px[int(y)*int(d.w)+int(x)] = c
}

func (d *fakeDisplay) Display() error {
	if d.failures > 0 {
		d.failures--
		return errors.New("bus error")
	}
	d.flushes++
	return nil
}

type fakeDriver struct {
	now      time.Time
	buttons  ButtonState
	lateInit bool
}

func (d *fakeDriver) LateInit(*textbuf.Buffer) { d.lateInit = true }

func (d *fakeDriver) Buttons() ButtonState { return d.buttons }

func (d *fakeDriver) Now() time.Time { return d.now }

type harness struct {
	t    *testing.T
	n    *Notepad
	disp *fakeDisplay
	drv  *fakeDriver
}

var longNote = strings.Repeat("lorem ipsum dolor sit amet ", 30)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AutoScrollDelta = 40
	cfg.AutoScrollInterval = 20 * time.Millisecond
	return cfg
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	store := catalog.MemStore{
		"long":  []byte(longNote),
		"short": []byte("Hello World!!"),
	}
	cat, err := catalog.New(store, "long", "short")
	if err != nil {
		t.Fatal(err)
	}

	h := &harness{
		t:    t,
		disp: newFakeDisplay(),
		drv:  &fakeDriver{now: time.Date(2024, 3, 9, 10, 59, 30, 0, time.UTC)},
	}
	h.n, err = New(cfg, h.disp, nil, h.drv, cat)
	if err != nil {
		t.Fatal(err)
	}
	h.n.SetLogger(nil)
	if err = h.n.Init(); err != nil {
		t.Fatal(err)
	}
	return h
}

// booted returns a harness past the boot log.
func booted(t *testing.T) *harness {
	t.Helper()
	return bootedWith(t, testConfig())
}

func bootedWith(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := newHarness(t, cfg)
	h.wait(h.n.cfg.BootLogTimeout + frame)
	if h.n.Booting() {
		t.Fatal("still booting")
	}
	return h
}

func (h *harness) tick() {
	h.t.Helper()
	h.drv.now = h.drv.now.Add(frame)
	if err := h.n.RunTick(); err != nil {
		h.t.Fatal(err)
	}
}

func (h *harness) wait(d time.Duration) {
	h.t.Helper()
	for end := h.drv.now.Add(d); h.drv.now.Before(end); {
		h.tick()
	}
}

func (h *harness) press(b Button) {
	h.t.Helper()
	h.drv.buttons = h.drv.buttons.With(b)
	h.tick()
}

func (h *harness) release(b Button) {
	h.t.Helper()
	h.drv.buttons = h.drv.buttons.Without(b)
	h.tick()
}

// click presses and releases b, then waits out any multi-click window.
func (h *harness) click(b Button) {
	h.t.Helper()
	h.press(b)
	h.release(b)
	h.wait(h.n.cfg.MultiClickTimeout + frame)
}

func (h *harness) hold(b Button, d time.Duration) {
	h.t.Helper()
	h.press(b)
	h.wait(d)
	h.release(b)
}

func (h *harness) expectScreens(want ...string) {
	h.t.Helper()
	got := h.n.Screens()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		h.t.Fatalf("screens = %v, want %v", got, want)
	}
}

func (h *harness) note() *noteScreen {
	h.t.Helper()
	s, ok := h.n.stack.Top().(*noteScreen)
	if !ok {
		h.t.Fatalf("top is %s, not a note", h.n.TopScreen())
	}
	return s
}

func TestNewValidates(t *testing.T) {
	cat, _ := catalog.New(catalog.MemStore{"a": []byte("a")}, "a")
	drv := &fakeDriver{}

	bad := DefaultConfig()
	bad.Framerate = 0
	if _, err := New(bad, newFakeDisplay(), nil, drv, cat); err == nil {
		t.Fatal("expected error for zero framerate")
	}
	bad = DefaultConfig()
	bad.NoteBufferBytes = 0
	if _, err := New(bad, newFakeDisplay(), nil, drv, cat); err == nil {
		t.Fatal("expected error for empty note buffer")
	}
	if _, err := New(DefaultConfig(), nil, nil, drv, cat); err == nil {
		t.Fatal("expected error for missing display")
	}
	if _, err := New(DefaultConfig(), newFakeDisplay(), nil, nil, cat); err == nil {
		t.Fatal("expected error for missing driver")
	}
	if _, err := New(DefaultConfig(), newFakeDisplay(), nil, drv, nil); err == nil {
		t.Fatal("expected error for missing notes")
	}
}

func TestRunTickBeforeInit(t *testing.T) {
	cat, _ := catalog.New(catalog.MemStore{"a": []byte("a")}, "a")
	n, err := New(DefaultConfig(), newFakeDisplay(), nil, &fakeDriver{}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if n.RunTick() == nil {
		t.Fatal("expected error before Init")
	}
}

func TestInit(t *testing.T) {
	h := newHarness(t, testConfig())
	if !h.drv.lateInit {
		t.Fatal("LateInit not called")
	}
	if !h.n.Booting() {
		t.Fatal("should show the boot log after Init")
	}
	h.expectScreens("menu")
	if err := h.n.Init(); err == nil {
		t.Fatal("second Init should fail")
	}
}

func TestBootEndsOnTimeout(t *testing.T) {
	h := newHarness(t, testConfig())
	h.wait(h.n.cfg.BootLogTimeout - 2*frame)
	if !h.n.Booting() {
		t.Fatal("boot log cleared early")
	}
	flushes := h.disp.flushes
	h.wait(3 * frame)
	if h.n.Booting() {
		t.Fatal("boot log should clear after the timeout")
	}
	if h.disp.flushes == flushes {
		t.Fatal("menu was not drawn")
	}
}

func TestBootPressIsSwallowed(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(ButtonSelect)
	if h.n.Booting() {
		t.Fatal("press should clear the boot log")
	}
	h.release(ButtonSelect)
	h.wait(time.Second)
	h.expectScreens("menu")
}

func TestScreenStack(t *testing.T) {
	h := booted(t)

	h.click(ButtonSelect)
	h.expectScreens("menu", "note")

	h.hold(ButtonSelect, h.n.cfg.LongClickDelay+frame)
	h.expectScreens("menu", "note", "clock")

	for _, b := range []Button{ButtonUp, ButtonDown, ButtonUp, ButtonDown, ButtonSelect} {
		h.click(b)
	}
	h.expectScreens("menu", "note")

	h.click(ButtonBack)
	h.expectScreens("menu")

	// the base stays
	h.click(ButtonBack)
	h.expectScreens("menu")
}

func TestMenuLongSelectOpensClock(t *testing.T) {
	h := booted(t)
	h.hold(ButtonSelect, h.n.cfg.LongClickDelay+frame)
	h.expectScreens("menu", "clock")
	h.click(ButtonBack)
	h.click(ButtonSelect)
	h.expectScreens("menu", "clock")
}

func TestMenuSelection(t *testing.T) {
	h := booted(t)
	m := h.n.stack.Top().(*menuScreen)

	h.click(ButtonDown)
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
	h.click(ButtonDown)
	if m.selected != 1 {
		t.Fatal("selection should stop at the last note")
	}
	h.click(ButtonSelect)
	if s := h.note(); s.note.Index != 1 || string(s.text) != "Hello World!!" {
		t.Fatalf("opened %q", s.text)
	}
	h.click(ButtonBack)

	h.hold(ButtonUp, h.n.cfg.LongClickDelay+frame)
	if m.selected != 0 {
		t.Fatalf("long Up should move the selection, selected = %d", m.selected)
	}
	if m.previews[1] != "Hello World!!" || len(m.previews[0]) != h.n.cfg.PreviewBytes {
		t.Fatalf("previews = %q", m.previews)
	}
}

func TestNoteScrolling(t *testing.T) {
	h := booted(t)
	h.click(ButtonSelect)
	s := h.note()

	if s.scroll.Offset() != 0 {
		t.Fatal("note should open at the top")
	}
	h.click(ButtonDown)
	if got := s.scroll.Offset(); got != -h.n.cfg.ScrollClickDelta {
		t.Fatalf("offset after click = %d", got)
	}
	h.click(ButtonUp)
	if s.scroll.Offset() != 0 {
		t.Fatal("Up should scroll back")
	}

	// double click jumps
	h.press(ButtonDown)
	h.release(ButtonDown)
	h.press(ButtonDown)
	h.release(ButtonDown)
	h.wait(h.n.cfg.MultiClickTimeout + frame)
	if !s.scroll.AtBottom() {
		t.Fatal("double Down should jump to the bottom")
	}
	h.press(ButtonUp)
	h.release(ButtonUp)
	h.press(ButtonUp)
	h.release(ButtonUp)
	h.wait(h.n.cfg.MultiClickTimeout + frame)
	if s.scroll.Offset() != 0 {
		t.Fatal("double Up should jump to the top")
	}

	// long press scrolls until release
	h.press(ButtonDown)
	h.wait(h.n.cfg.LongClickDelay + 10*h.n.cfg.LongScrollInterval)
	if !s.scroll.Active(scroll.ModeLongDown) {
		t.Fatal("long Down should be scrolling")
	}
	h.release(ButtonDown)
	off := s.scroll.Offset()
	if off >= 0 {
		t.Fatal("long Down did not scroll")
	}
	h.wait(time.Second)
	if s.scroll.Offset() != off || s.scroll.Active(scroll.ModeLongDown) {
		t.Fatal("scrolling continued after release")
	}
}

func TestAutoScroll(t *testing.T) {
	h := booted(t)
	h.click(ButtonSelect)
	s := h.note()

	h.click(ButtonSelect)
	if !s.scroll.Active(scroll.ModeAuto) {
		t.Fatal("Select should start auto-scroll")
	}
	h.wait(5 * time.Second)
	if !s.scroll.AtBottom() || s.scroll.Active(scroll.ModeAuto) {
		t.Fatal("auto-scroll should stop at the bottom")
	}

	h.press(ButtonUp)
	h.release(ButtonUp)
	h.press(ButtonUp)
	h.release(ButtonUp)
	h.wait(h.n.cfg.MultiClickTimeout + frame)
	h.press(ButtonSelect)
	h.release(ButtonSelect)
	h.press(ButtonSelect)
	h.release(ButtonSelect)
	if s.scroll.Active(scroll.ModeAuto) {
		t.Fatal("second Select should stop auto-scroll")
	}
}

func TestNoteTimersDoNotFireUnderClock(t *testing.T) {
	h := bootedWith(t, DefaultConfig())
	h.click(ButtonSelect)
	s := h.note()
	h.press(ButtonSelect)
	h.release(ButtonSelect)
	if !s.scroll.Active(scroll.ModeAuto) {
		t.Fatal("auto-scroll not started")
	}

	h.hold(ButtonSelect, h.n.cfg.LongClickDelay+frame)
	h.expectScreens("menu", "note", "clock")
	off := s.scroll.Offset()
	h.wait(2 * time.Second)
	if s.scroll.Offset() != off {
		t.Fatal("note scrolled while covered by the clock")
	}
	// only the clock's minute timer is left
	if p := h.n.timers.Pending(); p != 1 {
		t.Fatalf("pending timers = %d, want 1", p)
	}
}

type recordLogger struct {
	debug []string
}

func (l *recordLogger) Debug(msg string) { l.debug = append(l.debug, msg) }

func (l *recordLogger) Debugf(format string, v ...any) { l.Debug(fmt.Sprintf(format, v...)) }

func (l *recordLogger) Info(string) {}

func (l *recordLogger) Infof(string, ...any) {}

func TestHeldButtonDoesNotLeakIntoNewScreen(t *testing.T) {
	h := booted(t)
	rec := &recordLogger{}
	h.n.SetLogger(rec)
	h.click(ButtonSelect)

	// keep holding Select well after the clock appears, then let go
	h.hold(ButtonSelect, 3*time.Second)
	h.wait(time.Second)
	h.expectScreens("menu", "note", "clock")
	for _, msg := range rec.debug {
		if strings.HasPrefix(msg, "clock: ") {
			t.Fatalf("clock received %q", msg)
		}
	}

	c := h.n.stack.Top().(*clockScreen)
	h.click(ButtonUp)
	if c.lock.State() != unlock.SawUp {
		t.Fatalf("unlock state = %s, clock should still take input", c.lock.State())
	}
}

func TestNoteBufferWipedOnUnload(t *testing.T) {
	h := booted(t)
	h.click(ButtonSelect)
	if h.n.noteBuf[0] == 0 {
		t.Fatal("note not loaded into the buffer")
	}
	h.click(ButtonBack)
	for i, b := range h.n.noteBuf {
		if b != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
}

func TestWrongUnlockSequenceStays(t *testing.T) {
	h := booted(t)
	h.hold(ButtonSelect, h.n.cfg.LongClickDelay+frame)

	for _, seq := range [][]Button{
		{ButtonUp, ButtonUp, ButtonDown, ButtonDown, ButtonSelect},
		{ButtonUp, ButtonDown, ButtonUp, ButtonDown, ButtonDown, ButtonSelect},
		{ButtonBack, ButtonSelect},
	} {
		for _, b := range seq {
			h.click(b)
		}
		h.expectScreens("menu", "clock")
	}
}

func TestClockRedrawsOnTheMinute(t *testing.T) {
	h := booted(t)
	h.hold(ButtonSelect, h.n.cfg.LongClickDelay+frame)
	h.wait(200 * time.Millisecond)

	flushes := h.disp.flushes
	// the harness starts at 10:59:30 and has used a few seconds
	h.wait(30 * time.Second)
	if h.disp.flushes == flushes {
		t.Fatal("clock did not redraw at the minute boundary")
	}
	flushes = h.disp.flushes
	h.wait(30 * time.Second)
	if h.disp.flushes != flushes {
		t.Fatal("clock redrew between minutes")
	}
}

func TestTransitionAnimates(t *testing.T) {
	h := booted(t)
	flushes := h.disp.flushes
	h.press(ButtonSelect)
	h.release(ButtonSelect)
	h.wait(20 * frame)
	if got := h.disp.flushes - flushes; got < h.n.cfg.TransitionFrames {
		t.Fatalf("only %d frames drawn for the transition", got)
	}
	if h.n.transition != nil {
		t.Fatal("transition did not finish")
	}
}

func TestFlip(t *testing.T) {
	cfg := testConfig()
	cfg.Flip = true
	h := newHarness(t, cfg)
	if _, ok := h.n.display.(*mirror.Mirror); !ok {
		t.Fatal("flip should wrap the display")
	}
}

func TestFlipSurvivesFailedInit(t *testing.T) {
	cfg := testConfig()
	cfg.Flip = true
	cat, err := catalog.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	disp := newFakeDisplay()
	disp.failures = 1
	n, err := New(cfg, disp, nil, &fakeDriver{now: time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)}, cat)
	if err != nil {
		t.Fatal(err)
	}
	n.SetLogger(nil)

	if err = n.Init(); err == nil {
		t.Fatal("expected the failed flush to fail init")
	}
	if err = n.Init(); err != nil {
		t.Fatal(err)
	}

	for i := range disp.px {
		disp.px[i] = color.RGBA{}
	}
	n.display.SetPixel(0, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	if disp.px[len(disp.px)-1] == (color.RGBA{}) {
		t.Fatal("display should be rotated exactly once after a retried init")
	}
}
