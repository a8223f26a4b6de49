package notepad

import (
	"errors"
	"runtime"
	"strconv"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers"

	"github.com/ajanata/notepad/internal/animation"
	"github.com/ajanata/notepad/internal/animation/slide"
	"github.com/ajanata/notepad/internal/animation/static"
	"github.com/ajanata/notepad/internal/catalog"
	"github.com/ajanata/notepad/internal/gesture"
	"github.com/ajanata/notepad/internal/mirror"
	"github.com/ajanata/notepad/internal/render"
	"github.com/ajanata/notepad/internal/screen"
	"github.com/ajanata/notepad/internal/timer"
)

type Notepad struct {
	cfg       Config
	frameTime time.Duration
	display   drivers.Displayer
	status    Blinker
	driver    Driver
	catalog   *catalog.Catalog
	log       Logger

	canvas *render.Canvas
	text   *textbuf.Buffer
	gate   *gatedDisplay

	timers   *timer.Service
	gestures *gesture.Recognizer
	stack    *screen.Stack

	// noteBuf is shared by every note screen; only the top one uses it, and it is wiped on unload
	noteBuf []byte

	init    bool
	start   time.Time
	boot    bootState
	bootEnd time.Time
	now     time.Time
	held    ButtonState
	tick    uint32

	dirty      bool
	transition animation.Animation
	transFrame uint32
}

func New(cfg Config, display drivers.Displayer, status Blinker, driver Driver, notes *catalog.Catalog) (*Notepad, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.New("config: " + err.Error())
	}
	if display == nil {
		return nil, errors.New("must provide display")
	}
	if driver == nil {
		return nil, errors.New("must provide driver")
	}
	if notes == nil {
		return nil, errors.New("must provide notes")
	}

	return &Notepad{
		cfg:       cfg,
		frameTime: time.Second / time.Duration(cfg.Framerate),
		display:   display,
		status:    status,
		driver:    driver,
		catalog:   notes,
		log:       printLogger{},
		start:     driver.Now(),
	}, nil
}

// SetLogger replaces the default println logger. A nil logger discards everything.
func (n *Notepad) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	n.log = l
}

func (n *Notepad) Init() error {
	if n.init {
		return errors.New("already initialized")
	}
	n.log.Info("starting init")
	n.blink()

	// n.display is only replaced once init has succeeded
	display := n.display
	if n.cfg.Flip {
		display = mirror.New(display)
	}
	n.canvas = render.New(display)
	if n.canvas.Columns() < 10 || n.canvas.Lines() < 3 {
		return errors.New("unusably small display")
	}

	splash, err := static.New("notepad")
	if err != nil {
		return errors.New("load splash: " + err.Error())
	}
	splash.Activate(display)
	err = display.Display()
	if err != nil {
		return errors.New("show splash: " + err.Error())
	}

	n.gate = &gatedDisplay{Displayer: display, open: true}
	n.text, err = textbuf.New(n.gate, textbuf.FontSize6x8)
	if err != nil {
		return errors.New("init text: " + err.Error())
	}
	n.text.AutoFlush = true

	w, h := n.text.Size()
	if w < 15 || h < 4 {
		return errors.New("unusably small text buffer")
	}

	err = n.text.SetLineInverse(0, "NOTEPAD BOOTING")
	if err != nil {
		return errors.New("boot msg: " + err.Error())
	}
	// we already validated it has at least 4 lines
	_ = n.text.SetY(1)
	// we already know it was possible to print text so don't bother checking every time
	_ = n.text.Println(strconv.Itoa(n.catalog.Len()) + " notes")

	mem := runtime.MemStats{}
	runtime.ReadMemStats(&mem)
	_ = n.text.Println(strconv.Itoa(int(mem.HeapSys/1024)) + "k RAM, " + strconv.Itoa(int(mem.HeapIdle/1024)) + "k free")

	n.driver.LateInit(n.text)

	n.noteBuf = make([]byte, n.cfg.NoteBufferBytes)
	n.now = n.driver.Now()
	n.timers = timer.NewService(n.now)
	n.gestures = gesture.New()
	n.stack = screen.NewStack(n.timers, n.screenChanged)
	n.stack.Push(newMenuScreen(n), false)

	_ = n.text.Println("The time is now")
	_ = n.text.Println(n.now.Format(time.Stamp))
	_ = n.text.Println("Booted in " + n.now.Sub(n.start).Round(100*time.Millisecond).String())
	_ = n.text.Println("Notepad online.")

	n.text.AutoFlush = false
	n.gate.open = false
	n.boot = bootStateLog
	n.bootEnd = n.now.Add(n.cfg.BootLogTimeout)

	n.blink()
	n.display = display
	n.init = true
	n.log.Info("init complete in " + n.driver.Now().Sub(n.start).Round(100*time.Millisecond).String())
	return nil
}

// Run does not return. It attempts to run the main loop at the framerate in the Config.
func (n *Notepad) Run() {
	for range time.Tick(n.frameTime) {
		err := n.RunTick()
		if err != nil {
			n.panic(err)
		}
	}
}

// RunTick runs a single iteration of the main loop: buttons, gestures, input to the top screen, timers, then the
// display.
func (n *Notepad) RunTick() error {
	if !n.init {
		return errors.New("not initialized")
	}

	n.statusOff()
	n.tick++
	n.now = n.driver.Now()

	pressed := n.pollButtons()

	if n.boot == bootStateLog {
		// any button press clears the boot log
		if !pressed && n.now.Before(n.bootEnd) {
			n.timers.Advance(n.now)
			n.statusOn()
			return nil
		}
		n.endBoot()
	}

	top := n.stack.Top()
	for _, ev := range n.gestures.Advance(n.now) {
		n.log.Debugf("%s: %s", top.Name(), ev)
		top.Input(ev)
		if n.stack.Top() != top {
			// anything else belonged to the screen that just went away
			break
		}
	}

	n.timers.Advance(n.now)

	err := n.draw()
	if err != nil {
		return err
	}

	n.statusOn()
	return nil
}

func (n *Notepad) pollButtons() (pressed bool) {
	cur := n.driver.Buttons()
	for _, b := range gesture.Buttons {
		was, is := n.held.Pressed(b), cur.Pressed(b)
		switch {
		case is && !was:
			pressed = true
			if n.boot == bootStateDone {
				n.gestures.Press(b, n.now)
			}
		case was && !is:
			n.gestures.Release(b, n.now)
		}
	}
	n.held = cur
	return pressed
}

func (n *Notepad) endBoot() {
	n.boot = bootStateDone
	n.text.Clear()
	n.gestures.Reset()
	n.dirty = true
	n.log.Debug("boot log cleared")
}

func (n *Notepad) draw() error {
	if !n.dirty && n.transition == nil {
		return nil
	}
	n.dirty = false

	n.stack.Top().Draw()
	if n.transition != nil {
		if !n.transition.DrawFrame(n.display, n.transFrame) {
			n.transition = nil
		}
		n.transFrame++
	}

	err := n.display.Display()
	if err != nil {
		return errors.New("display: " + err.Error())
	}
	return nil
}

func (n *Notepad) screenChanged(t screen.Transition) {
	n.gestures.Reset()
	if bc, ok := t.Top.(buttonConfigurer); ok {
		for _, b := range gesture.Buttons {
			n.gestures.Configure(b, bc.buttonConfig(b))
		}
	} else {
		n.gestures.ConfigureAll(gesture.ButtonConfig{})
	}

	if t.Push {
		n.log.Infof("push %s: %v", t.Top.Name(), n.stack.Names())
	} else {
		n.log.Infof("pop to %s: %v", t.Top.Name(), n.stack.Names())
	}

	n.dirty = true
	if t.Animated && n.cfg.TransitionFrames > 0 {
		n.transition = slide.New(t.Push, n.cfg.TransitionFrames)
		n.transition.Activate(n.display)
		n.transFrame = 0
	} else {
		n.transition = nil
	}
}

// redraw asks for the top screen to be drawn at the end of this frame.
func (n *Notepad) redraw() { n.dirty = true }

// TopScreen is the name of the screen receiving input, or "" before Init.
func (n *Notepad) TopScreen() string {
	if n.stack == nil || n.stack.Top() == nil {
		return ""
	}
	return n.stack.Top().Name()
}

// Screens lists the screen stack, bottom first.
func (n *Notepad) Screens() []string {
	if n.stack == nil {
		return nil
	}
	return n.stack.Names()
}

// Booting reports whether the boot log is still up.
func (n *Notepad) Booting() bool { return n.init && n.boot == bootStateLog }

// FrameTime is the time between main loop iterations.
func (n *Notepad) FrameTime() time.Duration { return n.frameTime }

// unfortunately you can't recover runtime panics in tinygo, so this is just going to be used for things we detect
// that are fatal
func (n *Notepad) panic(v any) {
	println(v)
	for {
		println(v)
		n.blink()
	}
}

func (n *Notepad) blink() {
	if n.status == nil {
		return
	}
	n.statusOn()
	time.Sleep(100 * time.Millisecond)
	n.statusOff()
	time.Sleep(100 * time.Millisecond)
}

func (n *Notepad) statusOn() {
	if n.status != nil {
		n.status.High()
	}
}

func (n *Notepad) statusOff() {
	if n.status != nil {
		n.status.Low()
	}
}

// gatedDisplay passes Display through only while open. The text buffer flushes the panel itself during boot;
// afterwards the main loop flushes once per frame.
type gatedDisplay struct {
	drivers.Displayer
	open bool
}

func (g *gatedDisplay) Display() error {
	if !g.open {
		return nil
	}
	return g.Displayer.Display()
}

// buttonConfigurer is implemented by screens that want something other than plain clicks.
type buttonConfigurer interface {
	buttonConfig(b Button) gesture.ButtonConfig
}
