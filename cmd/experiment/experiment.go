//go:build tinygo

// experiment is a bring-up probe for the notepad hardware. It shows the raw button state and every gesture the
// recognizer finds, so the wiring and the timing can be checked without the rest of the application.
package main

import (
	"fmt"
	"machine"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers/ssd1306"

	"github.com/ajanata/notepad/internal/gesture"
)

var pins = [gesture.NumButtons]machine.Pin{
	gesture.ButtonUp:     machine.GPIO10,
	gesture.ButtonDown:   machine.GPIO11,
	gesture.ButtonSelect: machine.GPIO12,
	gesture.ButtonBack:   machine.GPIO13,
}

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

func main() {
	blink()
	machine.I2C0.Configure(machine.I2CConfig{
		SCL: machine.I2C0_SCL_PIN,
		SDA: machine.I2C0_SDA_PIN,
	})
	blink()

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3D, VccState: ssd1306.SWITCHCAPVCC})
	blink()

	dev.ClearBuffer()
	dev.ClearDisplay()
	blink()

	buf, err := textbuf.New(&dev, textbuf.FontSize6x8)
	if err != nil {
		for {
			blink()
		}
	}
	buf.AutoFlush = true

	for _, b := range gesture.Buttons {
		pins[b].Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	rec := gesture.New()
	rec.ConfigureAll(gesture.ButtonConfig{
		MultiClickTimeout: 250 * time.Millisecond,
		LongClickDelay:    700 * time.Millisecond,
		LongClickRepeat:   150 * time.Millisecond,
	})

	_ = buf.PrintlnInverse("gesture probe")
	w, h := buf.Size()
	_ = buf.Println(fmt.Sprintf("w, h = %d, %d", w, h))
	_ = buf.SetY(3)

	var held [gesture.NumButtons]bool
	for range time.Tick(time.Second / 60) {
		now := time.Now()
		state := ""
		for _, b := range gesture.Buttons {
			down := !pins[b].Get()
			switch {
			case down && !held[b]:
				rec.Press(b, now)
			case !down && held[b]:
				rec.Release(b, now)
			}
			held[b] = down
			if down {
				state += "X"
			} else {
				state += "."
			}
		}
		_ = buf.SetLineInverse(2, "buttons "+state)

		for _, ev := range rec.Advance(now) {
			_ = buf.Println(ev.String())
			blink()
		}
	}
}
