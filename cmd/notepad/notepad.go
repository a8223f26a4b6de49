//go:build tinygo

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/ajanata/notepad"
	"github.com/ajanata/notepad/internal/catalog"
)

func main() {
	blink()
	machine.I2C0.Configure(machine.I2CConfig{
		SCL:       machine.I2C0_SCL_PIN,
		SDA:       machine.I2C0_SDA_PIN,
		Frequency: 2 * machine.MHz,
	})
	blink()

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3D, VccState: ssd1306.SWITCHCAPVCC})
	blink()
	dev.ClearBuffer()
	dev.ClearDisplay()
	blink()

	notes, err := catalog.Builtin()
	if err != nil {
		earlyPanic(err)
	}

	b := newBoard()
	n, err := notepad.New(notepad.DefaultConfig(), &dev, machine.LED, b, notes)
	if err != nil {
		earlyPanic(err)
	}
	err = n.Init()
	if err != nil {
		earlyPanic(err)
	}

	n.Run()
}

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

func earlyPanic(err error) {
	for {
		println(err.Error())
		blink()
	}
}
