package notepad

import (
	"fmt"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// printLogger is a bare-bones logger that outputs to whatever println is hooked up to. It has no concept of levels and
// will output everything at every level.
type printLogger struct{}

func (printLogger) Debug(msg string) {
	println(msg)
}

func (printLogger) Debugf(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

func (printLogger) Info(msg string) {
	println(msg)
}

func (printLogger) Infof(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string)          {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Info(string)           {}
func (nopLogger) Infof(string, ...any)  {}
