package host

import (
	"fmt"
	"io"
	"log/slog"
)

// Logger adapts slog to notepad.Logger.
type Logger struct {
	l *slog.Logger
}

// NewLogger writes text records to w, including debug records if verbose is set.
func NewLogger(w io.Writer, verbose bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &Logger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

func (l *Logger) Slog() *slog.Logger { return l.l }

func (l *Logger) Debug(msg string) { l.l.Debug(msg) }

func (l *Logger) Debugf(format string, v ...any) { l.l.Debug(fmt.Sprintf(format, v...)) }

func (l *Logger) Info(msg string) { l.l.Info(msg) }

func (l *Logger) Infof(format string, v ...any) { l.l.Info(fmt.Sprintf(format, v...)) }
