// Package log provides colored, component-prefixed loggers.
package log

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/mazeball/config"
)

var ErrNilWriter = errors.New("log: writer is nil")

// Logger writes leveled lines such as "[MAZE-SERVICE] [INFO] maze created".
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger for the named component. color is one of the config color constants.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", config.ColorGreen, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", config.ColorYellow, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", config.ColorRed, msg)
}

func (l *Logger) write(level, levelColor, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s\n",
		l.color, l.prefix, config.ColorReset,
		levelColor, level, config.ColorReset,
		msg,
	)
}
