package logging

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewConsoleHandler builds a slog handler suitable for interactive use.
// Output is colorized only when the destination is a terminal.
func NewConsoleHandler(output *os.File, level slog.Level) slog.Handler {
	colorize := isatty.IsTerminal(output.Fd())
	return tint.NewHandler(output, &tint.Options{
		AddSource: false,
		Level:     level,
		NoColor:   !colorize,
	})
}

// NewConsoleLogger is a convenience wrapper combining NewConsoleHandler
// with the project Logger interface.
func NewConsoleLogger(output *os.File, level slog.Level) Logger {
	return NewSlogLogger(slog.New(NewConsoleHandler(output, level)))
}
