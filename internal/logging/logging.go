// Package logging builds the zerolog logger used across insightctl:
// human-readable console output on stderr, optionally duplicated to a
// size-rotated file.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Verbose bool   // debug level
	Quiet   bool   // errors only
	NoColor bool
	LogFile string // optional rotating file sink
}

// New builds a logger per opts.
func New(opts Options) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}
	var w io.Writer = console
	if opts.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w = zerolog.MultiLevelWriter(console, file)
	}
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	if opts.Quiet {
		level = zerolog.ErrorLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
