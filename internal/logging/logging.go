// Package logging builds the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Format int

const (
	FormatJSON Format = iota
	FormatText
)

func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return lvl, nil
}

// New writes to w, and additionally to a rotating file when file is non-empty.
// The returned closer releases the file.
func New(w io.Writer, format Format, level slog.Level, file string) (*slog.Logger, io.Closer) {
	var closer io.Closer = nopCloser{}
	if file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = io.MultiWriter(w, lj)
		closer = lj
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch format {
	case FormatText:
		h = slog.NewTextHandler(w, opts)
	default:
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h), closer
}

// Setup installs the logger as the slog default.
func Setup(format Format, levelName, file string) (io.Closer, error) {
	lvl, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	out := io.Writer(os.Stdout)
	if format == FormatText {
		out = os.Stderr
	}
	logger, closer := New(out, format, lvl, file)
	slog.SetDefault(logger)
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
