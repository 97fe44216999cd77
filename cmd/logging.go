package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the root logger. With LogDir set, records also go to
// <LogDir>/buttery_<timestamp>.log; the returned closer closes that file.
func NewLogger(cfg Config, stdout io.Writer, now time.Time) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		return nil, nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	out := stdout
	var closer io.Closer = nopCloser{}
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
			return nil, nil, err
		}
		name := filepath.Join(cfg.LogDir, fmt.Sprintf("buttery_%s.log", now.Format("2006-01-02_15-04-05")))
		file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = io.MultiWriter(stdout, file)
		closer = file
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(out, options)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, options)
	}
	return slog.New(handler), closer, nil
}
