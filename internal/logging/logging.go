// Package logging builds the slog logger used by the command line tool.
// Output goes to stderr, a rotating file, or both.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	OutputStderr = "stderr"
	OutputFile   = "file"
	OutputBoth   = "both"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	// FilePath is used when Output is file or both.
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Format:     "text",
		Output:     OutputStderr,
		FilePath:   "logs/netgrowth.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// ParseLevel maps a level name to a slog level; unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Writer returns the destination for cfg. The returned closer releases the
// rotating file, if any.
func Writer(cfg Config, stderr io.Writer) (io.Writer, io.Closer, error) {
	switch cfg.Output {
	case "", OutputStderr:
		return stderr, nopCloser{}, nil
	case OutputFile, OutputBoth:
		if cfg.FilePath == "" {
			return nil, nil, fmt.Errorf("logging: output %q needs a file path", cfg.Output)
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		fw := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		if cfg.Output == OutputFile {
			return fw, fw, nil
		}
		return io.MultiWriter(stderr, fw), fw, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown output %q", cfg.Output)
	}
}

// New builds a logger for cfg writing to stderr when the output asks for it.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	w, closer, err := Writer(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return NewWithWriter(cfg, w), closer, nil
}

func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
