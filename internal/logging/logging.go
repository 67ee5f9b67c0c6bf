// Package logging configures the application-wide slog logger.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Options controls where and how much is logged
type Options struct {
	// Path of the log file; empty uses DefaultPath
	Path string

	// Level is the minimum level written
	Level slog.Level
}

// DefaultPath returns ~/.rosterpick/logs/rosterpick.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".rosterpick", "logs", "rosterpick.log"), nil
}

// Init initializes the logging system, writing logs to ~/.rosterpick/logs/rosterpick.log
// Uses text format for human readability.
func Init() (io.Closer, error) {
	return InitWith(Options{Level: slog.LevelDebug})
}

// InitWith initializes logging with explicit options.
// The returned closer flushes and closes the rotating log file.
func InitWith(opts Options) (io.Closer, error) {
	logPath := opts.Path
	if logPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		logPath = p
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	// Rotating log file
	file := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: opts.Level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}
