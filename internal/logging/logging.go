// Package logging builds the per-job structured loggers. Each job
// writes JSON records to its own rotating file, capped at 5MB with
// three backups kept.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewJobLogger returns a logger writing to <dir>/<name>.log with
// rotation, plus the closer for the underlying file.
func NewJobLogger(dir, name string) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+".log"),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}
	return slog.New(slog.NewJSONHandler(w, nil)), w
}
