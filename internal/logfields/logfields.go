// Package logfields holds the canonical slog attribute keys used across packages.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyVolume     = "volume"
	KeyLesson     = "lesson"
	KeyLessons    = "lessons"
	KeyBlocks     = "blocks"
	KeyURL        = "url"
	KeyBytes      = "bytes"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyWorkers    = "workers"
	KeyError      = "error"
	KeyVariable   = "variable"
)

// Volume names the volume being built.
func Volume(name string) slog.Attr { return slog.String(KeyVolume, name) }

// Lesson is the zero-based lesson position.
func Lesson(index int) slog.Attr { return slog.Int(KeyLesson, index) }

// Lessons is a lesson count.
func Lessons(n int) slog.Attr { return slog.Int(KeyLessons, n) }

// Blocks is a block count.
func Blocks(n int) slog.Attr { return slog.Int(KeyBlocks, n) }

// URL is an image or page address.
func URL(u string) slog.Attr { return slog.String(KeyURL, u) }

// Bytes is a payload size.
func Bytes(n int) slog.Attr { return slog.Int(KeyBytes, n) }

// Path is a file system path.
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }

// Workers is a fetch concurrency.
func Workers(n int) slog.Attr { return slog.Int(KeyWorkers, n) }

// Variable names an environment variable.
func Variable(name string) slog.Attr { return slog.String(KeyVariable, name) }

// Duration reports d in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

// Error reports err's message; a nil error logs an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
