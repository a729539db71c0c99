// Package logs provides an env-gated JSON-lines event log.
//
// A full-screen program owns the terminal, so diagnostics go to a file
// instead of stderr. Logging is off unless EMINENT_LOG is truthy or
// EMINENT_LOG_FILE names a destination.
package logs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	f       *os.File
	enabled bool
}

// NewFromEnv returns a logger if EMINENT_LOG is set to a truthy value or if
// EMINENT_LOG_FILE is provided. Otherwise it returns a disabled logger. When
// enabled and no file is specified, it writes to ./eminent.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("EMINENT_LOG_FILE")
	enabled := lf != ""
	if v := os.Getenv("EMINENT_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if !enabled {
		return &Logger{}
	}
	if lf == "" {
		lf = filepath.Join(".", "eminent.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return &Logger{}
	}
	return &Logger{w: bufio.NewWriter(f), f: f, enabled: true}
}

// Close flushes and closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	_ = l.f.Close()
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, command, col, line, doc_len.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.enabled {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
