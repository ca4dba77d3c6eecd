// Package log provides the debug log used while the TUI owns the terminal.
package log

import (
	"io"
	"log"
	"os"
	"sync"
)

// sink collects log output. Until a destination is chosen it keeps the
// output in memory so startup messages are not lost.
type sink struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	pending []byte
	discard bool
}

var (
	defaultSink = &sink{}
	logger      = log.New(defaultSink, "lazyfilter ", log.LstdFlags|log.Lmicroseconds)
)

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.discard:
		return len(p), nil
	case s.out != nil:
		n, err := s.out.Write(p)
		if f, ok := s.out.(*os.File); ok {
			_ = f.Sync()
		}
		return n, err
	}

	s.pending = append(s.pending, p...)
	return len(p), nil
}

// attach routes output to w, flushing anything buffered so far.
// A nil w drops the buffer and every later message.
func (s *sink) attach(w io.Writer, c io.Closer) {
	if s.closer != nil {
		_ = s.closer.Close()
	}
	s.out, s.closer = w, c

	if w == nil {
		s.discard = true
		s.pending = nil
		return
	}
	s.discard = false
	if len(s.pending) > 0 {
		_, _ = w.Write(s.pending)
		s.pending = nil
	}
}

// SetFile appends the debug log to path, creating it when needed.
// An empty path discards buffered and future messages.
func SetFile(path string) error {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()

	if path == "" {
		defaultSink.attach(nil, nil)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		defaultSink.attach(nil, nil)
		return err
	}
	defaultSink.attach(f, f)
	return nil
}

// SetOutput sends the debug log to w.
func SetOutput(w io.Writer) {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	defaultSink.attach(w, nil)
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	logger.Println(v...)
}

// Close releases the log file, if any.
func Close() error {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()

	if defaultSink.closer == nil {
		return nil
	}
	err := defaultSink.closer.Close()
	defaultSink.out, defaultSink.closer = nil, nil
	return err
}
