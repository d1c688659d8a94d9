// Package utils holds small shared helpers.
package utils

import (
	"io"
	"sync"
)

// DeferredWriter buffers writes in memory so log output produced while
// the TUI owns the terminal can be flushed to the console after exit.
type DeferredWriter struct {
	mu  sync.Mutex
	buf []byte
}

// Write appends p to the buffer. It never fails.
func (w *DeferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Flush writes the buffered output to out and clears the buffer.
func (w *DeferredWriter) Flush(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.buf) == 0 {
		return nil
	}
	_, err := out.Write(w.buf)
	w.buf = nil
	return err
}
