package utils

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DeferredWriter buffers all writes in memory until Flush is called. When a
// limit is set, the oldest complete lines are discarded to stay within it.
// Safe for concurrent use.
type DeferredWriter struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	limit   int
	dropped int
}

// NewDeferredWriter creates a writer that holds at most limit bytes. A limit
// of zero or less buffers without bound.
func NewDeferredWriter(limit int) *DeferredWriter {
	return &DeferredWriter{limit: limit}
}

// Write stores data in the internal buffer.
func (d *DeferredWriter) Write(p []byte) (n int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, err = d.buf.Write(p)
	if d.limit > 0 {
		d.trim()
	}
	return n, err
}

// trim drops whole lines from the front until the buffer fits the limit.
// A single line longer than the limit is kept.
func (d *DeferredWriter) trim() {
	for d.buf.Len() > d.limit {
		i := bytes.IndexByte(d.buf.Bytes(), '\n')
		if i < 0 || i == d.buf.Len()-1 {
			return
		}
		d.buf.Next(i + 1)
		d.dropped++
	}
}

// Dropped returns the number of lines discarded to honour the limit since
// the last Flush.
func (d *DeferredWriter) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// Flush writes all buffered data to w and clears the buffer. Discarded lines
// are reported first.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dropped > 0 {
		if _, err := fmt.Fprintf(w, "... %d earlier line(s) dropped\n", d.dropped); err != nil {
			return err
		}
		d.dropped = 0
	}

	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	return err
}
