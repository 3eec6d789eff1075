// Package ui contains terminal output helpers.
package ui

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
)

type (
	// Output is a writer that can be used to write to stdout or stderr.
	Output interface {
		io.Writer

		// String returns the output name.
		String() string
	}

	// BufferedOutput is a buffered output.
	BufferedOutput interface {
		Output

		Reset()           // Reset resets the output buffer to be empty.
		AsString() string // AsString returns the contents of the buffer as a string.
		Len() int         // Len returns the number of bytes in the output buffer.
	}
)

// the following variables are used as a singletons for stdout/stderr/noop (like a context.Background).
var (
	stdOut Output = &outWithLocker{name: "stdout", dest: colorable.NewColorable(os.Stdout)} //nolint:gochecknoglobals
	stdErr Output = &outWithLocker{name: "stderr", dest: colorable.NewColorable(os.Stderr)} //nolint:gochecknoglobals
	noOut  Output = &outWithLocker{name: "noop", dest: io.Discard}                          //nolint:gochecknoglobals
	_      Output = new(bufOutWithLocker)
)

// StdOut returns a stout pipe writer.
func StdOut() Output { return stdOut }

// StdErr returns a stderr pipe writer.
func StdErr() Output { return stdErr }

// NoOut returns a no-op writer.
func NoOut() Output { return noOut }

// BufOut returns the new buffered output (common use case - unit-tests).
func BufOut() BufferedOutput { return new(bufOutWithLocker) }

// outWithLocker is a wrapper for io.Writer that locks the mutex.
type outWithLocker struct {
	m    sync.Mutex
	name string
	dest io.Writer
}

// Write writes the given bytes to the output.
func (o *outWithLocker) Write(p []byte) (n int, err error) {
	if o.dest == io.Discard {
		return len(p), nil
	}

	o.m.Lock()
	n, err = o.dest.Write(p)
	o.m.Unlock()

	return
}

func (o *outWithLocker) String() string { return o.name }

// bufOutWithLocker is a buffered output.
type bufOutWithLocker struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *bufOutWithLocker) Reset() { o.m.Lock(); o.buf.Reset(); o.m.Unlock() }

func (o *bufOutWithLocker) AsString() string { o.m.Lock(); defer o.m.Unlock(); return o.buf.String() }

func (o *bufOutWithLocker) Len() int { o.m.Lock(); defer o.m.Unlock(); return o.buf.Len() }

// Write writes the given bytes to the output.
func (o *bufOutWithLocker) Write(p []byte) (n int, err error) {
	o.m.Lock()
	n, err = o.buf.Write(p)
	o.m.Unlock()

	return
}

func (o *bufOutWithLocker) String() string { return "buffer" }
