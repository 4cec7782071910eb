package writers

import (
	"errors"
	"io"
	"sync"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// CancelOnError wraps w so that the first failed Write calls cancel. Upstream
// producers watching the cancelled context stop instead of computing rows
// nobody will read.
func CancelOnError(w io.Writer, cancel func()) io.Writer {
	return &cancelWriter{w: w, cancel: cancel}
}

type cancelWriter struct {
	w      io.Writer
	cancel func()
	once   sync.Once
}

func (c *cancelWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		c.once.Do(c.cancel)
	}
	return n, err
}
