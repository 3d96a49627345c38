// Package hidio writes raw HID reports to gadget character devices
// (/dev/hidg*), serializing all writes across every endpoint behind a single
// process-wide lock and tolerating a disconnected host by dropping reports
// that would block instead of failing the caller.
package hidio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/falleng0d/hidremote/internal/hidkey"
)

// BoundedWriteDeadline is how long a bounded write waits before discarding
// its report rather than blocking the caller. Mouse motion is the only
// caller that uses the bounded path: a stale motion sample is worthless,
// unlike a dropped key press.
const BoundedWriteDeadline = 5 * time.Millisecond

// Writer serializes HID report writes across every gadget endpoint.
type Writer struct {
	mu  sync.Mutex
	log zerolog.Logger
}

// New returns a Writer that logs would-block and error conditions via log.
func New(log zerolog.Logger) *Writer {
	return &Writer{log: log.With().Str("component", "hidio").Logger()}
}

// Write opens path, writes buf in full, and closes it, holding the
// process-wide lock for the duration. A would-block error (no host attached
// to consume the endpoint) is logged and treated as success. A path that
// does not exist or names no device (ENOENT/ENODEV on open) is logged and
// returned wrapped in hidkey.ErrDeviceUnavailable; any other error is
// returned wrapped in hidkey.ErrDeviceWrite.
func (w *Writer) Write(path string, buf []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeLocked(path, buf)
}

func (w *Writer) writeLocked(path string, buf []byte) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_APPEND|unix.O_NONBLOCK, 0)
	if err != nil {
		if errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENODEV) {
			w.log.Warn().Err(err).Str("path", path).Msg("hid device unavailable")
			return fmt.Errorf("%w: %s: %v", hidkey.ErrDeviceUnavailable, path, err)
		}
		return fmt.Errorf("%w: open %s: %v", hidkey.ErrDeviceWrite, path, err)
	}
	defer unix.Close(fd)

	_, err = unix.Write(fd, buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
			w.log.Warn().Str("path", path).Msg("hid write would block, dropping report")
			return nil
		}
		return fmt.Errorf("%w: write %s: %v", hidkey.ErrDeviceWrite, path, err)
	}
	return nil
}

// BoundedWrite performs the write on a goroutine and waits at most
// BoundedWriteDeadline for it to finish. On timeout the write is abandoned
// (its eventual result, if any, is discarded) and BoundedWrite returns
// hidkey.ErrTimeout — this is not treated as a hard error by callers.
func (w *Writer) BoundedWrite(ctx context.Context, path string, buf []byte) error {
	done := make(chan error, 1)
	go func() {
		done <- w.Write(path, buf)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(BoundedWriteDeadline):
		return hidkey.ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}
