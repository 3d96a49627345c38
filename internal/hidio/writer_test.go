package hidio

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/falleng0d/hidremote/internal/hidkey"
)

func newTestWriter() *Writer {
	return New(zerolog.Nop())
}

func TestWriteMissingDeviceIsDeviceUnavailable(t *testing.T) {
	w := newTestWriter()
	err := w.Write("/nonexistent/hidg-test-path", []byte{0x00})
	assert.ErrorIs(t, err, hidkey.ErrDeviceUnavailable)
}

func TestBoundedWriteMissingDeviceIsDeviceUnavailable(t *testing.T) {
	w := newTestWriter()
	err := w.BoundedWrite(context.Background(), "/nonexistent/hidg-test-path", []byte{0x00})
	assert.ErrorIs(t, err, hidkey.ErrDeviceUnavailable)
}
