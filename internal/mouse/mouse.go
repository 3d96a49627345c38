// Package mouse implements the mouse state engine: button byte plus relative
// motion and wheel deltas, emitted as 5-byte HID reports.
package mouse

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/falleng0d/hidremote/internal/hidio"
	"github.com/falleng0d/hidremote/internal/hidkey"
)

// PressHoldDuration is the fixed hold between a mouse button's DOWN and UP
// half when dispatched as a single PRESS action.
const PressHoldDuration = 150 * time.Millisecond

// Mouse tracks button state and emits 5-byte mouse reports:
// [buttons, dx_i8, dy_i8, vwheel, hwheel].
type Mouse struct {
	mu sync.Mutex

	buttons byte

	writer    *hidio.Writer
	mousePath string
}

// New constructs a Mouse writing reports to mousePath.
func New(writer *hidio.Writer, mousePath string) *Mouse {
	return &Mouse{writer: writer, mousePath: mousePath}
}

// SetButton sets or clears a single button bit and emits a report with zero
// motion.
func (m *Mouse) SetButton(bit byte, pressed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pressed {
		m.buttons |= bit
	} else {
		m.buttons &^= bit
	}
	return m.emitLocked(0, 0, 0, 0)
}

// Move emits a single motion report through the bounded-wait writer: dx/dy
// are scaled by 10 and truncated to a signed byte (values outside ±12.7
// alias via two's-complement wraparound); vwheel is negated (JS-to-HID wheel
// sign convention) then masked to a byte; hwheel is masked as-is. A stale
// sample that cannot be written within hidio.BoundedWriteDeadline is
// discarded rather than surfaced as an error.
func (m *Mouse) Move(ctx context.Context, dx, dy float64, vwheel, hwheel int) error {
	m.mu.Lock()
	buttons := m.buttons
	m.mu.Unlock()

	dxByte := scaleAxis(dx)
	dyByte := scaleAxis(dy)
	vwheelByte := byte(int8(-vwheel))
	hwheelByte := byte(int8(hwheel))

	report := []byte{buttons, dxByte, dyByte, vwheelByte, hwheelByte}
	err := m.writer.BoundedWrite(ctx, m.mousePath, report)
	if errors.Is(err, hidkey.ErrTimeout) {
		return nil
	}
	return err
}

// PressButton sets bit, holds for PressHoldDuration, then clears it.
func (m *Mouse) PressButton(bit byte) error {
	if err := m.SetButton(bit, true); err != nil {
		return err
	}
	time.Sleep(PressHoldDuration)
	return m.SetButton(bit, false)
}

// ReleaseAllButtons clears every button bit and emits a zero-motion report.
func (m *Mouse) ReleaseAllButtons() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buttons = 0
	return m.emitLocked(0, 0, 0, 0)
}

func (m *Mouse) emitLocked(dx, dy, vwheel, hwheel byte) error {
	report := []byte{m.buttons, dx, dy, vwheel, hwheel}
	return m.writer.Write(m.mousePath, report)
}

func scaleAxis(v float64) byte {
	scaled := int(math.Floor(v * 10))
	return byte(int8(scaled))
}
