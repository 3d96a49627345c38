package dispatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falleng0d/hidremote/internal/hidio"
	"github.com/falleng0d/hidremote/internal/hidkey"
	"github.com/falleng0d/hidremote/internal/keyboard"
	"github.com/falleng0d/hidremote/internal/mouse"
)

type fixedInterval time.Duration

func (f fixedInterval) KeyPressInterval() time.Duration { return time.Duration(f) }

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	dir := t.TempDir()
	kbPath := filepath.Join(dir, "hidg0")
	mediaPath := filepath.Join(dir, "hidg2")
	mousePath := filepath.Join(dir, "hidg1")
	for _, p := range []string{kbPath, mediaPath, mousePath} {
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
	writer := hidio.New(zerolog.Nop())
	kb := keyboard.New(writer, kbPath, mediaPath)
	ms := mouse.New(writer, mousePath)
	return New(kb, ms, fixedInterval(time.Millisecond))
}

func TestPressKeyRoutesOrdinaryKey(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.PressKey(int(hidkey.KeyA), hidkey.Down, nil))
	assert.Equal(t, hidkey.KeyA.UsageCode(), d.Keyboard.Report()[2])
}

func TestPressKeyRoutesModifier(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.PressKey(int(hidkey.KeyLControl), hidkey.Down, nil))
	assert.Equal(t, hidkey.ModLeftCtrl, d.Keyboard.Report()[0])
}

func TestPressKeyRoutesMedia(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.PressKey(int(hidkey.KeyVolumeUp), hidkey.Down, nil))
	assert.Equal(t, hidkey.KeyVolumeUp.ConsumerCode(), d.Keyboard.ConsumerReport()[0])
}

func TestPressKeyUnknownIDReturnsError(t *testing.T) {
	d := newTestDispatcher(t)
	err := d.PressKey(99999, hidkey.Down, nil)
	assert.Error(t, err)
}

func TestPressMouseKeyPressCyclesButton(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.PressMouseKey(int(hidkey.ButtonLeft), hidkey.Press))
}

func TestMoveMouseDispatchesToEngine(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.MoveMouse(context.Background(), 1, 1, 0, 0))
}

func TestPressHotkeyNoopOnUp(t *testing.T) {
	d := newTestDispatcher(t)
	steps := []hidkey.HotkeyStep{{KeyID: int(hidkey.KeyA), Action: hidkey.Down}}
	require.NoError(t, d.PressHotkey(steps, hidkey.Up, nil, nil))
	assert.Equal(t, byte(0), d.Keyboard.Report()[2])
}

func TestPressHotkeyRunsStepsInOrder(t *testing.T) {
	d := newTestDispatcher(t)
	wait := 1
	steps := []hidkey.HotkeyStep{
		{KeyID: int(hidkey.KeyLControl), Action: hidkey.Down},
		{KeyID: int(hidkey.KeyA), Action: hidkey.Press, WaitMs: &wait},
		{KeyID: int(hidkey.KeyLControl), Action: hidkey.Up},
	}
	require.NoError(t, d.PressHotkey(steps, hidkey.Press, nil, nil))
	assert.Equal(t, byte(0), d.Keyboard.Report()[0])
	assert.Equal(t, byte(0), d.Keyboard.Report()[2])
}
