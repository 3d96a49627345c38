package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falleng0d/hidremote/internal/hidkey"
)

func TestLoadCreatesFileWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hidremote.conf")

	s := New()
	require.NoError(t, s.Load(path))

	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.CursorSpeed())
	assert.Equal(t, defaultPort, s.Port())
}

func TestSetterBeforeLoadIsNotInitialized(t *testing.T) {
	s := New()
	err := s.SetCursorSpeed(1.5)
	assert.ErrorIs(t, err, hidkey.ErrNotInitialized)
}

func TestSetCursorSpeedValidatesRange(t *testing.T) {
	dir := t.TempDir()
	s := New()
	require.NoError(t, s.Load(filepath.Join(dir, "hidremote.conf")))

	require.NoError(t, s.SetCursorSpeed(2.0))
	assert.Equal(t, 2.0, s.CursorSpeed())

	err := s.SetCursorSpeed(2.1)
	assert.ErrorIs(t, err, hidkey.ErrValueOutOfRange)
}

func TestSetPortValidatesRange(t *testing.T) {
	dir := t.TempDir()
	s := New()
	require.NoError(t, s.Load(filepath.Join(dir, "hidremote.conf")))

	assert.ErrorIs(t, s.SetPort(0), hidkey.ErrValueOutOfRange)
	assert.ErrorIs(t, s.SetPort(70000), hidkey.ErrValueOutOfRange)
	require.NoError(t, s.SetPort(9037))
	assert.Equal(t, 9037, s.Port())
}

func TestLoadReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hidremote.conf")
	require.NoError(t, os.WriteFile(path, []byte("cursor_speed = 1.5\nport = 9100\n"), 0o644))

	s := New()
	require.NoError(t, s.Load(path))
	assert.Equal(t, 1.5, s.CursorSpeed())
	assert.Equal(t, 9100, s.Port())
}

func TestSetPersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hidremote.conf")

	s := New()
	require.NoError(t, s.Load(path))
	require.NoError(t, s.SetHost("127.0.0.1"))

	s2 := New()
	require.NoError(t, s2.Load(path))
	assert.Equal(t, "127.0.0.1", s2.Host())
}
