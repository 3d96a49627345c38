package hotkey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falleng0d/hidremote/internal/hidkey"
)

func TestParseLiteralCharacter(t *testing.T) {
	steps, err := Parse("a")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, int(hidkey.KeyA), steps[0].KeyID)
	assert.Equal(t, hidkey.Down, steps[0].Action)
	assert.Equal(t, hidkey.Up, steps[1].Action)
}

func TestParseBracedPressDefaultsAction(t *testing.T) {
	steps, err := Parse("{A}")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, hidkey.Down, steps[0].Action)
	assert.Equal(t, hidkey.Up, steps[1].Action)
	assert.Nil(t, steps[0].WaitMs)
}

func TestParseBracedExplicitAction(t *testing.T) {
	steps, err := Parse("{LShift Down}")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, hidkey.Down, steps[0].Action)
	assert.Equal(t, int(hidkey.KeyLShift), steps[0].KeyID)
}

func TestParsePressWithWaitAppliesToUpHalf(t *testing.T) {
	steps, err := Parse("{A Press:50}")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Nil(t, steps[0].WaitMs)
	require.NotNil(t, steps[1].WaitMs)
	assert.Equal(t, 50, *steps[1].WaitMs)
}

func TestParseUnclosedBraceIsSkippedWithoutError(t *testing.T) {
	steps, err := Parse("{abc")
	require.NoError(t, err)
	// '{' has no key mapping so it contributes no step; 'a','b','c' each do.
	assert.Len(t, steps, 6)
}

func TestParseMixedLiteralAndBraced(t *testing.T) {
	steps, err := Parse("ab{LShift Down}c")
	require.NoError(t, err)
	// a(2) + b(2) + LShift-down(1) + c(2) = 7
	assert.Len(t, steps, 7)
}

func TestParseUnknownBracedNameFailsCompilation(t *testing.T) {
	steps, err := Parse("{Bogus}c")
	assert.Nil(t, steps)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hidkey.ErrMalformedHotkey))
	assert.True(t, errors.Is(err, hidkey.ErrUnknownKey))
}

func TestParseEmptyStringProducesNoSteps(t *testing.T) {
	steps, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, steps)
}
