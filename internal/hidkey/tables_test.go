package hidkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAUsageCode(t *testing.T) {
	assert.Equal(t, byte(0x04), KeyA.UsageCode())
	assert.Equal(t, TagOrdinary, KeyA.Tag())
}

func TestLControlIsFirstModifierBit(t *testing.T) {
	assert.Equal(t, ModLeftCtrl, KeyLControl.ModifierBit())
	assert.Equal(t, byte(0x01), KeyLControl.ModifierBit())
	assert.True(t, KeyLControl.IsModifier())
}

func TestVolumeUpConsumerCode(t *testing.T) {
	assert.Equal(t, byte(0xE9), KeyVolumeUp.ConsumerCode())
	assert.True(t, KeyVolumeUp.IsMedia())
}

func TestEightModifierBitsAreDistinct(t *testing.T) {
	mods := []Key{KeyLShift, KeyRShift, KeyLControl, KeyRControl, KeyLMenu, KeyRMenu, KeyLSuper, KeyRSuper}
	seen := make(map[byte]bool)
	for _, m := range mods {
		require.True(t, m.IsModifier())
		bit := m.ModifierBit()
		assert.False(t, seen[bit], "duplicate modifier bit %x", bit)
		seen[bit] = true
	}
	assert.Len(t, seen, 8)
}

func TestByIDRoundTrip(t *testing.T) {
	k, ok := ByID(int(KeyA))
	require.True(t, ok)
	assert.Equal(t, KeyA, k)

	_, ok = ByID(-1)
	assert.False(t, ok)

	_, ok = ByID(int(keyCount))
	assert.False(t, ok)
}

func TestByNameCaseInsensitiveLookup(t *testing.T) {
	k, ok := ByName("a")
	require.True(t, ok)
	assert.Equal(t, KeyA, k)

	k, ok = ByName("enter")
	require.True(t, ok)
	assert.Equal(t, KeyReturn, k)

	_, ok = ByName("not-a-key")
	assert.False(t, ok)
}

func TestButtonBitsMatchOriginalAssignment(t *testing.T) {
	assert.Equal(t, byte(1<<0), ButtonLeft.Bit())
	assert.Equal(t, byte(1<<1), ButtonRight.Bit())
	assert.Equal(t, byte(1<<2), ButtonMiddle.Bit())
	assert.Equal(t, byte(1<<3), ButtonBack.Bit())
	assert.Equal(t, byte(1<<4), ButtonForward.Bit())
}
