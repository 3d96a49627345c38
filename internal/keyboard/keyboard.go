// Package keyboard implements the keyboard state engine: modifier byte,
// six ordinary-key slots, and a single active consumer (media) usage,
// emitted as USB HID boot-protocol reports.
package keyboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/falleng0d/hidremote/internal/hidio"
	"github.com/falleng0d/hidremote/internal/hidkey"
)

const numSlots = 6

// Keyboard tracks the state of a single logical keyboard and the consumer
// (media) control it shares a descriptor with, and emits reports through a
// shared Writer.
type Keyboard struct {
	mu sync.Mutex

	modifiers byte
	slots     [numSlots]byte
	consumer  byte

	writer       *hidio.Writer
	keyboardPath string
	consumerPath string
}

// New constructs a Keyboard writing boot-keyboard reports to keyboardPath
// and consumer reports to consumerPath.
func New(writer *hidio.Writer, keyboardPath, consumerPath string) *Keyboard {
	return &Keyboard{writer: writer, keyboardPath: keyboardPath, consumerPath: consumerPath}
}

// SetModifier sets or clears a single modifier bit and emits a report.
// bit must be exactly one of the eight recognized modifier masks, or
// hidkey.ErrInvalidModifier is returned and no report is emitted.
func (k *Keyboard) SetModifier(bit byte, pressed bool) error {
	if !hidkey.IsValidModifierBit(bit) {
		return fmt.Errorf("%w: bit 0x%02x", hidkey.ErrInvalidModifier, bit)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if pressed {
		k.modifiers |= bit
	} else {
		k.modifiers &^= bit
	}
	return k.emitKeyboardLocked()
}

// PressModifier presses, holds for interval, and releases a modifier.
func (k *Keyboard) PressModifier(bit byte, interval time.Duration) error {
	if err := k.SetModifier(bit, true); err != nil {
		return err
	}
	time.Sleep(interval)
	return k.SetModifier(bit, false)
}

// SetKey presses or releases an ordinary key by its HID usage code.
// Pressing inserts into the first empty slot; a redundant press still
// re-emits. Pressing a seventh simultaneous key returns
// hidkey.ErrRolloverExceeded. Releasing clears every slot holding that
// usage and is a no-op (but still emits) if the key was not pressed.
func (k *Keyboard) SetKey(usage byte, pressed bool) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if pressed {
		for _, s := range k.slots {
			if s == usage {
				return k.emitKeyboardLocked()
			}
		}
		for i, s := range k.slots {
			if s == 0 {
				k.slots[i] = usage
				return k.emitKeyboardLocked()
			}
		}
		return fmt.Errorf("%w: usage 0x%02x", hidkey.ErrRolloverExceeded, usage)
	}

	for i, s := range k.slots {
		if s == usage {
			k.slots[i] = 0
		}
	}
	return k.emitKeyboardLocked()
}

// PressKey presses, holds for interval, and releases an ordinary key.
func (k *Keyboard) PressKey(usage byte, interval time.Duration) error {
	if err := k.SetKey(usage, true); err != nil {
		return err
	}
	time.Sleep(interval)
	return k.SetKey(usage, false)
}

// SetMedia activates or clears the single active consumer usage.
func (k *Keyboard) SetMedia(code byte, pressed bool) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if pressed {
		k.consumer = code
	} else {
		k.consumer = 0
	}
	return k.emitConsumerLocked()
}

// PressMedia presses, holds for interval, and releases a media key.
func (k *Keyboard) PressMedia(code byte, interval time.Duration) error {
	if err := k.SetMedia(code, true); err != nil {
		return err
	}
	time.Sleep(interval)
	return k.SetMedia(code, false)
}

// ReleaseAll clears all modifier, key, and consumer state and emits both
// reports all-zero.
func (k *Keyboard) ReleaseAll() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.modifiers = 0
	k.slots = [numSlots]byte{}
	k.consumer = 0
	if err := k.emitKeyboardLocked(); err != nil {
		return err
	}
	return k.emitConsumerLocked()
}

// Report returns the current 8-byte boot keyboard report.
func (k *Keyboard) Report() [8]byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.reportLocked()
}

func (k *Keyboard) reportLocked() [8]byte {
	var r [8]byte
	r[0] = k.modifiers
	copy(r[2:], k.slots[:])
	return r
}

// ConsumerReport returns the current 2-byte consumer report.
func (k *Keyboard) ConsumerReport() [2]byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	return [2]byte{k.consumer, 0}
}

func (k *Keyboard) emitKeyboardLocked() error {
	r := k.reportLocked()
	return k.writer.Write(k.keyboardPath, r[:])
}

func (k *Keyboard) emitConsumerLocked() error {
	return k.writer.Write(k.consumerPath, []byte{k.consumer, 0})
}
