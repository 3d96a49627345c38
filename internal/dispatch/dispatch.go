// Package dispatch routes input commands to the keyboard and mouse engines,
// partitioning keys by tag (ordinary/modifier/media) and expanding hotkey
// macros into a sequence of dispatched key steps.
package dispatch

import (
	"context"
	"time"

	"github.com/falleng0d/hidremote/internal/hidkey"
	"github.com/falleng0d/hidremote/internal/keyboard"
	"github.com/falleng0d/hidremote/internal/mouse"
)

// IntervalSource supplies the configured key press interval, decoupling the
// dispatcher from the concrete config store type.
type IntervalSource interface {
	KeyPressInterval() time.Duration
}

// Dispatcher is the single entry point the RPC surface calls into.
type Dispatcher struct {
	Keyboard *keyboard.Keyboard
	Mouse    *mouse.Mouse
	Config   IntervalSource
}

// New constructs a Dispatcher wired to the given engines and config.
func New(kb *keyboard.Keyboard, ms *mouse.Mouse, cfg IntervalSource) *Dispatcher {
	return &Dispatcher{Keyboard: kb, Mouse: ms, Config: cfg}
}

// PressKey dispatches a single key/modifier/media action by wire ID.
func (d *Dispatcher) PressKey(id int, action hidkey.ActionType, opts *hidkey.KeyOptions) error {
	k, ok := hidkey.ByID(id)
	if !ok {
		return hidkey.UnknownKeyError{Ref: id}
	}

	interval := d.Config.KeyPressInterval()

	switch k.Tag() {
	case hidkey.TagModifier:
		bit := k.ModifierBit()
		if action == hidkey.Press {
			return d.Keyboard.PressModifier(bit, interval)
		}
		return d.Keyboard.SetModifier(bit, action == hidkey.Down)

	case hidkey.TagMedia:
		code := k.ConsumerCode()
		if action == hidkey.Press {
			return d.Keyboard.PressMedia(code, interval)
		}
		return d.Keyboard.SetMedia(code, action == hidkey.Down)

	default:
		usage := k.UsageCode()
		if action == hidkey.Press {
			return d.Keyboard.PressKey(usage, interval)
		}
		return d.Keyboard.SetKey(usage, action == hidkey.Down)
	}
}

// PressMouseKey dispatches a mouse button action by wire ID.
func (d *Dispatcher) PressMouseKey(id int, action hidkey.ActionType) error {
	b, ok := hidkey.ButtonByID(id)
	if !ok {
		return hidkey.UnknownKeyError{Ref: id}
	}

	bit := b.Bit()
	if action == hidkey.Press {
		return d.Mouse.PressButton(bit)
	}
	return d.Mouse.SetButton(bit, action == hidkey.Down)
}

// MoveMouse dispatches a relative motion/wheel event.
func (d *Dispatcher) MoveMouse(ctx context.Context, dx, dy float64, vwheel, hwheel int) error {
	return d.Mouse.Move(ctx, dx, dy, vwheel, hwheel)
}

// PressHotkey executes a compiled hotkey macro. It is a no-op when
// outerAction is hidkey.Up — hotkeys are momentary and only run on the
// triggering DOWN/PRESS. speed overrides the per-PRESS-step pacing delay;
// when nil, the configured key press interval is used.
func (d *Dispatcher) PressHotkey(steps []hidkey.HotkeyStep, outerAction hidkey.ActionType, opts *hidkey.KeyOptions, speed *int) error {
	if outerAction == hidkey.Up {
		return nil
	}

	forced := hidkey.KeyOptions{NoRepeat: true}
	if opts != nil {
		forced.DisableUnwantedModifiers = opts.DisableUnwantedModifiers
	}

	defaultSpeed := d.Config.KeyPressInterval()
	if speed != nil {
		defaultSpeed = time.Duration(*speed) * time.Millisecond
	}

	for _, step := range steps {
		if step.WaitMs != nil {
			time.Sleep(time.Duration(*step.WaitMs) * time.Millisecond)
		}
		if err := d.PressKey(step.KeyID, step.Action, &forced); err != nil {
			return err
		}
		if step.Action == hidkey.Press {
			pace := defaultSpeed
			if step.SpeedMs != nil {
				pace = time.Duration(*step.SpeedMs) * time.Millisecond
			}
			time.Sleep(pace)
		}
	}
	return nil
}
