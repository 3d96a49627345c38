package hidkey

import "strings"

// ActionType is the action requested for a key, modifier, media key, button,
// or hotkey step.
type ActionType int

const (
	Up ActionType = iota
	Down
	Press
	Move
)

func (a ActionType) String() string {
	switch a {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Press:
		return "PRESS"
	case Move:
		return "MOVE"
	default:
		return "UNKNOWN"
	}
}

// ParseActionType parses a wire action name, defaulting to Press when name
// is empty — the default the original hotkey grammar and RPC surface share.
func ParseActionType(name string) ActionType {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UP":
		return Up
	case "DOWN":
		return Down
	case "MOVE":
		return Move
	case "", "PRESS":
		return Press
	default:
		return Press
	}
}

// KeyOptions carries per-call modifiers to key/hotkey dispatch.
type KeyOptions struct {
	NoRepeat                 bool
	DisableUnwantedModifiers bool
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonForward
	ButtonBack
)

// Bit assignments from the original button_to_hid table.
const (
	MouseBitLeft    byte = 1 << 0
	MouseBitRight   byte = 1 << 1
	MouseBitMiddle  byte = 1 << 2
	MouseBitBack    byte = 1 << 3
	MouseBitForward byte = 1 << 4
)

var buttonBits = map[Button]byte{
	ButtonLeft:    MouseBitLeft,
	ButtonRight:   MouseBitRight,
	ButtonMiddle:  MouseBitMiddle,
	ButtonForward: MouseBitForward,
	ButtonBack:    MouseBitBack,
}

// ButtonByID returns the Button for a wire ID and whether it is known.
func ButtonByID(id int) (Button, bool) {
	if id < 0 || id > int(ButtonBack) {
		return 0, false
	}
	return Button(id), true
}

// Bit returns the mouse report bitmask bit for a button.
func (b Button) Bit() byte { return buttonBits[b] }
