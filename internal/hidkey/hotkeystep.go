package hidkey

// HotkeyStep is a single compiled instruction of a hotkey macro: press,
// release, or tap a key, optionally preceded by a wait and, for PRESS
// steps, followed by a pacing delay before the next step.
type HotkeyStep struct {
	KeyID   int
	Action  ActionType
	WaitMs  *int
	SpeedMs *int
}
