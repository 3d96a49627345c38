package rpcserver

import "github.com/falleng0d/hidremote/internal/hidkey"

type keyOptionsWire struct {
	NoRepeat                 bool `json:"no_repeat"`
	DisableUnwantedModifiers bool `json:"disable_unwanted_modifiers"`
}

func (w *keyOptionsWire) toDomain() *hidkey.KeyOptions {
	if w == nil {
		return nil
	}
	return &hidkey.KeyOptions{NoRepeat: w.NoRepeat, DisableUnwantedModifiers: w.DisableUnwantedModifiers}
}

type pressKeyRequest struct {
	ID      int             `json:"id"`
	Type    string          `json:"type"`
	Options *keyOptionsWire `json:"options"`
}

type hotkeyStepWire struct {
	KeyID   int    `json:"key_id"`
	Type    string `json:"type"`
	WaitMs  *int   `json:"wait_ms"`
	SpeedMs *int   `json:"speed_ms"`
}

type pressHotkeyRequest struct {
	Hotkey  string           `json:"hotkey"`
	Steps   []hotkeyStepWire `json:"steps"`
	Type    string           `json:"type"`
	Speed   *int             `json:"speed"`
	Options *keyOptionsWire  `json:"options"`
}

type pressMouseKeyRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

type moveMouseRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VWheel int     `json:"vwheel"`
	HWheel int     `json:"hwheel"`
}

type configWire struct {
	CursorSpeed        float64 `json:"cursor_speed"`
	CursorAcceleration float64 `json:"cursor_acceleration"`
}

type setConfigRequest = configWire

type response struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
