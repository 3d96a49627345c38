package hidkey

import "strings"

// Modifier bits follow the standard USB HID boot-keyboard modifier byte
// layout: bit0=LeftCtrl, bit1=LeftShift, bit2=LeftAlt, bit3=LeftGUI,
// bit4=RightCtrl, bit5=RightShift, bit6=RightAlt, bit7=RightGUI.
const (
	ModLeftCtrl   byte = 1 << 0
	ModLeftShift  byte = 1 << 1
	ModLeftAlt    byte = 1 << 2
	ModLeftSuper  byte = 1 << 3
	ModRightCtrl  byte = 1 << 4
	ModRightShift byte = 1 << 5
	ModRightAlt   byte = 1 << 6
	ModRightSuper byte = 1 << 7
)

// IsValidModifierBit reports whether bit is exactly one of the eight
// recognized single-bit modifier masks above.
func IsValidModifierBit(bit byte) bool {
	switch bit {
	case ModLeftCtrl, ModLeftShift, ModLeftAlt, ModLeftSuper,
		ModRightCtrl, ModRightShift, ModRightAlt, ModRightSuper:
		return true
	default:
		return false
	}
}

// keyTable assigns every Key its display name, partition tag, and wire code.
// Ordinary-key codes are USB HID Usage Tables (page 0x07) Keyboard/Keypad
// usages; media-key codes are USB HID Usage Tables (page 0x0C) Consumer
// usages (low byte only, per the wire invariant); modifier codes are the
// single-bit masks above.
var keyTable = map[Key]keyInfo{
	Key0: {"0", TagOrdinary, 0x27},
	Key1: {"1", TagOrdinary, 0x1E},
	Key2: {"2", TagOrdinary, 0x1F},
	Key3: {"3", TagOrdinary, 0x20},
	Key4: {"4", TagOrdinary, 0x21},
	Key5: {"5", TagOrdinary, 0x22},
	Key6: {"6", TagOrdinary, 0x23},
	Key7: {"7", TagOrdinary, 0x24},
	Key8: {"8", TagOrdinary, 0x25},
	Key9: {"9", TagOrdinary, 0x26},

	KeyA: {"a", TagOrdinary, 0x04},
	KeyB: {"b", TagOrdinary, 0x05},
	KeyC: {"c", TagOrdinary, 0x06},
	KeyD: {"d", TagOrdinary, 0x07},
	KeyE: {"e", TagOrdinary, 0x08},
	KeyF: {"f", TagOrdinary, 0x09},
	KeyG: {"g", TagOrdinary, 0x0A},
	KeyH: {"h", TagOrdinary, 0x0B},
	KeyI: {"i", TagOrdinary, 0x0C},
	KeyJ: {"j", TagOrdinary, 0x0D},
	KeyK: {"k", TagOrdinary, 0x0E},
	KeyL: {"l", TagOrdinary, 0x0F},
	KeyM: {"m", TagOrdinary, 0x10},
	KeyN: {"n", TagOrdinary, 0x11},
	KeyO: {"o", TagOrdinary, 0x12},
	KeyP: {"p", TagOrdinary, 0x13},
	KeyQ: {"q", TagOrdinary, 0x14},
	KeyR: {"r", TagOrdinary, 0x15},
	KeyS: {"s", TagOrdinary, 0x16},
	KeyT: {"t", TagOrdinary, 0x17},
	KeyU: {"u", TagOrdinary, 0x18},
	KeyV: {"v", TagOrdinary, 0x19},
	KeyW: {"w", TagOrdinary, 0x1A},
	KeyX: {"x", TagOrdinary, 0x1B},
	KeyY: {"y", TagOrdinary, 0x1C},
	KeyZ: {"z", TagOrdinary, 0x1D},

	KeyF1:  {"f1", TagOrdinary, 0x3A},
	KeyF2:  {"f2", TagOrdinary, 0x3B},
	KeyF3:  {"f3", TagOrdinary, 0x3C},
	KeyF4:  {"f4", TagOrdinary, 0x3D},
	KeyF5:  {"f5", TagOrdinary, 0x3E},
	KeyF6:  {"f6", TagOrdinary, 0x3F},
	KeyF7:  {"f7", TagOrdinary, 0x40},
	KeyF8:  {"f8", TagOrdinary, 0x41},
	KeyF9:  {"f9", TagOrdinary, 0x42},
	KeyF10: {"f10", TagOrdinary, 0x43},
	KeyF11: {"f11", TagOrdinary, 0x44},
	KeyF12: {"f12", TagOrdinary, 0x45},

	KeyNumLock: {"numlock", TagOrdinary, 0x53},
	KeyScroll:  {"scrolllock", TagOrdinary, 0x47},
	KeyBack:    {"backspace", TagOrdinary, 0x2A},
	KeyTab:     {"tab", TagOrdinary, 0x2B},
	KeyReturn:  {"return", TagOrdinary, 0x28},

	KeyLShift:   {"lshift", TagModifier, ModLeftShift},
	KeyRShift:   {"rshift", TagModifier, ModRightShift},
	KeyLControl: {"lctrl", TagModifier, ModLeftCtrl},
	KeyRControl: {"rctrl", TagModifier, ModRightCtrl},
	KeyLMenu:    {"lalt", TagModifier, ModLeftAlt},
	KeyRMenu:    {"ralt", TagModifier, ModRightAlt},

	KeyCapital:      {"capslock", TagOrdinary, 0x39},
	KeyEscape:       {"escape", TagOrdinary, 0x29},
	KeyConvert:      {"convert", TagOrdinary, 0x8A},
	KeyNonConvert:   {"nonconvert", TagOrdinary, 0x8B},
	KeyAccept:       {"accept", TagOrdinary, 0x91},
	KeyModeChange:   {"modechange", TagOrdinary, 0x92},
	KeySpace:        {"space", TagOrdinary, 0x2C},
	KeyPrior:        {"pageup", TagOrdinary, 0x4B},
	KeyNext:         {"pagedown", TagOrdinary, 0x4E},
	KeyEnd:          {"end", TagOrdinary, 0x4D},
	KeyHome:         {"home", TagOrdinary, 0x4A},
	KeyLeft:         {"left", TagOrdinary, 0x50},
	KeyUp:           {"up", TagOrdinary, 0x52},
	KeyRight:        {"right", TagOrdinary, 0x4F},
	KeyDown:         {"down", TagOrdinary, 0x51},
	KeySelect:       {"select", TagOrdinary, 0x77},
	KeyPrint:        {"printscreen", TagOrdinary, 0x46},
	KeyExecute:      {"execute", TagOrdinary, 0x74},
	KeySnapshot:     {"snapshot", TagOrdinary, 0x46},
	KeyInsert:       {"insert", TagOrdinary, 0x49},
	KeyDelete:       {"delete", TagOrdinary, 0x4C},
	KeyHelp:         {"help", TagOrdinary, 0x75},

	KeyLSuper: {"lwin", TagModifier, ModLeftSuper},
	KeyRSuper: {"rwin", TagModifier, ModRightSuper},

	KeyApps:  {"apps", TagOrdinary, 0x65},
	KeySleep: {"sleep", TagMedia, 0x32},

	KeyNumpad0: {"numpad0", TagOrdinary, 0x62},
	KeyNumpad1: {"numpad1", TagOrdinary, 0x59},
	KeyNumpad2: {"numpad2", TagOrdinary, 0x5A},
	KeyNumpad3: {"numpad3", TagOrdinary, 0x5B},
	KeyNumpad4: {"numpad4", TagOrdinary, 0x5C},
	KeyNumpad5: {"numpad5", TagOrdinary, 0x5D},
	KeyNumpad6: {"numpad6", TagOrdinary, 0x5E},
	KeyNumpad7: {"numpad7", TagOrdinary, 0x5F},
	KeyNumpad8: {"numpad8", TagOrdinary, 0x60},
	KeyNumpad9: {"numpad9", TagOrdinary, 0x61},

	KeyMultiply:  {"numpadmultiply", TagOrdinary, 0x55},
	KeyAdd:       {"numpadadd", TagOrdinary, 0x57},
	KeySeparator: {"numpadseparator", TagOrdinary, 0x85},
	KeySubtract:  {"numpadsubtract", TagOrdinary, 0x56},
	KeyDecimal:   {"numpaddecimal", TagOrdinary, 0x63},
	KeyDivide:    {"numpaddivide", TagOrdinary, 0x54},

	KeyOEMPlus:                {"+", TagOrdinary, 0x2E},
	KeyOEMComma:               {",", TagOrdinary, 0x36},
	KeyOEMMinus:               {"-", TagOrdinary, 0x2D},
	KeyOEMPeriod:              {".", TagOrdinary, 0x37},
	KeyOEM1Semicolon:          {";", TagOrdinary, 0x33},
	KeyOEM2ForwardSlash:       {"/", TagOrdinary, 0x38},
	KeyOEM3Backtick:           {"`", TagOrdinary, 0x35},
	KeyOEM4SquareBracketOpen:  {"[", TagOrdinary, 0x2F},
	KeyOEM5Backslash:          {"\\", TagOrdinary, 0x31},
	KeyOEM6SquareBracketClose: {"]", TagOrdinary, 0x30},
	KeyOEM7SingleQuote:        {"'", TagOrdinary, 0x34},

	KeyMediaPlayPause: {"mediaplaypause", TagMedia, 0xCD},
	KeyMediaPrevTrack: {"mediaprevtrack", TagMedia, 0xB6},
	KeyMediaNextTrack: {"medianexttrack", TagMedia, 0xB5},
	KeyVolumeMute:     {"volumemute", TagMedia, 0xE2},
	KeyVolumeUp:       {"volumeup", TagMedia, 0xE9},
	KeyVolumeDown:     {"volumedown", TagMedia, 0xEA},
	KeyMediaStop:      {"mediastop", TagMedia, 0xB7},
	KeyBrowserBack:    {"browserback", TagMedia, 0x24},
	KeyBrowserForward: {"browserforward", TagMedia, 0x25},
	KeyBrowserRefresh: {"browserrefresh", TagMedia, 0x27},
}

// nameTable maps every accepted hotkey-string name (case-insensitive) to a
// Key, mirroring original_source's key_str_utils.STR_TO_KEY. Several spellings
// alias the same Key (e.g. "enter" and "return" both name KeyReturn).
var nameTable map[string]Key

func init() {
	nameTable = make(map[string]Key, len(keyTable)*2)
	for k, info := range keyTable {
		nameTable[info.name] = k
	}
	aliases := map[string]Key{
		"esc":           KeyEscape,
		"enter":         KeyReturn,
		"del":           KeyDelete,
		"shift":         KeyLShift,
		"ctrl":          KeyLControl,
		"control":       KeyLControl,
		"alt":           KeyLMenu,
		"win":           KeyLSuper,
		"super":         KeyLSuper,
		"pgup":          KeyPrior,
		"pgdn":          KeyNext,
		"printscrn":     KeyPrint,
		"print_screen":  KeyPrint,
		"arrowleft":     KeyLeft,
		"arrowright":    KeyRight,
		"arrowup":       KeyUp,
		"arrowdown":     KeyDown,
	}
	for name, k := range aliases {
		nameTable[name] = k
	}
	// Digits are also reachable by their bare rune, matching the original
	// parser treating a single literal digit character as a key name.
	for i := Key0; i <= Key9; i++ {
		nameTable[keyTable[i].name] = i
	}
}

// ByName looks up a Key by its hotkey-string spelling, ignoring case.
func ByName(name string) (Key, bool) {
	k, ok := nameTable[strings.ToLower(name)]
	return k, ok
}
