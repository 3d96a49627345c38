// Package hotkey compiles a hotkey macro string into a sequence of
// hidkey.HotkeyStep values the dispatcher can execute in order.
//
// Grammar: a string is scanned left to right. `{Name}`, `{Name Action}`, and
// `{Name Action:waitMs}` compile to one or two steps (PRESS decomposes into
// DOWN then UP, with the wait applied to the UP half). Any other character
// compiles to a DOWN step followed by an UP step for the key that character
// names. A `{` with no matching `}` is treated as a single literal character
// and, since `{` itself names no key, is silently skipped, as is any other
// character that names no key. The only input that fails compilation is an
// unknown key name inside a closed `{...}` token.
package hotkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/falleng0d/hidremote/internal/hidkey"
)

// Parse compiles a hotkey macro string into steps. An unknown key name
// inside a braced token fails compilation with hidkey.ErrUnknownKey,
// wrapped in hidkey.ErrMalformedHotkey; an unmapped literal character is
// silently skipped (see package doc).
func Parse(s string) ([]hidkey.HotkeyStep, error) {
	var steps []hidkey.HotkeyStep
	runes := []rune(s)

	for i := 0; i < len(runes); {
		c := runes[i]
		if c == '{' {
			end := indexRune(runes, i+1, '}')
			if end < 0 {
				appendLiteral(&steps, c)
				i++
				continue
			}
			command := string(runes[i+1 : end])
			compiled, err := compileCommand(command)
			if err != nil {
				return nil, err
			}
			steps = append(steps, compiled...)
			i = end + 1
			continue
		}
		appendLiteral(&steps, c)
		i++
	}
	return steps, nil
}

func indexRune(runes []rune, from int, target rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

func appendLiteral(steps *[]hidkey.HotkeyStep, c rune) {
	k, ok := hidkey.ByName(strings.ToLower(string(c)))
	if !ok {
		return
	}
	*steps = append(*steps,
		hidkey.HotkeyStep{KeyID: int(k), Action: hidkey.Down},
		hidkey.HotkeyStep{KeyID: int(k), Action: hidkey.Up},
	)
}

func compileCommand(command string) ([]hidkey.HotkeyStep, error) {
	var wait *int
	body := command
	if idx := strings.LastIndex(command, ":"); idx >= 0 {
		body = command[:idx]
		if ms, err := strconv.Atoi(strings.TrimSpace(command[idx+1:])); err == nil {
			wait = &ms
		}
	}

	fields := strings.SplitN(strings.TrimSpace(body), " ", 2)
	keyName := strings.ToLower(strings.TrimSpace(fields[0]))
	actionName := "PRESS"
	if len(fields) == 2 {
		actionName = strings.TrimSpace(fields[1])
	}

	k, ok := hidkey.ByName(keyName)
	if !ok {
		return nil, fmt.Errorf("%w: %w", hidkey.ErrMalformedHotkey, hidkey.UnknownKeyError{Ref: keyName})
	}
	action := hidkey.ParseActionType(actionName)

	if action == hidkey.Press {
		return []hidkey.HotkeyStep{
			{KeyID: int(k), Action: hidkey.Down},
			{KeyID: int(k), Action: hidkey.Up, WaitMs: wait},
		}, nil
	}
	return []hidkey.HotkeyStep{{KeyID: int(k), Action: action, WaitMs: wait}}, nil
}
