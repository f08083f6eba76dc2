// ABOUTME: Closed key alphabet (KeyType) and ParseKey for raw terminal input.
// ABOUTME: Handles printable runes, control bytes, and delegates escape sequences to the legacy table.

package key

import (
	"unicode"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // For KeyRune only
}

// KeyType enumerates every key the engine distinguishes. Anything else
// decodes to KeyUnknown.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return / Ctrl+J: newline
	KeyTab                      // Tab: focus toggle
	KeyBackspace                // Backspace / DEL (0x7F) / Ctrl+H
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C: quit
	KeyCtrlR                    // Ctrl+R: execute
	KeyUnknown                  // Unrecognized input
)

// Execute and FocusToggle are the dedicated keys of the controller.
const (
	Execute     = KeyCtrlR
	FocusToggle = KeyTab
)

// Of returns a non-rune Key of type t.
func Of(t KeyType) Key {
	return Key{Type: t}
}

// Rune returns a printable rune Key.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Printable reports whether k inserts a character.
func (k Key) Printable() bool {
	return k.Type == KeyRune && unicode.IsPrint(k.Rune)
}

// ParseKey parses one complete raw input sequence into a Key.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		if k, ok := legacySequences[data]; ok {
			return k
		}
		return Key{Type: KeyUnknown}
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Rune(r)
}

func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d, b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f, b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x03:
		return Key{Type: KeyCtrlC}
	case b == 0x12:
		return Key{Type: KeyCtrlR}
	case b >= 0x20 && b <= 0x7e:
		return Rune(rune(b))
	}
	return Key{Type: KeyUnknown}
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlR:     "Ctrl+R",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable label for debug logging.
func (k Key) String() string {
	if k.Type == KeyRune {
		return string(k.Rune)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
