// Package keybind parses key strings like "q", "ctrl+c" or "shift+tab" and
// matches terminal key events against them.
package keybind

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key is one normalized key press. Printable keys have Code tcell.KeyRune
// and carry their rune; shift is folded into the rune for them.
type Key struct {
	Mod  tcell.ModMask
	Code tcell.Key
	Rune rune
}

var names = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"pgup":      tcell.KeyPgUp,
	"pageup":    tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"pagedown":  tcell.KeyPgDn,
}

func init() {
	for i := range 12 {
		names[fmt.Sprintf("f%d", i+1)] = tcell.KeyF1 + tcell.Key(i)
	}
}

var mods = []struct {
	name string
	mask tcell.ModMask
}{
	{"ctrl", tcell.ModCtrl},
	{"alt", tcell.ModAlt},
	{"shift", tcell.ModShift},
	{"meta", tcell.ModMeta},
}

// Parse reads a key string. Modifiers come first and are joined with '+';
// "+" and "ctrl++" name the plus key itself.
func Parse(s string) (Key, error) {
	s = strings.TrimSpace(s)
	primary := s
	var prefix string
	if i := strings.LastIndex(s, "+"); i >= 0 && i < len(s)-1 {
		prefix, primary = s[:i], s[i+1:]
	} else if len(s) > 1 && strings.HasSuffix(s, "++") {
		prefix, primary = s[:len(s)-2], "+"
	}
	if primary == "" {
		return Key{}, fmt.Errorf("empty key in %q", s)
	}

	var k Key
	if prefix != "" {
		for _, part := range strings.Split(prefix, "+") {
			mask, ok := modByName(strings.ToLower(strings.TrimSpace(part)))
			if !ok {
				return Key{}, fmt.Errorf("unknown modifier %q in %q", part, s)
			}
			k.Mod |= mask
		}
	}

	lower := strings.ToLower(primary)
	if lower == "backtab" {
		lower, k.Mod = "tab", k.Mod|tcell.ModShift
	}
	if code, ok := names[lower]; ok {
		k.Code = code
		return k, nil
	}

	r, size := utf8.DecodeRuneInString(primary)
	if size != len(primary) || !unicode.IsPrint(r) {
		return Key{}, fmt.Errorf("unknown key %q", s)
	}
	k.Code, k.Rune = tcell.KeyRune, r
	return k.foldRune(), nil
}

// MustParse is like Parse but panics on invalid key strings.
func MustParse(s string) Key {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

func modByName(name string) (tcell.ModMask, bool) {
	if name == "control" {
		name = "ctrl"
	}
	for _, m := range mods {
		if m.name == name {
			return m.mask, true
		}
	}
	return 0, false
}

// foldRune applies shift to letters and lowercases runes typed with other
// modifiers, so "shift+a" is "A" and "ctrl+C" is "ctrl+c".
func (k Key) foldRune() Key {
	if k.Code != tcell.KeyRune {
		return k
	}
	if k.Mod&tcell.ModShift != 0 {
		k.Mod &^= tcell.ModShift
		k.Rune = unicode.ToUpper(k.Rune)
	}
	if k.Mod != 0 {
		k.Rune = unicode.ToLower(k.Rune)
	}
	return k
}

// FromEvent returns the key pressed in event.
func FromEvent(event *tcell.EventKey) Key {
	code, mod := event.Key(), event.Modifiers()
	switch code {
	case tcell.KeyRune:
		return Key{Mod: mod, Code: tcell.KeyRune, Rune: event.Rune()}.foldRune()
	case tcell.KeyBacktab:
		return Key{Mod: mod | tcell.ModShift, Code: tcell.KeyTab}
	case tcell.KeyBackspace2:
		return Key{Mod: mod, Code: tcell.KeyBackspace}
	// Tab, enter and backspace share codes with ctrl+i, ctrl+m and ctrl+h
	// and are read as the named keys.
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace:
		return Key{Mod: mod, Code: code}
	}
	if code >= tcell.KeyCtrlA && code <= tcell.KeyCtrlZ {
		return Key{Mod: mod | tcell.ModCtrl, Code: tcell.KeyRune, Rune: rune('a' + code - tcell.KeyCtrlA)}
	}
	return Key{Mod: mod, Code: code}
}

// String formats the key the way Parse reads it.
func (k Key) String() string {
	var b strings.Builder
	for _, m := range mods {
		if k.Mod&m.mask != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	if k.Code == tcell.KeyRune {
		b.WriteRune(k.Rune)
		return b.String()
	}
	for _, name := range []string{"esc", "enter", "tab", "backspace", "delete", "insert", "home", "end", "up", "down", "left", "right", "pgup", "pgdn"} {
		if names[name] == k.Code {
			b.WriteString(name)
			return b.String()
		}
	}
	if k.Code >= tcell.KeyF1 && k.Code <= tcell.KeyF12 {
		fmt.Fprintf(&b, "f%d", k.Code-tcell.KeyF1+1)
		return b.String()
	}
	fmt.Fprintf(&b, "key%d", k.Code)
	return b.String()
}

// Help is the key label and description shown for a keybind.
type Help struct {
	Key  string
	Desc string
}

// Keybind is a set of equivalent keys plus the help shown for them. A
// disabled keybind matches nothing and is left out of help.
type Keybind struct {
	keys     []Key
	help     Help
	disabled bool
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys. It panics on invalid key strings; use SetKeys for
// user input.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = k.keys[:0]
		for _, s := range keys {
			k.keys = append(k.keys, MustParse(s))
		}
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

func (k Keybind) Keys() []Key {
	return k.keys
}

// SetKeys replaces the keys with the parsed key strings and relabels the
// help with the first of them. On error the keybind is left unchanged.
func (k *Keybind) SetKeys(keys ...string) error {
	if len(keys) == 0 {
		return errors.New("no keys given")
	}
	parsed := make([]Key, 0, len(keys))
	for _, s := range keys {
		key, err := Parse(s)
		if err != nil {
			return err
		}
		parsed = append(parsed, key)
	}
	k.keys = parsed
	k.SetHelp(parsed[0].String(), k.help.Desc)
	return nil
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

func (k Keybind) Enabled() bool {
	return !k.disabled
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event is one of the keys of an enabled keybind.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := FromEvent(event)
	for _, kb := range keybinds {
		if kb.Enabled() && slices.Contains(kb.keys, key) {
			return true
		}
	}
	return false
}
