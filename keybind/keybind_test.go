package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Key
		str  string
	}{
		{"q", Key{Code: tcell.KeyRune, Rune: 'q'}, "q"},
		{"Ctrl+C", Key{Mod: tcell.ModCtrl, Code: tcell.KeyRune, Rune: 'c'}, "ctrl+c"},
		{"control+alt+X", Key{Mod: tcell.ModCtrl | tcell.ModAlt, Code: tcell.KeyRune, Rune: 'x'}, "ctrl+alt+x"},
		{"shift+a", Key{Code: tcell.KeyRune, Rune: 'A'}, "A"},
		{"Escape", Key{Code: tcell.KeyEscape}, "esc"},
		{"return", Key{Code: tcell.KeyEnter}, "enter"},
		{"backtab", Key{Mod: tcell.ModShift, Code: tcell.KeyTab}, "shift+tab"},
		{"+", Key{Code: tcell.KeyRune, Rune: '+'}, "+"},
		{"ctrl++", Key{Mod: tcell.ModCtrl, Code: tcell.KeyRune, Rune: '+'}, "ctrl++"},
		{" f5 ", Key{Code: tcell.KeyF5}, "f5"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.str {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got.String(), tt.str)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", " ", "hyper+q", "ctrl+", "qq", "ctrl+nosuchkey"} {
		if k, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) = %v, want an error", in, k)
		}
	}
}

func TestMatches(t *testing.T) {
	quit := NewKeybind(WithKeys("q", "ctrl+c", "esc"), WithHelp("q", "quit"))
	zoomIn := NewKeybind(WithKeys("+", "="), WithHelp("+", "zoom in"))
	next := NewKeybind(WithKeys("tab"))
	prev := NewKeybind(WithKeys("shift+tab"))

	tests := []struct {
		name  string
		event *tcell.EventKey
		bind  Keybind
		want  bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), quit, true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), quit, false},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), quit, true},
		{"named key", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), quit, true},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModShift), zoomIn, true},
		{"tab is not ctrl+i", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), next, true},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), prev, true},
		{"nil event", nil, quit, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.event, tt.bind); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeybind_SetKeys(t *testing.T) {
	k := NewKeybind(WithKeys("z"), WithHelp("z", "zoom tool"))
	if err := k.SetKeys("ctrl+z", "F2"); err != nil {
		t.Fatalf("SetKeys() error = %v", err)
	}
	if got := k.Help(); got.Key != "ctrl+z" || got.Desc != "zoom tool" {
		t.Errorf("Help() = %+v, want the first new key", got)
	}
	if Matches(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), k) {
		t.Error("old key still matches")
	}
	if !Matches(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), k) {
		t.Error("new key does not match")
	}

	if err := k.SetKeys("ctrl+z", "bogus"); err == nil {
		t.Error("SetKeys with an invalid key did not fail")
	}
	if err := k.SetKeys(); err == nil {
		t.Error("SetKeys without keys did not fail")
	}
	if len(k.Keys()) != 2 {
		t.Errorf("failed SetKeys changed the keys to %v", k.Keys())
	}
}

func TestKeybind_Enabled(t *testing.T) {
	k := NewKeybind(WithKeys("z"))
	event := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)

	k.SetEnabled(false)
	if k.Enabled() || Matches(event, k) {
		t.Error("disabled keybind matched")
	}
	k.SetEnabled(true)
	if !Matches(event, k) {
		t.Error("enabled keybind did not match")
	}
}
