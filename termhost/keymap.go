package termhost

import (
	"fmt"

	"github.com/ayn2op/grapheditor/keybind"
)

// KeyMap holds the application key bindings.
type KeyMap struct {
	Quit       keybind.Keybind
	ZoomIn     keybind.Keybind
	ZoomOut    keybind.Keybind
	ZoomReset  keybind.Keybind
	SelectTool keybind.Keybind
	ZoomTool   keybind.Keybind
	Unselect   keybind.Keybind
	Help       keybind.Keybind
}

func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:       keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
		ZoomIn:     keybind.NewKeybind(keybind.WithKeys("+", "="), keybind.WithHelp("+", "zoom in")),
		ZoomOut:    keybind.NewKeybind(keybind.WithKeys("-"), keybind.WithHelp("-", "zoom out")),
		ZoomReset:  keybind.NewKeybind(keybind.WithKeys("0"), keybind.WithHelp("0", "reset zoom")),
		SelectTool: keybind.NewKeybind(keybind.WithKeys("s"), keybind.WithHelp("s", "select tool")),
		ZoomTool:   keybind.NewKeybind(keybind.WithKeys("z"), keybind.WithHelp("z", "zoom tool")),
		Unselect:   keybind.NewKeybind(keybind.WithKeys("esc"), keybind.WithHelp("esc", "unselect")),
		Help:       keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
	}
}

// Binding returns the keybind with the given name, or nil. Names are
// "quit", "zoom-in", "zoom-out", "zoom-reset", "select-tool", "zoom-tool",
// "unselect" and "help".
func (k *KeyMap) Binding(name string) *keybind.Keybind {
	switch name {
	case "quit":
		return &k.Quit
	case "zoom-in":
		return &k.ZoomIn
	case "zoom-out":
		return &k.ZoomOut
	case "zoom-reset":
		return &k.ZoomReset
	case "select-tool":
		return &k.SelectTool
	case "zoom-tool":
		return &k.ZoomTool
	case "unselect":
		return &k.Unselect
	case "help":
		return &k.Help
	}
	return nil
}

// Rebind replaces the keys of the named binding. The help shows the first
// new key.
func (k *KeyMap) Rebind(name string, keys ...string) error {
	kb := k.Binding(name)
	if kb == nil {
		return fmt.Errorf("unknown key binding %q", name)
	}
	if err := kb.SetKeys(keys...); err != nil {
		return fmt.Errorf("failed to rebind %s: %w", name, err)
	}
	return nil
}

func (k *KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.SelectTool, k.ZoomTool, k.Help, k.Quit}
}

func (k *KeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.SelectTool, k.ZoomTool, k.Unselect},
		{k.ZoomIn, k.ZoomOut, k.ZoomReset},
		{k.Help, k.Quit},
	}
}
