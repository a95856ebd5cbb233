package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Less    key.Binding
	More    key.Binding
	Open    key.Binding
	Edit    key.Binding
	Save    key.Binding
	Theme   key.Binding
	Surface key.Binding
	Rotate  key.Binding
	Zoom    key.Binding
	Toggle  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "move")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Less:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/l", "adjust")),
		More:    key.NewBinding(key.WithKeys("right", "l")),
		Open:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Surface: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "3d")),
		Rotate:  key.NewBinding(key.WithKeys("W", "A", "S", "D"), key.WithHelp("WASD", "rotate")),
		Zoom:    key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "zoom")),
		Toggle:  key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "toggle zero")),
		Back:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// forView enables the bindings that only make sense for some views.
func (k keyMap) forView(view string) keyMap {
	k.Surface.SetEnabled(view == "landscape")
	k.Rotate.SetEnabled(view == "landscape")
	k.Zoom.SetEnabled(view == "landscape")
	k.Toggle.SetEnabled(view == "mix")
	return k
}

// menuHelp is the key map as shown on the view menu.
type menuHelp struct{ k keyMap }

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Open, h.k.Theme, h.k.Quit}
}

func (h menuHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Less, k.Edit, k.Save, k.Theme, k.Toggle, k.Surface, k.Rotate, k.Zoom, k.Back}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
