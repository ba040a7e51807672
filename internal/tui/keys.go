package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Copy          key.Binding
	ForceCopy     key.Binding
	Generate      key.Binding
	ForceGenerate key.Binding
	Activate      key.Binding
	Increase      key.Binding
	Decrease      key.Binding
	StepUp        key.Binding
	StepDown      key.Binding
	Min           key.Binding
	Max           key.Binding
	Next          key.Binding
	Prev          key.Binding
	Leave         key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy css"),
		),
		ForceCopy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy css"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "new gradient"),
		),
		ForceGenerate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "new gradient"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "copy / press button"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "angle +1"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "angle -1"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "angle +15"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "angle -15"),
		),
		Min: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "0°"),
		),
		Max: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "360°"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave colour input"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Generate, k.Decrease, k.Increase, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.ForceCopy, k.Activate},
		{k.Generate, k.ForceGenerate},
		{k.Decrease, k.Increase, k.StepDown, k.StepUp, k.Min, k.Max},
		{k.Next, k.Prev, k.Leave, k.Help, k.Quit},
	}
}
