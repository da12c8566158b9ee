package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/tasklist/internal/tui/components"
)

// KeyMap holds the bindings for the list, form and edit contexts.
type KeyMap struct {
	AddTask   key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddTask:   key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a/n", "add task")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys("space", "x"), key.WithHelp("space/x", "toggle complete")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d/del", "delete")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// listHelp is the help.KeyMap shown while browsing the list.
type listHelp struct{ km KeyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.km.AddTask, h.km.Toggle, h.km.Edit, h.km.Delete, h.km.Help, h.km.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.km.Up, h.km.Down},
		{h.km.AddTask, h.km.Toggle, h.km.Edit, h.km.Delete},
		{h.km.Help, h.km.Quit},
	}
}

// inputHelp is the help.KeyMap shown while the form or a row editor has focus.
type inputHelp struct{ km KeyMap }

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.km.Submit, h.km.Cancel}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// HelpSections returns the sections rendered by the help dialog.
func (km KeyMap) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{
			Title:    "Navigation",
			Bindings: []key.Binding{km.Up, km.Down},
		},
		{
			Title:    "Tasks",
			Bindings: []key.Binding{km.AddTask, km.Toggle, km.Edit, km.Delete},
		},
		{
			Title:    "Task form and editing",
			Bindings: []key.Binding{km.Submit, km.Cancel},
		},
		{
			Title:    "General",
			Bindings: []key.Binding{km.Help, km.Quit, km.ForceQuit},
		},
	}
}

// mouseHelpNotes describe the pointer actions shown in the help dialog.
var mouseHelpNotes = []string{
	"Hover a task to reveal its edit and delete controls.",
	"Click the circle to mark a task as complete or incomplete.",
	"Click **Add Task** to open or close the form.",
}
