package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/tasklist/pkg/tuitest"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"a adds", tuitest.KeyPress('a'), km.AddTask},
		{"n adds", tuitest.KeyPress('n'), km.AddTask},
		{"space toggles", tuitest.KeySpace(), km.Toggle},
		{"x toggles", tuitest.KeyPress('x'), km.Toggle},
		{"e edits", tuitest.KeyPress('e'), km.Edit},
		{"enter edits", tuitest.KeyEnter(), km.Edit},
		{"d deletes", tuitest.KeyPress('d'), km.Delete},
		{"delete deletes", tuitest.KeyDelete(), km.Delete},
		{"down arrow", tuitest.KeyDown(), km.Down},
		{"j moves down", tuitest.KeyPress('j'), km.Down},
		{"up arrow", tuitest.KeyUp(), km.Up},
		{"k moves up", tuitest.KeyPress('k'), km.Up},
		{"question mark opens help", tuitest.KeyPress('?'), km.Help},
		{"q quits", tuitest.KeyPress('q'), km.Quit},
		{"ctrl+c force quits", tuitest.KeyCtrlC(), km.ForceQuit},
		{"esc cancels", tuitest.KeyEsc(), km.Cancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestDefaultKeyMap_QuitIsNotForceQuit(t *testing.T) {
	km := DefaultKeyMap()
	assert.False(t, key.Matches(tuitest.KeyCtrlC(), km.Quit))
	assert.False(t, key.Matches(tuitest.KeyPress('q'), km.ForceQuit))
}

func TestKeyMap_HelpSections(t *testing.T) {
	sections := DefaultKeyMap().HelpSections()

	titles := make([]string, 0, len(sections))
	total := 0
	for _, s := range sections {
		titles = append(titles, s.Title)
		total += len(s.Bindings)
	}

	assert.Equal(t, []string{"Navigation", "Tasks", "Task form and editing", "General"}, titles)
	assert.Equal(t, 11, total)
}

func TestHelpKeyMaps(t *testing.T) {
	km := DefaultKeyMap()

	list := listHelp{km: km}
	assert.Len(t, list.ShortHelp(), 6)
	assert.Len(t, list.FullHelp(), 3)

	input := inputHelp{km: km}
	assert.Equal(t, []key.Binding{km.Submit, km.Cancel}, input.ShortHelp())
}
