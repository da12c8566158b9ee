package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/tasklist/pkg/tuitest"
)

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("enter title", "")
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("enter title", "hello")
		assert.Equal(t, "hello", f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("", "")
		assert.False(t, f.Focused())

		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("focus returns a cmd", func(t *testing.T) {
		f := NewTextField("", "")
		cmd := f.Focus()
		assert.NotNil(t, cmd)
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("", "")
		field, cmd := f.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Same(t, f, field)
		assert.Empty(t, field.Value())
	})

	t.Run("typing updates value when focused", func(t *testing.T) {
		f := NewTextField("", "")
		f.Focus()
		for _, msg := range tuitest.Type("hi there") {
			f.Update(msg)
		}
		assert.Equal(t, "hi there", f.Value())
	})

	t.Run("max length blocks further input", func(t *testing.T) {
		f := NewTextField("", "", FieldValidation{MaxLength: 3})
		f.Focus()
		for _, msg := range tuitest.Type("abcdef") {
			f.Update(msg)
		}
		assert.Equal(t, "abc", f.Value())
	})

	t.Run("validate uses trimmed value", func(t *testing.T) {
		f := NewTextField("", "   ", FieldValidation{Required: true, Trim: true})
		assert.False(t, f.Valid())
		assert.Equal(t, "required", f.Validate())

		f.SetValue("  walk dog ")
		assert.True(t, f.Valid())
		assert.Equal(t, "walk dog", f.Normalized())
	})

	t.Run("reset clears value", func(t *testing.T) {
		f := NewTextField("", "draft")
		f.Reset()
		assert.Empty(t, f.Value())
	})

	t.Run("view renders the value inline", func(t *testing.T) {
		f := NewTextField("", "inline")
		view := tuitest.StripANSI(f.View())
		assert.Contains(t, view, "inline")
		assert.NotContains(t, view, "┃")
	})

	t.Run("view shows the placeholder when empty", func(t *testing.T) {
		f := NewTextField("What needs doing", "")
		assert.Contains(t, tuitest.StripANSI(f.View()), "What needs doing")
	})

	t.Run("enter does not change value", func(t *testing.T) {
		f := NewTextField("", "keep")
		f.Focus()
		f.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		assert.Equal(t, "keep", f.Value())
	})
}
