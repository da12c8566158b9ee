package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/tasklist/internal/core/styles"
)

const defaultFieldWidth = 40

// TextField is a single-line inline text input with optional validation.
type TextField struct {
	input      textinput.Model
	focused    bool
	validation FieldValidation
}

// NewTextField creates a new single-line text input field. An optional
// validation is applied by Validate and bounds the input length.
func NewTextField(placeholder, defaultVal string, validation ...FieldValidation) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(defaultFieldWidth)

	f := &TextField{}
	if len(validation) > 0 {
		f.validation = validation[0]
		if f.validation.MaxLength > 0 {
			ti.CharLimit = f.validation.MaxLength
		}
	}

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Focused.Text = lipgloss.NewStyle().Foreground(styles.ColorForeground)
	ti.SetStyles(inputStyles)

	f.input = ti
	return f
}

func (f *TextField) Update(msg tea.Msg) (*TextField, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string { return f.input.View() }

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetWidth sets the visible width of the input.
func (f *TextField) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	f.input.SetWidth(w)
}

// SetValue replaces the current value and moves the cursor to the end.
func (f *TextField) SetValue(s string) {
	f.input.SetValue(s)
	f.input.CursorEnd()
}

// Reset clears the value.
func (f *TextField) Reset() { f.input.Reset() }

// Normalized returns the value after the validation's transformations.
func (f *TextField) Normalized() string { return f.validation.Normalize(f.input.Value()) }

// Validate checks the current value and returns a message or "".
func (f *TextField) Validate() string { return f.validation.ValidateText(f.input.Value()) }

// Valid reports whether the current value passes validation.
func (f *TextField) Valid() bool { return f.Validate() == "" }

func (f *TextField) Focused() bool { return f.focused }
func (f *TextField) Value() string { return f.input.Value() }
