package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/internal/tui/components/form"
)

const (
	taskFormPlaceholder = "What needs to be done?"
	taskFormHeight      = 3 // rounded border around a single input line
)

// FormZone identifies a clickable part of the task form.
type FormZone int

const (
	FormZoneNone FormZone = iota
	FormZoneInput
	FormZoneSubmit
	FormZoneCancel
)

// TaskForm is the transient title input for a new task. A fresh instance is
// created every time the form opens; it owns only the draft title.
type TaskForm struct {
	draft     *form.TextField
	width     int
	submitted bool
	cancelled bool
	title     string
}

// NewTaskForm creates an empty form rendered width cells wide. Titles longer
// than maxLen runes cannot be typed.
func NewTaskForm(maxLen, width int) *TaskForm {
	f := &TaskForm{
		draft: form.NewTextField(taskFormPlaceholder, "", form.FieldValidation{
			Required:  true,
			Trim:      true,
			MaxLength: maxLen,
		}),
	}
	f.SetWidth(width)
	return f
}

// Init focuses the input. It is called once, when the form opens.
func (f *TaskForm) Init() tea.Cmd {
	return f.draft.Focus()
}

// SetWidth sets the outer width of the form.
func (f *TaskForm) SetWidth(width int) {
	f.width = max(width, 12)
	f.draft.SetWidth(f.inputWidth() - 1)
}

// Focus gives the input keyboard focus again.
func (f *TaskForm) Focus() tea.Cmd { return f.draft.Focus() }

// Blur removes keyboard focus from the input.
func (f *TaskForm) Blur() { f.draft.Blur() }

// Focused reports whether the input has keyboard focus.
func (f *TaskForm) Focused() bool { return f.draft.Focused() }

// Draft returns the current, untrimmed input.
func (f *TaskForm) Draft() string { return f.draft.Value() }

// CanSubmit reports whether the draft is non-blank.
func (f *TaskForm) CanSubmit() bool { return f.draft.Valid() }

// Update handles input while the form is focused.
func (f *TaskForm) Update(msg tea.Msg) (*TaskForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			f.Submit()
			return f, nil
		case "esc":
			f.Cancel()
			return f, nil
		}
	}

	_, cmd := f.draft.Update(msg)
	return f, cmd
}

// Submit records an add result when the draft is non-blank and clears the
// draft. A blank draft is ignored.
func (f *TaskForm) Submit() {
	if !f.CanSubmit() {
		return
	}
	f.title = f.draft.Value()
	f.submitted = true
	f.draft.Reset()
}

// Cancel records a cancel result and discards the draft.
func (f *TaskForm) Cancel() {
	f.cancelled = true
	f.draft.Reset()
}

// Submitted returns the submitted title, once. The parent reads it after
// delegating a message.
func (f *TaskForm) Submitted() (string, bool) {
	if !f.submitted {
		return "", false
	}
	f.submitted = false
	return f.title, true
}

// Cancelled reports whether the user asked to close the form.
func (f *TaskForm) Cancelled() bool { return f.cancelled }

func (f *TaskForm) submitIcon() string {
	if f.CanSubmit() {
		return styles.FormSubmitStyle.Render(styles.CurrentIcons.Send)
	}
	return styles.FormSubmitMutedStyle.Render(styles.CurrentIcons.Send)
}

func (f *TaskForm) cancelIcon() string {
	return styles.RowControlStyle.Render(styles.CurrentIcons.Cancel)
}

// iconsWidth is the width of " <send> <cancel>".
func (f *TaskForm) iconsWidth() int {
	return 1 + ansi.StringWidth(styles.CurrentIcons.Send) + 1 + ansi.StringWidth(styles.CurrentIcons.Cancel)
}

// inputWidth is the width left for the input inside border and padding.
func (f *TaskForm) inputWidth() int {
	return max(f.width-4-f.iconsWidth(), 4)
}

// View renders the form as a rounded box with submit and cancel icons.
func (f *TaskForm) View() string {
	return f.render(f.draft.View(), 1)
}

// FadedView renders the form at the given opacity for the open and close
// transition. The input is drawn as plain text.
func (f *TaskForm) FadedView(opacity float64) string {
	text := f.draft.Value()
	fg := styles.ColorForeground
	if text == "" {
		text = taskFormPlaceholder
		fg = styles.ColorMuted
	}
	input := lipgloss.NewStyle().Foreground(styles.Fade(fg, opacity)).Render(text)
	return f.render(input, opacity)
}

func (f *TaskForm) render(input string, opacity float64) string {
	w := f.inputWidth()
	input = ansi.Truncate(input, w, "")
	input += strings.Repeat(" ", max(w-ansi.StringWidth(input), 0))

	submit, cancel := f.submitIcon(), f.cancelIcon()
	border := styles.ColorPrimary
	if !f.Focused() {
		border = styles.ColorSurface
	}
	if opacity < 1 {
		submit = lipgloss.NewStyle().Foreground(styles.Fade(styles.ColorMuted, opacity)).Render(styles.CurrentIcons.Send)
		cancel = lipgloss.NewStyle().Foreground(styles.Fade(styles.ColorMuted, opacity)).Render(styles.CurrentIcons.Cancel)
		border = styles.Fade(border, opacity)
	}

	line := input + " " + submit + " " + cancel
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(line)
}

// HitTest maps a cell relative to the form's top-left corner to a zone.
func (f *TaskForm) HitTest(x, y int) FormZone {
	if y != 1 {
		return FormZoneNone
	}

	inputStart := 2
	submitStart := inputStart + f.inputWidth() + 1
	cancelStart := submitStart + ansi.StringWidth(styles.CurrentIcons.Send) + 1

	switch {
	case x >= inputStart && x < submitStart-1:
		return FormZoneInput
	case x >= submitStart && x < cancelStart-1:
		return FormZoneSubmit
	case x >= cancelStart && x < cancelStart+ansi.StringWidth(styles.CurrentIcons.Cancel):
		return FormZoneCancel
	}
	return FormZoneNone
}
