package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/internal/core/task"
	"github.com/colonyops/tasklist/internal/tui/components/form"
)

const (
	rowMargin   = 2 // cursor marker and a space
	saveLabel   = "Save"
	cancelLabel = "Cancel"
)

// RowAction is the result a TaskItem records for its parent.
type RowAction int

const (
	RowNone RowAction = iota
	RowToggle
	RowDelete
	RowRename
)

// RowZone identifies a clickable part of a task row.
type RowZone int

const (
	RowZoneNone RowZone = iota
	RowZoneCheckbox
	RowZoneTitle
	RowZoneEdit
	RowZoneDelete
	RowZoneSave
	RowZoneCancel
)

// ToggleLabel is the accessible name of the toggle affordance for t.
func ToggleLabel(t task.Task) string {
	if t.Completed {
		return "Mark as incomplete"
	}
	return "Mark as complete"
}

// TaskItem holds the transient per-row state of one task: hover, edit mode
// and the edit draft. The task itself is passed in read-only on every call.
type TaskItem struct {
	id      task.ID
	hovered bool
	editing bool
	draft   *form.TextField
	maxLen  int
	width   int

	action   RowAction
	renameTo string
}

// NewTaskItem creates the row state for the task with the given id.
func NewTaskItem(id task.ID, maxLen int) *TaskItem {
	return &TaskItem{id: id, maxLen: maxLen}
}

// ID returns the id of the task this row renders.
func (r *TaskItem) ID() task.ID { return r.id }

// Hovered reports whether the pointer or cursor is on the row.
func (r *TaskItem) Hovered() bool { return r.hovered }

// SetHovered updates the hover state.
func (r *TaskItem) SetHovered(v bool) { r.hovered = v }

// SetWidth records the rendered row width and sizes the edit input to fit.
func (r *TaskItem) SetWidth(width int) {
	r.width = width
	if r.draft != nil {
		r.draft.SetWidth(layoutRow(width).editInput - 1)
	}
}

// Editing reports whether the row is in edit mode.
func (r *TaskItem) Editing() bool { return r.editing }

// Draft returns the edit draft, or "" outside edit mode.
func (r *TaskItem) Draft() string {
	if r.draft == nil {
		return ""
	}
	return r.draft.Value()
}

// ShowControls reports whether the edit and delete icons are visible.
func (r *TaskItem) ShowControls() bool { return r.hovered && !r.editing }

// Toggle records a toggle result.
func (r *TaskItem) Toggle() { r.action = RowToggle }

// Delete records a delete result.
func (r *TaskItem) Delete() { r.action = RowDelete }

// StartEdit enters edit mode with the draft seeded from the title.
func (r *TaskItem) StartEdit(t task.Task) tea.Cmd {
	r.editing = true
	r.draft = form.NewTextField("", t.Title, form.FieldValidation{
		Trim:      true,
		MaxLength: r.maxLen,
	})
	if r.width > 0 {
		r.draft.SetWidth(layoutRow(r.width).editInput - 1)
	}
	return r.draft.Focus()
}

// SaveEdit leaves edit mode, recording a rename when the trimmed draft is
// non-empty and differs from the title.
func (r *TaskItem) SaveEdit(t task.Task) {
	if !r.editing {
		return
	}
	title := r.draft.Normalized()
	if title != "" && title != t.Title {
		r.action = RowRename
		r.renameTo = title
	}
	r.stopEdit()
}

// CancelEdit restores the draft and leaves edit mode without a result.
func (r *TaskItem) CancelEdit(t task.Task) {
	if !r.editing {
		return
	}
	r.draft.SetValue(t.Title)
	r.stopEdit()
}

func (r *TaskItem) stopEdit() {
	r.editing = false
	r.draft.Blur()
}

// Update handles input while the row is being edited.
func (r *TaskItem) Update(msg tea.Msg, t task.Task) (*TaskItem, tea.Cmd) {
	if !r.editing {
		return r, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			r.SaveEdit(t)
			return r, nil
		case "esc":
			r.CancelEdit(t)
			return r, nil
		}
	}

	_, cmd := r.draft.Update(msg)
	return r, cmd
}

// TakeAction returns the recorded result and clears it. The rename title is
// set only for RowRename.
func (r *TaskItem) TakeAction() (RowAction, string) {
	action, title := r.action, r.renameTo
	r.action, r.renameTo = RowNone, ""
	return action, title
}

// rowLayout holds the column positions of a rendered row.
type rowLayout struct {
	checkbox  int
	title     int
	edit      int
	delete    int
	save      int
	cancel    int
	editInput int
}

func layoutRow(width int) rowLayout {
	icons := styles.CurrentIcons
	l := rowLayout{checkbox: rowMargin}
	l.title = l.checkbox + ansi.StringWidth(icons.Unchecked) + 1

	// Controls are right aligned and their space is always reserved.
	l.delete = width - ansi.StringWidth(icons.Delete)
	l.edit = l.delete - 1 - ansi.StringWidth(icons.Edit)

	l.cancel = width - len(cancelLabel)
	l.save = l.cancel - 1 - len(saveLabel)
	l.editInput = max(l.save-1-l.title, 1)
	return l
}

// HitTest maps a column within the row to a zone.
func (r *TaskItem) HitTest(x, width int) RowZone {
	l := layoutRow(width)
	icons := styles.CurrentIcons

	switch {
	case x >= l.checkbox && x < l.checkbox+ansi.StringWidth(icons.Unchecked):
		return RowZoneCheckbox
	case r.editing && x >= l.save && x < l.save+len(saveLabel):
		return RowZoneSave
	case r.editing && x >= l.cancel && x < l.cancel+len(cancelLabel):
		return RowZoneCancel
	case r.editing:
		return RowZoneTitle
	case r.ShowControls() && x >= l.edit && x < l.edit+ansi.StringWidth(icons.Edit):
		return RowZoneEdit
	case r.ShowControls() && x >= l.delete && x < l.delete+ansi.StringWidth(icons.Delete):
		return RowZoneDelete
	case x >= l.title && x < l.edit:
		return RowZoneTitle
	}
	return RowZoneNone
}

// rowPalette is the set of styles a row renders with, faded as needed.
type rowPalette struct {
	marker, checkbox, title, time, control, danger, muted lipgloss.Style
}

func newRowPalette(t task.Task, opacity float64) rowPalette {
	p := rowPalette{
		marker:   styles.RowHoverStyle,
		checkbox: styles.CheckboxStyle,
		title:    styles.TaskTitleStyle,
		time:     styles.TaskTimeStyle,
		control:  styles.RowControlStyle,
		danger:   styles.RowDeleteStyle,
		muted:    styles.StatusStyle,
	}
	if t.Completed {
		p.checkbox = styles.CheckboxDoneStyle
		p.title = styles.TaskDoneTitleStyle
	}
	if opacity < 1 {
		for _, st := range []*lipgloss.Style{&p.marker, &p.checkbox, &p.title, &p.time, &p.control, &p.danger, &p.muted} {
			*st = st.Foreground(styles.Fade(st.GetForeground(), opacity))
		}
	}
	return p
}

// View renders the row on a single line exactly width cells wide. The
// offset shifts the row horizontally; opacity fades it toward the
// background. timeLayout formats the completion time.
func (r *TaskItem) View(t task.Task, width int, timeLayout string, offset int, opacity float64) string {
	l := layoutRow(width)
	p := newRowPalette(t, opacity)
	icons := styles.CurrentIcons

	var b strings.Builder

	if r.hovered {
		b.WriteString(p.marker.Render("›"))
		b.WriteString(" ")
	} else {
		b.WriteString(strings.Repeat(" ", rowMargin))
	}

	box := icons.Unchecked
	if t.Completed {
		box = icons.Checked
	}
	b.WriteString(p.checkbox.Render(box))
	b.WriteString(strings.Repeat(" ", max(l.title-l.checkbox-ansi.StringWidth(box), 1)))

	if r.editing {
		b.WriteString(fit(r.draft.View(), l.editInput))
		b.WriteString(" ")
		b.WriteString(p.control.Render(saveLabel))
		b.WriteString(" ")
		b.WriteString(p.muted.Render(cancelLabel))
		return shift(fit(b.String(), width), offset, width)
	}

	label := ""
	if t.HasCompletedAt() {
		label = t.CompletedAt.Format(timeLayout)
	}

	titleWidth := l.edit - 1 - l.title
	if label != "" {
		titleWidth -= ansi.StringWidth(label) + 1
	}
	title := ansi.Truncate(t.Title, max(titleWidth, 1), "…")

	text := p.title.Render(title)
	if label != "" {
		text += " " + p.time.Render(label)
	}
	b.WriteString(fit(text, l.edit-1-l.title))
	b.WriteString(" ")

	if r.ShowControls() {
		b.WriteString(p.control.Render(icons.Edit))
		b.WriteString(" ")
		b.WriteString(p.danger.Render(icons.Delete))
	}

	return shift(fit(b.String(), width), offset, width)
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// shift moves a width-wide line right (offset > 0) or left (offset < 0),
// keeping it width cells wide.
func shift(s string, offset, width int) string {
	switch {
	case offset > 0:
		return fit(strings.Repeat(" ", offset)+s, width)
	case offset < 0:
		return fit(ansi.TruncateLeft(s, -offset, ""), width)
	}
	return s
}
