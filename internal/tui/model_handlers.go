package tui

import (
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/tasklist/internal/core/task"
	"github.com/colonyops/tasklist/internal/tui/components"
)

// --- Window and ticks ---

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	if m.form != nil {
		m.form.SetWidth(m.layout().contentWidth)
	}
	if m.helpDialog != nil {
		m.helpDialog.SetWidth(m.helpWidth())
	}
	if m.focus == focusEdit {
		m.row(m.editing).SetWidth(m.layout().contentWidth)
	}

	if m.mounted {
		return m, nil
	}

	// First render: fade the header in and stagger the rows (or the
	// placeholder) into view.
	m.mounted = true
	m.anims.Mount()
	tasks := m.store.Tasks()
	for i, t := range tasks {
		m.anims.Enter(t.ID, m.anims.Stagger(i))
	}
	if len(tasks) == 0 {
		m.anims.Enter(placeholderKey, 0)
	}
	return m, m.anims.StartTicking()
}

func (m Model) handleAnimTick() (tea.Model, tea.Cmd) {
	res := m.anims.Tick()

	if len(res.Exited) > 0 {
		m.dropGhosts(res.Exited)
	}
	if res.FormClosed && !m.formOpen {
		m.form = nil
	}

	return m, m.anims.Continue()
}

func (m Model) handleToastTick() (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

// handleFallthrough forwards other messages, such as cursor blinks, to the
// focused input.
func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusForm:
		if m.form != nil {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
	case focusEdit:
		if t, ok := m.store.Get(m.editing); ok {
			_, cmd := m.row(m.editing).Update(msg, t)
			return m, cmd
		}
	}
	return m, nil
}

// --- Keys ---

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.helpDialog != nil {
		if key.Matches(msg, m.keys.Help, m.keys.Cancel) {
			m.helpDialog = nil
		}
		return m, nil
	}

	switch m.focus {
	case focusForm:
		return m.updateForm(msg)
	case focusEdit:
		return m.updateEditingRow(msg)
	}

	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", m.keys.HelpSections(), mouseHelpNotes, m.helpWidth())
		return m, nil
	case key.Matches(msg, m.keys.AddTask):
		cmd := m.toggleFormOpen()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.setCursor(m.cursor - 1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.setCursor(m.cursor + 1)
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.toastController.Dismiss()
		return m, nil
	}

	t, ok := m.focusedTask()
	if !ok {
		return m, nil
	}
	item := m.row(t.ID)

	switch {
	case key.Matches(msg, m.keys.Toggle):
		item.Toggle()
	case key.Matches(msg, m.keys.Delete):
		item.Delete()
	case key.Matches(msg, m.keys.Edit):
		cmd := m.startEdit(t.ID)
		return m, cmd
	default:
		return m, nil
	}

	cmd := m.applyRowAction(item)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	resultCmd := m.consumeForm()
	return m, tea.Batch(cmd, resultCmd)
}

func (m Model) updateEditingRow(msg tea.Msg) (tea.Model, tea.Cmd) {
	t, ok := m.store.Get(m.editing)
	if !ok {
		cmd := m.finishEdit()
		return m, cmd
	}

	item, cmd := m.row(t.ID).Update(msg, t)
	if item.Editing() {
		return m, cmd
	}

	focusCmd := m.finishEdit()
	actionCmd := m.applyRowAction(item)
	return m, tea.Batch(cmd, focusCmd, actionCmd)
}

// --- Mouse ---

func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	l := m.layout()
	mouse := msg.Mouse()

	m.buttonHovered = l.onButton(mouse.X, mouse.Y)

	if e, ok := m.entryAt(l, mouse.Y); ok && !e.ghost {
		m.setCursor(e.index)
	}
	return m, nil
}

func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || m.helpDialog != nil {
		return m, nil
	}

	l := m.layout()

	if l.onButton(mouse.X, mouse.Y) {
		cmd := m.toggleFormOpen()
		return m, cmd
	}

	if m.formOpen && m.form != nil && l.onForm(mouse.Y) {
		return m.clickForm(mouse.X-l.contentLeft, mouse.Y-l.formY)
	}

	e, ok := m.entryAt(l, mouse.Y)
	if !ok || e.ghost {
		return m, nil
	}

	m.setCursor(e.index)
	item := m.row(e.task.ID)

	switch item.HitTest(mouse.X-l.contentLeft, l.contentWidth) {
	case RowZoneCheckbox:
		item.Toggle()
	case RowZoneEdit:
		cmd := m.startEdit(e.task.ID)
		return m, cmd
	case RowZoneDelete:
		item.Delete()
	case RowZoneSave:
		item.SaveEdit(e.task)
		focusCmd := m.finishEdit()
		actionCmd := m.applyRowAction(item)
		return m, tea.Batch(focusCmd, actionCmd)
	case RowZoneCancel:
		item.CancelEdit(e.task)
		cmd := m.finishEdit()
		return m, cmd
	default:
		return m, nil
	}

	cmd := m.applyRowAction(item)
	return m, cmd
}

func (m Model) clickForm(x, y int) (tea.Model, tea.Cmd) {
	switch m.form.HitTest(x, y) {
	case FormZoneSubmit:
		m.form.Submit()
	case FormZoneCancel:
		m.form.Cancel()
	case FormZoneInput:
		if m.focus == focusEdit {
			return m, nil
		}
		m.focus = focusForm
		return m, m.form.Focus()
	default:
		return m, nil
	}
	cmd := m.consumeForm()
	return m, cmd
}

// --- Operations ---

// toggleFormOpen opens a fresh form or closes the open one.
func (m *Model) toggleFormOpen() tea.Cmd {
	if m.formOpen {
		return m.closeForm()
	}
	return m.openForm()
}

func (m *Model) openForm() tea.Cmd {
	var cancelEdit tea.Cmd
	if m.focus == focusEdit {
		if t, ok := m.store.Get(m.editing); ok {
			m.row(t.ID).CancelEdit(t)
		}
		cancelEdit = m.finishEdit()
	}

	m.form = NewTaskForm(m.cfg.TUI.MaxTitleLength, m.layout().contentWidth)
	m.formOpen = true
	m.focus = focusForm
	m.anims.OpenForm()

	m.log.Debug().Msg("task form opened")
	return tea.Batch(cancelEdit, m.form.Init(), m.anims.StartTicking())
}

func (m *Model) closeForm() tea.Cmd {
	m.formOpen = false
	if m.form != nil {
		m.form.Blur()
	}
	if m.focus == focusForm {
		m.focus = focusList
	}

	m.anims.CloseForm()
	if !m.anims.Form().Visible() {
		m.form = nil
	}

	m.log.Debug().Msg("task form closed")
	return m.anims.StartTicking()
}

// consumeForm applies the result the form recorded, if any.
func (m *Model) consumeForm() tea.Cmd {
	if m.form == nil {
		return nil
	}
	if title, ok := m.form.Submitted(); ok {
		return m.addTask(title)
	}
	if m.form.Cancelled() {
		return m.closeForm()
	}
	return nil
}

func (m *Model) addTask(title string) tea.Cmd {
	t, ok := m.store.Add(title)
	if !ok {
		return nil
	}

	closeCmd := m.closeForm()
	m.shiftGhosts()
	m.anims.Forget(placeholderKey)
	m.anims.Enter(t.ID, 0)
	m.setCursor(0)

	m.bus.Infof("Added %q", t.Title)
	return tea.Batch(closeCmd, m.anims.StartTicking(), m.ensureToastTick())
}

// applyRowAction applies the result a row recorded, if any.
func (m *Model) applyRowAction(item *TaskItem) tea.Cmd {
	action, title := item.TakeAction()

	switch action {
	case RowToggle:
		m.store.Toggle(item.ID())
	case RowDelete:
		return m.deleteTask(item.ID())
	case RowRename:
		if t, ok := m.store.Rename(item.ID(), title); ok {
			m.bus.Infof("Renamed to %q", t.Title)
			return m.ensureToastTick()
		}
	}
	return nil
}

func (m *Model) deleteTask(id task.ID) tea.Cmd {
	line := m.entryLine(id)
	t, ok := m.store.Delete(id)
	if !ok {
		return nil
	}

	var cmds []tea.Cmd
	if m.editing == id {
		cmds = append(cmds, m.finishEdit())
	}

	m.pruneRows()
	if m.anims.Exit(id) {
		m.ghosts = append(m.ghosts, ghost{task: t, line: line})
	}
	m.setCursor(m.cursor)
	m.enterPlaceholderIfEmpty()

	m.bus.Infof("Deleted %q", t.Title)
	cmds = append(cmds, m.anims.StartTicking(), m.ensureToastTick())
	return tea.Batch(cmds...)
}

// dropGhosts removes ghosts whose exit animation finished. Entries below a
// removed ghost move up one line.
func (m *Model) dropGhosts(ids []task.ID) {
	var removed []int
	kept := make([]ghost, 0, len(m.ghosts))
	for _, g := range m.ghosts {
		if slices.Contains(ids, g.task.ID) {
			removed = append(removed, g.line)
			continue
		}
		kept = append(kept, g)
	}

	for i := range kept {
		for _, line := range removed {
			if line < kept[i].line {
				kept[i].line--
			}
		}
	}
	m.ghosts = kept
	m.enterPlaceholderIfEmpty()
}

// shiftGhosts moves every ghost down one line to make room for a task
// prepended above them.
func (m *Model) shiftGhosts() {
	shifted := make([]ghost, len(m.ghosts))
	for i, g := range m.ghosts {
		g.line++
		shifted[i] = g
	}
	m.ghosts = shifted
}

// enterPlaceholderIfEmpty fades the placeholder in once nothing is left to
// show.
func (m *Model) enterPlaceholderIfEmpty() {
	if m.store.Len() == 0 && len(m.ghosts) == 0 {
		m.anims.Enter(placeholderKey, 0)
	}
}

func (m *Model) startEdit(id task.ID) tea.Cmd {
	t, ok := m.store.Get(id)
	if !ok {
		return nil
	}

	if m.focus == focusEdit && m.editing != id {
		if prev, ok := m.store.Get(m.editing); ok {
			m.row(prev.ID).CancelEdit(prev)
		}
	}
	if m.form != nil {
		m.form.Blur()
	}

	m.editing = id
	m.focus = focusEdit
	item := m.row(id)
	item.SetWidth(m.layout().contentWidth)
	return item.StartEdit(t)
}

// finishEdit returns focus to the form when it is open, otherwise to the list.
func (m *Model) finishEdit() tea.Cmd {
	m.editing = 0
	if m.formOpen && m.form != nil {
		m.focus = focusForm
		return m.form.Focus()
	}
	m.focus = focusList
	return nil
}
