package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/internal/core/task"
)

const (
	headerTitle    = "Task Manager"
	headerSubtitle = "Organize your day, one task at a time"
	sectionTitle   = "My Tasks"
	addButtonLabel = "Add Task"

	pageMargin   = 2
	maxCardWidth = 80
	headerLines  = 4 // blank, title, subtitle, blank
	footerLines  = 3 // blank, status, help
)

// screenLayout holds the positions used both to render and to hit-test.
type screenLayout struct {
	width        int
	height       int
	contentLeft  int
	contentWidth int
	titleY       int
	buttonX      int
	buttonW      int
	formY        int
	formLines    int
	formFull     bool
	rowsY        int
	rowsCap      int
}

func (l screenLayout) onButton(x, y int) bool {
	return y == l.titleY && x >= l.buttonX && x < l.buttonX+l.buttonW
}

func (l screenLayout) onForm(y int) bool {
	return l.formFull && y >= l.formY && y < l.formY+l.formLines
}

func addButtonText() string {
	return styles.CurrentIcons.Add + " " + addButtonLabel
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

func (m Model) layout() screenLayout {
	w, h := m.size()

	cardWidth := min(w-2*pageMargin, maxCardWidth)
	l := screenLayout{
		width:        w,
		height:       h,
		contentLeft:  pageMargin + 2, // border and padding
		contentWidth: max(cardWidth-4, 20),
		titleY:       headerLines + 1, // below the card's top border
	}

	l.buttonW = ansi.StringWidth(addButtonText()) + 2 // button padding
	l.buttonX = l.contentLeft + l.contentWidth - l.buttonW

	l.formY = l.titleY + 1
	if m.form != nil {
		ft := m.anims.Form()
		if ft.Visible() {
			l.formLines = ft.VisibleLines(taskFormHeight)
			l.formFull = m.formOpen && ft.Progress() >= 1
		}
	}

	l.rowsY = l.formY + l.formLines + 1 // divider
	l.rowsCap = max(h-l.rowsY-1-footerLines, 1)
	return l
}

// listEntry is one rendered row: a live task or a ghost of a deleted one.
type listEntry struct {
	task  task.Task
	ghost bool
	index int // position in the store, -1 for ghosts
}

func (m Model) entries() []listEntry {
	tasks := m.store.Tasks()
	entries := make([]listEntry, 0, len(tasks)+len(m.ghosts))
	for i, t := range tasks {
		entries = append(entries, listEntry{task: t, index: i})
	}

	// Inserting top to bottom puts every ghost back on the line it left.
	ghosts := slices.Clone(m.ghosts)
	slices.SortStableFunc(ghosts, func(a, b ghost) int { return cmp.Compare(a.line, b.line) })
	for _, g := range ghosts {
		at := min(g.line, len(entries))
		entries = slices.Insert(entries, at, listEntry{task: g.task, ghost: true, index: -1})
	}
	return entries
}

// entryLine returns the line of the live task with the given id among all
// entries, or the end of the list when it is not rendered.
func (m Model) entryLine(id task.ID) int {
	entries := m.entries()
	for i, e := range entries {
		if !e.ghost && e.task.ID == id {
			return i
		}
	}
	return len(entries)
}

// visibleEntries returns the window of entries that fits the layout, keeping
// the cursor row in view.
func (m Model) visibleEntries(l screenLayout) []listEntry {
	entries := m.entries()
	if len(entries) <= l.rowsCap {
		return entries
	}

	cursorLine := 0
	for i, e := range entries {
		if !e.ghost && e.index == m.cursor {
			cursorLine = i
			break
		}
	}

	start := max(cursorLine-l.rowsCap+1, 0)
	return entries[start : start+l.rowsCap]
}

// entryAt returns the entry rendered on screen line y.
func (m Model) entryAt(l screenLayout, y int) (listEntry, bool) {
	i := y - l.rowsY
	visible := m.visibleEntries(l)
	if i < 0 || i >= len(visible) {
		return listEntry{}, false
	}
	return visible[i], true
}

// helpWidth is the width of the help dialog for the current screen.
func (m Model) helpWidth() int {
	w, _ := m.size()
	return min(w-4, 72)
}

// View renders the screen.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// render draws the full screen with overlays.
func (m Model) render() string {
	l := m.layout()
	content := m.renderMain(l)

	if m.helpDialog != nil {
		content = m.helpDialog.Overlay(content, l.width, l.height)
	}
	return m.toastView.Overlay(content, l.width, l.height)
}

func (m Model) renderMain(l screenLayout) string {
	indent := strings.Repeat(" ", pageMargin)
	lines := make([]string, 0, l.height)

	lines = append(lines, m.renderHeader(indent)...)

	card := styles.CardStyle.Render(strings.Join(m.renderCard(l), "\n"))
	for _, line := range strings.Split(card, "\n") {
		lines = append(lines, indent+line)
	}

	lines = append(lines, "", indent+m.renderStatus(), indent+m.renderHelp())

	for len(lines) < l.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHeader(indent string) []string {
	opacity := m.anims.HeaderOpacity()
	title := styles.HeaderTitleStyle
	subtitle := styles.HeaderSubtitleStyle
	if opacity < 1 {
		title = title.Foreground(styles.Fade(styles.ColorPrimary, opacity))
		subtitle = subtitle.Foreground(styles.Fade(styles.ColorMuted, opacity))
	}

	return []string{
		"",
		indent + title.Render(headerTitle),
		indent + subtitle.Render(headerSubtitle),
		"",
	}
}

// renderCard returns the card's content lines, each contentWidth wide.
func (m Model) renderCard(l screenLayout) []string {
	var lines []string

	buttonStyle := styles.AddButtonStyle
	if m.buttonHovered {
		buttonStyle = styles.AddButtonHoverStyle
	}
	button := buttonStyle.Render(addButtonText())
	title := styles.SectionTitleStyle.Render(sectionTitle)
	gap := max(l.contentWidth-ansi.StringWidth(title)-ansi.StringWidth(button), 1)
	lines = append(lines, fit(title+strings.Repeat(" ", gap)+button, l.contentWidth))

	if l.formLines > 0 {
		var formView string
		if l.formFull {
			formView = m.form.View()
		} else {
			formView = m.form.FadedView(m.anims.Form().Progress())
		}
		formRows := strings.Split(formView, "\n")
		for i := 0; i < l.formLines && i < len(formRows); i++ {
			lines = append(lines, fit(formRows[i], l.contentWidth))
		}
	}

	lines = append(lines, styles.DividerStyle.Render(strings.Repeat("─", l.contentWidth)))

	visible := m.visibleEntries(l)
	if len(visible) == 0 {
		return append(lines, m.renderPlaceholder(l.contentWidth))
	}

	for _, e := range visible {
		lines = append(lines, m.renderEntry(e, l.contentWidth))
	}
	return lines
}

func (m Model) renderEntry(e listEntry, width int) string {
	offset, opacity := 0, 1.0
	if a, ok := m.anims.Row(e.task.ID); ok {
		offset, opacity = a.Offset(), a.Opacity()
	}

	item := NewTaskItem(e.task.ID, m.cfg.TUI.MaxTitleLength)
	if !e.ghost {
		item = m.row(e.task.ID)
	}
	return item.View(e.task, width, m.timeLayout, offset, opacity)
}

func (m Model) renderPlaceholder(width int) string {
	style := styles.PlaceholderStyle
	if a, ok := m.anims.Row(placeholderKey); ok {
		style = style.Foreground(styles.Fade(styles.ColorMuted, a.Opacity()))
	}
	return fit(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(placeholderText)), width)
}

// renderStatus describes the focused row's toggle action and the counts.
func (m Model) renderStatus() string {
	open, done := m.store.List().Counts()
	counts := fmt.Sprintf("%d open · %d done", open, done)

	t, ok := m.focusedTask()
	if !ok || m.focus != focusList {
		return styles.StatusStyle.Render(counts)
	}
	return styles.StatusStyle.Render(fmt.Sprintf("%s: %s  ·  %s", m.keys.Toggle.Help().Key, ToggleLabel(t), counts))
}

func (m Model) renderHelp() string {
	if m.focus == focusList {
		return m.help.View(listHelp{km: m.keys})
	}
	return m.help.View(inputHelp{km: m.keys})
}
