// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/tasklist/internal/core/styles"
)

// HelpDialogSection groups related key bindings under a title.
type HelpDialogSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpDialog displays all available keyboard shortcuts and mouse actions,
// rendered as markdown. The rendered view is cached until the width changes.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
	notes    []string
	width    int

	view    string
	renders int
}

// NewHelpDialog creates a new help dialog with the given sections. Notes are
// rendered as a bullet list after the sections.
func NewHelpDialog(title string, sections []HelpDialogSection, notes []string, width int) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
		notes:    notes,
		width:    width,
	}
}

// SetWidth changes the dialog width. The cached view is dropped only when
// the width actually changes.
func (h *HelpDialog) SetWidth(width int) {
	if width == h.width {
		return
	}
	h.width = width
	h.view = ""
}

// Markdown returns the markdown source of the dialog body.
func (h *HelpDialog) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", h.title)
	for _, section := range h.sections {
		if section.Title != "" {
			fmt.Fprintf(&b, "## %s\n\n", section.Title)
		}
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, binding := range section.Bindings {
			if !binding.Enabled() {
				continue
			}
			help := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", help.Key, help.Desc)
		}
		b.WriteString("\n")
	}

	for _, note := range h.notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}

	return b.String()
}

func (h *HelpDialog) render(width int) string {
	h.renders++
	src := h.Markdown()

	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw help")
		return src
	}

	rendered, err := renderer.Render(src)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render help markdown, showing raw help")
		return src
	}

	return strings.Trim(rendered, "\n")
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	if h.view != "" {
		return h.view
	}

	contentWidth := max(h.width-8, 20)
	content := lipgloss.JoinVertical(lipgloss.Left,
		h.render(contentWidth),
		styles.ModalHelpStyle.Render("esc/? close"),
	)

	h.view = styles.ModalStyle.Render(content)
	return h.view
}

// Overlay renders the help dialog as a layer over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	centerX := max((width-modalW)/2, 0)
	centerY := max((height-modalH)/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}
