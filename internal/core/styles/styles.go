// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	// Page chrome.
	HeaderTitleStyle    lipgloss.Style
	HeaderSubtitleStyle lipgloss.Style
	SectionTitleStyle   lipgloss.Style
	CardStyle           lipgloss.Style
	AddButtonStyle      lipgloss.Style
	AddButtonHoverStyle lipgloss.Style
	StatusStyle         lipgloss.Style

	// Task rows.
	TaskTitleStyle     lipgloss.Style
	TaskDoneTitleStyle lipgloss.Style
	TaskTimeStyle      lipgloss.Style
	CheckboxStyle      lipgloss.Style
	CheckboxDoneStyle  lipgloss.Style
	RowHoverStyle      lipgloss.Style
	RowControlStyle    lipgloss.Style
	RowDeleteStyle     lipgloss.Style
	PlaceholderStyle   lipgloss.Style

	// Modal dialogs.
	ModalStyle     lipgloss.Style
	ModalHelpStyle lipgloss.Style

	// Forms.
	FormSubmitStyle      lipgloss.Style
	FormSubmitMutedStyle lipgloss.Style

	// Toasts.
	ToastStyle     lipgloss.Style
	ToastInfoStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	HeaderTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HeaderSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SectionTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	AddButtonStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Padding(0, 1)
	AddButtonHoverStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1)
	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TaskTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TaskDoneTitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)
	TaskTimeStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	CheckboxStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	CheckboxDoneStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	RowHoverStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	RowControlStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	RowDeleteStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	FormSubmitStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormSubmitMutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Faint(true)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = ToastStyle.
		BorderForeground(ColorPrimary).
		Foreground(ColorForeground)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// Blend mixes from toward to by t in [0,1] in Lab space. t is clamped. If
// either color cannot be converted, from is returned unchanged.
func Blend(from, to color.Color, t float64) color.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}

	a, ok := colorful.MakeColor(from)
	if !ok {
		return from
	}
	b, ok := colorful.MakeColor(to)
	if !ok {
		return from
	}

	return a.BlendLab(b, t).Clamped()
}

// Fade returns c blended toward the background by 1-opacity. An opacity of
// 1 returns c unchanged.
func Fade(c color.Color, opacity float64) color.Color {
	return Blend(ColorBackground, c, opacity)
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Document.Margin = nil
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = secondary
	cfg.Table.Color = fg

	return cfg
}
