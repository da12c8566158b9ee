// Package initcmd implements the interactive config init wizard.
package initcmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/tasklist/internal/core/config"
	"github.com/colonyops/tasklist/internal/core/styles"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
	Out        io.Writer
}

// Answers holds the values collected by the prompts.
type Answers struct {
	Theme      string
	Clock      config.ClockFormat
	Icons      config.IconSet
	Animations bool
	Toasts     bool
}

// DefaultAnswers returns the answers matching config.DefaultConfig.
func DefaultAnswers() Answers {
	def := config.DefaultConfig()
	return Answers{
		Theme:      def.TUI.Theme,
		Clock:      def.TUI.Clock,
		Icons:      def.TUI.Icons,
		Animations: def.TUI.Animations.IsEnabled(),
		Toasts:     def.TUI.ToastsEnabled(),
	}
}

// Config builds the config written by the wizard.
func (a Answers) Config() config.Config {
	cfg := config.DefaultConfig()
	cfg.TUI.Theme = a.Theme
	cfg.TUI.Clock = a.Clock
	cfg.TUI.Icons = a.Icons

	animations, toasts := a.Animations, a.Toasts
	cfg.TUI.Animations.Enabled = &animations
	cfg.TUI.Toasts = &toasts
	return cfg
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts   WizardOptions
	prompt func(*Answers) error
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Wizard{opts: opts, prompt: promptUser}
}

// Run executes the wizard.
func (w *Wizard) Run(_ context.Context) error {
	// Check for existing config
	if configFileExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			w.printf("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := w.prompt(&answers); err != nil {
			return err
		}
	}

	cfg := answers.Config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	// Backup existing config if needed
	backupPath, err := BackupExisting(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		w.printf("Backed up config to: %s", backupPath)
	}

	if err := config.Save(w.opts.ConfigPath, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	w.printf("Created config: %s", w.opts.ConfigPath)
	return nil
}

func (w *Wizard) printf(format string, args ...any) {
	_, _ = fmt.Fprintln(w.opts.Out, styles.CommandStyle.Render(fmt.Sprintf(format, args...)))
}

func promptUser(a *Answers) error {
	themes := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themes = append(themes, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&a.Theme),
			huh.NewSelect[config.ClockFormat]().
				Title("Clock").
				Description("How completion times are shown").
				Options(
					huh.NewOption("Follow the locale", config.ClockAuto),
					huh.NewOption("12-hour (3:04 PM)", config.Clock12h),
					huh.NewOption("24-hour (15:04)", config.Clock24h),
				).
				Value(&a.Clock),
			huh.NewSelect[config.IconSet]().
				Title("Icons").
				Options(
					huh.NewOption("Unicode", config.IconsUnicode),
					huh.NewOption("Nerd Font", config.IconsNerd),
					huh.NewOption("ASCII", config.IconsASCII),
				).
				Value(&a.Icons),
			huh.NewConfirm().
				Title("Animate transitions?").
				Value(&a.Animations),
			huh.NewConfirm().
				Title("Show toast notifications?").
				Value(&a.Toasts),
		),
	)

	return form.Run()
}
