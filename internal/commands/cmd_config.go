package commands

import (
	"context"
	"fmt"
	"image/color"
	"slices"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/urfave/cli/v3"

	initcmd "github.com/colonyops/tasklist/internal/commands/init"
	"github.com/colonyops/tasklist/internal/core/config"
	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/pkg/iojson"
)

type ConfigCmd struct {
	flags *Flags

	// flags
	yes            bool
	force          bool
	showFormat     string
	validateFormat string
}

// NewConfigCmd creates the config command group.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Create a config file with an interactive wizard",
				UsageText: "tasklist config init [options]",
				Description: `Prompts for theme, clock, icons, animations and toasts, then writes the
config file. An existing file is backed up to <path>.bak.

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing configuration.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "accept defaults without prompting",
						Destination: &cmd.yes,
					},
					&cli.BoolFlag{
						Name:        "force",
						Aliases:     []string{"f"},
						Usage:       "overwrite existing configuration",
						Destination: &cmd.force,
					},
				},
				Action: cmd.runInit,
			},
			{
				Name:      "show",
				Usage:     "Print the effective configuration",
				UsageText: "tasklist config show [--format yaml|toml]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (yaml, toml)",
						Value:       string(config.FormatYAML),
						Destination: &cmd.showFormat,
					},
				},
				Action: cmd.runShow,
			},
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "tasklist config validate [options]",
				Description: "Loads the configuration file and reports every invalid field.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.validateFormat,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:          "themes",
				Usage:         "List built-in themes or preview one",
				UsageText:     "tasklist config themes [name]",
				ShellComplete: ThemeNameCompleter(),
				Action:        cmd.runThemes,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runInit(ctx context.Context, c *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		Yes:        cmd.yes,
		Force:      cmd.force,
		Out:        c.Root().Writer,
	})
	return wizard.Run(ctx)
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	format := config.Format(strings.ToLower(cmd.showFormat))
	if !slices.Contains([]config.Format{config.FormatYAML, config.FormatTOML}, format) {
		return fmt.Errorf("unknown format %q (want yaml or toml)", cmd.showFormat)
	}

	data, err := config.Encode(*cmd.flags.Config, format)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = c.Root().Writer.Write(data)
	return err
}

// validationResult is the JSON shape printed by config validate.
type validationResult struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	result := validationResult{Path: cmd.flags.ConfigPath, Valid: true}
	if _, err := config.Load(cmd.flags.ConfigPath); err != nil {
		result.Valid = false
		result.Error = err.Error()
	}

	if cmd.validateFormat == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result); err != nil {
			return err
		}
	} else {
		out := c.Root().Writer
		if result.Valid {
			_, _ = fmt.Fprintln(out, styles.CommandHeaderStyle.Render("Configuration is valid"))
		} else {
			_, _ = fmt.Fprintln(out, lipgloss.NewStyle().Foreground(styles.ColorError).Render(result.Error))
		}
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigCmd) runThemes(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if name := c.Args().First(); name != "" {
		palette, ok := styles.GetPalette(name)
		if !ok {
			return fmt.Errorf("unknown theme %q", name)
		}
		_, _ = fmt.Fprintln(out, styles.CommandHeaderStyle.Render(name))
		_, _ = fmt.Fprintln(out, RenderSwatches(palette))
		return nil
	}

	current := cmd.flags.Config.TUI.Theme
	for _, name := range styles.ThemeNames() {
		marker := "  "
		if name == current {
			marker = "* "
		}
		_, _ = fmt.Fprintln(out, marker+styles.CommandStyle.Render(name))
	}
	return nil
}

// RenderSwatches draws one labelled colour block per palette role.
func RenderSwatches(p styles.Palette) string {
	roles := []struct {
		name  string
		value color.Color
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"foreground", p.Foreground},
		{"muted", p.Muted},
		{"background", p.Background},
		{"surface", p.Surface},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
	}

	lines := make([]string, 0, len(roles))
	for _, r := range roles {
		block := lipgloss.NewStyle().Background(r.value).Render("    ")
		lines = append(lines, fmt.Sprintf("%s %s", block, r.name))
	}
	return strings.Join(lines, "\n")
}
