package config

import (
	"fmt"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tasklist/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateTUI(),
		c.validateAnimations(),
	)
}

func (c *Config) validateTUI() error {
	var errs criterio.FieldErrorsBuilder

	if c.TUI.Theme == "" {
		errs = errs.Append("tui.theme", fmt.Errorf("cannot be empty"))
	} else if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q", c.TUI.Theme))
	}

	if !slices.Contains([]ClockFormat{ClockAuto, Clock12h, Clock24h}, c.TUI.Clock) {
		errs = errs.Append("tui.clock", fmt.Errorf("must be one of auto, 12h, 24h; got %q", c.TUI.Clock))
	}

	if !slices.Contains([]IconSet{IconsUnicode, IconsNerd, IconsASCII}, c.TUI.Icons) {
		errs = errs.Append("tui.icons", fmt.Errorf("must be one of unicode, nerd, ascii; got %q", c.TUI.Icons))
	}

	if c.TUI.MaxTitleLength < 1 {
		errs = errs.Append("tui.max_title_length", fmt.Errorf("must be at least 1"))
	}

	return errs.ToError()
}

func (c *Config) validateAnimations() error {
	var errs criterio.FieldErrorsBuilder
	anim := c.TUI.Animations

	if anim.FPS < 0 || anim.FPS > 240 {
		errs = errs.Append("tui.animations.fps", fmt.Errorf("must be between 0 and 240"))
	}
	if anim.Stagger < 0 {
		errs = errs.Append("tui.animations.stagger", fmt.Errorf("cannot be negative"))
	}
	if anim.Exit < 0 {
		errs = errs.Append("tui.animations.exit", fmt.Errorf("cannot be negative"))
	}
	if anim.Form < 0 {
		errs = errs.Append("tui.animations.form", fmt.Errorf("cannot be negative"))
	}

	return errs.ToError()
}
