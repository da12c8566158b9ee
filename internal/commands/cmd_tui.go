package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tasklist/internal/core/logging"
	"github.com/colonyops/tasklist/internal/core/task"
	"github.com/colonyops/tasklist/internal/profiler"
	"github.com/colonyops/tasklist/internal/tui"
	"github.com/colonyops/tasklist/internal/tui/notify"
	"github.com/colonyops/tasklist/pkg/utils"
)

// deferredLogLimit bounds the stderr logs held while the TUI runs.
const deferredLogLimit = 1 << 20

// ErrNotTerminal is returned when the TUI is started without a terminal.
var ErrNotTerminal = errors.New("tasklist needs an interactive terminal")

type TuiCmd struct {
	flags *Flags

	// flags
	noAnimations bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-animations",
			Usage:       "render every transition instantly",
			Sources:     cli.EnvVars("TASKLIST_NO_ANIMATIONS"),
			Destination: &cmd.noAnimations,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TASKLIST_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	cfg := *cmd.flags.Config
	if cmd.noAnimations {
		disabled := false
		cfg.TUI.Animations.Enabled = &disabled
	}

	// Logs bound for stderr would draw over the alternate screen, so hold
	// them until the program exits.
	if cmd.flags.LogFile == LogToStderr {
		deferred := utils.NewDeferredWriter(deferredLogLimit)
		prev := log.Logger
		log.Logger = log.Logger.Output(deferred)
		defer func() {
			log.Logger = prev
			if n := deferred.Dropped(); n > 0 {
				log.Warn().Int("dropped", n).Int("limit_bytes", deferredLogLimit).Msg("log buffer overflowed while the TUI was running")
			}
			if err := deferred.Flush(os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "flush logs: %v\n", err)
			}
		}()
	}

	// Start profiler server if enabled
	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, logging.Component("profiler"))
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	store := task.NewStore(logging.Component("tasks"))
	m := tui.New(&cfg, tui.Options{
		Store: store,
		Bus:   notify.NewBus(),
	})

	log.Info().
		Str("theme", cfg.TUI.Theme).
		Bool("animations", cfg.TUI.Animations.IsEnabled()).
		Msg("starting tui")

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	open, done := store.List().Counts()
	log.Info().Int("open", open).Int("done", done).Msg("tui exited")
	return nil
}
