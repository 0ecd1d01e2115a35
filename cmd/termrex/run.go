package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shvbsle/termrex/internal/config"
	"github.com/shvbsle/termrex/internal/game"
	"github.com/shvbsle/termrex/internal/scores"
	"github.com/shvbsle/termrex/internal/terminal"
	"github.com/shvbsle/termrex/internal/tui"
)

type runFlags struct {
	asciiOnly      bool
	unicode        bool
	noObstacleDino bool
	keyRepeatMs    int
	skipIntro      bool
	seed           uint64
}

func (f *runFlags) register(flags *pflag.FlagSet) {
	flags.BoolVar(&f.asciiOnly, "ascii-only", false, "use the plain ASCII art")
	flags.BoolVar(&f.unicode, "unicode", false, "use the Unicode block art (default)")
	flags.BoolVar(&f.noObstacleDino, "no-obstacle-dino", false, "cacti only, no pterodactyls")
	flags.IntVar(&f.keyRepeatMs, "keyrepeat", config.DefaultKeyRepeatMs,
		fmt.Sprintf("ms the down key stays held without release events (%d-%d)", config.MinKeyRepeatMs, config.MaxKeyRepeatMs))
	flags.BoolVar(&f.skipIntro, "skip-intro", false, "start running right away")
	flags.Uint64Var(&f.seed, "seed", 0, "fix the obstacle sequence (0 is random)")
}

// apply overrides cfg with the flags the user set.
func (f *runFlags) apply(flags *pflag.FlagSet, cfg *config.GameConfig) error {
	if flags.Changed("ascii-only") && flags.Changed("unicode") && f.asciiOnly && f.unicode {
		return errors.New("--ascii-only and --unicode are mutually exclusive")
	}
	if flags.Changed("ascii-only") {
		cfg.ASCIIOnly = f.asciiOnly
	}
	if flags.Changed("unicode") && f.unicode {
		cfg.ASCIIOnly = false
	}
	if flags.Changed("no-obstacle-dino") {
		cfg.ObstacleDino = !f.noObstacleDino
	}
	if flags.Changed("keyrepeat") {
		cfg.KeyRepeatMs = f.keyRepeatMs
	}
	if flags.Changed("skip-intro") {
		cfg.SkipIntro = f.skipIntro
	}
	return nil
}

// NewRunCommand builds the command that plays a game on the local terminal.
func NewRunCommand(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"play"},
		Short:   "Play on this terminal",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if err := f.apply(cmd.Flags(), &cfg.Game); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			store, err := openStore()
			if err != nil {
				return err
			}
			return runGame(cmd.Context(), cfg.Game, store, f.seed)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

// runGame plays on the local terminal until the player quits.
func runGame(ctx context.Context, cfg config.GameConfig, store *scores.Store, seed uint64) error {
	term, err := terminal.OpenLocal()
	if err != nil {
		return err
	}
	defer func() {
		_ = term.Close()
	}()

	settings := game.SettingsFrom(cfg)
	settings.Version = tui.Version
	settings.Seed = seed
	return game.New(term, store, settings).Run(ctx)
}
