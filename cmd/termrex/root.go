package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shvbsle/termrex/internal/config"
	"github.com/shvbsle/termrex/internal/gallery"
	"github.com/shvbsle/termrex/internal/log"
	"github.com/shvbsle/termrex/internal/plugins"
	"github.com/shvbsle/termrex/internal/scores"
	"github.com/shvbsle/termrex/internal/tui"
)

// app is the state shared by every subcommand once the persistent flags
// are parsed.
type app struct {
	loader     *config.Loader
	configFile string
	cfg        config.Config
	logFile    *os.File
}

// NewRootCommand builds the root CLI command. Without a subcommand it opens
// the launcher.
func NewRootCommand(loader *config.Loader) *cobra.Command {
	a := &app{loader: loader}

	cmd := &cobra.Command{
		Use:           "termrex",
		Short:         "A terminal T-rex runner",
		Version:       tui.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.launcher(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file path")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	if err := loader.Viper().BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
		panic(err)
	}

	cmd.AddCommand(NewRunCommand(a))
	cmd.AddCommand(NewServeCommand(a))
	cmd.AddCommand(NewScoresCommand(a))
	cmd.AddCommand(NewGalleryCommand(a))
	cmd.AddCommand(NewSpritegenCommand())
	cmd.AddCommand(NewConfigCommand(a))

	return cmd
}

// setup loads the configuration and opens the log file.
func (a *app) setup() error {
	if a.configFile != "" {
		a.loader.SetConfigFile(a.configFile)
	}
	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	f, err := setupLogging(log.ParseLevel(cfg.Log.Level), cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not setup logging: %v\n", err)
		return nil
	}
	a.logFile = f
	log.G().Info("termrex starting", "version", tui.Version, "config", a.loader.ConfigFileUsed())
	return nil
}

func (a *app) close() {
	if a.logFile == nil {
		return
	}
	log.G().Info("termrex exiting")
	if err := a.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not close log file: %v\n", err)
	}
	a.logFile = nil
}

// openStore loads the high score table from the XDG data directory.
func openStore() (*scores.Store, error) {
	path, err := scores.DefaultPath()
	if err != nil {
		return nil, err
	}
	return scores.Load(path)
}

// launcher shows the mode menu, runs the chosen mode and comes back to the
// menu until the player quits it.
func (a *app) launcher(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}

	registry := plugins.NewRegistry()
	registry.Register(&plugins.Func{
		ID:      "run",
		About:   "Jump the cacti, duck the pterodactyls",
		Aliases: []string{"play"},
		Run: func(ctx context.Context) error {
			return runGame(ctx, a.cfg.Game, store, 0)
		},
	})
	registry.Register(&plugins.Func{
		ID:      "gallery",
		About:   "Browse the sprite art and collision masks",
		Aliases: []string{"sprites"},
		Run: func(context.Context) error {
			return gallery.NewViewer(a.cfg.Game.ASCIIOnly).Run()
		},
	})
	log.G().Info("loaded modes", "count", len(registry.List()))

	for {
		p := tea.NewProgram(
			tui.New(registry, store, a.cfg.Game.ASCIIOnly),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		finalModel, err := p.Run()
		if err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("launcher: %w", err)
		}

		model, ok := finalModel.(*tui.Model)
		if !ok {
			return nil
		}
		mode := model.GetPluginToLaunch()
		if mode == nil {
			return nil
		}

		log.G().Info("launching mode", "mode", mode.Name())
		if err := mode.Launch(ctx); err != nil {
			log.G().Error("mode failed", "mode", mode.Name(), "error", err)
		}
		if ctx.Err() != nil {
			return nil
		}
		log.G().Info("returning to launcher")
	}
}
