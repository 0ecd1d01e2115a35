package main

import (
	"github.com/spf13/cobra"

	"github.com/shvbsle/termrex/internal/config"
	"github.com/shvbsle/termrex/internal/game"
	"github.com/shvbsle/termrex/internal/server"
	"github.com/shvbsle/termrex/internal/tui"
)

// NewServeCommand builds the command that hosts games over SSH.
func NewServeCommand(a *app) *cobra.Command {
	var bindErr error
	var f runFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host termrex over SSH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bindErr != nil {
				return bindErr
			}
			cfg, err := a.loader.Load()
			if err != nil {
				return err
			}
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

			settings := game.SettingsFrom(cfg.Game)
			settings.Version = tui.Version
			settings.Seed = f.seed

			cmd.PrintErrf("termrex listening on %s\n", cfg.Server.Listen)
			return server.NewSSHServer(cfg.Server, settings, store).ListenAndServe(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.String("listen", config.DefaultListenAddr, "listen address for the SSH server")
	flags.String("host-key", "", "path to the SSH host key (generated if empty)")
	f.register(flags)

	v := a.loader.Viper()
	bind := func(key, name string) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			bindErr = err
		}
	}
	bind("server.listen", "listen")
	bind("server.host_key", "host-key")

	return cmd
}
