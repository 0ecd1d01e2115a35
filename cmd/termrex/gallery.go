package main

import (
	"github.com/spf13/cobra"

	"github.com/shvbsle/termrex/internal/gallery"
)

// NewGalleryCommand builds the command that opens the sprite viewer.
func NewGalleryCommand(a *app) *cobra.Command {
	var asciiOnly bool

	cmd := &cobra.Command{
		Use:     "gallery",
		Aliases: []string{"sprites"},
		Short:   "Browse the sprite art and collision masks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ascii := a.cfg.Game.ASCIIOnly
			if cmd.Flags().Changed("ascii-only") {
				ascii = asciiOnly
			}
			return gallery.NewViewer(ascii).Run()
		},
	}
	cmd.Flags().BoolVar(&asciiOnly, "ascii-only", false, "open on the ASCII theme")
	return cmd
}
