// Package main is the entry point for the zone-rando command line tool
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "zone-rando",
		Short: "Wind Waker entrance randomizer",
		Long: `zone-rando shuffles which destination every dungeon, cave and fountain
doorway of the Great Sea leads to, and writes the result as a spoiler.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every placement")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCatalogueCmd())
	root.AddCommand(newSettingsCmd())
	root.AddCommand(newSpoilerCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
