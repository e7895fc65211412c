package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/config"
)

func newCatalogueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogue",
		Short: "Print the embedded entrance and exit catalogue as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalogue.Default()
			if err != nil {
				return err
			}
			// Fail on a broken catalogue rather than print it
			if _, err := newRegistry(); err != nil {
				return err
			}
			return cat.Encode(cmd.OutOrStdout())
		},
	}
}

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the default settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Default().Encode(cmd.OutOrStdout())
		},
	}
}
