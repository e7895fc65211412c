package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/repositories/spoiler"
)

func newSpoilerCmd() *cobra.Command {
	var redisURL string

	cmd := &cobra.Command{
		Use:   "spoiler",
		Short: "Read stored spoilers",
	}
	cmd.PersistentFlags().StringVar(&redisURL, "redis-url", "redis://localhost:6379/0", "redis holding the spoilers")

	open := func() (spoiler.Repository, io.Closer, error) {
		return newRedisRepository(redisURL, 0)
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Print one spoiler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, client, err := open()
			if err != nil {
				return err
			}
			defer closeLogged(client, "redis client")
			out, err := repo.Get(cmd.Context(), spoiler.GetInput{ID: args[0]})
			if err != nil {
				return err
			}
			return writeSpoiler(cmd.OutOrStdout(), out.Spoiler)
		},
	}

	var seed int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List the spoilers generated from a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, client, err := open()
			if err != nil {
				return err
			}
			defer closeLogged(client, "redis client")
			out, err := repo.ListBySeed(cmd.Context(), spoiler.ListBySeedInput{Seed: seed})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out.Spoilers); err != nil {
				return errors.Wrap(err, "failed to encode spoilers")
			}
			return nil
		},
	}
	list.Flags().Int64Var(&seed, "seed", 0, "seed the spoilers were placed with")
	_ = list.MarkFlagRequired("seed")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored spoiler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, client, err := open()
			if err != nil {
				return err
			}
			defer closeLogged(client, "redis client")
			_, err = repo.Delete(cmd.Context(), spoiler.DeleteInput{ID: args[0]})
			return err
		},
	}

	cmd.AddCommand(get, list, del)
	return cmd
}
