package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonmartinstorm/profilsnusern/internal/aggregator"
	"github.com/jonmartinstorm/profilsnusern/internal/fetcher"
	"github.com/jonmartinstorm/profilsnusern/internal/models"
	"github.com/jonmartinstorm/profilsnusern/internal/ui"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Vis profilen i terminalen",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(os.Stderr)
		if err != nil {
			return err
		}

		agg := aggregator.New(fetcher.NewProfileFetcher(cfg))
		defer agg.Close()

		if err := ui.RenderState(os.Stdout, models.Loading(cfg.Username)); err != nil {
			return err
		}
		state := agg.Run(cmd.Context(), cfg.Username)
		if err := ui.RenderState(os.Stdout, state); err != nil {
			return err
		}
		if state.IsError() {
			return errors.New(state.Error)
		}
		return nil
	},
}
