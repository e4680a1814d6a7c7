package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonmartinstorm/profilsnusern/internal/aggregator"
	"github.com/jonmartinstorm/profilsnusern/internal/fetcher"
)

var snapshotOutDir string

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOutDir, "out", "o", "", "skriv <username>_snapshot.json til denne mappen i stedet for stdout")
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Hent profilen én gang og skriv tilstanden som JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(os.Stderr)
		if err != nil {
			return err
		}

		agg := aggregator.New(fetcher.NewProfileFetcher(cfg))
		defer agg.Close()
		state := agg.Run(cmd.Context(), cfg.Username)

		if snapshotOutDir != "" {
			path, err := aggregator.StoreStateJSON(snapshotOutDir, state)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "skrev", path)
		} else if err := aggregator.WriteStateJSON(os.Stdout, state); err != nil {
			return err
		}

		if state.IsError() {
			return errors.New(state.Error)
		}
		return nil
	},
}
