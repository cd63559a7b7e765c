package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the analytics engine once over the configured store and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			snap, err := store.Snapshot()
			if err != nil {
				return fmt.Errorf("load collections: %w", err)
			}

			res := a.newEngine().Compute(snap)
			if err := res.DeadStockErr(); err != nil {
				if a.cfg.Analytics.StrictDates {
					return err
				}
				log.Warn().Err(err).Int("records", len(res.InvalidRecords)).Msg("skipped paints with invalid lastSoldDate")
			}
			if res.UnmatchedOrders > 0 {
				log.Warn().Int("orders", res.UnmatchedOrders).Msg("orders reference unknown dealers")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(res)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}
