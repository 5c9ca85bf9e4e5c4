package commands

import (
	"errors"
	"log/slog"
	"time"

	"minerprofit-backend/lib/serviceutil"
	"minerprofit-backend/services/profitability"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upserts the bundled fallback table into the persistent store.",
	Run: func(cmd *cobra.Command, args []string) {
		components := build(cmd.Context())
		defer components.Close()

		if components.Persistent == nil {
			serviceutil.Fatal("cannot seed", errors.New("no store is configured"))
		}

		miners := profitability.FallbackMiners(time.Now().UTC())
		err := components.Persistent.Save(cmd.Context(), miners)
		if err != nil {
			serviceutil.Fatal("failed to seed", err)
		}
		slog.Info("seeded persistent store", "count", len(miners))
	},
}
