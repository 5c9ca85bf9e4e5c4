package commands

import (
	"fmt"

	"minerprofit-backend/lib/serviceutil"
	"minerprofit-backend/services/profitability"

	"github.com/spf13/cobra"
)

var listFromDb *bool

func init() {
	listFromDb = listCmd.Flags().Bool("db", false, "List every row in the persistent store regardless of age.")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [--db]",
	Short: "Lists the miners the resolver would currently match against.",
	Run: func(cmd *cobra.Command, args []string) {
		components := build(cmd.Context())
		defer components.Close()

		if *listFromDb {
			miners, err := components.Persistent.LoadAll(cmd.Context())
			if err != nil {
				serviceutil.Fatal("failed to read persistent store", err)
			}
			renderMiners(miners)
			return
		}

		snapshot, err := components.Store.GetAll(cmd.Context(), false)
		if err != nil {
			serviceutil.Fatal("failed to load miners", err)
		}
		fmt.Printf("source: %s\n", snapshot.Source)
		renderMiners(snapshot.Miners)
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Forces a live fetch and writes the result to the persistent store.",
	Run: func(cmd *cobra.Command, args []string) {
		components := build(cmd.Context())
		defer components.Close()

		snapshot, err := components.Store.Refresh(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to refresh", err)
		}
		if snapshot.Source != profitability.TierLive {
			fmt.Printf("live fetch failed, served %s data instead\n", snapshot.Source)
		}
		renderMiners(snapshot.Miners)
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
