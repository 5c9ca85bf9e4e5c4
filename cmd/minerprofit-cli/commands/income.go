package commands

import (
	"fmt"

	"minerprofit-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(incomeCmd)
}

var incomeCmd = &cobra.Command{
	Use:   "income <miner page path>",
	Short: "Fetches the daily income figure from a single miner page, ex. /miners/bitmain/antminer-s21-pro-234th",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		components := build(cmd.Context())
		defer components.Close()

		income, err := components.Client.FetchIncome(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch income", err)
		}
		fmt.Printf("$%.2f/day\n", income)
	},
}
