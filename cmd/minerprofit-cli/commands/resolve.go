package commands

import (
	"fmt"
	"os"
	"strings"

	"minerprofit-backend/lib/serviceutil"
	"minerprofit-backend/services/profitability"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var resolveRefresh *bool
var resolveElectricity *float64

func init() {
	resolveRefresh = resolveCmd.Flags().Bool("refresh", false, "Skip the caches and fetch live data.")
	resolveElectricity = resolveCmd.Flags().Float64("electricity", 0, "Electricity price in USD/kWh, prints an earnings projection when set.")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <product name>",
	Short: "Resolves a product name to its best matching miner and daily profit.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")

		components := build(cmd.Context())
		defer components.Close()

		res, err := components.Resolver.Resolve(cmd.Context(), name, *resolveRefresh)
		if err != nil {
			serviceutil.Fatal("failed to resolve", err)
		}
		if !res.Matched {
			fmt.Fprintf(os.Stderr, "no miner matched %q (%d candidates from %s)\n", name, len(res.Snapshot.Miners), res.Snapshot.Source)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRows([]table.Row{
			{"Product", name},
			{"Miner", res.Record.Name},
			{"Score", fmt.Sprintf("%.1f", res.Score)},
			{"Source", res.Snapshot.Source},
			{"Profit/day", fmt.Sprintf("$%.2f", res.Record.DailyProfitUsd)},
			{"Hashrate", res.Record.Hashrate},
			{"Power", res.Record.Power},
		})
		t.SetStyle(table.StyleRounded)
		t.Render()

		if *resolveElectricity <= 0 {
			return
		}
		earnings := profitability.ProjectEarnings(
			res.Record.DailyProfitUsd,
			res.Record.PowerWatts(),
			*resolveElectricity,
		)
		renderEarnings(earnings)
	},
}

func renderEarnings(e profitability.Earnings) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Earnings at $%.3f/kWh", e.PricePerKwh))
	t.AppendHeader(table.Row{"", "Daily", "Monthly", "Yearly"})
	for _, row := range []struct {
		label  string
		period profitability.Period
	}{
		{"Income", e.Income},
		{"Electricity", e.Electricity},
		{"Profit", e.Profit},
	} {
		t.AppendRow(table.Row{
			row.label,
			fmt.Sprintf("$%.2f", row.period.Daily),
			fmt.Sprintf("$%.2f", row.period.Monthly),
			fmt.Sprintf("$%.2f", row.period.Yearly),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
