package commands

import (
	"fmt"
	"os"
	"strings"

	"minerprofit-backend/lib/hashrate"
	"minerprofit-backend/lib/minername"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <name>",
	Short: "Prints the attributes the matcher extracts from a name.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		parsed := minername.Parse(name)

		rate := "-"
		if parsed.HasHashrate {
			rate = hashrate.Format(hashrate.Normalize(parsed.HashrateValue, parsed.HashrateUnit))
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetTitle(name)
		t.AppendRows([]table.Row{
			{"Model", parsed.Model},
			{"Manufacturer", parsed.Manufacturer},
			{"Hashrate", rate},
			{"Hydro", parsed.IsHydro},
			{"Immersion", parsed.IsImmersion},
			{"Pro", parsed.IsPro},
			{"XP", parsed.IsXp},
			{"Plus", parsed.IsPlus},
			{"E", parsed.IsE},
		})
		t.SetStyle(table.StyleRounded)
		t.Render()

		if parsed.Model == "" {
			fmt.Fprintln(os.Stderr, "no model recognized, this name will never match")
		}
	},
}
