package commands

import (
	"fmt"
	"os"

	"minerprofit-backend/lib/scrapers/asicminervalue"

	"github.com/jedib0t/go-pretty/v6/table"
)

func renderMiners(miners []asicminervalue.MinerRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Profit/day", "Hashrate", "Power", "Algorithm", "Coin"})

	for _, m := range miners {
		t.AppendRow(table.Row{
			m.Name,
			fmt.Sprintf("$%.2f", m.DailyProfitUsd),
			m.Hashrate,
			m.Power,
			m.Algorithm,
			m.Coin,
		})
	}

	t.AppendFooter(table.Row{fmt.Sprintf("%d miners", len(miners))})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
