package profitability

const (
	daysPerMonth = 30
	daysPerYear  = 365
)

type Period struct {
	Daily   float64 `json:"daily"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

func periodOf(daily float64) Period {
	return Period{
		Daily:   daily,
		Monthly: daily * daysPerMonth,
		Yearly:  daily * daysPerYear,
	}
}

// Earnings projects a miner's income against its electricity cost.
type Earnings struct {
	PricePerKwh float64 `json:"pricePerKwh"`
	Income      Period  `json:"income"`
	Electricity Period  `json:"electricity"`
	Profit      Period  `json:"profit"`
}

// ProjectEarnings computes earnings from a daily income in USD, a power
// draw in watts and an electricity price in USD/kWh.
func ProjectEarnings(dailyIncomeUsd, powerWatts, pricePerKwh float64) Earnings {
	dailyKwh := powerWatts * 24 / 1000
	dailyElectricity := dailyKwh * pricePerKwh
	return Earnings{
		PricePerKwh: pricePerKwh,
		Income:      periodOf(dailyIncomeUsd),
		Electricity: periodOf(dailyElectricity),
		Profit:      periodOf(dailyIncomeUsd - dailyElectricity),
	}
}
