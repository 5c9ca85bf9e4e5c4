package asicminervalue

import "time"

// MinerRecord is one miner listing with its estimated daily profit. Records
// are never mutated, a fresher record with the same slug supersedes it.
type MinerRecord struct {
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Manufacturer   string    `json:"manufacturer,omitempty"`
	DailyProfitUsd float64   `json:"dailyProfitUsd"`
	Hashrate       string    `json:"hashrate,omitempty"`
	Power          string    `json:"power,omitempty"`
	Algorithm      string    `json:"algorithm,omitempty"`
	Coin           string    `json:"coin,omitempty"`
	FetchedAt      time.Time `json:"fetchedAt"`
}

// PowerWatts parses the numeric part of Power ("3510W" -> 3510), it
// returns 0 when the power is unknown.
func (r MinerRecord) PowerWatts() float64 {
	groups := powerRegex.FindStringSubmatch(r.Power)
	if groups == nil {
		return 0
	}
	return parseNumber(groups[1])
}
