package profitability

import (
	"time"

	"minerprofit-backend/lib/scrapers/asicminervalue"
)

// fallbackMiners is served when neither the record store nor the live
// source can provide data. Values are hand curated snapshots of the source.
var fallbackMiners = []asicminervalue.MinerRecord{
	{Slug: "bitmain-antminer-z15-pro-840-kh-s", Name: "Bitmain Antminer Z15 Pro 840 KH/s", Manufacturer: "Bitmain", DailyProfitUsd: 29.12, Hashrate: "840 kh/s", Power: "2780W", Algorithm: "Equihash", Coin: "Zcash"},
	{Slug: "antminer-t21-190-th", Name: "Antminer T21 190 TH", Manufacturer: "Bitmain", DailyProfitUsd: 1.95, Hashrate: "190 Th/s", Power: "3610W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "antminer-s21-xp-hydro-395-th", Name: "Antminer S21 XP Hydro 395 TH", Manufacturer: "Bitmain", DailyProfitUsd: 4.15, Hashrate: "395 Th/s", Power: "5130W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "antminer-s21-xp-immersion-300-th", Name: "Antminer S21 XP Immersion 300 TH", Manufacturer: "Bitmain", DailyProfitUsd: 3.10, Hashrate: "300 Th/s", Power: "4050W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "antminer-s21-xp-hydro-473-th", Name: "Antminer S21 XP Hydro 473 TH", Manufacturer: "Bitmain", DailyProfitUsd: 5.00, Hashrate: "473 Th/s", Power: "5676W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "antminer-s21-e-exp-860-th", Name: "Antminer S21 E EXP 860 TH", Manufacturer: "Bitmain", DailyProfitUsd: 6.65, Hashrate: "860 Th/s", Power: "11180W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "volcminer-d3-20gh-s-scrypt-miner", Name: "VolcMiner D3 20GH/s Scrypt Miner", Manufacturer: "VolcMiner", DailyProfitUsd: 6.91, Hashrate: "20 Gh/s", Power: "3580W", Algorithm: "Scrypt", Coin: "LTC/DOGE"},
	{Slug: "antminer-s19-xp-hydro-293-th", Name: "Antminer S19 XP+ Hydro 293 TH", Manufacturer: "Bitmain", DailyProfitUsd: 2.62, Hashrate: "293 Th/s", Power: "5418W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "antminer-s21-pro-234-th", Name: "Antminer S21 Pro 234 TH", Manufacturer: "Bitmain", DailyProfitUsd: 2.45, Hashrate: "234 Th/s", Power: "3510W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "antminer-s19-k-pro", Name: "Antminer S19 K Pro", Manufacturer: "Bitmain", DailyProfitUsd: 0.85, Hashrate: "120 Th/s", Power: "2760W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "antminer-s21-xp-270-th", Name: "Antminer S21 XP 270 TH", Manufacturer: "Bitmain", DailyProfitUsd: 2.80, Hashrate: "270 Th/s", Power: "3645W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-t21-190-th", Name: "Bitmain Antminer T21 190 TH", Manufacturer: "Bitmain", DailyProfitUsd: 1.95, Hashrate: "190 Th/s", Power: "3610W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-s21-xp-hydro-395-th", Name: "Bitmain Antminer S21 XP Hydro 395 TH", Manufacturer: "Bitmain", DailyProfitUsd: 4.15, Hashrate: "395 Th/s", Power: "5130W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-s21-xp-immersion-300-th", Name: "Bitmain Antminer S21 XP Immersion 300 TH", Manufacturer: "Bitmain", DailyProfitUsd: 3.10, Hashrate: "300 Th/s", Power: "4050W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-s21-xp-hydro-473-th", Name: "Bitmain Antminer S21 XP Hydro 473 TH", Manufacturer: "Bitmain", DailyProfitUsd: 5.00, Hashrate: "473 Th/s", Power: "5676W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-s21-e-exp-860-th", Name: "Bitmain Antminer S21 E EXP 860 TH", Manufacturer: "Bitmain", DailyProfitUsd: 6.65, Hashrate: "860 Th/s", Power: "11180W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-s19-xp-hydro-293-th", Name: "Bitmain Antminer S19 XP+ Hydro 293 TH", Manufacturer: "Bitmain", DailyProfitUsd: 2.62, Hashrate: "293 Th/s", Power: "5418W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-s21-pro-234-th", Name: "Bitmain Antminer S21 Pro 234 TH", Manufacturer: "Bitmain", DailyProfitUsd: 2.45, Hashrate: "234 Th/s", Power: "3510W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-s19-k-pro", Name: "Bitmain Antminer S19 K Pro", Manufacturer: "Bitmain", DailyProfitUsd: 0.85, Hashrate: "120 Th/s", Power: "2760W", Algorithm: "SHA-256", Coin: "Bitcoin"},
	{Slug: "bitmain-antminer-s21-xp-270-th", Name: "Bitmain Antminer S21 XP 270 TH", Manufacturer: "Bitmain", DailyProfitUsd: 2.80, Hashrate: "270 Th/s", Power: "3645W", Algorithm: "SHA-256", Coin: "Bitcoin"},
}

// FallbackMiners returns a copy of the static table stamped with fetchedAt.
func FallbackMiners(fetchedAt time.Time) []asicminervalue.MinerRecord {
	out := make([]asicminervalue.MinerRecord, len(fallbackMiners))
	for i, r := range fallbackMiners {
		r.FetchedAt = fetchedAt
		out[i] = r
	}
	return out
}
