package minername

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		expected ParsedName
	}{
		{
			name: "Bitmain Antminer S21 XP Hyd 473Th",
			expected: ParsedName{
				Model:         "s21",
				HasHashrate:   true,
				HashrateValue: 473,
				HashrateUnit:  "th",
				IsHydro:       true,
				IsXp:          true,
				Manufacturer:  "bitmain",
			},
		},
		{
			name: "Antminer S21 Pro 234 TH",
			expected: ParsedName{
				Model:         "s21",
				HasHashrate:   true,
				HashrateValue: 234,
				HashrateUnit:  "th",
				IsPro:         true,
				Manufacturer:  "bitmain",
			},
		},
		{
			name: "Antminer S19 XP+ Hydro 293 TH",
			expected: ParsedName{
				Model:         "s19",
				HasHashrate:   true,
				HashrateValue: 293,
				HashrateUnit:  "th",
				IsHydro:       true,
				IsXp:          true,
				IsPlus:        true,
				Manufacturer:  "bitmain",
			},
		},
		{
			name: "antminer-s21-xp-immersion-300-th",
			expected: ParsedName{
				Model:         "s21",
				HasHashrate:   true,
				HashrateValue: 300,
				HashrateUnit:  "th",
				IsXp:          true,
				IsImmersion:   true,
				Manufacturer:  "bitmain",
			},
		},
		{
			name: "Antminer S21 E EXP 860 TH",
			expected: ParsedName{
				Model:         "s21e",
				HasHashrate:   true,
				HashrateValue: 860,
				HashrateUnit:  "th",
				IsXp:          true,
				IsE:           true,
				Manufacturer:  "bitmain",
			},
		},
		{
			name: "Bitmain Antminer S21e XP Hyd (860Th)",
			expected: ParsedName{
				Model:         "s21e",
				HasHashrate:   true,
				HashrateValue: 860,
				HashrateUnit:  "th",
				IsHydro:       true,
				IsXp:          true,
				IsE:           true,
				Manufacturer:  "bitmain",
			},
		},
		{
			name: "VolcMiner D3 20GH/s Scrypt Miner",
			expected: ParsedName{
				Model:         "d3",
				HasHashrate:   true,
				HashrateValue: 20,
				HashrateUnit:  "gh",
				Manufacturer:  "volcminer",
			},
		},
		{
			name: "Bitmain Antminer Z15 Pro 840 KH/s",
			expected: ParsedName{
				Model:         "z15",
				HasHashrate:   true,
				HashrateValue: 840,
				HashrateUnit:  "kh",
				IsPro:         true,
				Manufacturer:  "bitmain",
			},
		},
		{
			name: "IceRiver KS5L (12Th)",
			expected: ParsedName{
				Model:         "ks5",
				HasHashrate:   true,
				HashrateValue: 12,
				HashrateUnit:  "th",
				Manufacturer:  "iceriver",
			},
		},
		{
			name: "Antminer S19 K Pro",
			expected: ParsedName{
				Model:        "s19",
				IsPro:        true,
				Manufacturer: "bitmain",
			},
		},
		{
			name:     "Unknown Alien Miner 9000",
			expected: ParsedName{},
		},
	}

	for _, test := range testCases {
		diff := cmp.Diff(test.expected, Parse(test.name))
		require.Empty(t, diff, test.name)
	}
}

func TestParseHashrateWithThousandsSeparator(t *testing.T) {
	parsed := Parse("Antminer S21 XP Hydro (1,160 Th)")
	require.True(t, parsed.HasHashrate)
	require.Equal(t, float64(1160), parsed.HashrateValue)
	require.Equal(t, "th", parsed.HashrateUnit)
}

func TestParseIgnoresModelDigitsAsHashrate(t *testing.T) {
	parsed := Parse("Antminer T21 th edition")
	require.Equal(t, "t21", parsed.Model)
	require.False(t, parsed.HasHashrate)
}

func TestBaseModel(t *testing.T) {
	require.Equal(t, "s21", BaseModel("s21e"))
	require.Equal(t, "s21", BaseModel("s21"))
	require.Equal(t, "ae2", BaseModel("ae2"))
	require.Equal(t, "", BaseModel(""))
}

func TestManufacturerOf(t *testing.T) {
	require.Equal(t, "bitmain", ManufacturerOf("Antminer L9"))
	require.Equal(t, "microbt", ManufacturerOf("MicroBT Whatsminer M60S"))
	require.Equal(t, "elphapex", ManufacturerOf("ElphaPex DG1+"))
	require.Equal(t, "", ManufacturerOf("Whatever"))
}
