package profitability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectEarnings(t *testing.T) {
	earnings := ProjectEarnings(10, 3000, 0.1)

	require.InDelta(t, 10, earnings.Income.Daily, 1e-9)
	require.InDelta(t, 300, earnings.Income.Monthly, 1e-9)
	require.InDelta(t, 3650, earnings.Income.Yearly, 1e-9)

	require.InDelta(t, 7.2, earnings.Electricity.Daily, 1e-9)
	require.InDelta(t, 216, earnings.Electricity.Monthly, 1e-9)

	require.InDelta(t, 2.8, earnings.Profit.Daily, 1e-9)
	require.InDelta(t, 2.8*365, earnings.Profit.Yearly, 1e-9)
}

func TestProjectEarningsUnknownPower(t *testing.T) {
	earnings := ProjectEarnings(4, 0, 0.12)
	require.Equal(t, 0.0, earnings.Electricity.Daily)
	require.Equal(t, earnings.Income, earnings.Profit)
}
