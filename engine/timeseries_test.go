package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"orderdash/models"
)

func deliveredRow(date, discounted string) models.Row {
	return models.Row{
		"Reason for Credit Entry":   "delivered",
		"Supplier Discounted Price": discounted,
		"Order Date":                date,
	}
}

func TestProfitByDate(t *testing.T) {
	rows := []models.Row{
		deliveredRow("2024-01-07", "900"),
		deliveredRow("2024-01-05", "800"),
		deliveredRow("2024-01-05", "700"),
		{"Reason for Credit Entry": "cancelled", "Order Date": "2024-01-06", "Supplier Discounted Price": "400"},
	}

	series := ProfitByDate(rows)

	assert.Len(t, series, 2)
	assert.Equal(t, "2024-01-05", series[0].Date)
	assert.Equal(t, "2024-01-07", series[1].Date)

	// 2024-01-05: revenue 1500, 2 units, cost 1000, profit 500.
	assert.Equal(t, 500.00, series[0].Profit)
	assert.Equal(t, 33.33, series[0].ProfitPercentRevenue)
	assert.Equal(t, 50.00, series[0].ProfitPercentCost)
}

func TestProfitByDateSortedNoDuplicates(t *testing.T) {
	rows := []models.Row{
		deliveredRow("2024-03-01", "600"),
		deliveredRow("2024-01-15", "600"),
		deliveredRow("2024-02-10", "600"),
		deliveredRow("2024-01-15", "600"),
	}

	series := ProfitByDate(rows)

	assert.Len(t, series, 3)
	assert.True(t, sort.SliceIsSorted(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	}))
	seen := map[string]bool{}
	for _, p := range series {
		if seen[p.Date] {
			t.Fatalf("duplicate date %s in series", p.Date)
		}
		seen[p.Date] = true
	}
}

func TestProfitByDateSkipsBadDates(t *testing.T) {
	rows := []models.Row{
		deliveredRow("not a date", "800"),
		{"Reason for Credit Entry": "delivered", "Supplier Discounted Price": "800"},
	}

	assert.Empty(t, ProfitByDate(rows))
}

func TestProfitByDateDropsTimeOfDay(t *testing.T) {
	rows := []models.Row{
		deliveredRow("2024-01-05 09:30:00", "800"),
		deliveredRow("2024-01-05T18:45:00Z", "700"),
	}

	series := ProfitByDate(rows)

	assert.Len(t, series, 1)
	assert.Equal(t, "2024-01-05", series[0].Date)
}

func TestProfitByDateSlashedAndShortDates(t *testing.T) {
	rows := []models.Row{
		// Slashed dates resolve month-first; XLSX cells render short
		// dates with two-digit years.
		deliveredRow("01/05/2024", "800"),
		deliveredRow("1/5/24", "700"),
	}

	series := ProfitByDate(rows)

	assert.Len(t, series, 1)
	assert.Equal(t, "2024-01-05", series[0].Date)
}

func TestProfitByDateZeroRevenueGuard(t *testing.T) {
	// A delivered row with no price still counts a unit: revenue 0,
	// cost 500, profit -500. The percent-of-revenue must be 0, not -Inf.
	rows := []models.Row{deliveredRow("2024-01-05", "")}

	series := ProfitByDate(rows)

	assert.Len(t, series, 1)
	assert.Equal(t, -500.00, series[0].Profit)
	assert.Equal(t, 0.0, series[0].ProfitPercentRevenue)
	assert.Equal(t, -100.00, series[0].ProfitPercentCost)
}
