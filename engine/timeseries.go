package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"orderdash/models"
	"orderdash/utils"
)

// Date layouts accepted on export date columns, tried in order. Slashed
// dates are ambiguous below day 13; they resolve month-first here, the
// same way a JavaScript Date (and the export systems feeding it) reads
// them. The two-digit-year layout covers the default short-date rendering
// of XLSX date cells ("1/5/24").
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/06",
	"02-01-2006",
	"2-Jan-2006",
}

// ProfitByDate is an independent second pass over the full row set: it
// picks out delivered rows, buckets their discounted price by UTC calendar
// date, and emits the daily profit series sorted ascending by date.
// Rows with a missing or unparseable date contribute nothing.
func ProfitByDate(rows []models.Row) []models.DailyProfitPoint {
	type dayTally struct {
		revenue float64
		count   int
	}
	byDate := make(map[string]*dayTally)

	for _, row := range rows {
		if !strings.Contains(statusText(row), "delivered") {
			continue
		}
		key, ok := dateKey(FieldValue(row, FieldOrderDate))
		if !ok {
			continue
		}
		discounted := ParsePrice(FieldValue(row, FieldDiscountedPrice))
		day := byDate[key]
		if day == nil {
			day = &dayTally{}
			byDate[key] = day
		}
		day.revenue += discounted
		day.count++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	// ISO dates sort lexicographically in chronological order.
	sort.Strings(dates)

	series := make([]models.DailyProfitPoint, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		cost := float64(day.count) * CostPerUnit
		profit := day.revenue - cost
		series = append(series, models.DailyProfitPoint{
			Date:                 date,
			Profit:               utils.Round2(profit),
			ProfitPercentRevenue: utils.SafePercent(profit, day.revenue),
			ProfitPercentCost:    utils.SafePercent(profit, cost),
		})
	}
	return series
}

// dateKey normalizes a date-like cell to its UTC calendar date.
func dateKey(v interface{}) (string, bool) {
	if v == nil {
		return "", false
	}
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format("2006-01-02"), true
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("2006-01-02"), true
		}
	}
	return "", false
}
