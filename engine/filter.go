package engine

import (
	"fmt"
	"strings"

	"orderdash/models"
	"orderdash/utils"
)

// LookupSubOrder locates the row whose sub-order number matches id and
// derives its per-record profit figures. The sub-order column is found by
// scanning key names for one containing both "sub" and "order"; if a row
// has no such column, every value on the row is scanned for an exact
// trimmed, case-insensitive match instead. Returns (nil, false) when no
// row matches — an expected outcome, not a fault.
func LookupSubOrder(rows []models.Row, id string) (*models.FilterResult, bool) {
	want := strings.ToLower(strings.TrimSpace(id))
	if want == "" {
		return nil, false
	}

	var match models.Row
	for _, row := range rows {
		if rowMatchesSubOrder(row, want) {
			match = row
			break
		}
	}
	if match == nil {
		return nil, false
	}

	listed := ParsePrice(FieldValue(match, FieldListedPrice))
	discounted := ParsePrice(FieldValue(match, FieldDiscountedPrice))
	profit := discounted - CostPerUnit

	return &models.FilterResult{
		SubOrderNo:           want,
		ListedPrice:          listed,
		DiscountedPrice:      discounted,
		Profit:               utils.Round2(profit),
		ProfitPercentOfPrice: utils.SafePercent(profit, discounted),
		ProfitPercentOfCost:  utils.SafePercent(profit, CostPerUnit),
	}, true
}

func rowMatchesSubOrder(row models.Row, want string) bool {
	for key, val := range row {
		lower := strings.ToLower(key)
		if strings.Contains(lower, "sub") && strings.Contains(lower, "order") {
			if val != nil && strings.ToLower(strings.TrimSpace(fmt.Sprint(val))) == want {
				return true
			}
		}
	}
	for _, val := range row {
		if val == nil {
			continue
		}
		if strings.ToLower(strings.TrimSpace(fmt.Sprint(val))) == want {
			return true
		}
	}
	return false
}
