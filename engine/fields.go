package engine

import (
	"fmt"
	"strconv"
	"strings"

	"orderdash/models"
)

// Semantic fields resolved from export columns. Every export system spells
// these slightly differently, so each field carries an ordered list of
// accepted labels; the first label that matches a column wins.
const (
	FieldListedPrice     = "listed_price"
	FieldDiscountedPrice = "discounted_price"
	FieldStatusReason    = "status_reason"
	FieldOrderDate       = "order_date"
)

// columnSynonyms maps semantic field -> accepted column labels, in priority
// order. The "Commision" spelling is present in real Meesho exports.
var columnSynonyms = map[string][]string{
	FieldListedPrice: {
		"Supplier Listed Price (Incl. GST + Commission)",
		"Supplier Listed Price",
		"Listed Price",
	},
	FieldDiscountedPrice: {
		"Supplier Discounted Price (Incl GST and Commission)",
		"Supplier Discounted Price (Incl GST and Commision)",
		"Supplier Discounted Price",
		"Discounted Price",
	},
	FieldStatusReason: {
		"Reason for Credit Entry",
		"Status Reason",
		"Status",
	},
	FieldOrderDate: {
		"Order Date",
		"Date",
		"Created At",
		"Delivered Date",
	},
}

// ParsePrice normalizes a currency-like cell value to a float64. Nil and
// empty values are 0. Values that are already numeric (XLSX cells, jsonb
// round trips) pass through as-is; stringifying them would render large
// floats in scientific notation and the strip below would fuse mantissa
// and exponent digits into a bogus number. Anything else is stringified
// and stripped of every rune that is not a digit, '.' or '-' before
// parsing, so "₹1,000.50" becomes 1000.50. Values that still fail to
// parse degrade to 0 rather than aborting the batch.
func ParsePrice(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// ColumnValue returns the value of the first candidate column present on
// the row. Candidate labels and row keys are compared case-insensitively
// with surrounding whitespace trimmed. Returns nil when no candidate
// matches.
func ColumnValue(row models.Row, candidates []string) interface{} {
	for _, name := range candidates {
		want := strings.ToLower(strings.TrimSpace(name))
		for key, val := range row {
			if strings.ToLower(strings.TrimSpace(key)) == want {
				return val
			}
		}
	}
	return nil
}

// FieldValue resolves a semantic field through the synonym table.
func FieldValue(row models.Row, field string) interface{} {
	return ColumnValue(row, columnSynonyms[field])
}

// statusText extracts the row's status-reason field, case-folded and
// trimmed. A missing field yields "" and matches no bucket.
func statusText(row models.Row) string {
	v := FieldValue(row, FieldStatusReason)
	if v == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
}
