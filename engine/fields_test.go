package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orderdash/models"
)

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 0.0, ParsePrice(nil))
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 0.0, ParsePrice("abc"))
	assert.Equal(t, 1000.0, ParsePrice("₹1,000"))
	assert.Equal(t, 1000.5, ParsePrice("₹1000.50"))
	// "Rs." leaves a stray leading dot behind; the numeric parse fails
	// and the value degrades to 0 instead of raising.
	assert.Equal(t, 0.0, ParsePrice("Rs. 1000.50"))
	assert.Equal(t, -250.0, ParsePrice("-250"))
	assert.Equal(t, 800.0, ParsePrice(800))
	assert.Equal(t, 799.99, ParsePrice(799.99))
	// Large numeric cells must not go through a string round trip: %v
	// prints them in scientific notation.
	assert.Equal(t, 1234567.0, ParsePrice(1234567.0))
	assert.Equal(t, 7654321.0, ParsePrice(int64(7654321)))
	assert.Equal(t, 98765432.1, ParsePrice("98765432.1"))
}

func TestParsePriceIdempotentOnCleanInput(t *testing.T) {
	for _, s := range []string{"0", "42", "1234.56", "-7.5", "1234567", "98765432.1"} {
		first := ParsePrice(s)
		if second := ParsePrice(first); second != first {
			t.Fatalf("ParsePrice not idempotent on %q: %v then %v", s, first, second)
		}
	}
}

func TestColumnValue(t *testing.T) {
	row := models.Row{
		"  Supplier Listed Price ": "1000",
		"Sub Order No":             "SO-1",
	}

	v := ColumnValue(row, []string{"Supplier Listed Price (Incl. GST + Commission)", "Supplier Listed Price"})
	assert.Equal(t, "1000", v)

	// Case and whitespace drift on the row key must not matter.
	v = ColumnValue(row, []string{"supplier listed price"})
	assert.Equal(t, "1000", v)

	assert.Nil(t, ColumnValue(row, []string{"Discounted Price"}))
}

func TestColumnValueCandidateOrder(t *testing.T) {
	row := models.Row{
		"Listed Price":          "2",
		"Supplier Listed Price": "1",
	}
	// First candidate in the list wins.
	v := ColumnValue(row, []string{"Supplier Listed Price", "Listed Price"})
	assert.Equal(t, "1", v)
}
