package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orderdash/models"
)

func statusRow(status string) models.Row {
	return models.Row{"Reason for Credit Entry": status}
}

func TestClassifyEveryRowLandsSomewhere(t *testing.T) {
	rows := []models.Row{
		statusRow("DELIVERED"),
		statusRow("RTO_COMPLETE"),
		statusRow("door_step_exchanged"),
		statusRow("something unrecognized"),
		statusRow(""),
		{}, // no status column at all
	}

	categories, _ := Classify(rows)

	assert.Len(t, categories[models.BucketAll], len(rows))

	// Union of the non-"all" buckets plus "other" covers every row exactly
	// once for rows that matched a single bucket.
	covered := 0
	for name, bucket := range categories {
		if name == models.BucketAll {
			continue
		}
		covered += len(bucket)
	}
	assert.Equal(t, len(rows), covered)
}

func TestClassifyRTOPrecedence(t *testing.T) {
	// Contains both the RTO sub-vocabulary and another bucket name; the
	// RTO check runs first and is exclusive.
	rows := []models.Row{statusRow("rto_complete after shipped")}

	categories, _ := Classify(rows)

	assert.Len(t, categories[models.BucketRTO], 1)
	assert.Empty(t, categories[models.BucketShipped])
	assert.Empty(t, categories[models.BucketOther])
}

func TestClassifyNonExclusiveMembership(t *testing.T) {
	rows := []models.Row{statusRow("delivered then cancelled")}

	categories, _ := Classify(rows)

	assert.Len(t, categories[models.BucketDelivered], 1)
	assert.Len(t, categories[models.BucketCancelled], 1)
	assert.Empty(t, categories[models.BucketOther])
}

func TestClassifyUnmatchedFallsIntoOther(t *testing.T) {
	rows := []models.Row{statusRow("exchange requested")}

	categories, _ := Classify(rows)

	assert.Len(t, categories[models.BucketOther], 1)
}

func TestClassifyTally(t *testing.T) {
	rows := []models.Row{
		{
			"Reason for Credit Entry":   "DELIVERED",
			"Supplier Listed Price":     "₹1000",
			"Supplier Discounted Price": "800",
		},
		{
			"Reason for Credit Entry":   "door_step_exchanged",
			"Supplier Listed Price":     "500",
			"Supplier Discounted Price": "400",
		},
	}

	_, tally := Classify(rows)

	assert.Equal(t, 1500.0, tally.ListedPriceSum)
	assert.Equal(t, 1200.0, tally.DiscountedPriceSum)
	assert.Equal(t, 1, tally.DeliveredCount)
	assert.Equal(t, 800.0, tally.DeliveredRevenue)
	assert.Equal(t, DoorStepSurcharge, tally.DoorStepTotal)
}
