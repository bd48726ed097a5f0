package engine

import (
	"strings"

	"orderdash/models"
)

// Fixed financial constants. These are business policy, not data: every
// delivered unit is costed at 500 and every door-step exchange carries an
// 80-unit surcharge, regardless of what the export says.
const (
	CostPerUnit       = 500.0
	DoorStepSurcharge = 80.0
)

// rtoVocabulary is the RTO sub-vocabulary, checked before the generic
// bucket scan. A hit routes the row to "rto" exclusively.
var rtoVocabulary = []string{"rto_complete", "rto_locked", "rto_initiated"}

// Tally carries the running accumulators the classifier gathers in the
// same pass that files rows into buckets.
type Tally struct {
	ListedPriceSum     float64
	DiscountedPriceSum float64
	DeliveredCount     int
	DeliveredRevenue   float64
	DoorStepTotal      float64
}

// Classify partitions rows into status buckets and accumulates the price
// tallies the aggregator needs.
//
// Per row: it always lands in "all"; if the status text hits the RTO
// sub-vocabulary it lands in "rto" and nowhere else; otherwise every
// bucket whose name is a substring of the status text gets it
// (membership is non-exclusive); a row that matched nothing falls into
// "other".
func Classify(rows []models.Row) (models.Categories, Tally) {
	categories := make(models.Categories, len(models.BucketNames)+1)
	for _, name := range models.BucketNames {
		categories[name] = []models.Row{}
	}
	categories[models.BucketOther] = []models.Row{}

	var tally Tally

	for _, row := range rows {
		status := statusText(row)
		categories[models.BucketAll] = append(categories[models.BucketAll], row)

		listed := ParsePrice(FieldValue(row, FieldListedPrice))
		discounted := ParsePrice(FieldValue(row, FieldDiscountedPrice))
		tally.ListedPriceSum += listed
		tally.DiscountedPriceSum += discounted

		if strings.Contains(status, "delivered") {
			tally.DeliveredCount++
			tally.DeliveredRevenue += discounted
		}
		if strings.Contains(status, models.BucketDoorStepExchanged) {
			tally.DoorStepTotal += DoorStepSurcharge
		}

		matched := false
		if containsAny(status, rtoVocabulary) {
			categories[models.BucketRTO] = append(categories[models.BucketRTO], row)
			matched = true
		} else {
			for _, name := range models.BucketNames {
				if name == models.BucketAll || name == models.BucketRTO {
					continue
				}
				if strings.Contains(status, name) {
					categories[name] = append(categories[name], row)
					matched = true
				}
			}
		}
		if !matched {
			categories[models.BucketOther] = append(categories[models.BucketOther], row)
		}
	}

	return categories, tally
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
