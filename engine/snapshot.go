package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"orderdash/models"
)

// ErrEmptyInput reports an upload that decoded to zero rows. An empty row
// set signals an upstream file-parsing problem the caller should see
// distinctly, not a degenerate zero-valued snapshot.
var ErrEmptyInput = errors.New("no rows to classify")

// BuildSnapshot runs the full pipeline over one uploaded row set:
// classification, totals aggregation and the daily profit series, combined
// into one immutable Snapshot stamped with its creation time.
func BuildSnapshot(rows []models.Row) (*models.Snapshot, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	categories, tally := Classify(rows)

	return &models.Snapshot{
		ID:           uuid.NewString(),
		SubmittedAt:  time.Now().UTC(),
		Data:         rows,
		Totals:       Aggregate(tally),
		Categories:   categories,
		ProfitByDate: ProfitByDate(rows),
	}, nil
}
