// internal/ranges/advice.go
//
// Free-form advice queries: unlike Lookup, an arbitrary stack size is
// snapped to the nearest loaded bucket and the full push range is
// expanded for display.

package ranges

import (
	"fmt"

	"github.com/robalobadob/pushfold-trainer/internal/cards"
)

// Advice describes the recommended push range for a spot.
type Advice struct {
	Bucket  int           `json:"bucket"`
	Percent float64       `json:"percent"`
	Range   []cards.Class `json:"range"`
	Tip     string        `json:"tip"`
}

// Advise returns the push range for the bucket nearest to stack.
func (t *Table) Advise(stack float64, pos Position) (Advice, error) {
	if stack <= 0 {
		return Advice{}, fmt.Errorf("ranges: invalid stack size %.1f", stack)
	}
	bucket := t.NearestBucket(stack)
	pct, err := t.PushPercent(bucket, pos)
	if err != nil {
		return Advice{}, err
	}
	return Advice{
		Bucket:  bucket,
		Percent: pct,
		Range:   cards.TopPercent(pct),
		Tip: fmt.Sprintf("At ~%dBB in %s, pushing around %.1f%% of hands is suggested. "+
			"Adjust for ICM or if players are calling more tightly or loosely.", bucket, pos, pct),
	}, nil
}
