// internal/trainer/stats.go
//
// Session score bookkeeping. A Stats value has two states: Empty
// (Total == 0) and Active (Total > 0); Record moves Empty→Active,
// Reset moves anything back to Empty. Correct never exceeds Total.

package trainer

import "errors"

// ErrNoRounds is returned by Accuracy before any round is recorded.
// Callers must handle it explicitly ("no data yet"), never treat it
// as a zero score.
var ErrNoRounds = errors.New("trainer: no rounds recorded")

// Stats accumulates correct/total counts for one session.
type Stats struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Record counts one graded round.
func (s *Stats) Record(r Result) {
	s.Total++
	if r.Correct {
		s.Correct++
	}
}

// Accuracy returns Correct/Total, or ErrNoRounds when nothing has
// been recorded yet.
func (s *Stats) Accuracy() (float64, error) {
	if s.Total == 0 {
		return 0, ErrNoRounds
	}
	return float64(s.Correct) / float64(s.Total), nil
}

// Reset zeroes both counters.
func (s *Stats) Reset() {
	s.Correct, s.Total = 0, 0
}
