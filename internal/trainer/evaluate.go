// internal/trainer/evaluate.go
//
// Grading of a user's push/fold choice against the range table.
// Evaluate is a pure function of its inputs; recording the outcome is
// the caller's job, which keeps the evaluator independently testable.

package trainer

import "github.com/robalobadob/pushfold-trainer/internal/ranges"

// Result is the outcome of grading one choice.
type Result struct {
	Correct  bool            `json:"correct"`
	Expected ranges.Decision `json:"expected"`
}

// Evaluate consults the table for the scenario's spot and compares the
// user's choice. A table miss propagates: it means the generator and
// the data disagree and must never be defaulted to fold.
func Evaluate(t *ranges.Table, sc Scenario, choice ranges.Decision) (Result, error) {
	expected, err := t.Lookup(sc.Stack, sc.Position, sc.Class)
	if err != nil {
		return Result{}, err
	}
	return Result{Correct: choice == expected, Expected: expected}, nil
}
