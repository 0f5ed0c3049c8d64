// internal/trainer/session.go
//
// One quiz session: a fixed number of scenarios generated up front,
// answered in order, with a review trail for the final score screen.
// State transitions: active → complete; Reset returns to active with
// fresh scenarios and zeroed counters.

package trainer

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/robalobadob/pushfold-trainer/internal/ranges"
)

const defaultRounds = 5

// Round records one answered scenario for review.
type Round struct {
	Scenario Scenario        `json:"scenario"`
	Choice   ranges.Decision `json:"choice"`
	Expected ranges.Decision `json:"expected"`
	Correct  bool            `json:"correct"`
}

// Session holds the state of a single quiz.
type Session struct {
	ID        string
	Scenarios []Scenario
	Index     int
	Stats     Stats
	Review    []Round
	StartedAt time.Time
	Finished  bool
}

// NewSession generates rounds scenarios (defaultRounds if rounds <= 0)
// and returns a fresh active session.
func NewSession(gen *Generator, rounds int) *Session {
	if rounds <= 0 {
		rounds = defaultRounds
	}
	s := &Session{
		ID:        randomID(),
		Scenarios: make([]Scenario, rounds),
		StartedAt: time.Now(),
	}
	for i := range s.Scenarios {
		s.Scenarios[i] = gen.NextScenario()
	}
	return s
}

// Current returns the scenario awaiting an answer.
func (s *Session) Current() (Scenario, error) {
	if s.Finished {
		return Scenario{}, errors.New("session complete")
	}
	return s.Scenarios[s.Index], nil
}

// Record stores the graded outcome of the current scenario, advances
// the session, and returns the new state string.
func (s *Session) Record(choice ranges.Decision, res Result) string {
	if s.Finished {
		return s.State()
	}
	s.Review = append(s.Review, Round{
		Scenario: s.Scenarios[s.Index],
		Choice:   choice,
		Expected: res.Expected,
		Correct:  res.Correct,
	})
	s.Stats.Record(res)
	s.Index++
	if s.Index >= len(s.Scenarios) {
		s.Finished = true
	}
	return s.State()
}

// State reports a coarse string representation of the session state.
func (s *Session) State() string {
	if s.Finished {
		return "complete"
	}
	return "active"
}

// Reset regenerates the scenarios and zeroes the score. A reset quiz
// is a new attempt with its own ID, so finishing it persists a second
// result row instead of colliding with the first; only the round
// count carries over.
func (s *Session) Reset(gen *Generator) {
	for i := range s.Scenarios {
		s.Scenarios[i] = gen.NextScenario()
	}
	s.ID = randomID()
	s.Index = 0
	s.Review = nil
	s.Stats.Reset()
	s.Finished = false
	s.StartedAt = time.Now()
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
