// internal/results/store.go
//
// SQLite-backed store for finished quizzes. Each completed session is
// written once (keyed by quiz ID); the leaderboard ranks a day's
// quizzes by accuracy, then speed.

package results

import (
	"context"
	"database/sql"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Result is one finished quiz.
type Result struct {
	QuizID    string `json:"quizId"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Rounds    int    `json:"rounds"`
	Correct   int    `json:"correct"`
	ElapsedMs int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertResult records a finished quiz. Re-inserting the same quiz ID
// is ignored so replayed completion requests stay idempotent.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO quiz_results(quiz_id, user_id, date, rounds, correct, elapsed_ms)
		 VALUES(?,?,?,?,?,?)`, r.QuizID, r.UserID, r.Date, r.Rounds, r.Correct, r.ElapsedMs,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID    string  `json:"userId"`
	Rounds    int     `json:"rounds"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
	ElapsedMs int     `json:"elapsedMs"`
}

// Leaderboard returns the best quizzes for a date, most accurate
// first, faster quizzes breaking ties.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, rounds, correct, elapsed_ms
		 FROM quiz_results
		 WHERE date=? AND rounds > 0
		 ORDER BY CAST(correct AS REAL)/rounds DESC, elapsed_ms ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Rounds, &r.Correct, &r.ElapsedMs); err != nil {
			return nil, err
		}
		r.Accuracy = float64(r.Correct) / float64(r.Rounds)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Recent returns a user's latest quizzes, newest first.
func (s *Store) Recent(ctx context.Context, userID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT quiz_id, user_id, date, rounds, correct, elapsed_ms
		 FROM quiz_results
		 WHERE user_id=?
		 ORDER BY created_at DESC
		 LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.QuizID, &r.UserID, &r.Date, &r.Rounds, &r.Correct, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Claim transfers anonymous quiz history to a user account after
// signup or login.
func (s *Store) Claim(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE quiz_results SET user_id=? WHERE user_id=?`, userID, anonID)
	return err
}
