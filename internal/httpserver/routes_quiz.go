// internal/httpserver/routes_quiz.go
//
// HTTP routes for quiz sessions.
// Exposes five endpoints under /quiz:
//   - POST /quiz/new         → start a quiz (generates all scenarios up front)
//   - POST /quiz/answer      → grade a push/fold choice for the current round
//   - POST /quiz/reset       → restart a quiz in place (fresh scenarios, zeroed score)
//   - GET  /quiz/review      → per-round review + accuracy for a quiz
//   - GET  /quiz/leaderboard → top accuracy for a day
//
// Sessions are held in memory while active and persisted to the DB as
// an aggregate result once the last round is answered. The range table
// is shared read-only; each session has its own random source.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pushfold-trainer/internal/ranges"
	"github.com/robalobadob/pushfold-trainer/internal/results"
	"github.com/robalobadob/pushfold-trainer/internal/store"
	"github.com/robalobadob/pushfold-trainer/internal/trainer"
)

// mountQuiz registers all /quiz routes.
func (s *Server) mountQuiz(r chi.Router) {
	r.Route("/quiz", func(r chi.Router) {
		r.Post("/new", s.handleQuizNew)
		r.Post("/answer", s.handleQuizAnswer)
		r.Post("/reset", s.handleQuizReset)
		r.Get("/review", s.handleQuizReview)
		r.Get("/leaderboard", s.handleQuizLeaderboard)
	})
}

// scenarioView is the wire shape of the round shown to the user. The
// hand class is withheld while the round is open — the user grades the
// concrete cards.
type scenarioView struct {
	Round    int             `json:"round"` // 1-based
	Rounds   int             `json:"rounds"`
	Stack    int             `json:"stack"`
	Position ranges.Position `json:"position"`
	Cards    [2]string       `json:"cards"`
}

func viewOf(sess *trainer.Session) *scenarioView {
	sc, err := sess.Current()
	if err != nil {
		return nil
	}
	return &scenarioView{
		Round:    sess.Index + 1,
		Rounds:   len(sess.Scenarios),
		Stack:    sc.Stack,
		Position: sc.Position,
		Cards:    [2]string{sc.Cards[0].String(), sc.Cards[1].String()},
	}
}

// accuracyOrNull encodes trainer.ErrNoRounds as JSON null.
func accuracyOrNull(st trainer.Stats) *float64 {
	acc, err := st.Accuracy()
	if err != nil {
		return nil
	}
	return &acc
}

// -----------------------------------------------------------------------------
// /quiz/new

type quizNewReq struct {
	Rounds     int    `json:"rounds"`     // 0 → default
	SampleMode string `json:"sampleMode"` // "" → profile default
}
type quizNewRes struct {
	QuizID   string        `json:"quizId"`
	State    string        `json:"state"`
	Scenario *scenarioView `json:"scenario"`
}

// handleQuizNew creates a quiz session with its own generator and
// stores it in memory.
func (s *Server) handleQuizNew(w http.ResponseWriter, r *http.Request) {
	var req quizNewReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	mode, err := trainer.ParseSampleMode(req.SampleMode)
	if err != nil {
		http.Error(w, `{"error":"invalid_sample_mode"}`, http.StatusBadRequest)
		return
	}
	gen, err := s.newGenerator(mode)
	if err != nil {
		log.Error().Err(err).Msg("build generator")
		http.Error(w, `{"error":"generator_failed"}`, http.StatusInternalServerError)
		return
	}
	rounds := req.Rounds
	if rounds <= 0 {
		rounds = s.profile.Rounds
	}
	sess := trainer.NewSession(gen, rounds)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save quiz")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(quizNewRes{QuizID: sess.ID, State: sess.State(), Scenario: viewOf(sess)})
}

// -----------------------------------------------------------------------------
// /quiz/answer

type quizAnswerReq struct {
	QuizID string `json:"quizId"`
	Action string `json:"action"` // "push" | "fold"
}
type quizAnswerRes struct {
	Correct  bool            `json:"correct"`
	Expected ranges.Decision `json:"expected"`
	State    string          `json:"state"` // "active" | "complete"
	Score    trainer.Stats   `json:"score"`
	Accuracy *float64        `json:"accuracy"`
	Next     *scenarioView   `json:"next,omitempty"`
}

// handleQuizAnswer grades the current round, records it on the
// session, and persists aggregate results when the quiz completes.
func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var req quizAnswerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	choice, err := ranges.ParseDecision(req.Action)
	if err != nil {
		http.Error(w, `{"error":"invalid_action"}`, http.StatusBadRequest)
		return
	}
	unlock := s.lockQuiz(req.QuizID)
	defer unlock()
	sess, err := s.store.Get(r.Context(), req.QuizID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	sc, err := sess.Current()
	if err != nil {
		http.Error(w, `{"error":"quiz_complete"}`, http.StatusConflict)
		return
	}

	res, err := trainer.Evaluate(s.table, sc, choice)
	if err != nil {
		// Generator/data mismatch; propagate loudly instead of guessing.
		log.Error().Err(err).Int("stack", sc.Stack).Str("position", string(sc.Position)).
			Str("hand", string(sc.Class)).Msg("range lookup failed")
		http.Error(w, `{"error":"lookup_failed"}`, http.StatusInternalServerError)
		return
	}

	state := sess.Record(choice, res)
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist counters/history when finished (best effort, non-fatal if it fails)
	if state == "complete" {
		uid := s.userIDWithAnon(w, r)
		elapsed := int(time.Since(sess.StartedAt).Milliseconds())
		if err := s.results.InsertResult(r.Context(), results.Result{
			QuizID:    sess.ID,
			UserID:    uid,
			Date:      results.DateKey(time.Now()),
			Rounds:    sess.Stats.Total,
			Correct:   sess.Stats.Correct,
			ElapsedMs: elapsed,
		}); err != nil {
			log.Warn().Err(err).Str("quizId", sess.ID).Msg("insert quiz result")
		}
		if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
			tx, err := s.db.Begin()
			if err == nil {
				if err := s.bumpStats(tx, me.ID, sess.Stats.Total, sess.Stats.Correct); err != nil {
					log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
					_ = tx.Rollback()
				} else {
					_ = tx.Commit()
				}
			}
		}
	}

	_ = json.NewEncoder(w).Encode(quizAnswerRes{
		Correct:  res.Correct,
		Expected: res.Expected,
		State:    state,
		Score:    sess.Stats,
		Accuracy: accuracyOrNull(sess.Stats),
		Next:     viewOf(sess),
	})
}

// -----------------------------------------------------------------------------
// /quiz/reset

type quizResetReq struct {
	QuizID string `json:"quizId"`
}

// handleQuizReset regenerates scenarios and zeroes the score for an
// existing quiz ("try again").
func (s *Server) handleQuizReset(w http.ResponseWriter, r *http.Request) {
	var req quizResetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	unlock := s.lockQuiz(req.QuizID)
	defer unlock()
	sess, err := s.store.Get(r.Context(), req.QuizID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	gen, err := s.newGenerator("")
	if err != nil {
		log.Error().Err(err).Msg("build generator")
		http.Error(w, `{"error":"generator_failed"}`, http.StatusInternalServerError)
		return
	}
	sess.Reset(gen)
	// the reset quiz is a new attempt with a new ID; retire the old key
	if err := s.store.Delete(r.Context(), req.QuizID); err != nil {
		log.Warn().Err(err).Str("quizId", req.QuizID).Msg("delete replaced quiz")
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(quizNewRes{QuizID: sess.ID, State: sess.State(), Scenario: viewOf(sess)})
}

// -----------------------------------------------------------------------------
// /quiz/review

type quizReviewRes struct {
	State    string          `json:"state"`
	Score    trainer.Stats   `json:"score"`
	Accuracy *float64        `json:"accuracy"`
	Review   []trainer.Round `json:"review"`
}

// handleQuizReview returns the answered rounds so far (or the full
// quiz once complete), with the running accuracy.
func (s *Server) handleQuizReview(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("quizId")
	if id == "" {
		http.Error(w, `{"error":"missing_quiz_id"}`, http.StatusBadRequest)
		return
	}
	unlock := s.lockQuiz(id)
	defer unlock()
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	review := sess.Review
	if review == nil {
		review = []trainer.Round{}
	}
	_ = json.NewEncoder(w).Encode(quizReviewRes{
		State:    sess.State(),
		Score:    sess.Stats,
		Accuracy: accuracyOrNull(sess.Stats),
		Review:   review,
	})
}

// -----------------------------------------------------------------------------
// /quiz/leaderboard

type lbRes struct {
	Date string          `json:"date"`
	Top  []results.LBRow `json:"top"`
}

// handleQuizLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleQuizLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = results.DateKey(time.Now())
	}
	rows, err := s.results.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []results.LBRow{}
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
