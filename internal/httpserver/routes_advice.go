// internal/httpserver/routes_advice.go
//
// Study endpoints that sit next to the quiz:
//   - POST /advice        → the push range for a stack/position (snapped to the nearest bucket)
//   - GET  /calc/*        → quick poker arithmetic (pot odds, MDF, SPR, ...)
//   - POST /calc/chipchop → proportional deal split for a final table
//
// The calc handlers take query params and return one number; chipchop
// takes JSON arrays. Bad inputs are a 400 with the validation message.

package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/pushfold-trainer/internal/oddscalc"
	"github.com/robalobadob/pushfold-trainer/internal/ranges"
)

// mountAdvice registers /advice and the /calc routes.
func (s *Server) mountAdvice(r chi.Router) {
	r.Post("/advice", s.handleAdvice)
	r.Route("/calc", func(r chi.Router) {
		r.Get("/potodds", calc2(oddscalc.PotOdds, "call", "pot"))
		r.Get("/equity", calc2(oddscalc.RequiredEquity, "call", "pot"))
		r.Get("/outs", s.handleOuts)
		r.Get("/mdf", calc2(oddscalc.MDF, "bet", "pot"))
		r.Get("/breakeven", calc2(oddscalc.BluffBreakEven, "bet", "pot"))
		r.Get("/spr", calc2(oddscalc.SPR, "stack", "pot"))
		r.Get("/betsize", calc2(oddscalc.BetSize, "pot", "fraction"))
		r.Post("/chipchop", s.handleChipChop)
	})
}

// -----------------------------------------------------------------------------
// /advice

type adviceReq struct {
	Stack    float64 `json:"stack"`
	Position string  `json:"position"`
}

// handleAdvice looks up the push range for a stack and position. Stacks
// between buckets snap to the nearest one.
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	pos, err := ranges.ParsePosition(req.Position)
	if err != nil {
		http.Error(w, `{"error":"invalid_position"}`, http.StatusBadRequest)
		return
	}
	adv, err := s.table.Advise(req.Stack, pos)
	if err != nil {
		writeCalcErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(adv)
}

// -----------------------------------------------------------------------------
// /calc

type calcRes struct {
	Value float64 `json:"value"`
}

// calc2 adapts a two-float calculator into a GET handler reading the
// named query params.
func calc2(fn func(a, b float64) (float64, error), aName, bName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := qFloat(r, aName)
		if err != nil {
			writeCalcErr(w, err)
			return
		}
		b, err := qFloat(r, bName)
		if err != nil {
			writeCalcErr(w, err)
			return
		}
		v, err := fn(a, b)
		if err != nil {
			writeCalcErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(calcRes{Value: v})
	}
}

// handleOuts is the odd one out: an int plus a street name.
func (s *Server) handleOuts(w http.ResponseWriter, r *http.Request) {
	outs, err := strconv.Atoi(r.URL.Query().Get("outs"))
	if err != nil {
		writeCalcErr(w, fmt.Errorf("outs must be an integer"))
		return
	}
	v, err := oddscalc.OutsEquity(outs, r.URL.Query().Get("street"))
	if err != nil {
		writeCalcErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(calcRes{Value: v})
}

type chipChopReq struct {
	Stacks  []float64 `json:"stacks"`
	Payouts []float64 `json:"payouts"`
}
type chipChopRes struct {
	Equities []float64 `json:"equities"`
}

func (s *Server) handleChipChop(w http.ResponseWriter, r *http.Request) {
	var req chipChopReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	eq, err := oddscalc.ChipChop(req.Stacks, req.Payouts)
	if err != nil {
		writeCalcErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(chipChopRes{Equities: eq})
}

func qFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

// writeCalcErr maps validation failures to a 400 with the message inline.
func writeCalcErr(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
