package trainer

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/pushfold-trainer/internal/cards"
	"github.com/robalobadob/pushfold-trainer/internal/ranges"
)

func smallTable(t *testing.T) *ranges.Table {
	t.Helper()
	table, err := ranges.Load(strings.NewReader("Stack,BTN,SB\n10,26,33\n20,14,17\n"))
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	return table
}

func testGenerator(t *testing.T, mode SampleMode, seed int64) *Generator {
	t.Helper()
	gen, err := NewGenerator(
		[]int{10, 20},
		[]ranges.Position{ranges.Button, ranges.SmallBlind},
		mode,
		rand.NewSource(seed),
	)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	return gen
}

func TestParseSampleMode(t *testing.T) {
	for in, want := range map[string]SampleMode{
		"":        SampleCombos,
		"combos":  SampleCombos,
		"classes": SampleClasses,
	} {
		got, err := ParseSampleMode(in)
		if err != nil || got != want {
			t.Errorf("ParseSampleMode(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseSampleMode("uniform"); err == nil {
		t.Error("ParseSampleMode(uniform) should fail")
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	if _, err := NewGenerator(nil, []ranges.Position{ranges.Button}, SampleCombos, nil); err == nil {
		t.Error("empty stacks should fail")
	}
	if _, err := NewGenerator([]int{10}, nil, SampleCombos, nil); err == nil {
		t.Error("empty positions should fail")
	}
	if _, err := NewGenerator([]int{10}, []ranges.Position{ranges.Button}, "uniform", nil); err == nil {
		t.Error("unknown mode should fail")
	}
	// nil source gets a seeded default
	if _, err := NewGenerator([]int{10}, []ranges.Position{ranges.Button}, "", nil); err != nil {
		t.Errorf("defaults should work: %v", err)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	for _, mode := range []SampleMode{SampleCombos, SampleClasses} {
		a := testGenerator(t, mode, 42)
		b := testGenerator(t, mode, 42)
		for i := 0; i < 50; i++ {
			x, y := a.NextScenario(), b.NextScenario()
			if diff := cmp.Diff(x, y); diff != "" {
				t.Fatalf("mode %s scenario %d mismatch (-a +b):\n%s", mode, i, diff)
			}
		}
	}
}

func TestGeneratorDomain(t *testing.T) {
	stacks := map[int]bool{10: true, 20: true}
	positions := map[ranges.Position]bool{ranges.Button: true, ranges.SmallBlind: true}
	for _, mode := range []SampleMode{SampleCombos, SampleClasses} {
		gen := testGenerator(t, mode, 7)
		for i := 0; i < 200; i++ {
			sc := gen.NextScenario()
			if !stacks[sc.Stack] {
				t.Fatalf("stack %d outside configured set", sc.Stack)
			}
			if !positions[sc.Position] {
				t.Fatalf("position %s outside configured set", sc.Position)
			}
			if got := cards.ClassOf(sc.Cards[0], sc.Cards[1]); got != sc.Class {
				t.Fatalf("cards %v disagree with class %q (got %q)", sc.Cards, sc.Class, got)
			}
			if sc.Cards[0] == sc.Cards[1] {
				t.Fatalf("duplicate card dealt: %v", sc.Cards)
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	table := smallTable(t)
	sc := Scenario{Stack: 10, Position: ranges.Button, Class: "AA"}

	res, err := Evaluate(table, sc, ranges.Push)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Correct || res.Expected != ranges.Push {
		t.Errorf("AA at 10BB BTN: got %+v, want correct push", res)
	}

	res, err = Evaluate(table, sc, ranges.Fold)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Correct || res.Expected != ranges.Push {
		t.Errorf("folding AA should be wrong: got %+v", res)
	}

	// a spot the table has never heard of must surface the error
	_, err = Evaluate(table, Scenario{Stack: 99, Position: ranges.Button, Class: "AA"}, ranges.Push)
	if !errors.Is(err, ranges.ErrNotFound) {
		t.Errorf("unknown spot: err = %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	var st Stats
	if _, err := st.Accuracy(); !errors.Is(err, ErrNoRounds) {
		t.Errorf("empty stats: err = %v, want ErrNoRounds", err)
	}

	st.Record(Result{Correct: true})
	acc, err := st.Accuracy()
	if err != nil || acc != 1.0 {
		t.Errorf("after one correct: acc = %v, %v, want 1.0", acc, err)
	}

	st.Record(Result{Correct: false})
	acc, err = st.Accuracy()
	if err != nil || acc != 0.5 {
		t.Errorf("after one of two: acc = %v, %v, want 0.5", acc, err)
	}
	if st.Correct != 1 || st.Total != 2 {
		t.Errorf("counters = %d/%d, want 1/2", st.Correct, st.Total)
	}

	st.Reset()
	if st.Correct != 0 || st.Total != 0 {
		t.Errorf("after reset: counters = %d/%d, want 0/0", st.Correct, st.Total)
	}
	if _, err := st.Accuracy(); !errors.Is(err, ErrNoRounds) {
		t.Errorf("after reset: err = %v, want ErrNoRounds", err)
	}
}

func TestSessionFlow(t *testing.T) {
	table := smallTable(t)
	gen := testGenerator(t, SampleCombos, 11)
	sess := NewSession(gen, 3)

	if sess.ID == "" {
		t.Fatal("session needs an ID")
	}
	if got := len(sess.Scenarios); got != 3 {
		t.Fatalf("len(Scenarios) = %d, want 3", got)
	}
	if sess.State() != "active" {
		t.Fatalf("state = %q, want active", sess.State())
	}

	for i := 0; i < 3; i++ {
		sc, err := sess.Current()
		if err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		res, err := Evaluate(table, sc, ranges.Fold)
		if err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		state := sess.Record(ranges.Fold, res)
		if i < 2 && state != "active" {
			t.Fatalf("round %d: state = %q, want active", i, state)
		}
		if i == 2 && state != "complete" {
			t.Fatalf("final round: state = %q, want complete", state)
		}
	}

	if _, err := sess.Current(); err == nil {
		t.Error("Current() after completion should fail")
	}
	if got := sess.Record(ranges.Fold, Result{}); got != "complete" {
		t.Errorf("Record() after completion = %q, want complete", got)
	}
	if len(sess.Review) != 3 || sess.Stats.Total != 3 {
		t.Errorf("review/total = %d/%d, want 3/3", len(sess.Review), sess.Stats.Total)
	}

	id := sess.ID
	sess.Reset(gen)
	if sess.ID == id {
		t.Error("Reset must mint a new attempt ID")
	}
	if sess.State() != "active" || sess.Index != 0 || sess.Stats.Total != 0 || sess.Review != nil {
		t.Errorf("Reset left stale state: %+v", sess)
	}
	if got := len(sess.Scenarios); got != 3 {
		t.Errorf("Reset changed round count to %d", got)
	}
}

func TestSessionDefaultRounds(t *testing.T) {
	gen := testGenerator(t, SampleCombos, 3)
	sess := NewSession(gen, 0)
	if got := len(sess.Scenarios); got != defaultRounds {
		t.Errorf("len(Scenarios) = %d, want %d", got, defaultRounds)
	}
}
