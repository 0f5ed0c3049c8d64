package oddscalc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPotOdds(t *testing.T) {
	tests := []struct {
		name            string
		call, potBefore float64
		want            float64
		wantErr         bool
	}{
		{name: "half pot", call: 50, potBefore: 100, want: 100.0 / 3},
		{name: "pot sized", call: 100, potBefore: 100, want: 50},
		{name: "tiny call", call: 1, potBefore: 99, want: 1},
		{name: "zero call", call: 0, potBefore: 100, wantErr: true},
		{name: "negative call", call: -5, potBefore: 100, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PotOdds(tc.call, tc.potBefore)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("PotOdds(%v, %v) = %v, want error", tc.call, tc.potBefore, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("PotOdds(%v, %v): %v", tc.call, tc.potBefore, err)
			}
			if !almost(got, tc.want) {
				t.Errorf("PotOdds(%v, %v) = %v, want %v", tc.call, tc.potBefore, got, tc.want)
			}
		})
	}
}

func TestRequiredEquityMatchesPotOdds(t *testing.T) {
	a, err1 := RequiredEquity(75, 150)
	b, err2 := PotOdds(75, 150)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if a != b {
		t.Errorf("RequiredEquity = %v, PotOdds = %v", a, b)
	}
}

func TestOutsEquity(t *testing.T) {
	tests := []struct {
		outs    int
		street  string
		want    float64
		wantErr bool
	}{
		{outs: 9, street: "flop", want: 36},  // flush draw
		{outs: 8, street: "turn", want: 16},  // open ender
		{outs: 30, street: "flop", want: 100}, // capped
		{outs: 0, street: "turn", want: 0},
		{outs: -1, street: "flop", wantErr: true},
		{outs: 48, street: "flop", wantErr: true},
		{outs: 9, street: "river", wantErr: true},
	}
	for _, tc := range tests {
		got, err := OutsEquity(tc.outs, tc.street)
		if tc.wantErr {
			if err == nil {
				t.Errorf("OutsEquity(%d, %q) = %v, want error", tc.outs, tc.street, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("OutsEquity(%d, %q) = %v, %v, want %v", tc.outs, tc.street, got, err, tc.want)
		}
	}
}

func TestMDFAndBreakEven(t *testing.T) {
	mdf, err := MDF(50, 100)
	if err != nil || !almost(mdf, 200.0/3) {
		t.Errorf("MDF(50, 100) = %v, %v, want 66.67", mdf, err)
	}
	be, err := BluffBreakEven(50, 100)
	if err != nil || !almost(be, 100.0/3) {
		t.Errorf("BluffBreakEven(50, 100) = %v, %v, want 33.33", be, err)
	}
	// against any bet the two must sum to 100
	if !almost(mdf+be, 100) {
		t.Errorf("MDF + break-even = %v, want 100", mdf+be)
	}
	if _, err := MDF(0, 100); err == nil {
		t.Error("MDF with zero bet should fail")
	}
	if _, err := BluffBreakEven(-10, 100); err == nil {
		t.Error("BluffBreakEven with negative bet should fail")
	}
}

func TestSPR(t *testing.T) {
	got, err := SPR(200, 50)
	if err != nil || got != 4 {
		t.Errorf("SPR(200, 50) = %v, %v, want 4", got, err)
	}
	if _, err := SPR(200, 0); err == nil {
		t.Error("SPR with empty pot should fail")
	}
}

func TestBetSize(t *testing.T) {
	got, err := BetSize(120, 0.75)
	if err != nil || got != 90 {
		t.Errorf("BetSize(120, 0.75) = %v, %v, want 90", got, err)
	}
	if _, err := BetSize(0, 0.5); err == nil {
		t.Error("BetSize with empty pot should fail")
	}
	if _, err := BetSize(100, 0); err == nil {
		t.Error("BetSize with zero fraction should fail")
	}
}

func TestChipChop(t *testing.T) {
	got, err := ChipChop([]float64{100, 50, 50}, []float64{100, 60, 40})
	if err != nil {
		t.Fatalf("ChipChop: %v", err)
	}
	if diff := cmp.Diff([]float64{100, 50, 50}, got); diff != "" {
		t.Errorf("ChipChop mismatch (-want +got):\n%s", diff)
	}

	// extra payouts beyond the live players are ignored
	got, err = ChipChop([]float64{300, 100}, []float64{100, 60, 40})
	if err != nil {
		t.Fatalf("ChipChop: %v", err)
	}
	if diff := cmp.Diff([]float64{120, 40}, got); diff != "" {
		t.Errorf("ChipChop mismatch (-want +got):\n%s", diff)
	}

	if _, err := ChipChop(nil, []float64{100}); err == nil {
		t.Error("no stacks should fail")
	}
	if _, err := ChipChop([]float64{100, 100}, []float64{100}); err == nil {
		t.Error("too few payouts should fail")
	}
	if _, err := ChipChop([]float64{0, 0}, []float64{50, 50}); err == nil {
		t.Error("zero total chips should fail")
	}
	if _, err := ChipChop([]float64{-10, 100}, []float64{50, 50}); err == nil {
		t.Error("negative stack should fail")
	}
}
