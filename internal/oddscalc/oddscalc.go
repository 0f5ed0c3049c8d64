// internal/oddscalc/oddscalc.go
//
// Preflop/postflop arithmetic helpers exposed alongside the trainer:
// pot odds, required equity, outs equity (rule of 2 and 4), minimum
// defense frequency, bluff break-even, stack-to-pot ratio, bet sizing
// and a chip-chop payout split. All percentages are 0-100. Every
// function validates its inputs and returns an error instead of a
// garbage number.

package oddscalc

import (
	"errors"
	"fmt"
)

var errInput = errors.New("oddscalc: invalid input")

// PotOdds returns the price of a call as a percentage of the final pot.
func PotOdds(call, potBefore float64) (float64, error) {
	if call <= 0 {
		return 0, fmt.Errorf("%w: call must be > 0", errInput)
	}
	final := potBefore + call
	if final <= 0 {
		return 0, fmt.Errorf("%w: final pot must be > 0", errInput)
	}
	return call / final * 100, nil
}

// RequiredEquity returns the minimum equity needed to break even on a
// call. Identical arithmetic to PotOdds, kept as its own name because
// callers ask the two questions in different spots.
func RequiredEquity(call, potBefore float64) (float64, error) {
	return PotOdds(call, potBefore)
}

// OutsEquity approximates drawing equity from outs using the rule of
// 2 and 4: outs*4 on the flop, outs*2 on the turn, capped at 100.
func OutsEquity(outs int, street string) (float64, error) {
	if outs < 0 || outs > 47 {
		return 0, fmt.Errorf("%w: outs must be 0-47", errInput)
	}
	switch street {
	case "flop":
		return min100(float64(outs) * 4), nil
	case "turn":
		return min100(float64(outs) * 2), nil
	}
	return 0, fmt.Errorf("%w: street must be flop or turn", errInput)
}

// MDF returns the minimum defense frequency against a bet.
func MDF(bet, potBefore float64) (float64, error) {
	if bet <= 0 || potBefore < 0 {
		return 0, fmt.Errorf("%w: bet must be > 0 and pot >= 0", errInput)
	}
	return potBefore / (potBefore + bet) * 100, nil
}

// BluffBreakEven returns how often a bluff must work to break even.
func BluffBreakEven(bet, potBefore float64) (float64, error) {
	if bet <= 0 || potBefore < 0 {
		return 0, fmt.Errorf("%w: bet must be > 0 and pot >= 0", errInput)
	}
	return bet / (potBefore + bet) * 100, nil
}

// SPR returns the stack-to-pot ratio.
func SPR(stack, pot float64) (float64, error) {
	if stack < 0 || pot <= 0 {
		return 0, fmt.Errorf("%w: stack must be >= 0 and pot > 0", errInput)
	}
	return stack / pot, nil
}

// BetSize returns a bet sized as a fraction of the pot.
func BetSize(pot, fraction float64) (float64, error) {
	if pot <= 0 || fraction <= 0 {
		return 0, fmt.Errorf("%w: pot and fraction must be > 0", errInput)
	}
	return pot * fraction, nil
}

// ChipChop splits the remaining prize pool proportionally to chip
// counts. This is a chip-chop model, not true ICM.
func ChipChop(stacks, payouts []float64) ([]float64, error) {
	if len(stacks) == 0 {
		return nil, fmt.Errorf("%w: no stacks", errInput)
	}
	if len(payouts) < len(stacks) {
		return nil, fmt.Errorf("%w: need at least %d payouts", errInput, len(stacks))
	}
	var totalChips float64
	for _, s := range stacks {
		if s < 0 {
			return nil, fmt.Errorf("%w: negative stack", errInput)
		}
		totalChips += s
	}
	if totalChips <= 0 {
		return nil, fmt.Errorf("%w: total chips must be > 0", errInput)
	}
	var pool float64
	for _, p := range payouts[:len(stacks)] {
		pool += p
	}
	out := make([]float64, len(stacks))
	for i, s := range stacks {
		out[i] = s / totalChips * pool
	}
	return out, nil
}

func min100(f float64) float64 {
	if f > 100 {
		return 100
	}
	return f
}
