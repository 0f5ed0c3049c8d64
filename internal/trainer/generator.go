// internal/trainer/generator.go
//
// Scenario generation for trainer rounds.
// Responsibilities:
//   - Sample (stack, position, hand) triples i.i.d. with replacement.
//   - Stack and position are uniform over the configured sets.
//   - Hands are sampled in one of two documented modes:
//       combos  — uniform over the 1326 concrete two-card deals, so a
//                 pocket pair shows up 6/1326 of the time (default;
//                 matches how cards actually fall).
//       classes — uniform over the 169 canonical classes, which
//                 overweights pairs relative to real dealing.
//   - The random source is injectable so tests can seed it; the
//     default source is seeded from crypto/rand.

package trainer

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/robalobadob/pushfold-trainer/internal/cards"
	"github.com/robalobadob/pushfold-trainer/internal/ranges"
)

// SampleMode selects the hand sampling distribution.
type SampleMode string

const (
	SampleCombos  SampleMode = "combos"
	SampleClasses SampleMode = "classes"
)

// ParseSampleMode validates a sampling mode string; empty selects the
// default combos mode.
func ParseSampleMode(s string) (SampleMode, error) {
	switch SampleMode(s) {
	case "":
		return SampleCombos, nil
	case SampleCombos, SampleClasses:
		return SampleMode(s), nil
	}
	return "", fmt.Errorf("trainer: unknown sample mode %q", s)
}

// Scenario is one trainer round: the spot plus the concrete cards
// shown to the user. Ephemeral; consumed by Evaluate.
type Scenario struct {
	Stack    int             `json:"stack"`
	Position ranges.Position `json:"position"`
	Class    cards.Class     `json:"hand"`
	Cards    [2]cards.Card   `json:"-"`
}

// Generator samples scenarios. Not safe for concurrent use; each
// session owns its own Generator.
type Generator struct {
	stacks    []int
	positions []ranges.Position
	mode      SampleMode
	rng       *rand.Rand
}

// newSeed derives a math/rand source from crypto/rand entropy.
func newSeed() rand.Source {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("trainer: cannot seed random source")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewGenerator builds a Generator over the given stack buckets and
// positions. A nil source gets a crypto-seeded default.
func NewGenerator(stacks []int, positions []ranges.Position, mode SampleMode, source rand.Source) (*Generator, error) {
	if len(stacks) == 0 {
		return nil, fmt.Errorf("trainer: no stack buckets configured")
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("trainer: no positions configured")
	}
	if mode == "" {
		mode = SampleCombos
	}
	if mode != SampleCombos && mode != SampleClasses {
		return nil, fmt.Errorf("trainer: unknown sample mode %q", mode)
	}
	if source == nil {
		source = newSeed()
	}
	return &Generator{
		stacks:    append([]int(nil), stacks...),
		positions: append([]ranges.Position(nil), positions...),
		mode:      mode,
		rng:       rand.New(source),
	}, nil
}

// NextScenario draws one scenario. Calls are independent; the space is
// resampled with replacement.
func (g *Generator) NextScenario() Scenario {
	sc := Scenario{
		Stack:    g.stacks[g.rng.Intn(len(g.stacks))],
		Position: g.positions[g.rng.Intn(len(g.positions))],
	}
	switch g.mode {
	case SampleClasses:
		sc.Class = cards.Ranking[g.rng.Intn(len(cards.Ranking))]
		c1, c2 := cards.Deal(sc.Class, g.rng)
		sc.Cards = [2]cards.Card{c1, c2}
	default:
		c1, c2 := g.dealTwo()
		sc.Class = cards.ClassOf(c1, c2)
		sc.Cards = [2]cards.Card{c1, c2}
	}
	return sc
}

// dealTwo draws two distinct cards uniformly from the 52-card deck.
func (g *Generator) dealTwo() (cards.Card, cards.Card) {
	i := g.rng.Intn(52)
	j := g.rng.Intn(51)
	if j >= i {
		j++
	}
	return cardAt(i), cardAt(j)
}

func cardAt(i int) cards.Card {
	return cards.Card{Rank: cards.Two + cards.Rank(i/4), Suit: cards.Suits[i%4]}
}
