// internal/cards/deal.go
//
// Concrete-card dealing for display purposes. A scenario is defined by
// its class; the two specific cards shown to the user only need to be
// consistent with that class.

package cards

import "math/rand"

// Deal picks two concrete cards matching the class, using rng to pick
// suits. Pairs and offsuit hands get two distinct suits, suited hands
// share one.
func Deal(c Class, rng *rand.Rand) (Card, Card) {
	hi, lo := c.HighRank(), c.LowRank()
	switch {
	case c.Pair():
		s1 := rng.Intn(len(Suits))
		s2 := rng.Intn(len(Suits) - 1)
		if s2 >= s1 {
			s2++
		}
		return Card{hi, Suits[s1]}, Card{lo, Suits[s2]}
	case c.Suited():
		s := Suits[rng.Intn(len(Suits))]
		return Card{hi, s}, Card{lo, s}
	default:
		s1 := rng.Intn(len(Suits))
		s2 := rng.Intn(len(Suits) - 1)
		if s2 >= s1 {
			s2++
		}
		return Card{hi, Suits[s1]}, Card{lo, Suits[s2]}
	}
}
