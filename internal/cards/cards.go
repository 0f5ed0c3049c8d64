// internal/cards/cards.go
//
// Card and starting-hand types for the push/fold trainer.
// Defines:
//   - Rank: the 13 card ranks, ordered ace-high.
//   - Suit: the 4 suits.
//   - Card: an immutable rank+suit value.
//   - Class: one of the 169 canonical starting-hand classes
//     ("AA", "AKs", "72o"); pairs carry no suffix, non-pairs end in
//     's' (suited) or 'o' (offsuit) with the higher rank first.

package cards

import (
	"errors"
	"fmt"
)

// Rank is a card rank. Higher value means stronger rank.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// Ranks lists all ranks from strongest (ace) to weakest (deuce).
var Ranks = []Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// String returns the single-character rank code ("A", "T", "7", ...).
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// ParseRank maps a rank character to a Rank.
func ParseRank(c byte) (Rank, error) {
	for i := 0; i < len(rankChars); i++ {
		if rankChars[i] == c {
			return Rank(i) + Two, nil
		}
	}
	return 0, fmt.Errorf("cards: invalid rank %q", string(c))
}

// Suit is a card suit, encoded by its lowercase character code.
type Suit byte

const (
	Spade   Suit = 's'
	Heart   Suit = 'h'
	Diamond Suit = 'd'
	Club    Suit = 'c'
)

// Suits lists all four suits.
var Suits = []Suit{Spade, Heart, Diamond, Club}

func (s Suit) String() string { return string(byte(s)) }

// Card is an immutable playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the two-character card code, e.g. "As" or "Td".
func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// Class is a canonical starting-hand class string.
type Class string

var errBadClass = errors.New("cards: invalid hand class")

// ParseClass validates and canonicalizes a hand class string.
// Accepts "AA", "AKs", "T9o"; rank order is normalized so the higher
// rank comes first ("kas" is rejected, "KAs" becomes "AKs").
func ParseClass(s string) (Class, error) {
	switch len(s) {
	case 2:
		r1, err := ParseRank(s[0])
		if err != nil {
			return "", errBadClass
		}
		r2, err := ParseRank(s[1])
		if err != nil {
			return "", errBadClass
		}
		if r1 != r2 {
			return "", errBadClass
		}
		return Class(r1.String() + r2.String()), nil
	case 3:
		r1, err := ParseRank(s[0])
		if err != nil {
			return "", errBadClass
		}
		r2, err := ParseRank(s[1])
		if err != nil {
			return "", errBadClass
		}
		if r1 == r2 {
			return "", errBadClass
		}
		if s[2] != 's' && s[2] != 'o' {
			return "", errBadClass
		}
		if r2 > r1 {
			r1, r2 = r2, r1
		}
		return Class(r1.String() + r2.String() + string(s[2])), nil
	}
	return "", errBadClass
}

// ClassOf returns the canonical class for two concrete cards.
func ClassOf(a, b Card) Class {
	if a.Rank == b.Rank {
		return Class(a.Rank.String() + b.Rank.String())
	}
	hi, lo := a, b
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}
	suffix := "o"
	if hi.Suit == lo.Suit {
		suffix = "s"
	}
	return Class(hi.Rank.String() + lo.Rank.String() + suffix)
}

// Pair reports whether the class is a pocket pair.
func (c Class) Pair() bool { return len(c) == 2 }

// Suited reports whether the class is a suited non-pair.
func (c Class) Suited() bool { return len(c) == 3 && c[2] == 's' }

// Combos returns how many of the 1326 concrete two-card deals the
// class covers: 6 for pairs, 4 for suited, 12 for offsuit.
func (c Class) Combos() int {
	switch {
	case c.Pair():
		return 6
	case c.Suited():
		return 4
	default:
		return 12
	}
}

// HighRank returns the stronger rank of the class.
func (c Class) HighRank() Rank {
	r, _ := ParseRank(c[0])
	return r
}

// LowRank returns the weaker rank of the class.
func (c Class) LowRank() Rank {
	r, _ := ParseRank(c[1])
	return r
}

// TotalCombos is the number of distinct two-card deals from a 52-card deck.
const TotalCombos = 1326
