// internal/ranges/position.go
//
// Table positions for short-stack play. The codes match the column
// headers of the range CSV.

package ranges

import "fmt"

// Position is a seat relative to the button.
type Position string

const (
	UTG        Position = "UTG"
	UTGPlus1   Position = "UTG+1"
	UTGPlus2   Position = "UTG+2"
	Lojack     Position = "LJ"
	Hijack     Position = "HJ"
	Cutoff     Position = "CO"
	Button     Position = "BTN"
	SmallBlind Position = "SB"
	BigBlind   Position = "BB"
)

// AllPositions lists every position in action order, earliest first.
var AllPositions = []Position{UTG, UTGPlus1, UTGPlus2, Lojack, Hijack, Cutoff, Button, SmallBlind, BigBlind}

// ParsePosition validates a position code.
func ParsePosition(s string) (Position, error) {
	for _, p := range AllPositions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("ranges: unknown position %q", s)
}
