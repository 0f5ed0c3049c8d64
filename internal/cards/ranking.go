// internal/cards/ranking.go
//
// The fixed push-priority ordering of all 169 starting-hand classes:
// pocket pairs first (strongest to weakest), then every suited class
// grouped by high card, then every offsuit class in the same order.
// Push ranges are prefixes of this ordering measured in combo coverage.

package cards

// Ranking holds all 169 classes in push priority order.
var Ranking = buildRanking()

var rankingIndex = func() map[Class]int {
	m := make(map[Class]int, len(Ranking))
	for i, c := range Ranking {
		m[c] = i
	}
	return m
}()

func buildRanking() []Class {
	out := make([]Class, 0, 169)
	for _, r := range Ranks {
		out = append(out, Class(r.String()+r.String()))
	}
	for _, suffix := range []string{"s", "o"} {
		for i, hi := range Ranks {
			for _, lo := range Ranks[i+1:] {
				out = append(out, Class(hi.String()+lo.String()+suffix))
			}
		}
	}
	return out
}

// RankingPosition returns the index of the class within Ranking,
// or -1 for an unknown class.
func RankingPosition(c Class) int {
	if i, ok := rankingIndex[c]; ok {
		return i
	}
	return -1
}

// TopPercent returns the leading classes of Ranking whose cumulative
// combo count covers the top pct percent of all 1326 deals. Classes
// are appended while coverage is still below the target, so the last
// class may overshoot slightly; pct <= 0 yields nil and pct >= 100
// yields the full ranking.
func TopPercent(pct float64) []Class {
	if pct <= 0 {
		return nil
	}
	if pct >= 100 {
		out := make([]Class, len(Ranking))
		copy(out, Ranking)
		return out
	}
	need := TotalCombos * pct / 100
	var out []Class
	covered := 0
	for _, c := range Ranking {
		if float64(covered) >= need {
			break
		}
		out = append(out, c)
		covered += c.Combos()
	}
	return out
}

// RangePercent reports what share of all 1326 deals a set of classes
// covers, as a percentage.
func RangePercent(classes []Class) float64 {
	total := 0
	for _, c := range classes {
		total += c.Combos()
	}
	return float64(total) / TotalCombos * 100
}
