// internal/ranges/table.go
//
// Push/fold range table.
//
// Responsibilities:
//   - Load the pivoted range CSV (rows = stack buckets in big blinds,
//     columns = positions, cells = push percentage) exactly once, from
//     a configured file or the embedded default.
//   - Expand each percentage into per-class push/fold decisions over
//     the fixed 169-class ranking and keep them in a composite-key map.
//   - Serve O(1) lookups; the table is read-only after load and safe
//     for concurrent readers without locking.
//
// CSV format:
//   Stack,UTG,UTG+1,UTG+2,LJ,HJ,CO,BTN,SB,BB
//   10,11,12,13,15,17,20,26,33,18
//
// Environment variables:
//   RANGES_FILE=/path/to/ranges.csv  (optional; embedded data otherwise)
//
// Malformed rows abort the load rather than being skipped: bad range
// data must never silently shrink the training space.

package ranges

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/robalobadob/pushfold-trainer/internal/cards"
)

//go:embed ranges.csv
var embeddedCSV []byte

// Decision is a push/fold recommendation.
type Decision string

const (
	Push Decision = "push"
	Fold Decision = "fold"
)

// ParseDecision validates a decision string.
func ParseDecision(s string) (Decision, error) {
	switch Decision(strings.ToLower(strings.TrimSpace(s))) {
	case Push:
		return Push, nil
	case Fold:
		return Fold, nil
	}
	return "", fmt.Errorf("ranges: invalid decision %q", s)
}

// Load-time and lookup error kinds. Load failures are fatal at
// startup; ErrNotFound at runtime signals a generator/data mismatch
// and must propagate.
var (
	ErrDataFormat  = errors.New("ranges: malformed range data")
	ErrMissingData = errors.New("ranges: incomplete range data")
	ErrNotFound    = errors.New("ranges: combination not found")
)

type cellKey struct {
	stack int
	pos   Position
}

type decisionKey struct {
	stack int
	pos   Position
	class cards.Class
}

// Table maps (stack bucket, position, hand class) to a Decision.
type Table struct {
	buckets   []int
	positions []Position
	percents  map[cellKey]float64
	decisions map[decisionKey]Decision
}

// LoadFromEnv loads the table from RANGES_FILE if set, otherwise from
// the embedded default data.
func LoadFromEnv() (*Table, error) {
	if path := os.Getenv("RANGES_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Load(f)
	}
	return Load(bytes.NewReader(embeddedCSV))
}

// Load parses the range CSV and precomputes every decision.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrDataFormat, err)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "Stack" {
		return nil, fmt.Errorf("%w: header must start with Stack column", ErrDataFormat)
	}
	positions := make([]Position, 0, len(header)-1)
	for _, h := range header[1:] {
		p, err := ParsePosition(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
		}
		positions = append(positions, p)
	}

	t := &Table{
		positions: positions,
		percents:  make(map[cellKey]float64),
		decisions: make(map[decisionKey]Decision),
	}

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDataFormat, line, err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: line %d: expected %d columns, got %d", ErrDataFormat, line, len(header), len(row))
		}
		stack, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || stack <= 0 {
			return nil, fmt.Errorf("%w: line %d: invalid stack %q", ErrDataFormat, line, row[0])
		}
		if _, dup := t.percents[cellKey{stack, positions[0]}]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate stack bucket %d", ErrDataFormat, line, stack)
		}
		for i, p := range positions {
			cell := strings.TrimSpace(row[i+1])
			if cell == "" {
				return nil, fmt.Errorf("%w: no percentage for %dBB %s", ErrMissingData, stack, p)
			}
			pct, err := strconv.ParseFloat(cell, 64)
			if err != nil || pct < 0 || pct > 100 {
				return nil, fmt.Errorf("%w: line %d: invalid percentage %q for %s", ErrDataFormat, line, cell, p)
			}
			t.percents[cellKey{stack, p}] = pct
		}
		t.buckets = append(t.buckets, stack)
	}
	if len(t.buckets) == 0 {
		return nil, fmt.Errorf("%w: no stack rows", ErrMissingData)
	}
	sort.Ints(t.buckets)

	t.expand()
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// expand turns each (bucket, position) percentage into a full
// 169-class decision map.
func (t *Table) expand() {
	for _, stack := range t.buckets {
		for _, p := range t.positions {
			push := make(map[cards.Class]struct{})
			for _, c := range cards.TopPercent(t.percents[cellKey{stack, p}]) {
				push[c] = struct{}{}
			}
			for _, c := range cards.Ranking {
				d := Fold
				if _, ok := push[c]; ok {
					d = Push
				}
				t.decisions[decisionKey{stack, p, c}] = d
			}
		}
	}
}

// validate checks that every (bucket, position, class) combination the
// generator can produce has a decision.
func (t *Table) validate() error {
	for _, stack := range t.buckets {
		for _, p := range t.positions {
			for _, c := range cards.Ranking {
				if _, ok := t.decisions[decisionKey{stack, p, c}]; !ok {
					return fmt.Errorf("%w: no decision for %dBB %s %s", ErrMissingData, stack, p, c)
				}
			}
		}
	}
	return nil
}

// Lookup returns the decision for an exact stack bucket, position and
// hand class. A miss wraps ErrNotFound and must not be defaulted away
// by callers.
func (t *Table) Lookup(stack int, pos Position, class cards.Class) (Decision, error) {
	d, ok := t.decisions[decisionKey{stack, pos, class}]
	if !ok {
		return "", fmt.Errorf("%w: %dBB %s %s", ErrNotFound, stack, pos, class)
	}
	return d, nil
}

// PushPercent returns the raw push percentage for a cell.
func (t *Table) PushPercent(stack int, pos Position) (float64, error) {
	pct, ok := t.percents[cellKey{stack, pos}]
	if !ok {
		return 0, fmt.Errorf("%w: %dBB %s", ErrNotFound, stack, pos)
	}
	return pct, nil
}

// NearestBucket snaps an arbitrary stack size to the closest loaded
// bucket. Ties go to the smaller bucket.
func (t *Table) NearestBucket(stack float64) int {
	best := t.buckets[0]
	for _, b := range t.buckets[1:] {
		if abs(float64(b)-stack) < abs(float64(best)-stack) {
			best = b
		}
	}
	return best
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Buckets returns the loaded stack buckets, ascending.
func (t *Table) Buckets() []int {
	out := make([]int, len(t.buckets))
	copy(out, t.buckets)
	return out
}

// Positions returns the loaded position set in CSV column order.
func (t *Table) Positions() []Position {
	out := make([]Position, len(t.positions))
	copy(out, t.positions)
	return out
}

// Stats returns counts of loaded buckets and positions.
func (t *Table) Stats() (buckets int, positions int) {
	return len(t.buckets), len(t.positions)
}
