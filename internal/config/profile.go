// internal/config/profile.go
//
// Trainer profile: an optional YAML file that narrows what a quiz
// drills. A profile can restrict the stack buckets and positions to a
// subset of the loaded range table, set the rounds per quiz, and pick
// the hand sampling mode. Missing fields fall back to table-wide
// defaults.

package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/pushfold-trainer/internal/ranges"
	"github.com/robalobadob/pushfold-trainer/internal/trainer"
)

// Profile contains trainer profile YAML content.
type Profile struct {
	Rounds     int      `yaml:"rounds"`
	SampleMode string   `yaml:"sample-mode"`
	Stacks     []int    `yaml:"stacks"`
	Positions  []string `yaml:"positions"`
}

// ReadProfile reads and parses a trainer profile file.
func ReadProfile(fileName string) (*Profile, error) {
	bytes, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading profile file %s", fileName)
	}
	var profile Profile
	if err := yaml.Unmarshal(bytes, &profile); err != nil {
		return nil, errors.Wrapf(err, "error parsing profile file %s", fileName)
	}
	return &profile, nil
}

// ReadProfileFromEnv loads TRAINER_PROFILE if set, otherwise an empty
// profile (all defaults).
func ReadProfileFromEnv() (*Profile, error) {
	if path := os.Getenv("TRAINER_PROFILE"); path != "" {
		return ReadProfile(path)
	}
	return &Profile{}, nil
}

// Resolved is a profile checked against a loaded range table.
type Resolved struct {
	Rounds    int
	Mode      trainer.SampleMode
	Stacks    []int
	Positions []ranges.Position
}

// Resolve validates the profile against the table: every listed stack
// must be a loaded bucket and every position a loaded column. Empty
// lists mean "everything the table has".
func (p *Profile) Resolve(t *ranges.Table) (Resolved, error) {
	r := Resolved{Rounds: p.Rounds}

	mode, err := trainer.ParseSampleMode(p.SampleMode)
	if err != nil {
		return Resolved{}, errors.Wrap(err, "invalid profile")
	}
	r.Mode = mode

	if len(p.Stacks) == 0 {
		r.Stacks = t.Buckets()
	} else {
		loaded := make(map[int]bool)
		for _, b := range t.Buckets() {
			loaded[b] = true
		}
		for _, s := range p.Stacks {
			if !loaded[s] {
				return Resolved{}, errors.Errorf("profile stack %dBB is not a loaded bucket", s)
			}
		}
		r.Stacks = append([]int(nil), p.Stacks...)
	}

	if len(p.Positions) == 0 {
		r.Positions = t.Positions()
	} else {
		loaded := make(map[ranges.Position]bool)
		for _, pos := range t.Positions() {
			loaded[pos] = true
		}
		for _, s := range p.Positions {
			pos, err := ranges.ParsePosition(s)
			if err != nil {
				return Resolved{}, errors.Wrap(err, "invalid profile")
			}
			if !loaded[pos] {
				return Resolved{}, errors.Errorf("profile position %s is not in the loaded table", pos)
			}
			r.Positions = append(r.Positions, pos)
		}
	}
	return r, nil
}
