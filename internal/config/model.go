package config

import (
	"errors"
	"fmt"
	"math"
)

// DefaultBound is the reference bound analyzed when no configuration
// provides one.
const DefaultBound = 50

// MaxBound is the largest accepted bound. The sieve allocates bound+1
// entries indexed by a platform int, so anything above this cannot be
// represented.
const MaxBound = math.MaxInt - 1

// Analysis is the format-agnostic representation of a single `analysis`
// block: one support computation over the primes up to Bound.
type Analysis struct {
	Name  string
	Bound int
}

// Model is the unified, format-agnostic representation of everything the
// application was asked to analyze, in definition order.
type Model struct {
	Analyses []*Analysis
}

// NewReferenceModel returns the built-in model used when no analysis files
// are provided: a single analysis at the reference bound.
func NewReferenceModel() *Model {
	return &Model{
		Analyses: []*Analysis{{Name: "reference", Bound: DefaultBound}},
	}
}

// Validate checks the model against the configuration invariants: unique,
// non-empty analysis names and bounds inside the representable range.
func (m *Model) Validate() error {
	seen := make(map[string]struct{}, len(m.Analyses))
	for _, a := range m.Analyses {
		if a.Name == "" {
			return errors.New("analysis name cannot be empty")
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("duplicate analysis %q", a.Name)
		}
		seen[a.Name] = struct{}{}

		if a.Bound < 0 {
			return fmt.Errorf("analysis %q: bound must be non-negative, got %d", a.Name, a.Bound)
		}
		if a.Bound > MaxBound {
			return fmt.Errorf("analysis %q: bound %d exceeds the maximum supported value %d", a.Name, a.Bound, MaxBound)
		}
	}
	return nil
}
