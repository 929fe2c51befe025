// Package algorithm provides the step-plan generator for the sorting
// trainer. Each supported algorithm registers itself in an init()
// function with a descriptor, a pure simulator that records every swap
// it would perform, and the message derivation for hints and rejected
// moves. The package has no mutable game state; all functions are safe
// to call repeatedly with different inputs.
package algorithm

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknown is returned when an algorithm identifier is not registered.
var ErrUnknown = errors.New("unknown algorithm")

// variant bundles everything the package knows about one algorithm.
type variant struct {
	desc      Descriptor
	simulate  func(seq []int) Plan
	hint      func(s Step) string
	wrongMove func(s Step, a, b int) string
}

var (
	variants = make(map[string]variant)
	mu       sync.RWMutex
)

// register adds an algorithm variant. Called from init() functions.
// Panics if the ID is already registered.
func register(v variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.desc.ID]; exists {
		panic(fmt.Sprintf("algorithm: %q already registered", v.desc.ID))
	}
	variants[v.desc.ID] = v
}

// Lookup returns the descriptor for the given algorithm ID.
func Lookup(id string) (Descriptor, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("algorithm: %w %q", ErrUnknown, id)
	}
	return v.desc, nil
}

// Exists checks if an algorithm with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// List returns the descriptors of all registered algorithms, sorted by ID.
func List() []Descriptor {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Descriptor, 0, len(variants))
	for _, v := range variants {
		result = append(result, v.desc)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered algorithm identifiers, sorted.
func IDs() []string {
	descs := List()
	ids := make([]string, len(descs))
	for i, d := range descs {
		ids[i] = d.ID
	}
	return ids
}

// GeneratePlan simulates the named algorithm over a copy of seq and
// returns the ordered list of swaps it would perform. The input is not
// modified. An already sorted input yields an empty plan.
func GeneratePlan(id string, seq []int) (Plan, error) {
	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("algorithm: %w %q", ErrUnknown, id)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("algorithm: cannot generate plan for empty sequence")
	}

	return v.simulate(seq), nil
}
