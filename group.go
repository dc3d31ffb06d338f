package main

import (
	"strconv"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// GroupSep is prefixed to each member path in a composite key
const GroupSep = "+"

// Groups maps a slot identifier to the files combined in that slot
type Groups map[string][]string

// Add appends files to slot
func (g Groups) Add(slot string, files ...string) {
	g[slot] = append(g[slot], files...)
}

// Slots returns the non-empty slot identifiers, numeric ones first in
// numeric order and the rest lexicographically
func (g Groups) Slots() []string {
	slots := make([]string, 0, len(g))
	for s, files := range g {
		if len(files) > 0 {
			slots = append(slots, s)
		}
	}
	slices.SortFunc(slots, func(a, b string) bool {
		ai, aerr := strconv.Atoi(a)
		bi, berr := strconv.Atoi(b)
		switch {
		case aerr == nil && berr == nil:
			return ai < bi
		case aerr == nil:
			return true
		case berr == nil:
			return false
		}
		return a < b
	})
	return slots
}

// Files returns every file named by any group
func (g Groups) Files() (ret []string) {
	for _, s := range g.Slots() {
		ret = append(ret, g[s]...)
	}
	return
}

// CompositeKey builds the store key for a group of files
func CompositeKey(files []string) string {
	var key string
	for _, f := range files {
		key += GroupSep + f
	}
	return key
}

// Composite sums the members of files found in store into a single
// record, reconciling their metadata. The bool is false if none of
// the members are in store
func Composite(store Store, files []string) (*Record, bool) {
	var (
		energies []float64
		temps    []float64
		methods  []string
		bases    []string
	)
	for _, f := range files {
		rec, ok := store[f]
		if !ok {
			continue
		}
		energies = append(energies, rec.Energy)
		temps = append(temps, rec.Temps...)
		methods = append(methods, rec.Methods...)
		bases = append(bases, rec.Bases...)
	}
	if len(energies) == 0 {
		return nil, false
	}
	return &Record{
		Key:     CompositeKey(files),
		Energy:  floats.Sum(energies),
		Temps:   DistinctTemps(temps),
		Methods: Distinct(methods),
		Bases:   Distinct(bases),
	}, true
}

// Combine replaces the members of each group in store with their
// composite record. If zero names a group slot, the sum for that group
// is returned as the zero reference with ok set
func Combine(store Store, groups Groups, zero string, d *Diag) (
	zeroEnergy float64, ok bool) {
	consumed := make(map[string]struct{})
	for _, slot := range groups.Slots() {
		files := groups[slot]
		for _, f := range files {
			consumed[f] = struct{}{}
		}
		rec, found := Composite(store, files)
		if !found {
			d.Warnf("group %s has no energies, skipping", slot)
			continue
		}
		if len(rec.Methods) > 1 {
			d.Warnf("group %s mixes methods: %s", slot, rec.Method())
		}
		if len(rec.Bases) > 1 {
			d.Warnf("group %s mixes basis sets: %s", slot, rec.Basis())
		}
		if len(rec.Temps) > 1 {
			d.Warnf("group %s mixes temperatures: %s", slot, rec.Temp())
		}
		d.Tracef("group %s: %s", slot, rec)
		store[rec.Key] = rec
		if zero == slot {
			zeroEnergy, ok = rec.Energy, true
		}
	}
	for f := range consumed {
		delete(store, f)
	}
	return
}
