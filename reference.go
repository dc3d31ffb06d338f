package main

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Source says how the zero reference was chosen
type Source int

const (
	FromGroup Source = iota
	FromRecord
	FromMinimum
)

func (s Source) String() string {
	switch s {
	case FromGroup:
		return "group"
	case FromRecord:
		return "record"
	case FromMinimum:
		return "minimum"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Reference is the energy reported as zero
type Reference struct {
	Energy float64
	Source Source
	// Key is the group slot or record key chosen
	Key string
}

// Resolve picks the zero reference for store. In order of precedence
// that is the group energy captured by Combine (when groupOK), the
// record keyed by zero, and finally the lowest energy in store
func Resolve(store Store, zero string, groupEnergy float64, groupOK bool) (
	ref Reference, err error) {
	if len(store) == 0 {
		return ref, ErrNoEnergies
	}
	if groupOK {
		return Reference{Energy: groupEnergy, Source: FromGroup, Key: zero}, nil
	}
	if rec, ok := store[zero]; zero != "" && ok {
		return Reference{Energy: rec.Energy, Source: FromRecord, Key: zero}, nil
	}
	energies := store.Energies()
	min := floats.Min(energies)
	for _, k := range store.Keys() {
		if store[k].Energy == min {
			ref.Key = k
			break
		}
	}
	ref.Energy = min
	ref.Source = FromMinimum
	return
}
