package main

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	HtToKcal = 627.509 // kcal/mol per hartree
	// added to free energies with --solvent
	SolventCorr = 1.89 / HtToKcal
)

// Record is the energy of one file or of one group of files. Energy
// starts in hartree and is rescaled in place by Rescale
type Record struct {
	Key    string
	Energy float64
	// Temps, Methods, and Bases hold the distinct values behind the
	// record, more than one only for a mixed group
	Temps   []float64
	Methods []string
	Bases   []string
}

func (r *Record) Temp() string   { return TempLabel("Mixed: ", r.Temps) }
func (r *Record) Method() string { return Label("Mixed: ", r.Methods) }
func (r *Record) Basis() string  { return Label("Mixed: ", r.Bases) }

func (r *Record) String() string {
	return fmt.Sprintf("%s: %.6f at %s K (%s/%s)",
		r.Key, r.Energy, r.Temp(), r.Method(), r.Basis())
}

// Store holds the records by key
type Store map[string]*Record

// Keys returns the keys of s in lexicographic order
func (s Store) Keys() []string {
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}

// Energies returns the energies of s in Keys order
func (s Store) Energies() []float64 {
	ret := make([]float64, 0, len(s))
	for _, k := range s.Keys() {
		ret = append(ret, s[k].Energy)
	}
	return ret
}

// Unique returns files in their first-seen order with duplicates
// removed
func Unique(files []string) []string {
	seen := make(map[string]bool, len(files))
	ret := make([]string, 0, len(files))
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			ret = append(ret, f)
		}
	}
	return ret
}

type scan struct {
	ext Extraction
	err error
}

// Populate extracts key from every distinct file and builds the
// Store. Files are scanned concurrently but the store is only written
// once all the scans are done. Files without an energy are left out
// with a warning
func Populate(files []string, key Key, solvent bool, d *Diag) Store {
	files = Unique(files)
	scans := make([]scan, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			ext, err := ParseGaussian(file, key)
			scans[i] = scan{ext, err}
			return nil
		})
	}
	g.Wait()

	store := make(Store, len(files))
	for i, file := range files {
		ext, err := scans[i].ext, scans[i].err
		switch {
		case errors.Is(err, ErrFileNotFound):
			d.Warnf("unable to open %s, skipping", file)
			continue
		case errors.Is(err, ErrEnergyNotFound):
			d.Warnf("no energy value extracted for %s (%s)", file, key)
			continue
		case err != nil:
			d.Warnf("%v", err)
			continue
		}
		temp, energy, ok := ext.Lowest()
		if !ok {
			d.Warnf("no energy value extracted for %s (%s)", file, key)
			continue
		}
		if solvent && key.Solvent() {
			energy += SolventCorr
		}
		rec := &Record{
			Key:     file,
			Energy:  energy,
			Temps:   []float64{temp},
			Methods: nonEmpty([]string{ext.Method}),
			Bases:   nonEmpty([]string{ext.Basis}),
		}
		d.Tracef("%s", rec)
		store[file] = rec
	}
	return store
}
