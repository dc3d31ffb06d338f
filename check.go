package main

import "strings"

const NotAvailable = "Not available"

// Summary is the metadata shared by every record in a store, or a
// description of how the records disagree
type Summary struct {
	Temp   string
	Method string
	Basis  string
}

// Check compares temperature, method, and basis across all of the
// records in store, warning about each field that differs. store is
// not modified
func Check(store Store, d *Diag) (sum Summary) {
	var (
		temps   []float64
		methods []string
		bases   []string
	)
	for _, k := range store.Keys() {
		rec := store[k]
		temps = append(temps, rec.Temps...)
		// a mixed group counts once, as its Mixed label
		methods = append(methods, rec.Method())
		bases = append(bases, rec.Basis())
	}
	ts := DistinctTemps(temps)
	strs := make([]string, len(ts))
	for i, t := range ts {
		strs[i] = tempKey(t)
	}
	sum.Temp = common("temperatures", strs, d)
	sum.Method = common("methods", Distinct(nonEmpty(methods)), d)
	sum.Basis = common("basis sets", Distinct(nonEmpty(bases)), d)
	return
}

// common describes the sorted distinct values vals of one field
func common(field string, vals []string, d *Diag) string {
	switch len(vals) {
	case 0:
		return NotAvailable
	case 1:
		return vals[0]
	}
	joined := strings.Join(vals, ", ")
	d.Warnf("inconsistent %s: %s", field, joined)
	return "Inconsistent: " + joined
}
