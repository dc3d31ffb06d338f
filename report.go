package main

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Unit is an output energy unit
type Unit int

const (
	Kcal Unit = iota
	KJ
	Wavenumber
	EV
	UnknownUnit
)

// ParseUnit maps a config file name for a unit to a Unit
func ParseUnit(name string) Unit {
	switch strings.ToLower(name) {
	case "", "kcal":
		return Kcal
	case "kj":
		return KJ
	case "cm", "cm-1", "wavenumber":
		return Wavenumber
	case "ev":
		return EV
	}
	return UnknownUnit
}

// Factor converts kcal/mol to u
func (u Unit) Factor() float64 {
	switch u {
	case KJ:
		return 4.184
	case Wavenumber:
		return 349.757
	case EV:
		return 1 / 23.06
	}
	return 1
}

func (u Unit) String() string {
	switch u {
	case Kcal:
		return "kcal/mol"
	case KJ:
		return "kJ/mol"
	case Wavenumber:
		return "cm-1"
	case EV:
		return "eV"
	}
	return "unknown unit"
}

//go:embed header.tmpl
var Templates embed.FS

var HEADER_TEMPLATE = template.Must(template.ParseFS(Templates, "header.tmpl"))

// Header is the data for the summary block
type Header struct {
	Unit   string
	Mode   string
	Order  string
	Key    string
	Temp   string
	Method string
	Basis  string
	Rule   string
}

// Rescale converts every energy in store to its value relative to ref
// in the configured unit. Total energy mode leaves store alone
func Rescale(store Store, ref Reference, conf Config) {
	if conf.TotEn {
		return
	}
	keys := store.Keys()
	energies := store.Energies()
	floats.AddConst(-ref.Energy, energies)
	floats.Scale(HtToKcal*conf.Unit.Factor(), energies)
	for i, k := range keys {
		store[k].Energy = energies[i]
	}
}

// Ordered returns the records of store in output order
func Ordered(store Store, sorted bool) []*Record {
	ret := make([]*Record, 0, len(store))
	for _, k := range store.Keys() {
		ret = append(ret, store[k])
	}
	if sorted {
		slices.SortStableFunc(ret, func(a, b *Record) bool {
			return a.Energy < b.Energy
		})
	}
	return ret
}

// NewHeader describes the run for the summary block
func NewHeader(conf Config, sum Summary, ref Reference) Header {
	h := Header{
		Unit:   conf.Unit.String(),
		Key:    conf.Key.String(),
		Temp:   sum.Temp,
		Method: sum.Method,
		Basis:  sum.Basis,
		Rule:   strings.Repeat("-", 54),
		Order:  "by file name",
	}
	if conf.Sort {
		h.Order = "ascending energy"
	}
	if conf.TotEn {
		h.Unit = "Hartree"
		h.Mode = "total"
	} else {
		h.Mode = fmt.Sprintf("relative to %s (%s)", ref.Key, ref.Source)
	}
	return h
}

// Report writes the summary block, unless conf.Terse, followed by a
// line for each record in store
func Report(w io.Writer, store Store, conf Config, sum Summary,
	ref Reference) error {
	bw := bufio.NewWriter(w)
	if !conf.Terse {
		err := HEADER_TEMPLATE.Execute(bw, NewHeader(conf, sum, ref))
		if err != nil {
			return err
		}
	}
	for _, rec := range Ordered(store, conf.Sort) {
		fmt.Fprintf(bw, "%-40s %13.*f\n", rec.Key, conf.Precision, rec.Energy)
	}
	return bw.Flush()
}
