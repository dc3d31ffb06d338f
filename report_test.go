package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"", Kcal},
		{"kcal", Kcal},
		{"kJ", KJ},
		{"cm", Wavenumber},
		{"eV", EV},
		{"furlongs", UnknownUnit},
	}
	for _, test := range tests {
		if got := ParseUnit(test.in); got != test.want {
			t.Errorf("%q: got %v, wanted %v\n", test.in, got, test.want)
		}
	}
	if got := UnknownUnit.String(); got != "unknown unit" {
		t.Errorf("got %q, wanted %q\n", got, "unknown unit")
	}
}

func TestRescale(t *testing.T) {
	ref := Reference{Energy: -100.0}
	for _, unit := range []Unit{Kcal, KJ, Wavenumber, EV} {
		store := testStore()
		conf := DefaultConfig()
		conf.Unit = unit
		Rescale(store, ref, conf)
		if got := store["A"].Energy; got != 0 {
			t.Errorf("%v: got %v, wanted 0\n", unit, got)
		}
		want := (-99.9 - -100.0) * HtToKcal * unit.Factor()
		if got := store["B"].Energy; !Equal(got, want) {
			t.Errorf("%v: got %v, wanted %v\n", unit, got, want)
		}
	}
}

func TestRescaleLinear(t *testing.T) {
	ref := Reference{Energy: -100.0}
	kcal, kj := testStore(), testStore()
	conf := DefaultConfig()
	Rescale(kcal, ref, conf)
	conf.Unit = KJ
	Rescale(kj, ref, conf)
	for k := range kcal {
		if !Equal(kj[k].Energy, kcal[k].Energy*4.184) {
			t.Errorf("%s: got %v, wanted %v\n",
				k, kj[k].Energy, kcal[k].Energy*4.184)
		}
	}
}

func TestRescaleTotal(t *testing.T) {
	store := testStore()
	conf := DefaultConfig()
	conf.TotEn = true
	Rescale(store, Reference{Energy: -100.0}, conf)
	if got := store["B"].Energy; got != -99.9 {
		t.Errorf("got %v, wanted %v\n", got, -99.9)
	}
}

func TestOrdered(t *testing.T) {
	store := Store{
		"z": {Key: "z", Energy: 1},
		"y": {Key: "y", Energy: 3},
		"x": {Key: "x", Energy: 2},
		"w": {Key: "w", Energy: 1},
	}
	keys := func(recs []*Record) (ret []string) {
		for _, r := range recs {
			ret = append(ret, r.Key)
		}
		return
	}
	if got, want := strings.Join(keys(Ordered(store, true)), ""), "wzxy"; got != want {
		t.Errorf("got %q, wanted %q\n", got, want)
	}
	if got, want := strings.Join(keys(Ordered(store, false)), ""), "wxyz"; got != want {
		t.Errorf("got %q, wanted %q\n", got, want)
	}
}

func TestReport(t *testing.T) {
	store := Store{
		"A": {Key: "A", Energy: 0},
		"B": {Key: "B", Energy: 62.7509},
	}
	conf := DefaultConfig()
	conf.Terse = true
	var buf bytes.Buffer
	if err := Report(&buf, store, conf, Summary{}, Reference{}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	want := "A                                                  0.0\n" +
		"B                                                 62.8\n"
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

func TestHeader(t *testing.T) {
	conf := DefaultConfig()
	conf.Unit = KJ
	sum := Summary{Temp: "298.15", Method: "RB3LYP", Basis: "Inconsistent: B1, B2"}
	ref := Reference{Key: "A", Source: FromMinimum}
	var buf bytes.Buffer
	if err := Report(&buf, Store{}, conf, sum, ref); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"Units:        kJ/mol\n",
		"Energies:     relative to A (minimum)\n",
		"Ordering:     ascending energy\n",
		"Energy type:  Gibbs\n",
		"Temperature:  298.15\n",
		"Method:       RB3LYP\n",
		"Basis set:    Inconsistent: B1, B2\n",
		"not analyzed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q in\n%s", want, got)
		}
	}
	conf.TotEn = true
	conf.Sort = false
	h := NewHeader(conf, sum, ref)
	if h.Unit != "Hartree" || h.Mode != "total" || h.Order != "by file name" {
		t.Errorf("got %+v for total energies\n", h)
	}
}
