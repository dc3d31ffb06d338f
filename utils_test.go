package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/qc")
	tests := []struct {
		in, want string
	}{
		{"~/logs/a.log", filepath.Join("/home/qc", "logs/a.log")},
		{"~", "/home/qc"},
		{"logs/~a.log", "logs/~a.log"},
		{"~user/a.log", "~user/a.log"},
	}
	for _, test := range tests {
		if got := ExpandHome(test.in); got != test.want {
			t.Errorf("got %q, wanted %q\n", got, test.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{
			a:    1.0000000000000001,
			b:    1.0,
			want: true,
		},
		{
			a:    1.1,
			b:    1.0,
			want: false,
		},
		{
			a:    21947.56653129875,
			b:    21947.5665313,
			want: true,
		},
		{
			a:    21947.567,
			b:    21947.5665313,
			want: false,
		},
	}
	for _, test := range tests {
		got := Equal(test.a, test.b)
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestDistinct(t *testing.T) {
	got := Distinct([]string{"M2", "M1", "M2"})
	want := []string{"M1", "M2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	temps := DistinctTemps([]float64{1000, 298.15, 298.151, 500})
	wantTemps := []float64{298.15, 500, 1000}
	if len(temps) != 3 || temps[1] != 500 || temps[2] != 1000 ||
		!Equal(temps[0], 298.15) && !Equal(temps[0], 298.151) {
		t.Errorf("got %v, wanted %v\n", temps, wantTemps)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		vals []string
		want string
	}{
		{nil, ""},
		{[]string{"B1"}, "B1"},
		{[]string{"B1", "B2"}, "Mixed: B1, B2"},
	}
	for _, test := range tests {
		if got := Label("Mixed: ", test.vals); got != test.want {
			t.Errorf("got %q, wanted %q\n", got, test.want)
		}
	}
	if got, want := TempLabel("Mixed: ", []float64{298.15, 400}),
		"Mixed: 298.15, 400.00"; got != want {
		t.Errorf("got %q, wanted %q\n", got, want)
	}
}
