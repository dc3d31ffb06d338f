package main

import (
	"fmt"
	"regexp"
	"strings"
)

// Key selects which quantity is pulled from a log file
type Key int

const (
	SCF Key = iota
	EZPE
	ETH
	ENT
	Gibbs
	CBS0
	CBSE
	CBSH
	CBSG
	nkeys
)

// a number as Gaussian prints it
const num = `(-?\d+\.\d+)`

var keyNames = [nkeys]string{
	SCF:   "scf",
	EZPE:  "ezpe",
	ETH:   "eth",
	ENT:   "ent",
	Gibbs: "Gibbs",
	CBS0:  "cbs0",
	CBSE:  "cbse",
	CBSH:  "cbsh",
	CBSG:  "cbsg",
}

var keyPatterns = [nkeys]*regexp.Regexp{
	SCF:   regexp.MustCompile(`SCF Done:\s+E\(\S+\)\s+=\s+` + num),
	EZPE:  regexp.MustCompile(`Sum of electronic and zero-point Energies=\s+` + num),
	ETH:   regexp.MustCompile(`Sum of electronic and thermal Energies=\s+` + num),
	ENT:   regexp.MustCompile(`Sum of electronic and thermal Enthalpies=\s+` + num),
	Gibbs: regexp.MustCompile(`Sum of electronic and thermal Free Energies=\s+` + num),
	CBS0:  regexp.MustCompile(`CBS-QB3 \(0 K\)=\s+` + num),
	CBSE:  regexp.MustCompile(`CBS-QB3 Energy=\s+` + num),
	CBSH:  regexp.MustCompile(`CBS-QB3 Enthalpy=\s+` + num),
	CBSG:  regexp.MustCompile(`CBS-QB3 Free Energy=\s+` + num),
}

func (k Key) String() string {
	if k < 0 || k >= nkeys {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Pattern returns the regular expression for k. The first submatch is
// the energy in hartree
func (k Key) Pattern() *regexp.Regexp {
	return keyPatterns[k]
}

// Solvent reports whether the fixed solvent correction applies to
// energies extracted with k
func (k Key) Solvent() bool {
	return k == Gibbs || k == CBSG
}

// KeyNames returns the registered key names in registry order
func KeyNames() []string {
	return append([]string(nil), keyNames[:]...)
}

// ParseKey looks up name in the registry
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return -1, fmt.Errorf("%w %q, must be one of: %s",
		ErrUnknownKey, name, strings.Join(keyNames[:], ", "))
}
