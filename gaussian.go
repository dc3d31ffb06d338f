package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const (
	// reported until the log says otherwise
	defaultTemp = 298.15
	maxLine     = 1024 * 1024
)

var (
	tempPattern   = regexp.MustCompile(`Temperature\s+(\d+(?:\.\d*)?)\s+Kelvin.*Pressure`)
	basisPattern  = regexp.MustCompile(`(?i)Standard basis:\s*(.*)`)
	methodPattern = regexp.MustCompile(`SCF Done:\s+E\(([^)]+)\)`)
)

// Extraction is everything pulled out of one Gaussian log
type Extraction struct {
	// Energies maps a temperature, formatted to two decimals, to the
	// last energy seen at that temperature
	Energies map[string]float64
	Method   string
	Basis    string
}

// tempKey formats t the way Extraction.Energies is keyed
func tempKey(t float64) string {
	return strconv.FormatFloat(t, 'f', 2, 64)
}

// ParseGaussian scans the Gaussian output in filename for lines
// matching key. The method is taken from the first SCF Done line and
// the basis from the last Standard basis line. A file that cannot be
// opened yields ErrFileNotFound, and one without a matching line
// yields ErrEnergyNotFound along with whatever metadata was found
func ParseGaussian(filename string, key Key) (ret Extraction, err error) {
	f, err := os.Open(ExpandHome(filename))
	if err != nil {
		return ret, fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	defer f.Close()
	ret.Energies = make(map[string]float64)
	pat := key.Pattern()
	temp := tempKey(defaultTemp)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	var (
		line    string
		matches []string
	)
	for scanner.Scan() {
		line = scanner.Text()
		if matches = tempPattern.FindStringSubmatch(line); matches != nil {
			if t, err := strconv.ParseFloat(matches[1], 64); err == nil {
				temp = tempKey(t)
			}
		}
		if matches = basisPattern.FindStringSubmatch(line); matches != nil {
			ret.Basis = strings.TrimRight(matches[1], " \t\r")
		}
		// first one wins, later SCF blocks repeat it
		if ret.Method == "" {
			if matches = methodPattern.FindStringSubmatch(line); matches != nil {
				ret.Method = matches[1]
			}
		}
		if matches = pat.FindStringSubmatch(line); matches != nil {
			v, err := strconv.ParseFloat(matches[1], 64)
			if err != nil {
				return ret, fmt.Errorf("parsing %q in %s: %w",
					matches[1], filename, err)
			}
			ret.Energies[temp] = v
		}
	}
	if err := scanner.Err(); err != nil {
		return ret, fmt.Errorf("reading %s: %w", filename, err)
	}
	if len(ret.Energies) == 0 {
		return ret, ErrEnergyNotFound
	}
	return ret, nil
}

// Lowest returns the energy at the lowest temperature in e
func (e Extraction) Lowest() (temp, energy float64, ok bool) {
	first := true
	for k, v := range e.Energies {
		t, err := strconv.ParseFloat(k, 64)
		if err != nil {
			continue
		}
		if first || t < temp {
			temp, energy, first = t, v, false
		}
	}
	return temp, energy, !first
}
