package main

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ExpandHome replaces a leading ~ in path with the user's home
// directory. path is returned unchanged if there is no home
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Distinct returns the unique values of strs in ascending order
func Distinct(strs []string) []string {
	set := make(map[string]struct{}, len(strs))
	for _, s := range strs {
		set[s] = struct{}{}
	}
	ret := maps.Keys(set)
	slices.Sort(ret)
	return ret
}

// DistinctTemps returns the unique temperatures in temps in ascending
// order. Temperatures are compared at two decimals
func DistinctTemps(temps []float64) []float64 {
	set := make(map[string]float64, len(temps))
	for _, t := range temps {
		set[tempKey(t)] = t
	}
	ret := maps.Values(set)
	slices.Sort(ret)
	return ret
}

// Label joins vals behind prefix, or returns the single value as is
func Label(prefix string, vals []string) string {
	switch len(vals) {
	case 0:
		return ""
	case 1:
		return vals[0]
	}
	return prefix + strings.Join(vals, ", ")
}

// TempLabel is Label for temperatures
func TempLabel(prefix string, temps []float64) string {
	strs := make([]string, len(temps))
	for i, t := range temps {
		strs[i] = tempKey(t)
	}
	return Label(prefix, strs)
}

// nonEmpty drops the blank entries of strs
func nonEmpty(strs []string) []string {
	ret := make([]string, 0, len(strs))
	for _, s := range strs {
		if s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}
