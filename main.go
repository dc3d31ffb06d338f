package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// Errors
var (
	ErrUnknownKey     = errors.New("unknown energy type")
	ErrFileNotFound   = errors.New("output file not found")
	ErrEnergyNotFound = errors.New("energy not found in output")
	ErrNoEnergies     = errors.New("no energies to report")
	ErrConfig         = errors.New("bad configuration")
)

// Pipeline takes conf from the raw files to the final store, ready to
// report
func Pipeline(conf Config, d *Diag) (Store, Summary, Reference, error) {
	files := append(append([]string(nil), conf.Files...), conf.Groups.Files()...)
	d.Tracef("extracting %s from %d files", conf.Key, len(Unique(files)))
	store := Populate(files, conf.Key, conf.Solvent, d)
	d.Tracef("combining %d groups", len(conf.Groups.Slots()))
	groupZero, groupOK := Combine(store, conf.Groups, conf.Zero, d)
	sum := Check(store, d)
	ref, err := Resolve(store, conf.Zero, groupZero, groupOK)
	if err != nil {
		return store, sum, ref, err
	}
	d.Tracef("zero is %s from %s at %.8f", ref.Key, ref.Source, ref.Energy)
	Rescale(store, ref, conf)
	return store, sum, ref, nil
}

// run is main without the exit, returning the status instead
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "thermo: ", 0)
	conf, err := ParseArgs(args, stdout, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, ErrUnknownKey), errors.Is(err, ErrConfig):
		logger.Println(err)
		return 1
	case err != nil:
		// the flag package already printed it
		return 2
	}
	var verbose io.Writer
	if conf.Verbose {
		verbose = stdout
	}
	d := NewDiag(stderr, verbose)
	store, sum, ref, err := Pipeline(conf, d)
	if err != nil {
		logger.Println(err)
		return 1
	}
	if err := Report(stdout, store, conf, sum, ref); err != nil {
		logger.Println(fmt.Errorf("writing report: %w", err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
