package main

import (
	"fmt"
	"io"
	"log"
)

// Diag collects the warnings raised along the pipeline and, when
// Verbose is non-nil, writes progress lines to it
type Diag struct {
	Warnings []string
	Verbose  io.Writer
	logger   *log.Logger
}

// NewDiag returns a Diag logging warnings to errw. A nil verbose
// writer disables tracing
func NewDiag(errw, verbose io.Writer) *Diag {
	return &Diag{
		Verbose: verbose,
		logger:  log.New(errw, "thermo: warning: ", 0),
	}
}

func (d *Diag) Warnf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	d.Warnings = append(d.Warnings, msg)
	if d.logger != nil {
		d.logger.Println(msg)
	}
}

func (d *Diag) Tracef(format string, a ...interface{}) {
	if d.Verbose == nil {
		return
	}
	fmt.Fprintf(d.Verbose, "   "+format+"\n", a...)
}
