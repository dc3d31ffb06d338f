package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// NGROUPS is the number of --gN flags
const NGROUPS = 5

const usage = `usage: thermo [options] file.log ...

Report the energies extracted from Gaussian output files relative to a
common zero, or as totals with --toten.

Options:
`

// groupFlag appends each value to one group slot
type groupFlag struct {
	groups Groups
	slot   string
}

func (g groupFlag) String() string { return "" }

func (g groupFlag) Set(file string) error {
	g.groups.Add(g.slot, file)
	return nil
}

// unitFlag is a boolean flag that writes its unit into a shared
// target, so the last unit flag given wins
type unitFlag struct {
	target *Unit
	unit   Unit
}

func (u unitFlag) String() string   { return "false" }
func (u unitFlag) IsBoolFlag() bool { return true }

func (u unitFlag) Set(s string) error {
	switch s {
	case "true":
		*u.target = u.unit
	case "false":
	default:
		return fmt.Errorf("invalid boolean %q", s)
	}
	return nil
}

// ParseArgs builds the Config for a run from the command line, the
// configuration file it names, and the defaults. Usage goes to out.
// flag.ErrHelp is returned for -h and --help
func ParseArgs(args []string, out, errw io.Writer) (conf Config, err error) {
	fs := flag.NewFlagSet("thermo", flag.ContinueOnError)
	fs.SetOutput(errw)
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.SetOutput(out)
		fs.PrintDefaults()
		fs.SetOutput(errw)
	}
	var (
		cliGroups = make(Groups)
		unit      Unit
		config    = fs.String("config", os.Getenv("THERMO_CONFIG"),
			"TOML file with default options")
		zero = fs.String("zero", "",
			"file, group key, or group number to use as zero")
		td = fs.String("td", Gibbs.String(),
			"energy to extract, one of: "+strings.Join(KeyNames(), ", "))
		precision = fs.Int("precision", 1, "decimal places in the output")
		toten     = fs.Bool("toten", false, "print total energies in hartree")
		nosort    = fs.Bool("nosort", false, "order by file name instead of energy")
		solvent   = fs.Bool("solvent", false,
			"add the solvent correction to free energies")
		verbose = fs.Bool("verbose", false, "print progress information")
		terse   = fs.Bool("terse", false, "skip the summary header")
	)
	for i := 1; i <= NGROUPS; i++ {
		slot := fmt.Sprint(i)
		fs.Var(groupFlag{cliGroups, slot}, "g"+slot,
			"add a file to group "+slot+" (repeatable)")
	}
	fs.Var(unitFlag{&unit, KJ}, "kJ", "report in kJ/mol")
	fs.Var(unitFlag{&unit, Wavenumber}, "cm", "report in wavenumbers")
	fs.Var(unitFlag{&unit, EV}, "ev", "report in eV")

	// the flag package stops at the first positional argument, or
	// after a "--" that ends the flags for good
	var files []string
	for {
		if err = fs.Parse(args); err != nil {
			return
		}
		rest := fs.Args()
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			files = append(files, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}
		files = append(files, rest[0])
		args = rest[1:]
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	conf = DefaultConfig()
	if *config != "" {
		var rc RawConf
		rc, err = LoadConfig(*config)
		if err != nil {
			return
		}
		rc.Apply(&conf)
	}
	conf.Files = files
	for _, slot := range cliGroups.Slots() {
		conf.Groups.Add(slot, cliGroups[slot]...)
	}
	if set["zero"] {
		conf.Zero = *zero
	}
	if set["td"] {
		conf.KeyName = *td
	}
	if set["precision"] {
		conf.Precision = *precision
	}
	if set["kJ"] || set["cm"] || set["ev"] {
		conf.Unit = unit
	}
	if set["toten"] {
		conf.TotEn = *toten
	}
	if set["nosort"] {
		conf.Sort = !*nosort
	}
	if set["solvent"] {
		conf.Solvent = *solvent
	}
	if set["verbose"] {
		conf.Verbose = *verbose
	}
	if set["terse"] {
		conf.Terse = *terse
	}
	err = conf.Finish()
	return
}
