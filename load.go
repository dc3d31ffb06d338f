package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RawConf is the TOML configuration file. Fields left out of the file
// stay nil and fall back to the defaults
type RawConf struct {
	TD        *string             `toml:"td"`
	Precision *int                `toml:"precision"`
	Unit      *string             `toml:"unit"`
	Sort      *bool               `toml:"sort"`
	Solvent   *bool               `toml:"solvent"`
	TotEn     *bool               `toml:"toten"`
	Terse     *bool               `toml:"terse"`
	Verbose   *bool               `toml:"verbose"`
	Zero      *string             `toml:"zero"`
	Groups    map[string][]string `toml:"groups"`
}

// Config is the fully resolved set of options for a run
type Config struct {
	Files     []string
	Groups    Groups
	Zero      string
	KeyName   string
	Key       Key
	Precision int
	Unit      Unit
	TotEn     bool
	Sort      bool
	Solvent   bool
	Terse     bool
	Verbose   bool
}

// DefaultConfig returns the settings used when nothing else is given
func DefaultConfig() Config {
	return Config{
		Groups:    make(Groups),
		KeyName:   Gibbs.String(),
		Key:       Gibbs,
		Precision: 1,
		Unit:      Kcal,
		Sort:      true,
	}
}

// LoadConfig reads the TOML configuration in filename
func LoadConfig(filename string) (rc RawConf, err error) {
	cont, err := os.ReadFile(ExpandHome(filename))
	if err != nil {
		return rc, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	err = toml.Unmarshal(cont, &rc)
	if err != nil {
		return rc, fmt.Errorf("%w: %s: %v", ErrConfig, filename, err)
	}
	return rc, nil
}

// Apply overwrites the fields of conf set in rc
func (rc RawConf) Apply(conf *Config) {
	if rc.TD != nil {
		conf.KeyName = *rc.TD
	}
	if rc.Precision != nil {
		conf.Precision = *rc.Precision
	}
	if rc.Unit != nil {
		conf.Unit = ParseUnit(*rc.Unit)
	}
	if rc.Sort != nil {
		conf.Sort = *rc.Sort
	}
	if rc.Solvent != nil {
		conf.Solvent = *rc.Solvent
	}
	if rc.TotEn != nil {
		conf.TotEn = *rc.TotEn
	}
	if rc.Terse != nil {
		conf.Terse = *rc.Terse
	}
	if rc.Verbose != nil {
		conf.Verbose = *rc.Verbose
	}
	if rc.Zero != nil {
		conf.Zero = *rc.Zero
	}
	for slot, files := range rc.Groups {
		conf.Groups.Add(slot, files...)
	}
}

// Finish resolves the extraction key and the precision once every
// source of options has been applied. Total energies force six
// decimals and eV forces three, over any requested precision
func (conf *Config) Finish() error {
	key, err := ParseKey(conf.KeyName)
	if err != nil {
		return err
	}
	conf.Key = key
	if conf.TotEn {
		conf.Precision = 6
	}
	if conf.Unit == EV {
		conf.Precision = 3
	}
	if conf.Precision < 0 {
		return fmt.Errorf("%w: negative precision %d",
			ErrConfig, conf.Precision)
	}
	return nil
}
