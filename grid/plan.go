// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sedmaker/sfh"
)

// TableKey identifies one spectra file of the library.
type TableKey struct {
	Metallicity string
	Binaries    bool
}

func (k TableKey) String() string {
	if k.Binaries {
		return "z" + k.Metallicity + "_bin"
	}

	return "z" + k.Metallicity
}

// Job is one SED to synthesize.
type Job struct {
	Index int      // position in plan order
	Key   TableKey // spectra file to convolve with
	Spec  sfh.Spec // star-formation history
	File  string   // output base name, see FileName
	Err   error    // validation failure kept under PolicySkip
}

// Plan expands cfg into jobs ordered metallicity, binaries, sfh block, age,
// then tau or slope. Each spec is validated here: under PolicyAbort the
// first invalid one fails the plan, under PolicySkip it is returned with
// Err set so the runner can record it.
//
// Two jobs that map to the same output file fail the plan with ErrConfig
// under either policy. FileName carries no rate, so this catches repeated
// ages or params as well as same-family blocks that differ only in rate.
//
// Complexity: O(|met|·|bin|·Σ_blocks |ages|·|params|).
func Plan(cfg *Config) ([]Job, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var jobs []Job
	owner := make(map[string]int) // FileName -> job index
	add := func(key TableKey, f sfh.Family, age, rate, param float64) error {
		spec, err := sfh.New(f, age, rate, param)
		if err != nil {
			return fmt.Errorf("grid.Plan: %w", err)
		}
		j := Job{Index: len(jobs), Key: key, Spec: spec, File: FileName(spec, key)}
		if prev, ok := owner[j.File]; ok {
			return configErrorf("sfh", fmt.Errorf("%s written by job %d (%s) and job %d (%s): %w",
				j.File, prev, jobs[prev].Spec, j.Index, spec, ErrDuplicateOutput))
		}
		owner[j.File] = j.Index
		if err := spec.Validate(); err != nil {
			if cfg.OnError == PolicyAbort {
				return fmt.Errorf("grid.Plan(%s): %w", j.File, err)
			}
			j.Err = err
		}
		jobs = append(jobs, j)

		return nil
	}

	for _, met := range cfg.Metallicities {
		for _, bin := range cfg.Binaries {
			key := TableKey{Metallicity: met, Binaries: bin}
			for _, g := range cfg.SFH {
				for _, age := range g.Ages {
					if g.Family == sfh.FamilyConstant {
						if err := add(key, g.Family, age, g.Rate, 0); err != nil {
							return nil, err
						}
						continue
					}
					for _, p := range g.Params {
						if err := add(key, g.Family, age, g.Rate, p); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	return jobs, nil
}

// FileName returns SFH_<exp|const|lin>_a<age>[_t<tau>|_s<slope>]_z<met>[_bin].sed.
// Numbers print in shortest plain decimal form: 10, 0.5, -200.
func FileName(spec sfh.Spec, key TableKey) string {
	var b strings.Builder
	b.WriteString("SFH_")
	b.WriteString(spec.Family().Short())
	switch s := spec.(type) {
	case sfh.Constant:
		b.WriteString("_a" + num(s.Age))
	case sfh.Linear:
		b.WriteString("_a" + num(s.Age) + "_s" + num(s.Slope))
	case sfh.Exponential:
		b.WriteString("_a" + num(s.Age) + "_t" + num(s.Tau))
	}
	b.WriteString("_" + key.String())
	b.WriteString(".sed")

	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
