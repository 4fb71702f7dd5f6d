// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/sedmaker/bpass"
	"github.com/katalvlaran/sedmaker/sfh"
)

// ErrorPolicy selects what Runner does when one job fails.
type ErrorPolicy string

const (
	// PolicyAbort stops the run at the first failure.
	PolicyAbort ErrorPolicy = "abort"
	// PolicySkip logs the failure, records it and continues.
	PolicySkip ErrorPolicy = "skip"
)

// ParseErrorPolicy accepts "abort" or "skip".
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(s); p {
	case PolicyAbort, PolicySkip:
		return p, nil
	}

	return "", fmt.Errorf("on_error %q (want abort|skip): %w", s, ErrConfig)
}

// Defaults applied when the grid file omits an attribute.
const (
	DefaultWorkers = 1
	DefaultPolicy  = PolicyAbort
	NoNormalize    = -1
)

// SFHGrid is one sfh block: a family, its ages, one onset rate and the
// family-specific parameter axis (taus for exponential, slopes for linear).
type SFHGrid struct {
	Family sfh.Family
	Ages   []float64
	Rate   float64
	Params []float64
}

// Config is a decoded and validated grid description.
type Config struct {
	Library       bpass.Library
	Window        bpass.Window
	OutputDir     string
	Catalog       string
	NormalizeRow  int // NoNormalize, or the row whose flux becomes 1
	Metallicities []string
	Binaries      []bool
	Workers       int
	OnError       ErrorPolicy
	SFH           []SFHGrid
}

// ---------- HCL schema ----------

type hclFile struct {
	Library       hclLibrary `hcl:"library,block"`
	Window        *hclWindow `hcl:"window,block"`
	Output        hclOutput  `hcl:"output,block"`
	Metallicities []string   `hcl:"metallicities"`
	Binaries      []bool     `hcl:"binaries,optional"`
	Workers       int        `hcl:"workers,optional"`
	OnError       string     `hcl:"on_error,optional"`
	SFH           []*hclSFH  `hcl:"sfh,block"`
}

type hclLibrary struct {
	Root             string `hcl:"root"`
	Version          string `hcl:"version"`
	IMF              string `hcl:"imf"`
	WavelengthColumn bool   `hcl:"wavelength_column,optional"`
}

type hclWindow struct {
	Start  int  `hcl:"start,optional"`
	Stop   int  `hcl:"stop,optional"`
	Stride *int `hcl:"stride,optional"`
}

type hclOutput struct {
	Dir       string `hcl:"dir"`
	Catalog   string `hcl:"catalog"`
	Normalize *int   `hcl:"normalize_row,optional"`
}

type hclSFH struct {
	Family string    `hcl:"family,label"`
	Ages   []float64 `hcl:"ages"`
	Rate   float64   `hcl:"rate"`
	Taus   []float64 `hcl:"taus,optional"`
	Slopes []float64 `hcl:"slopes,optional"`
}

// EvalContext exposes the label vocabularies to grid files, so
// `metallicities = all_metallicities` expands to every BPASS metallicity.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"all_metallicities": stringList(bpass.Metallicities()),
			"all_imfs":          stringList(bpass.IMFs()),
		},
	}
}

func stringList(ss []string) cty.Value {
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}

	return cty.ListVal(vals)
}

// LoadConfig reads, decodes and validates the grid file at path.
func LoadConfig(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf(path, err)
	}

	return ParseConfig(src, path)
}

// ParseConfig decodes and validates HCL source; filename is used in diagnostics.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, configErrorf("parse "+filename, diags)
	}

	raw := hclFile{Workers: DefaultWorkers, OnError: string(DefaultPolicy)}
	diags = gohcl.DecodeBody(file.Body, EvalContext(), &raw)
	if diags.HasErrors() {
		return nil, configErrorf("decode "+filename, diags)
	}
	cfg, err := raw.toConfig()
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (f *hclFile) toConfig() (*Config, error) {
	cfg := &Config{
		Library: bpass.Library{
			Root:             f.Library.Root,
			Version:          f.Library.Version,
			IMF:              f.Library.IMF,
			WavelengthColumn: f.Library.WavelengthColumn,
		},
		Window:        bpass.FullWindow,
		OutputDir:     f.Output.Dir,
		Catalog:       f.Output.Catalog,
		NormalizeRow:  NoNormalize,
		Metallicities: f.Metallicities,
		Binaries:      f.Binaries,
		Workers:       f.Workers,
	}
	if f.Window != nil {
		cfg.Window = bpass.Window{Start: f.Window.Start, Stop: f.Window.Stop, Stride: 1}
		if f.Window.Stride != nil {
			cfg.Window.Stride = *f.Window.Stride
		}
	}
	if f.Output.Normalize != nil {
		cfg.NormalizeRow = *f.Output.Normalize
	}
	if f.Binaries == nil {
		cfg.Binaries = []bool{false, true}
	}

	policy, err := ParseErrorPolicy(f.OnError)
	if err != nil {
		return nil, err
	}
	cfg.OnError = policy

	for i, b := range f.SFH {
		fam, err := sfh.ParseFamily(b.Family)
		if err != nil {
			return nil, configErrorf(fmt.Sprintf("sfh[%d]", i), err)
		}
		g := SFHGrid{Family: fam, Ages: b.Ages, Rate: b.Rate}
		switch fam {
		case sfh.FamilyExponential:
			if len(b.Slopes) > 0 {
				return nil, configErrorf(fmt.Sprintf("sfh[%d] %s", i, fam), errors.New("slopes apply to linear only"))
			}
			g.Params = b.Taus
		case sfh.FamilyLinear:
			if len(b.Taus) > 0 {
				return nil, configErrorf(fmt.Sprintf("sfh[%d] %s", i, fam), errors.New("taus apply to exponential only"))
			}
			g.Params = b.Slopes
		default:
			if len(b.Taus) > 0 || len(b.Slopes) > 0 {
				return nil, configErrorf(fmt.Sprintf("sfh[%d] %s", i, fam), errors.New("constant takes no taus or slopes"))
			}
		}
		cfg.SFH = append(cfg.SFH, g)
	}

	return cfg, nil
}

// Validate checks labels, axes and run settings. Parameter values (age,
// rate, tau) are checked per job by Plan.
func (c *Config) Validate() error {
	if err := c.Library.Validate(); err != nil {
		return configErrorf("library", err)
	}
	if err := c.Window.Validate(); err != nil {
		return configErrorf("window", err)
	}
	if c.OutputDir == "" {
		return configErrorf("output.dir", errors.New("empty"))
	}
	if c.Catalog == "" {
		return configErrorf("output.catalog", errors.New("empty"))
	}
	if c.NormalizeRow < NoNormalize {
		return configErrorf("output.normalize_row", fmt.Errorf("%d is negative", c.NormalizeRow))
	}

	if len(c.Metallicities) == 0 {
		return configErrorf("metallicities", ErrEmptyGrid)
	}
	seen := make(map[string]bool, len(c.Metallicities))
	for _, m := range c.Metallicities {
		if err := bpass.CheckMetallicity(m); err != nil {
			return configErrorf("metallicities", err)
		}
		if seen[m] {
			return configErrorf("metallicities", fmt.Errorf("duplicate %q", m))
		}
		seen[m] = true
	}

	if len(c.Binaries) == 0 {
		return configErrorf("binaries", ErrEmptyGrid)
	}
	if len(c.Binaries) > 2 || (len(c.Binaries) == 2 && c.Binaries[0] == c.Binaries[1]) {
		return configErrorf("binaries", fmt.Errorf("duplicate values in %v", c.Binaries))
	}

	if c.Workers < 1 {
		return configErrorf("workers", fmt.Errorf("%d < 1", c.Workers))
	}
	if _, err := ParseErrorPolicy(string(c.OnError)); err != nil {
		return err
	}

	if len(c.SFH) == 0 {
		return configErrorf("sfh", ErrEmptyGrid)
	}
	for i, g := range c.SFH {
		field := fmt.Sprintf("sfh[%d] %s", i, g.Family)
		if len(g.Ages) == 0 {
			return configErrorf(field+" ages", ErrEmptyGrid)
		}
		if g.Family != sfh.FamilyConstant && len(g.Params) == 0 {
			return configErrorf(field+" "+paramAxis(g.Family), ErrEmptyGrid)
		}
	}

	return nil
}

// paramAxis names the per-family parameter list in the grid file.
func paramAxis(f sfh.Family) string {
	switch f {
	case sfh.FamilyExponential:
		return "taus"
	case sfh.FamilyLinear:
		return "slopes"
	}

	return ""
}
