// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sedmaker/bpass"
)

// ManifestFile is the manifest name inside the output directory.
const ManifestFile = "manifest.yaml"

// Manifest records what one Run produced.
type Manifest struct {
	RunID     string          `yaml:"run_id"`
	Started   time.Time       `yaml:"started"`
	Finished  time.Time       `yaml:"finished"`
	Library   ManifestLibrary `yaml:"library"`
	Window    bpass.Window    `yaml:"window"`
	SpanYears float64         `yaml:"span_years"` // agegrid.Span
	Workers   int             `yaml:"workers"`
	OnError   ErrorPolicy     `yaml:"on_error"`
	Catalogs  []string        `yaml:"catalogs"`
	Outputs   []Output        `yaml:"outputs"`
	Skipped   []Skipped       `yaml:"skipped,omitempty"`
	Totals    Totals          `yaml:"totals"`
}

// ManifestLibrary mirrors bpass.Library with YAML names.
type ManifestLibrary struct {
	Root             string `yaml:"root"`
	Version          string `yaml:"version"`
	IMF              string `yaml:"imf"`
	WavelengthColumn bool   `yaml:"wavelength_column"`
}

// Output describes one written SED.
type Output struct {
	File        string             `yaml:"file"`
	Family      string             `yaml:"family"`
	Metallicity string             `yaml:"metallicity"`
	Z           float64            `yaml:"z"`
	Binaries    bool               `yaml:"binaries"`
	Params      map[string]float64 `yaml:"params"`
}

// Skipped describes one job that failed under PolicySkip.
type Skipped struct {
	File   string `yaml:"file"`
	Reason string `yaml:"reason"`
}

// Totals summarizes the run.
type Totals struct {
	Planned int `yaml:"planned"`
	Written int `yaml:"written"`
	Skipped int `yaml:"skipped"`
	Tables  int `yaml:"tables"`
}

// WriteManifest marshals m to path.
func WriteManifest(path string, m *Manifest) error {
	out, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("grid.WriteManifest: %w", err)
	}
	if err = os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("grid.WriteManifest: %w", err)
	}

	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid.ReadManifest: %w", err)
	}
	var m Manifest
	if err = yaml.Unmarshal(src, &m); err != nil {
		return nil, fmt.Errorf("grid.ReadManifest(%s): %w", path, err)
	}

	return &m, nil
}
