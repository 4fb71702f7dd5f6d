// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sedmaker/bpass"
	"github.com/katalvlaran/sedmaker/grid"
	"github.com/katalvlaran/sedmaker/spectra"
)

// sfhFlags are the history parameters shared by sed and sfh.
type sfhFlags struct {
	family string
	age    float64
	rate   float64
	slope  float64
	tau    float64
}

func (f *sfhFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.family, "family", "exponential", "constant|linear|exponential (or const|lin|exp)")
	cmd.Flags().Float64Var(&f.age, "age", 0, "duration of star formation, Myr")
	cmd.Flags().Float64Var(&f.rate, "rate", 1, "SFR at onset, Msun/yr")
	cmd.Flags().Float64Var(&f.slope, "slope", 0, "linear slope, Msun/yr per Myr")
	cmd.Flags().Float64Var(&f.tau, "tau", 0, "exponential e-folding time, Myr")
	_ = cmd.MarkFlagRequired("age")
}

func newSEDCmd(a *app) *cobra.Command {
	var (
		h          sfhFlags
		lib        bpass.Library
		met        string
		binaries   bool
		win        bpass.Window
		normalize  int
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "sed",
		Short: "Synthesize one SED",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := h.spec()
			if err != nil {
				return err
			}
			tbl, err := lib.Load(met, binaries, win)
			if err != nil {
				return err
			}
			s, _, err := spectra.Synthesize(spec, tbl)
			if err != nil {
				return err
			}
			if normalize >= 0 {
				if s, err = s.Normalize(normalize); err != nil {
					return err
				}
			}

			if outputPath == "-" {
				return grid.EncodeSED(cmd.OutOrStdout(), s)
			}
			if outputPath == "" {
				outputPath = grid.FileName(spec, grid.TableKey{Metallicity: met, Binaries: binaries})
			}
			if err = grid.WriteSED(outputPath, s); err != nil {
				return err
			}
			a.log.Info("sed written",
				zap.String("file", outputPath),
				zap.Stringer("sfh", spec),
				zap.Int("rows", s.Len()),
			)
			return nil
		},
	}

	h.register(cmd)
	f := cmd.Flags()
	f.StringVar(&lib.Root, "root", ".", "directory containing the BPASS/ tree")
	f.StringVar(&lib.Version, "version", "2.1", "BPASS release tag")
	f.StringVar(&lib.IMF, "imf", "imf135_300", "IMF label")
	f.BoolVar(&lib.WavelengthColumn, "wavelength-column", false, "spectra files start with a wavelength column")
	f.StringVar(&met, "metallicity", "020", "metallicity label")
	f.BoolVar(&binaries, "binaries", false, "use the binary-population spectra")
	f.IntVar(&win.Start, "start", 0, "first data row")
	f.IntVar(&win.Stop, "stop", 0, "end data row, exclusive (0 = end of file)")
	f.IntVar(&win.Stride, "stride", 1, "keep every n-th row")
	f.IntVar(&normalize, "normalize", -1, "divide by the flux of this row (-1 = off)")
	f.StringVarP(&outputPath, "output", "o", "", "output file, - for stdout (default: derived from parameters)")

	return cmd
}
