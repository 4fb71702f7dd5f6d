// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sedmaker/agegrid"
	"github.com/katalvlaran/sedmaker/sfh"
)

// spec builds the history described by the flags.
func (f *sfhFlags) spec() (sfh.Spec, error) {
	fam, err := sfh.ParseFamily(f.family)
	if err != nil {
		return nil, err
	}
	param := f.tau
	if fam == sfh.FamilyLinear {
		param = f.slope
	}
	spec, err := sfh.New(fam, f.age, f.rate, param)
	if err != nil {
		return nil, err
	}

	return spec, spec.Validate()
}

func newSFHCmd() *cobra.Command {
	var h sfhFlags

	cmd := &cobra.Command{
		Use:   "sfh",
		Short: "Print the SFR of one history at every age bin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := h.spec()
			if err != nil {
				return err
			}
			centers := agegrid.AgeBinCenters()
			rates, err := sfh.Evaluate(spec, centers)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			fmt.Fprintf(w, "# %s\n", spec)
			fmt.Fprintf(w, "# %-14s %s\n", "center_Myr", "SFR_Msun_per_yr")
			for i, c := range centers {
				fmt.Fprintf(w, "%-16.6g %.6e\n", c, rates[i])
			}
			return w.Flush()
		},
	}
	h.register(cmd)

	return cmd
}
