// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sedmaker/bpass"
	"github.com/katalvlaran/sedmaker/sfh"
)

func newLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List metallicity, IMF and SFH family labels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fams := make([]string, 0, 3)
			for _, f := range sfh.Families() {
				fams = append(fams, f.String())
			}
			fmt.Fprintf(out, "metallicities: %s\n", strings.Join(bpass.Metallicities(), " "))
			fmt.Fprintf(out, "imfs:          %s\n", strings.Join(bpass.IMFs(), " "))
			fmt.Fprintf(out, "families:      %s\n", strings.Join(fams, " "))
		},
	}
}
