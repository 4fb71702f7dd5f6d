// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sedmaker/grid"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		workers int
		onError string
	)

	cmd := &cobra.Command{
		Use:   "run <grid.hcl>",
		Short: "Execute an SED grid described by an HCL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := grid.LoadConfig(args[0])
			if err != nil {
				return err
			}

			opts := []grid.Option{grid.WithLogger(a.log)}
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return fmt.Errorf("--workers %d must be ≥ 1: %w", workers, errUsage)
				}
				opts = append(opts, grid.WithWorkers(workers))
			}
			if onError != "" {
				p, err := grid.ParseErrorPolicy(onError)
				if err != nil {
					return err
				}
				opts = append(opts, grid.WithErrorPolicy(p))
			}

			r, err := grid.NewRunner(cfg, opts...)
			if err != nil {
				return err
			}
			m, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}

			a.log.Debug("manifest written", zap.String("dir", cfg.OutputDir))
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d SEDs written, %d skipped, %s\n",
				m.RunID, m.Totals.Written, m.Totals.Skipped, cfg.OutputDir)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel table groups (overrides the grid file)")
	cmd.Flags().StringVar(&onError, "on-error", "", "abort|skip (overrides the grid file)")

	return cmd
}
