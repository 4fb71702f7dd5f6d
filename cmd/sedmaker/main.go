// SPDX-License-Identifier: MIT

// Command sedmaker builds galaxy SEDs from BPASS spectral libraries.
//
//	sedmaker run grid.hcl            # batch grid, see package grid
//	sedmaker sed --family exp ...    # one SED
//	sedmaker sfh --family lin ...    # print an SFR vector
//	sedmaker labels                  # known metallicity and IMF labels
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/sedmaker/bpass"
	"github.com/katalvlaran/sedmaker/grid"
	"github.com/katalvlaran/sedmaker/sfh"
)

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sedmaker:", err)
		os.Exit(exitCode(err))
	}
}

// run executes the command line args; it never calls os.Exit.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	root := newRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// exitCode maps input mistakes to exitUsage and everything else to exitFailure.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage),
		errors.Is(err, grid.ErrConfig),
		errors.Is(err, bpass.ErrUnknownLabel),
		errors.Is(err, sfh.ErrUnknownFamily),
		errors.Is(err, sfh.ErrInvalidParameter):
		return exitUsage
	}

	return exitFailure
}
