// Command gausscalc is an exact arbitrary-precision calculator for integers
// and Gaussian integers. It can evaluate a single operation, run a concurrent
// demonstration of every operation family, or serve the calculator over HTTP.
package main

import (
	"context"
	"os"

	"github.com/agbru/gausscalc/internal/app"
	apperrors "github.com/agbru/gausscalc/internal/errors"
)

func main() {
	// Version flag works in any argument position and short-circuits
	// configuration parsing entirely.
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	a, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(a.Run(context.Background(), os.Stdout))
}
