package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rshade/countrylist/internal/cli"
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/pkg/version"
)

// Process exit codes.
const (
	exitError       = 1
	exitLoadFailure = 2
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// exitCodeFor maps a command error to the process exit code.
func exitCodeFor(err error) int {
	if errors.Is(err, country.ErrLoadFailure) {
		return exitLoadFailure
	}
	return exitError
}

func main() {
	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}
