package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/termdrills/internal/app"
	"github.com/agbru/termdrills/internal/config"
	apperrors "github.com/agbru/termdrills/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout, "wordfreq")
		return
	}

	application, err := app.New(config.ProgramFrequency, os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}

	exitCode := application.Run(context.Background(), os.Stdin, os.Stdout)
	os.Exit(exitCode)
}
