package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/featmatrix/internal/app"
	"github.com/vk/featmatrix/internal/cli"
	"github.com/vk/featmatrix/internal/hcl"
)

// main is the entrypoint for the featmatrix application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. A finished sweep with at least one failed configuration yields
// an ExitError with code 1: the process exit status is the overall verdict.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// NewApp panics on critical startup errors (unreadable or invalid
	// manifest); recover to give the user a clean exit message.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	matrixApp := app.NewApp(outW, appConfig, loader, nil)

	if err := matrixApp.Run(context.Background(), appConfig); err != nil {
		return err
	}
	if matrixApp.Report().HasFailures() {
		return &cli.ExitError{Code: 1, Message: "one or more configurations failed"}
	}
	return nil
}
