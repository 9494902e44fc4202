package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/gausscalc/internal/cli"
	"github.com/agbru/gausscalc/internal/config"
	apperrors "github.com/agbru/gausscalc/internal/errors"
	"github.com/agbru/gausscalc/internal/orchestration"
	"github.com/agbru/gausscalc/internal/server"
	"github.com/agbru/gausscalc/internal/service"
	"github.com/agbru/gausscalc/internal/ui"
)

// Application represents the gausscalc application instance.
// It encapsulates the configuration and provides methods to run
// the application in various modes (CLI, demo, server).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Service evaluates operations by name.
	// Uses the interface type for better testability and dependency injection.
	Service service.Service
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	svc := service.NewCalculator()
	availableOps := svc.List()

	// args[0] is program name, args[1:] are the actual arguments
	programName := "gausscalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableOps)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Service:   svc,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the appropriate handler (server, demo, or single
// operation).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Server mode
	if a.Config.ServerMode {
		return a.runServer()
	}

	// Single-operation mode
	if a.Config.Op != "" {
		return a.runCompute(ctx, out)
	}

	// Demo mode (also the default when nothing else is selected)
	return a.runDemo(ctx, out)
}

// runServer starts the HTTP server mode.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Config, server.WithService(a.Service))
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runDemo runs the concurrent demonstration of every operation family.
func (a *Application) runDemo(ctx context.Context, out io.Writer) int {
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// In quiet mode, use a discard writer for progress display
	progressOut := out
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
	}

	results := orchestration.RunDemo(ctx, a.Service, progressOut)

	if a.Config.JSONOutput {
		return printJSONDemoResults(results, out)
	}
	return orchestration.AnalyzeDemoResults(results, out)
}

// runCompute evaluates the single configured operation.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	args := a.Config.OperandList()
	start := time.Now()
	result, err := a.Service.Compute(ctx, a.Config.Op, args)
	duration := time.Since(start)

	if err != nil {
		return apperrors.HandleComputationError(err, duration, a.ErrWriter, colorProvider{})
	}

	if a.Config.JSONOutput {
		return printJSONResult(result, duration, out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if outputCfg.Quiet {
		cli.DisplayQuietResult(out, result, duration)
	} else {
		cli.DisplayResult(result, duration, outputCfg.Verbose, out)
	}

	if outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(result, args, duration, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !outputCfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				cli.ColorGreen(), cli.ColorCyan(), outputCfg.OutputFile, cli.ColorReset())
		}
	}

	return apperrors.ExitSuccess
}

// colorProvider adapts the cli color accessors to the error handler's
// ColorProvider interface.
type colorProvider struct{}

func (colorProvider) Yellow() string { return cli.ColorYellow() }
func (colorProvider) Reset() string  { return cli.ColorReset() }

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// jsonResult represents a single evaluation result in JSON format.
type jsonResult struct {
	Op       string   `json:"op"`
	Duration string   `json:"duration"`
	Values   []string `json:"values,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// printJSONResult formats a single evaluation result as JSON and writes it to
// the output. This is useful for programmatic consumption of the results.
func printJSONResult(result service.Result, duration time.Duration, out io.Writer) int {
	jr := jsonResult{
		Op:       result.Op,
		Duration: duration.String(),
		Values:   result.Values,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jr); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// jsonSection represents a demo section outcome in JSON format.
type jsonSection struct {
	Section  string   `json:"section"`
	Duration string   `json:"duration"`
	Lines    []string `json:"lines,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// printJSONDemoResults formats the demo section results as a JSON array and
// writes them to the output.
func printJSONDemoResults(results []orchestration.SectionResult, out io.Writer) int {
	output := make([]jsonSection, len(results))
	exitCode := apperrors.ExitSuccess
	for i, res := range results {
		js := jsonSection{
			Section:  res.Name,
			Duration: res.Duration.String(),
		}
		if res.Err != nil {
			js.Error = res.Err.Error()
			exitCode = apperrors.ExitErrorGeneric
		} else {
			js.Lines = res.Lines
		}
		output[i] = js
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return exitCode
}
