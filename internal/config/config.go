// Package config provides the configuration management for the gausscalc
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/gausscalc/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by gausscalc.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "GAUSSCALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultTimeout is the default computation timeout.
	DefaultTimeout = 1 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the operation to evaluate to the output presentation.
type AppConfig struct {
	// Op is the name of the operation to evaluate ("add", "gcd", "cmul", ...).
	// Empty selects demo mode unless the server is enabled.
	Op string
	// Operands holds the comma-separated operand list for Op. Integer
	// operands are decimal; complex operands use the a+bi display form.
	Operands string
	// Demo, if true, runs the showcase walking through every operation family.
	Demo bool
	// Timeout sets the maximum duration for the computation.
	Timeout time.Duration
	// Verbose, if true, displays full values instead of truncated ones.
	Verbose bool
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses progress bars, banners, and informational messages.
	Quiet bool
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures the timeout is positive and that the chosen operation is known.
//
// Parameters:
//   - availableOps: A slice of strings listing the valid operation names.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableOps []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Op == "" {
		return nil
	}
	for _, op := range availableOps {
		if op == c.Op {
			return nil
		}
	}
	return apperrors.NewConfigError("unrecognized operation: '%s'. Valid operations are: [%s]",
		c.Op, strings.Join(availableOps, ", "))
}

// OperandList splits the raw operand string into its parts, trimming
// whitespace around each. An empty Operands yields an empty slice.
func (c AppConfig) OperandList() []string {
	if strings.TrimSpace(c.Operands) == "" {
		return nil
	}
	parts := strings.Split(c.Operands, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, it performs validation on
// the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//   - availableOps: A slice of valid operation names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableOps []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	opHelp := fmt.Sprintf("Operation to evaluate: one of [%s].", strings.Join(availableOps, ", "))

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", "", opHelp)
	fs.StringVar(&config.Operands, "operands", "", "Comma-separated operand list for -op (complex values use the a+bi form).")
	fs.BoolVar(&config.Demo, "demo", false, "Run the demonstration showcasing every operation family.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the computation.")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full value of the result (can be very long).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Op = strings.ToLower(config.Op)
	if err := config.Validate(availableOps); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
