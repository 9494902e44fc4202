// Package config provides the configuration management for the gausscalc
// application. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// getEnvString returns the value of the environment variable with the given
// key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as time.Duration, or the default value
// if not set or invalid. Accepts formats like "5m", "30s", "1h30m".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables:
//   - GAUSSCALC_OP: Operation to evaluate (string)
//   - GAUSSCALC_OPERANDS: Comma-separated operand list (string)
//   - GAUSSCALC_TIMEOUT: Computation timeout (duration: "5m", "30s")
//   - GAUSSCALC_PORT: Port for server mode (string)
//   - GAUSSCALC_OUTPUT: Output file path (string)
//   - GAUSSCALC_DEMO: Enable demo mode (bool: true/false, 1/0, yes/no)
//   - GAUSSCALC_SERVER: Enable server mode (bool)
//   - GAUSSCALC_JSON: Enable JSON output (bool)
//   - GAUSSCALC_VERBOSE: Enable verbose output (bool)
//   - GAUSSCALC_QUIET: Enable quiet mode (bool)
//   - GAUSSCALC_NO_COLOR: Disable colored output (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "op") {
		config.Op = getEnvString("OP", config.Op)
	}
	if !isFlagSet(fs, "operands") {
		config.Operands = getEnvString("OPERANDS", config.Operands)
	}
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
	if !isFlagSet(fs, "port") {
		config.Port = getEnvString("PORT", config.Port)
	}
	if !isFlagSet(fs, "output") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
	if !isFlagSet(fs, "demo") {
		config.Demo = getEnvBool("DEMO", config.Demo)
	}
	if !isFlagSet(fs, "server") {
		config.ServerMode = getEnvBool("SERVER", config.ServerMode)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "v") {
		config.Verbose = getEnvBool("VERBOSE", config.Verbose)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
}
