package ui

// Accessor functions for the subset of theme colors the presentation layers
// read directly. Each call re-reads the active theme, so output produced
// after InitTheme or SetTheme always reflects the current scheme. The cli
// package keeps its own delegating accessors; these exist for packages
// (orchestration, app) that render without importing cli.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error color, used for failed demo sections.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color, used for completed sections and
// saved results.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color, used for durations.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary accent color, used for section names.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorBold returns the bold escape code, used for report headings.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code, used for table headers.
func ColorUnderline() string { return GetCurrentTheme().Underline }
