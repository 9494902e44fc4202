// The cli package provides functions for building a command-line interface
// for the Gaussian integer calculator. It handles the asynchronous display of
// demo progress and formats the results for a clear and readable presentation.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/gausscalc/internal/service"
	"github.com/agbru/gausscalc/internal/ui"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This approach provides a more human-readable output for short
// durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of characters to display at the
	// beginning and end of a truncated value.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Color functions return ANSI escape codes from the current theme.
// They delegate to the ui package to reduce coupling.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return ui.GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return ui.GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return ui.GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return ui.GetCurrentTheme().Warning }

// ColorBlue returns the primary color from the current theme.
func ColorBlue() string { return ui.GetCurrentTheme().Primary }

// ColorMagenta returns the info color from the current theme.
func ColorMagenta() string { return ui.GetCurrentTheme().Info }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return ui.GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return ui.GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code from the current theme.
func ColorUnderline() string { return ui.GetCurrentTheme().Underline }

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the DisplayProgress function to be decoupled from a specific
// spinner implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState encapsulates the aggregated progress of the concurrent demo
// sections. It maintains the individual progress of each section and computes
// the average for the consolidated progress view.
type ProgressState struct {
	progresses  []float64
	numSections int
}

// NewProgressState creates and initializes a new ProgressState for the given
// number of sections.
func NewProgressState(numSections int) *ProgressState {
	return &ProgressState{
		progresses:  make([]float64, numSections),
		numSections: numSections,
	}
}

// Update records a new progress value for a specific section. Updates are
// only applied for valid section indices.
//
// Parameters:
//   - index: The index of the section (0 to numSections-1).
//   - value: The progress value (0.0 to 1.0).
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked sections.
//
// Returns:
//   - float64: The average progress (0.0 to 1.0).
func (ps *ProgressState) CalculateAverage() float64 {
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	if ps.numSections == 0 {
		return 0.0
	}
	return total / float64(ps.numSections)
}

// progressBar generates a string representing a textual progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress manages the asynchronous display of a spinner and progress
// bar for the demo sections. It is designed to run in a dedicated goroutine:
// it receives progress updates from a channel, aggregates them, periodically
// refreshes the spinner, and shuts down gracefully when the channel closes.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display routine is complete.
//   - progressChan: The channel receiving progress updates.
//   - numSections: The number of sections contributing to the progress.
//   - out: The io.Writer to which the progress bar is rendered.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan service.ProgressUpdate, numSections int, out io.Writer) {
	defer wg.Done()
	if numSections <= 0 {
		for range progressChan { // Drain the channel
		}
		return
	}

	state := NewProgressState(numSections)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	spinnerStopped := false
	defer func() {
		if !spinnerStopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				// Stop the spinner first to free the line
				if !spinnerStopped {
					s.Stop()
					spinnerStopped = true
				}
				// Print the final progress line with a newline so it persists
				bar := progressBar(1.0, ProgressBarWidth)
				fmt.Fprintf(out, "Progress: %6.2f%% [%s]\n", 100.0, bar)
				return
			}
			state.Update(update.SectionIndex, update.Value)
		case <-ticker.C:
			avg := state.CalculateAverage()
			bar := progressBar(avg, ProgressBarWidth)
			s.UpdateSuffix(fmt.Sprintf(" Progress: %6.2f%% [%s]", avg*100, bar))
		}
	}
}

// FormatValue renders a result value for terminal display. Values longer
// than TruncationLimit characters are shortened to their edges unless
// verbose is set.
//
// Parameters:
//   - value: The display-form value to render.
//   - verbose: If true, never truncate.
//
// Returns:
//   - string: The possibly truncated value.
func FormatValue(value string, verbose bool) string {
	if verbose || len(value) <= TruncationLimit {
		return value
	}
	return fmt.Sprintf("%s...%s (%d chars)",
		value[:DisplayEdges], value[len(value)-DisplayEdges:], len(value))
}

// DisplayResult formats and prints the outcome of a single operation.
// Multi-valued results (root sets) are printed one per line.
//
// Parameters:
//   - res: The evaluation result.
//   - duration: The time taken for the evaluation.
//   - verbose: If true, prints full values regardless of size.
//   - out: The io.Writer for the output.
func DisplayResult(res service.Result, duration time.Duration, verbose bool, out io.Writer) {
	durationStr := FormatExecutionDuration(duration)
	if duration == 0 {
		durationStr = "< 1µs"
	}
	fmt.Fprintf(out, "\n%s--- Result ---%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(out, "Operation      : %s%s%s\n", ColorMagenta(), res.Op, ColorReset())
	fmt.Fprintf(out, "Execution time : %s%s%s\n", ColorYellow(), durationStr, ColorReset())
	switch len(res.Values) {
	case 0:
		fmt.Fprintf(out, "Value          : %s(empty result set)%s\n", ColorCyan(), ColorReset())
	case 1:
		fmt.Fprintf(out, "Value          : %s%s%s\n", ColorGreen(), FormatValue(res.Values[0], verbose), ColorReset())
		if !verbose && len(res.Values[0]) > TruncationLimit {
			fmt.Fprintf(out, "(Tip: use the %s-v%s option to display the full value)\n", ColorYellow(), ColorReset())
		}
	default:
		fmt.Fprintf(out, "Values         :\n")
		for i, v := range res.Values {
			fmt.Fprintf(out, "  [%d] %s%s%s\n", i, ColorGreen(), FormatValue(v, verbose), ColorReset())
		}
	}
}
