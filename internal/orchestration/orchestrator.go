// Package orchestration coordinates the concurrent execution of the demo
// sections and the analysis of their results. It is the core of the
// application's concurrency model.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/gausscalc/internal/cli"
	apperrors "github.com/agbru/gausscalc/internal/errors"
	"github.com/agbru/gausscalc/internal/service"
	"github.com/agbru/gausscalc/internal/ui"
)

// SectionResult encapsulates the outcome of a single demo section. It serves
// as a standardized container for results from the different operation
// families, facilitating comparison and reporting.
type SectionResult struct {
	// Name is the identifier of the section (e.g., "Number theory").
	Name string
	// Lines are the rendered showcase lines. Empty if an error occurred.
	Lines []string
	// Duration is the time taken to complete the section.
	Duration time.Duration
	// Err contains any error that occurred while running the section.
	Err error
}

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// section goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// RunDemo orchestrates the concurrent execution of every demo section.
//
// It manages the lifecycle of the section goroutines, collects their results,
// and coordinates the display of progress updates.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - svc: The evaluation service the sections run against.
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []SectionResult: A slice containing the results of each section.
func RunDemo(ctx context.Context, svc service.Service, out io.Writer) []SectionResult {
	sections := demoSections()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]SectionResult, len(sections))
	progressChan := make(chan service.ProgressUpdate, len(sections)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, progressChan, len(sections), out)

	for i, sec := range sections {
		idx, section := i, sec
		g.Go(func() error {
			startTime := time.Now()
			lines, err := section.run(ctx, svc, func(value float64) {
				select {
				case progressChan <- service.ProgressUpdate{SectionIndex: idx, Value: value}:
				default: // Never block a worker on a slow display
				}
			})
			results[idx] = SectionResult{
				Name: section.name, Lines: lines, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeDemoResults processes the results from the demo sections and
// generates a summary report. It prints each section's showcase lines in a
// stable order, then a comparative timing table, and determines the global
// exit code from the individual outcomes.
//
// Parameters:
//   - results: The slice of section results to analyze.
//   - out: The io.Writer for the report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeDemoResults(results []SectionResult, out io.Writer) int {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		fmt.Fprintf(out, "\n%s--- %s ---%s\n", ui.ColorBold(), res.Name, ui.ColorReset())
		for _, line := range res.Lines {
			fmt.Fprintln(out, line)
		}
	}

	sorted := make([]SectionResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		if (sorted[i].Err == nil) != (sorted[j].Err == nil) {
			return sorted[i].Err == nil
		}
		return sorted[i].Duration < sorted[j].Duration
	})

	successCount := 0
	var firstError error

	fmt.Fprintf(out, "\n--- Section Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sSection%s\t%sDuration%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

	for _, res := range sorted {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			if firstError == nil {
				firstError = res.Err
			}
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
			successCount++
		}
		duration := cli.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(),
			ui.ColorYellow(), duration, ui.ColorReset(),
			status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No section could complete.\n")
		return apperrors.HandleComputationError(firstError, 0, out, nil)
	}
	if successCount < len(results) {
		fmt.Fprintf(out, "\nGlobal Status: Partial success (%d/%d sections).\n", successCount, len(results))
		return apperrors.ExitErrorGeneric
	}
	fmt.Fprintf(out, "\nGlobal Status: Success.\n")
	return apperrors.ExitSuccess
}
