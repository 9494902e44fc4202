package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/gausscalc/internal/service"
	"github.com/agbru/gausscalc/internal/testutil"
	"github.com/agbru/gausscalc/internal/ui"
)

func init() {
	// Deterministic output for assertions
	ui.SetCurrentTheme(ui.NoColorTheme)
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"Microseconds", 500 * time.Microsecond, "500µs"},
		{"Milliseconds", 250 * time.Millisecond, "250ms"},
		{"Seconds", 2 * time.Second, "2s"},
		{"SubMicrosecond", 100 * time.Nanosecond, "0µs"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatExecutionDuration(tt.duration)
			if got != tt.expected {
				t.Errorf("FormatExecutionDuration(%v) = %q; want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestProgressState(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(4)

	if avg := ps.CalculateAverage(); avg != 0.0 {
		t.Errorf("Initial average = %f; want 0.0", avg)
	}

	ps.Update(0, 1.0)
	ps.Update(1, 0.5)
	ps.Update(2, 0.5)
	// Out-of-range indices must be ignored
	ps.Update(-1, 1.0)
	ps.Update(4, 1.0)

	if avg := ps.CalculateAverage(); avg != 0.5 {
		t.Errorf("Average = %f; want 0.5", avg)
	}

	empty := NewProgressState(0)
	if avg := empty.CalculateAverage(); avg != 0.0 {
		t.Errorf("Average with zero sections = %f; want 0.0", avg)
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		progress float64
		filled   int
	}{
		{"Empty", 0.0, 0},
		{"Half", 0.5, 5},
		{"Full", 1.0, 10},
		{"ClampedHigh", 1.5, 10},
		{"ClampedLow", -0.5, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bar := progressBar(tt.progress, 10)
			filled := strings.Count(bar, "█")
			if filled != tt.filled {
				t.Errorf("progressBar(%f, 10) has %d filled cells; want %d", tt.progress, filled, tt.filled)
			}
			if len([]rune(bar)) != 10 {
				t.Errorf("progressBar length = %d runes; want 10", len([]rune(bar)))
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()
	short := "12345"
	long := strings.Repeat("9", 150)

	if got := FormatValue(short, false); got != short {
		t.Errorf("Short value should not be truncated, got %q", got)
	}
	if got := FormatValue(long, true); got != long {
		t.Errorf("Verbose mode should not truncate, got %q", got)
	}

	truncated := FormatValue(long, false)
	if !strings.Contains(truncated, "...") {
		t.Errorf("Expected truncation marker in %q", truncated)
	}
	if !strings.Contains(truncated, "(150 chars)") {
		t.Errorf("Expected length suffix in %q", truncated)
	}
	if !strings.HasPrefix(truncated, long[:DisplayEdges]) {
		t.Error("Truncated value should keep the leading edge")
	}
}

func TestDisplayResult(t *testing.T) {
	t.Parallel()

	t.Run("SingleValue", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		res := service.Result{Op: "gcd", Values: []string{"6"}}
		DisplayResult(res, 42*time.Millisecond, false, &buf)

		out := testutil.StripANSI(buf.String())
		if !strings.Contains(out, "Operation      : gcd") {
			t.Errorf("Missing operation line in %q", out)
		}
		if !strings.Contains(out, "42ms") {
			t.Errorf("Missing duration in %q", out)
		}
		if !strings.Contains(out, "Value          : 6") {
			t.Errorf("Missing value line in %q", out)
		}
	})

	t.Run("MultiValued", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		res := service.Result{Op: "nthroot", Values: []string{"4", "-4"}}
		DisplayResult(res, time.Millisecond, false, &buf)

		out := testutil.StripANSI(buf.String())
		if !strings.Contains(out, "[0] 4") || !strings.Contains(out, "[1] -4") {
			t.Errorf("Missing indexed values in %q", out)
		}
	})

	t.Run("TruncationTip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		res := service.Result{Op: "pow", Values: []string{strings.Repeat("7", 200)}}
		DisplayResult(res, time.Millisecond, false, &buf)

		out := testutil.StripANSI(buf.String())
		if !strings.Contains(out, "-v") {
			t.Errorf("Expected verbose tip for truncated value in %q", out)
		}
	})

	t.Run("ZeroDuration", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		res := service.Result{Op: "add", Values: []string{"3"}}
		DisplayResult(res, 0, false, &buf)

		out := testutil.StripANSI(buf.String())
		if !strings.Contains(out, "< 1µs") {
			t.Errorf("Expected placeholder duration in %q", out)
		}
	})
}

// mockSpinner implements the Spinner interface for testing without terminal
// animation.
type mockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *mockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *mockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *mockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

func TestDisplayProgress(t *testing.T) {
	mock := &mockSpinner{}
	originalNewSpinner := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return mock }
	defer func() { newSpinner = originalNewSpinner }()

	var buf bytes.Buffer
	progressChan := make(chan service.ProgressUpdate, 8)
	var wg sync.WaitGroup
	wg.Add(1)

	go DisplayProgress(&wg, progressChan, 2, &buf)

	progressChan <- service.ProgressUpdate{SectionIndex: 0, Value: 1.0}
	progressChan <- service.ProgressUpdate{SectionIndex: 1, Value: 0.5}
	close(progressChan)
	wg.Wait()

	mock.mu.Lock()
	defer mock.mu.Unlock()
	if !mock.started {
		t.Error("Spinner should have been started")
	}
	if !mock.stopped {
		t.Error("Spinner should have been stopped")
	}

	out := buf.String()
	if !strings.Contains(out, "100.00%") {
		t.Errorf("Expected final 100%% progress line, got %q", out)
	}
}

func TestDisplayProgressZeroSections(t *testing.T) {
	var buf bytes.Buffer
	progressChan := make(chan service.ProgressUpdate, 2)
	var wg sync.WaitGroup
	wg.Add(1)

	go DisplayProgress(&wg, progressChan, 0, &buf)

	// Updates must be drained without blocking
	progressChan <- service.ProgressUpdate{SectionIndex: 0, Value: 0.5}
	close(progressChan)
	wg.Wait()

	if buf.Len() != 0 {
		t.Errorf("Expected no output for zero sections, got %q", buf.String())
	}
}
