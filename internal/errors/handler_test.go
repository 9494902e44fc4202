package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHandleComputationError(t *testing.T) {
	t.Parallel()

	t.Run("NilError", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		code := HandleComputationError(nil, time.Second, &buf, nil)
		if code != ExitSuccess {
			t.Errorf("Exit code = %d; want %d", code, ExitSuccess)
		}
		if buf.Len() != 0 {
			t.Errorf("Expected no output for nil error, got %q", buf.String())
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		code := HandleComputationError(context.DeadlineExceeded, 5*time.Second, &buf, nil)
		if code != ExitErrorTimeout {
			t.Errorf("Exit code = %d; want %d", code, ExitErrorTimeout)
		}
		if !strings.Contains(buf.String(), "Timeout") {
			t.Errorf("Missing timeout status in %q", buf.String())
		}
		if !strings.Contains(buf.String(), "5s") {
			t.Errorf("Missing duration in %q", buf.String())
		}
	})

	t.Run("Canceled", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		code := HandleComputationError(context.Canceled, time.Second, &buf, nil)
		if code != ExitErrorCanceled {
			t.Errorf("Exit code = %d; want %d", code, ExitErrorCanceled)
		}
		if !strings.Contains(buf.String(), "Canceled") {
			t.Errorf("Missing canceled status in %q", buf.String())
		}
	})

	t.Run("ConfigError", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		code := HandleComputationError(NewConfigError("bad flag"), 0, &buf, nil)
		if code != ExitErrorConfig {
			t.Errorf("Exit code = %d; want %d", code, ExitErrorConfig)
		}
		if !strings.Contains(buf.String(), "Configuration") {
			t.Errorf("Missing configuration status in %q", buf.String())
		}
	})

	t.Run("WrappedConfigError", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		wrapped := WrapError(NewConfigError("bad flag"), "startup")
		code := HandleComputationError(wrapped, 0, &buf, nil)
		if code != ExitErrorConfig {
			t.Errorf("Exit code = %d; want %d", code, ExitErrorConfig)
		}
	})

	t.Run("Generic", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		code := HandleComputationError(errors.New("boom"), time.Second, &buf, nil)
		if code != ExitErrorGeneric {
			t.Errorf("Exit code = %d; want %d", code, ExitErrorGeneric)
		}
		if !strings.Contains(buf.String(), "boom") {
			t.Errorf("Missing cause in %q", buf.String())
		}
	})

	t.Run("ZeroDurationHasNoSuffix", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		HandleComputationError(errors.New("boom"), 0, &buf, nil)
		if strings.Contains(buf.String(), "after") {
			t.Errorf("Expected no duration suffix in %q", buf.String())
		}
	})
}

// fakeColors provides recognizable markers instead of escape codes.
type fakeColors struct{}

func (fakeColors) Yellow() string { return "<y>" }
func (fakeColors) Reset() string  { return "</y>" }

func TestHandleComputationErrorColors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	HandleComputationError(context.DeadlineExceeded, time.Second, &buf, fakeColors{})
	if !strings.Contains(buf.String(), "<y>1s</y>") {
		t.Errorf("Expected colored duration in %q", buf.String())
	}
}
