package app

import (
	"context"
	"testing"
	"time"
)

// TestSetupLifecycle tests the SetupLifecycle function.
func TestSetupLifecycle(t *testing.T) {
	t.Parallel()
	t.Run("Returns context and cleanup functions", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		timeout := 1 * time.Hour

		ctxWithLifecycle, cancelFuncs := SetupLifecycle(ctx, timeout)

		if ctxWithLifecycle == nil {
			t.Error("Context should not be nil")
		}
		if cancelFuncs == nil {
			t.Fatal("CancelFuncs should not be nil")
		}

		select {
		case <-ctxWithLifecycle.Done():
			t.Error("Context should not be done before timeout or signal")
		default:
			// Expected
		}

		// Cleanup should work without panic
		cancelFuncs.Cleanup()
	})

	t.Run("Timeout propagates through the lifecycle context", func(t *testing.T) {
		t.Parallel()
		ctx, cancelFuncs := SetupLifecycle(context.Background(), 50*time.Millisecond)
		defer cancelFuncs.Cleanup()

		select {
		case <-ctx.Done():
			if context.Cause(ctx) == nil {
				t.Error("Expected a cancellation cause")
			}
		case <-time.After(time.Second):
			t.Error("Lifecycle context was never canceled by the timeout")
		}
	})

	t.Run("Cleanup cancels the context", func(t *testing.T) {
		t.Parallel()
		ctx, cancelFuncs := SetupLifecycle(context.Background(), 1*time.Hour)
		cancelFuncs.Cleanup()

		select {
		case <-ctx.Done():
			// Expected
		case <-time.After(100 * time.Millisecond):
			t.Error("Context should be done after Cleanup")
		}
	})

	t.Run("Cleanup tolerates nil functions", func(t *testing.T) {
		t.Parallel()
		c := &CancelFuncs{}
		c.Cleanup() // must not panic
	})
}
