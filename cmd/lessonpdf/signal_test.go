package main

import (
	"context"
	"testing"
)

// Only cancellation through stop() and the parent is covered; real signal
// delivery is platform specific.
func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("live until stopped", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		if ctx.Err() != nil {
			t.Fatal("context should start live")
		}
		stop()
		<-ctx.Done()
	})

	t.Run("follows parent", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()
		<-ctx.Done()
		if ctx.Err() == nil {
			t.Error("child context should report the parent cancellation")
		}
	})
}
