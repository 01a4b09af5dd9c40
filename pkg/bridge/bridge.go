// Package bridge runs the paired translation loops of one speech session:
// an uplink pumping inbound transport messages toward the provider and a
// downlink pumping provider responses back out. The two loops have
// independent lifecycles but always terminate together, and resource release
// happens exactly once regardless of which side ends the session.
package bridge

import (
	"context"
	"log/slog"
	"sync"
)

// Loop is one direction of a bridge session. A nil return is a normal
// termination (stop directive, drained stream, client disconnect); an error
// return is a fault that tears the session down.
type Loop func(ctx context.Context) error

// Bridge coordinates one session's uplink and downlink.
type Bridge struct {
	// Uplink consumes the inbound transport. It runs on the calling
	// goroutine and its return starts the teardown sequence.
	Uplink Loop

	// Downlink consumes the provider's response stream. It runs
	// concurrently and is awaited after the uplink completes.
	Downlink Loop

	// Cleanup releases the session's resources (provider stream, transport).
	// Invoked exactly once, on every exit path. It also serves as the
	// cross-loop unblocker: when the downlink dies first, closing the
	// transport here is what wakes a blocked uplink read.
	Cleanup func()

	Logger *slog.Logger

	cleanupOnce sync.Once
}

// Run executes both loops and blocks until the session is fully torn down.
// The first fault (uplink or downlink) is returned; normal terminations,
// including a client disconnect, return nil.
func (b *Bridge) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer b.release()

	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	downErr := make(chan error, 1)
	if b.Downlink != nil {
		go func() {
			err := b.Downlink(ctx)
			if err != nil {
				// The uplink may be blocked on a transport read; release
				// now so it observes the closed transport and returns.
				logger.Debug("downlink faulted, releasing session", "error", err)
				b.release()
			}
			downErr <- err
		}()
	} else {
		downErr <- nil
	}

	upErr := b.Uplink(ctx)
	if upErr != nil {
		// Fault path: no drain. Releasing now interrupts a downlink
		// blocked in a provider read that the context alone cannot reach.
		cancel()
		b.release()
	}

	dErr := <-downErr

	if upErr != nil {
		return upErr
	}
	return dErr
}

// release runs Cleanup exactly once.
func (b *Bridge) release() {
	b.cleanupOnce.Do(func() {
		if b.Cleanup != nil {
			b.Cleanup()
		}
	})
}
