package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

// shutdownGrace is how long a cancelled run may take to unwind before the process exits
const shutdownGrace = 2 * time.Second

// InterruptHandler cancels the run context on SIGINT or SIGTERM
// A prompt blocked on stdin cannot observe the cancellation, so the process
// exits with 130 once the grace period has passed
type InterruptHandler struct {
	cancel      context.CancelFunc
	out         io.Writer
	sigChan     chan os.Signal
	done        chan struct{}
	interrupted atomic.Bool
	exit        func(code int)
	grace       time.Duration
}

// NewInterruptHandler creates a new interrupt handler
func NewInterruptHandler(cancel context.CancelFunc, out io.Writer) *InterruptHandler {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	return &InterruptHandler{
		cancel:  cancel,
		out:     out,
		sigChan: sigChan,
		done:    make(chan struct{}),
		exit:    os.Exit,
		grace:   shutdownGrace,
	}
}

// Start starts the interrupt handler in a goroutine
func (h *InterruptHandler) Start() {
	go h.handleSignals()
}

// handleSignals handles interrupt signals
func (h *InterruptHandler) handleSignals() {
	select {
	case <-h.sigChan:
	case <-h.done:
		return
	}
	h.interrupted.Store(true)

	fmt.Fprintln(h.out, "\n\n⚠️  Received interrupt signal, aborting...")
	h.cancel()

	select {
	case <-h.done:
	case <-time.After(h.grace):
		h.exit(130) // Standard exit code for SIGINT
	}
}

// IsInterrupted returns whether the handler has been interrupted
func (h *InterruptHandler) IsInterrupted() bool {
	return h.interrupted.Load()
}

// Stop stops the signal handling
func (h *InterruptHandler) Stop() {
	signal.Stop(h.sigChan)
	close(h.done)
}
