package sys

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// CancelOnSignal ties cancel to SIGINT and SIGTERM, so an operator interrupt
// outside the prompt unwinds the session loop through its context. Cancelling
// a context is idempotent, so one delivery is enough.
func CancelOnSignal(cancel context.CancelFunc) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interrupts
		cancel()
	}()
}
