package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/scrawl-labs/scrawl/lib/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = log.Stderr(ctx)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
