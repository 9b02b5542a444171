// cmd/seqscope-diff/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"seqscope/internal/diffapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := diffapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
