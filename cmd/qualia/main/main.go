package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/qualia/cmd/qualia"
	"github.com/arthur-debert/qualia/pkg/progress"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Prompts block on stdin, so an interrupt exits right away instead of
	// waiting for the context to be noticed.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		progress.RestoreCursor()
		fmt.Fprintln(os.Stderr, "\n"+qualia.MsgInterrupted)
		os.Exit(130)
	}()

	code := qualia.Execute(ctx, qualia.DefaultEnv(), os.Args[1:])
	cancel()
	os.Exit(code)
}
