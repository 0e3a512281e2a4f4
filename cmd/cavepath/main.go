// Command cavepath counts the routes through a cave system.
//
// Usage:
//
//	cavepath [file] [flags]
//
// The input holds one "LABEL-LABEL" edge per line; standard input is read when
// file is omitted or "-". The output lists one count per revisit policy:
//
//	Result of day 12:
//	* Part 1: 10
//	* Part 2: 36
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "cavepath:", err)
		stop()
		os.Exit(1)
	}
}
