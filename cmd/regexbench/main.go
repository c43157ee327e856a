// Command regexbench times greedy, possessive and non-greedy quantifiers on a
// single-quoted-string pattern, with and without a capture group, against an
// input that matches and one that does not.
//
// Usage:
//
//	regexbench [run] [flags]
//	regexbench patterns [--delimiter c]
//
// Settings default to a 500-byte payload and 10000 samples per benchmark;
// REGEXBENCH_* environment variables override the defaults and flags override
// both.
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
		fmt.Fprintln(os.Stderr, "regexbench:", err)
		os.Exit(1)
	}
}
