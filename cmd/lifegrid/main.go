// Command lifegrid runs, inspects and verifies life-like cellular automata
// from the terminal.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatalf("lifegrid: %v", err)
	}
}
