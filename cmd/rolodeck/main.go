package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rolodeck/rolodeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	storeDir := flag.String("store", "", "override record store directory (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, StoreDir: *storeDir}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "rolodeck: %v\n", err)
		return 1
	}
	return 0
}
