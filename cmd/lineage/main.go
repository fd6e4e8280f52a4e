package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	lineagecmd "github.com/louisbranch/lineage/internal/cmd/lineage"
	"github.com/louisbranch/lineage/internal/platform/config"
)

func main() {
	cfg, err := lineagecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[LINEAGE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lineagecmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		config.Exitf("lineage: %v", err)
	}
}
