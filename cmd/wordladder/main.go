package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	wordladdercmd "github.com/katalvlaran/wordladder/internal/cmd/wordladder"
	"github.com/katalvlaran/wordladder/internal/platform/config"
	"github.com/katalvlaran/wordladder/internal/telemetry"
)

func main() {
	cfg, err := wordladdercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "wordladder", cfg.Telemetry)
	if err != nil {
		config.Exitf("telemetry: %v", err)
	}
	err = wordladdercmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	_ = shutdown(context.Background())
	if err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
}
