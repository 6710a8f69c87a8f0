// Package main runs one stake ledger API call from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	stakectl "github.com/louisbranch/stakeledger/internal/cmd/stakectl"
	entrypoint "github.com/louisbranch/stakeledger/internal/platform/cmd"
	"github.com/louisbranch/stakeledger/internal/platform/config"
)

func main() {
	log.SetPrefix("[STAKECTL] ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: stakectl [flags] <command> [field=value ...]\n\ncommands: %s\n\nflags:\n",
			strings.Join(stakectl.CommandNames(), ", "))
		flag.PrintDefaults()
	}
	cfg, err := stakectl.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitUsagef("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStakeCtl, func(ctx context.Context) error {
		return stakectl.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		stop()
		config.Exitf("%s: %v", cfg.Command, err)
	}
}
