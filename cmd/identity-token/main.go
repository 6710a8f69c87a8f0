// Package main prints a signed identity token for a stake ledger caller.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/louisbranch/stakeledger/internal/platform/config"
	"github.com/louisbranch/stakeledger/internal/services/stake/auth"
	"github.com/louisbranch/stakeledger/internal/tools/identitytoken"
)

func main() {
	log.SetPrefix("[IDENTITY-TOKEN] ")
	cfg, err := identitytoken.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitUsagef("parse flags: %v", err)
	}
	signer, err := auth.LoadTokenConfigFromEnv(nil)
	if err != nil {
		config.Exitf("load signer: %v", err)
	}
	if err := identitytoken.Run(cfg, signer, os.Stdout); err != nil {
		config.Exitf("mint token: %v", err)
	}
}
