// Package main prints a fresh identity token signing key.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/louisbranch/stakeledger/internal/platform/config"
	"github.com/louisbranch/stakeledger/internal/tools/hmackey"
)

func main() {
	log.SetPrefix("[HMAC-KEY] ")
	cfg, err := hmackey.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitUsagef("parse flags: %v", err)
	}
	if err := hmackey.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("generate key: %v", err)
	}
}
