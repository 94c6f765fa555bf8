// Command airdrop converts a CSV of address,amount lines into an airdrop manifest.
//
// With no arguments it runs "manifest convert" using the configured defaults:
// input/data.csv is converted into input/addresses.json with the evm strategy.
// Settings are read from the file named by AIRDROP_CONFIG (default airdrop.yaml,
// optional) and from AIRDROP_* environment variables.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
