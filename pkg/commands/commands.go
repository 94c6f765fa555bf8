// Package commands provides the CLI command groups of the airdrop tool.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory:
//
//	cmds := commands.New(lggr)
//	manifestCmd, err := cmds.Manifest(settings)
//	if err != nil {
//	    return err
//	}
//	rootCmd.AddCommand(manifestCmd)
//
// 2. Via direct package imports, to inject dependencies in tests:
//
//	import "github.com/smartcontractkit/airdrop-manifest/pkg/commands/manifest"
//
//	cmd, err := manifest.NewCommand(manifest.Config{
//	    Logger:   lggr,
//	    Settings: settings,
//	    Deps:     manifest.Deps{Fs: afero.NewMemMapFs()},
//	})
package commands

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/airdrop-manifest/config"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/manifest"
	"github.com/smartcontractkit/airdrop-manifest/pkg/logger"
)

// Commands creates CLI command groups sharing one logger.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Manifest creates the manifest command group. Flag defaults come from settings.
//
// Usage:
//
//	cmds := commands.New(lggr)
//	manifestCmd, err := cmds.Manifest(settings)
func (c *Commands) Manifest(settings *config.Config) (*cobra.Command, error) {
	return manifest.NewCommand(manifest.Config{
		Logger:   c.lggr,
		Settings: settings,
	})
}
