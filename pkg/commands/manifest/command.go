package manifest

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/airdrop-manifest/config"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/text"
	"github.com/smartcontractkit/airdrop-manifest/pkg/logger"
)

var (
	manifestShort = "Airdrop manifest operations"

	manifestLong = text.LongDesc(`
		Commands for building and checking airdrop manifests.

		A manifest is a JSON document mapping recipient addresses to token amounts.
		It is produced from a CSV of address,amount lines, one recipient per line.
		Every address is validated by the selected strategy and appears at most once.
	`)
)

// Config holds the configuration for manifest commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Settings supplies the flag defaults. Required.
	Settings *config.Config

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	var missing []string

	if c.Logger == nil {
		missing = append(missing, "Logger")
	}
	if c.Settings == nil {
		missing = append(missing, "Settings")
	}

	if len(missing) > 0 {
		return errors.New("manifest.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates a new manifest command with all subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: manifestShort,
		Long:  manifestLong,
	}

	cmd.AddCommand(newConvertCmd(cfg))
	cmd.AddCommand(newValidateCmd(cfg))
	cmd.AddCommand(newVerifyCmd(cfg))
	cmd.AddCommand(newStrategiesCmd(cfg))

	return cmd, nil
}
