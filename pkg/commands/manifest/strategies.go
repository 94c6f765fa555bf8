package manifest

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/airdrop-manifest/airdrop"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/text"
)

var (
	strategiesShort = "List the address strategies"

	strategiesLong = text.LongDesc(`
		Lists the address strategies accepted by --strategy. The configured default is marked.
	`)
)

// newStrategiesCmd creates the "strategies" subcommand.
func newStrategiesCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: strategiesShort,
		Long:  strategiesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := strings.ToLower(strings.TrimSpace(cfg.Settings.Strategy))
			if def == "" {
				def = airdrop.DefaultStrategy
			}
			for _, name := range cfg.deps().StrategyNames() {
				if name == def {
					cmd.Printf("%s (default)\n", name)

					continue
				}
				cmd.Println(name)
			}

			return nil
		},
	}
}
