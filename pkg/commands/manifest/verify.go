package manifest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/airdrop-manifest/airdrop"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/flags"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/text"
)

var (
	verifyShort = "Verify an existing airdrop manifest"

	verifyLong = text.LongDesc(`
		Loads a manifest and checks it against a strategy: decimals must be 18, every
		address must be in the strategy's canonical form and every amount must be positive
		and written in the strategy's representation.

		The manifest path defaults to the configured output path.
	`)

	verifyExample = text.Examples(`
		# Verify input/addresses.json with the default strategy
		airdrop manifest verify

		# Verify a Solana manifest
		airdrop manifest verify solana.json -s solana
	`)
)

type verifyFlags struct {
	path     string
	strategy string
}

// newVerifyCmd creates the "verify" subcommand.
func newVerifyCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "verify [manifest]",
		Short:   verifyShort,
		Long:    verifyLong,
		Example: verifyExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := verifyFlags{
				path:     cfg.Settings.Output,
				strategy: flags.MustString(cmd.Flags().GetString("strategy")),
			}
			if len(args) == 1 {
				f.path = args[0]
			}

			return runVerify(cmd, cfg, f)
		},
	}

	flags.Strategy(cmd, cfg.Settings.Strategy, cfg.deps().StrategyNames())

	return cmd
}

// runVerify executes the verify command logic.
func runVerify(cmd *cobra.Command, cfg Config, f verifyFlags) error {
	deps := cfg.deps()

	strategy, err := deps.StrategyLookup(f.strategy)
	if err != nil {
		return err
	}

	_, summary, err := airdrop.VerifyFile(deps.Fs, f.path, strategy)
	if err != nil {
		return fmt.Errorf("error verifying %s: %w", f.path, err)
	}
	cfg.Logger.Infow("manifest verified",
		"path", f.path, "strategy", strategy.Name(), "count", summary.Count, "sum", summary.Total.String(),
	)

	printSummary(cmd, summary)
	cmd.Printf("✅ %s is a valid %s manifest\n", f.path, strategy.Name())

	return nil
}
