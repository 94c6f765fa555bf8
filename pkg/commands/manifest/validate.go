package manifest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/flags"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/text"
)

var (
	validateShort = "Validate an airdrop CSV without writing a manifest"

	validateLong = text.LongDesc(`
		Runs every check of the convert command against the input CSV and reports the first
		invalid row. No file is written.
	`)

	validateExample = text.Examples(`
		# Validate input/data.csv with the default strategy
		airdrop manifest validate

		# Validate an Aptos list
		airdrop manifest validate -i aptos.csv -s aptos
	`)
)

type validateFlags struct {
	input      string
	strategy   string
	skipHeader bool
}

// newValidateCmd creates the "validate" subcommand.
func newValidateCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   validateShort,
		Long:    validateLong,
		Example: validateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := validateFlags{
				input:      flags.MustString(cmd.Flags().GetString("input")),
				strategy:   flags.MustString(cmd.Flags().GetString("strategy")),
				skipHeader: flags.MustBool(cmd.Flags().GetBool("skip-header")),
			}

			return runValidate(cmd, cfg, f)
		},
	}

	flags.Input(cmd, cfg.Settings.Input)
	flags.Strategy(cmd, cfg.Settings.Strategy, cfg.deps().StrategyNames())
	flags.SkipHeader(cmd, cfg.Settings.SkipHeader)

	return cmd
}

// runValidate executes the validate command logic.
func runValidate(cmd *cobra.Command, cfg Config, f validateFlags) error {
	conv, err := newConverter(cfg, f.strategy, f.skipHeader)
	if err != nil {
		return err
	}

	_, summary, err := conv.Check(cmd.Context(), f.input)
	if err != nil {
		return fmt.Errorf("error validating %s: %w", f.input, err)
	}

	printSummary(cmd, summary)
	cmd.Printf("✅ %s is valid for the %s strategy\n", f.input, conv.Strategy().Name())

	return nil
}
