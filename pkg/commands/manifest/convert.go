package manifest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/airdrop-manifest/airdrop"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/flags"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/text"
)

var (
	convertShort = "Convert an airdrop CSV into a manifest"

	convertLong = text.LongDesc(`
		Reads address,amount lines from the input CSV, validates every address with the
		selected strategy and writes the manifest JSON to the output path.

		The run stops at the first invalid row and reports its line number. Nothing is
		written in that case and an existing manifest is left untouched. A successful run
		replaces the output file.
	`)

	convertExample = text.Examples(`
		# Convert input/data.csv into input/addresses.json with the default strategy
		airdrop manifest convert

		# Convert a Solana list that starts with a header line
		airdrop manifest convert -i solana.csv -o solana.json -s solana --skip-header

		# Accept any address and echo the result
		airdrop manifest convert -s basic --print
	`)
)

type convertFlags struct {
	input      string
	output     string
	strategy   string
	skipHeader bool
	print      bool
}

// newConvertCmd creates the "convert" subcommand.
func newConvertCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert",
		Short:   convertShort,
		Long:    convertLong,
		Example: convertExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := convertFlags{
				input:      flags.MustString(cmd.Flags().GetString("input")),
				output:     flags.MustString(cmd.Flags().GetString("out")),
				strategy:   flags.MustString(cmd.Flags().GetString("strategy")),
				skipHeader: flags.MustBool(cmd.Flags().GetBool("skip-header")),
				print:      flags.MustBool(cmd.Flags().GetBool("print")),
			}

			return runConvert(cmd, cfg, f)
		},
	}

	flags.Input(cmd, cfg.Settings.Input)
	flags.Output(cmd, cfg.Settings.Output)
	flags.Strategy(cmd, cfg.Settings.Strategy, cfg.deps().StrategyNames())
	flags.SkipHeader(cmd, cfg.Settings.SkipHeader)
	flags.Print(cmd)

	return cmd
}

// runConvert executes the convert command logic.
func runConvert(cmd *cobra.Command, cfg Config, f convertFlags) error {
	conv, err := newConverter(cfg, f.strategy, f.skipHeader)
	if err != nil {
		return err
	}

	m, summary, err := conv.Run(cmd.Context(), f.input, f.output)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", f.input, err)
	}

	if conv.Strategy().ReportsTotals() {
		printSummary(cmd, summary)
	}

	if f.print {
		b, err := m.Encode()
		if err != nil {
			return err
		}
		cmd.Print(string(b))
	}

	cmd.Printf("✅ Wrote airdrop manifest to %s\n", f.output)

	return nil
}

// newConverter resolves strategyName and builds a converter over the command filesystem.
func newConverter(cfg Config, strategyName string, skipHeader bool) (*airdrop.Converter, error) {
	deps := cfg.deps()

	strategy, err := deps.StrategyLookup(strategyName)
	if err != nil {
		return nil, err
	}

	return airdrop.NewConverter(cfg.Logger, strategy,
		airdrop.WithFs(deps.Fs),
		airdrop.WithSkipHeader(skipHeader),
	), nil
}

func printSummary(cmd *cobra.Command, s airdrop.Summary) {
	cmd.Printf("Total addresses: %d\n", s.Count)
	cmd.Printf("Total amount: %s\n", s.Total.String())
}
