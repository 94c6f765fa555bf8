// Package flags provides reusable flag helpers for the airdrop commands.
//
// Flags shared by several commands live here so they are named the same way
// everywhere. Command-specific flags are defined locally in the command file.
package flags

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// Input adds the --input/-i flag for the CSV path.
// Retrieve the value with cmd.Flags().GetString("input").
func Input(cmd *cobra.Command, defaultValue string) {
	cmd.Flags().StringP("input", "i", defaultValue, "Input CSV file path (address,amount per line)")
}

// Output adds the --out/-o flag for the manifest path.
// Also accepts --output as an alias.
// Retrieve the value with cmd.Flags().GetString("out").
func Output(cmd *cobra.Command, defaultValue string) {
	cmd.Flags().StringP("out", "o", defaultValue, "Output manifest file path")
	addAlias(cmd.Flags(), "output", "out")
}

// Strategy adds the --strategy/-s flag selecting the address strategy.
// Retrieve the value with cmd.Flags().GetString("strategy").
func Strategy(cmd *cobra.Command, defaultValue string, available []string) {
	cmd.Flags().StringP("strategy", "s", defaultValue,
		"Address validation strategy ("+strings.Join(available, ", ")+")",
	)
}

// SkipHeader adds the --skip-header flag that drops the first CSV line.
// Retrieve the value with cmd.Flags().GetBool("skip-header").
func SkipHeader(cmd *cobra.Command, defaultValue bool) {
	cmd.Flags().Bool("skip-header", defaultValue, "Skip the first non-blank line of the input")
}

// Print adds the --print flag for echoing the manifest to stdout (default: false).
// Retrieve the value with cmd.Flags().GetBool("print").
func Print(cmd *cobra.Command) {
	cmd.Flags().Bool("print", false, "Print the manifest to stdout")
}

// addAlias normalizes alias to name, chaining any existing normalize func.
func addAlias(fs *pflag.FlagSet, alias, name string) {
	existingNormalize := fs.GetNormalizeFunc()
	fs.SetNormalizeFunc(func(f *pflag.FlagSet, n string) pflag.NormalizedName {
		if n == alias {
			return pflag.NormalizedName(name)
		}
		if existingNormalize != nil {
			return existingNormalize(f, n)
		}

		return pflag.NormalizedName(n)
	})
}
