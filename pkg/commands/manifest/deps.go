// Package manifest provides CLI commands for building and checking airdrop manifests.
package manifest

import (
	"github.com/spf13/afero"

	"github.com/smartcontractkit/airdrop-manifest/airdrop"
)

// StrategyLookupFunc resolves a strategy name to a Strategy.
type StrategyLookupFunc func(name string) (airdrop.Strategy, error)

// StrategyNamesFunc lists the selectable strategy names.
type StrategyNamesFunc func() []string

// Deps holds the injectable dependencies for manifest commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// Fs is the filesystem inputs are read from and manifests written to.
	// Default: afero.NewOsFs()
	Fs afero.Fs

	// StrategyLookup resolves the --strategy flag.
	// Default: airdrop.LookupStrategy
	StrategyLookup StrategyLookupFunc

	// StrategyNames lists the strategies shown in help and by the strategies command.
	// Default: airdrop.StrategyNames
	StrategyNames StrategyNamesFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	if d.StrategyLookup == nil {
		d.StrategyLookup = airdrop.LookupStrategy
	}
	if d.StrategyNames == nil {
		d.StrategyNames = airdrop.StrategyNames
	}
}
