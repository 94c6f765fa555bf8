package airdrop

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

// Strategy validates and normalizes the addresses of one address format.
// Each supported chain family implements it; BasicStrategy accepts any non-empty string.
type Strategy interface {
	// Name returns the registry key of the strategy.
	Name() string

	// Normalize validates addr and returns its canonical form. The canonical
	// form is the manifest key and the value duplicates are detected on.
	Normalize(addr string) (string, error)

	// AmountFormat is the representation amounts are written with.
	AmountFormat() AmountFormat

	// ReportsTotals reports whether runs log the address count and amount sum.
	ReportsTotals() bool
}

// StrategyBasic is the registry key of BasicStrategy.
const StrategyBasic = "basic"

// DefaultStrategy is used when no strategy is configured.
const DefaultStrategy = chain_selectors.FamilyEVM

// BasicStrategy accepts any non-empty address verbatim and writes amounts as numbers.
type BasicStrategy struct{}

func (BasicStrategy) Name() string { return StrategyBasic }

func (BasicStrategy) Normalize(addr string) (string, error) {
	if addr == "" {
		return "", errors.New("address is empty")
	}

	return addr, nil
}

func (BasicStrategy) AmountFormat() AmountFormat { return AmountFormatNumber }

func (BasicStrategy) ReportsTotals() bool { return false }

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     map[string]Strategy
)

func registry() map[string]Strategy {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = map[string]Strategy{
			StrategyBasic:                BasicStrategy{},
			chain_selectors.FamilyEVM:    EVMStrategy{},
			chain_selectors.FamilySolana: SolanaStrategy{},
			chain_selectors.FamilyAptos:  AptosStrategy{},
		}
	})

	return defaultRegistry
}

// LookupStrategy returns the strategy registered under name. Matching is case insensitive.
//
// Usage:
//
//	s, err := airdrop.LookupStrategy("evm")
func LookupStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultStrategy
	}

	s, ok := registry()[key]
	if !ok {
		return nil, fmt.Errorf("unknown address strategy %q (available: %s)",
			name, strings.Join(StrategyNames(), ", "),
		)
	}

	return s, nil
}

// StrategyNames returns the registered strategy names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(registry()))
	for name := range registry() {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
