package airdrop

import (
	aptoslib "github.com/aptos-labs/aptos-go-sdk"
	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

// AptosStrategy accepts short and long Aptos account addresses, with or
// without the 0x prefix, and normalizes them to the SDK's canonical string.
// "0x1" and "0x0000...0001" therefore collide as duplicates.
type AptosStrategy struct{}

func (AptosStrategy) Name() string { return chain_selectors.FamilyAptos }

func (AptosStrategy) Normalize(addr string) (string, error) {
	var a aptoslib.AccountAddress
	if err := a.ParseStringRelaxed(addr); err != nil {
		return "", err
	}

	return a.String(), nil
}

func (AptosStrategy) AmountFormat() AmountFormat { return AmountFormatString }

func (AptosStrategy) ReportsTotals() bool { return true }
