package airdrop

import (
	sollib "github.com/gagliardetto/solana-go"
	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

// SolanaStrategy validates base58 encoded 32 byte public keys.
type SolanaStrategy struct{}

func (SolanaStrategy) Name() string { return chain_selectors.FamilySolana }

func (SolanaStrategy) Normalize(addr string) (string, error) {
	pubkey, err := sollib.PublicKeyFromBase58(addr)
	if err != nil {
		return "", err
	}

	return pubkey.String(), nil
}

func (SolanaStrategy) AmountFormat() AmountFormat { return AmountFormatString }

func (SolanaStrategy) ReportsTotals() bool { return true }
