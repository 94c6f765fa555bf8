package airdrop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

// EVMStrategy validates hex addresses (20 bytes, optional 0x prefix) and
// normalizes them to their EIP-55 checksum encoding. Mixed case input must
// already carry a valid checksum; all lower or all upper case input is accepted.
type EVMStrategy struct{}

func (EVMStrategy) Name() string { return chain_selectors.FamilyEVM }

func (EVMStrategy) Normalize(addr string) (string, error) {
	if !common.IsHexAddress(addr) {
		return "", errors.New("not a 20 byte hex address")
	}

	checksummed := common.HexToAddress(addr).Hex()

	body := addr
	if has0xPrefix(body) {
		body = body[2:]
	}
	if isMixedCase(body) && body != checksummed[2:] {
		return "", fmt.Errorf("checksum mismatch, expected %s", checksummed)
	}

	return checksummed, nil
}

func (EVMStrategy) AmountFormat() AmountFormat { return AmountFormatString }

func (EVMStrategy) ReportsTotals() bool { return true }

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}
