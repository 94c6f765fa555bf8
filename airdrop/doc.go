/*
Package airdrop converts operator curated CSV lists of (address, amount) pairs
into airdrop manifests.

The input holds one record per line, `address,amount`, without a header row.
Each line is validated in order and the first invalid line aborts the run:

  - the address must pass the configured [Strategy] and is replaced by its
    normalized form,
  - the normalized address must not have been seen before,
  - the amount must be a positive decimal.

The result is written as

	{
	  "decimals": 18,
	  "airdrop": {
	    "<address>": <amount>
	  }
	}

with entries in input order. Amounts are JSON numbers for the basic strategy
and the operator's original decimal strings for chain strategies, which keeps
full precision.

# Strategies

	basic   any non-empty string, kept verbatim
	evm     20 byte hex, EIP-55 checksum enforced for mixed case input, checksummed output
	solana  base58 32 byte public key
	aptos   short or long hex account address, canonical output

# Usage

	strategy, err := airdrop.LookupStrategy("evm")
	if err != nil {
		return err
	}
	conv := airdrop.NewConverter(lggr, strategy)
	_, summary, err := conv.Run(ctx, "input/data.csv", "input/addresses.json")
*/
package airdrop
