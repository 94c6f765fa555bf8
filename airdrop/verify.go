package airdrop

import (
	"fmt"

	"github.com/spf13/afero"
)

// Verify checks a manifest read back from disk against strategy. Every key
// must already be in the strategy's canonical form and every amount must be
// written in the strategy's amount format.
func Verify(m *Manifest, strategy Strategy) (Summary, error) {
	if m.Decimals != ManifestDecimals {
		return Summary{}, fmt.Errorf("%w: got %d, want %d", ErrUnexpectedDecimals, m.Decimals, ManifestDecimals)
	}

	format := strategy.AmountFormat()
	for addr, amount := range m.Airdrop.All() {
		normalized, err := strategy.Normalize(addr)
		if err != nil {
			return Summary{}, fmt.Errorf("%w %q: %w", ErrInvalidAddress, addr, err)
		}
		if normalized != addr {
			return Summary{}, fmt.Errorf("%w %q: not in canonical form, expected %s", ErrInvalidAddress, addr, normalized)
		}
		if amount.Format != format {
			return Summary{}, fmt.Errorf("%w for %q: written as a %s, %s strategy writes a %s",
				ErrInvalidAmount, addr, amount.Format, strategy.Name(), format,
			)
		}
	}

	return m.Summarize(), nil
}

// VerifyFile loads the manifest at path and verifies it. A key repeated in
// the document fails with ErrDuplicateAddress.
func VerifyFile(fs afero.Fs, path string, strategy Strategy) (*Manifest, Summary, error) {
	m, err := LoadManifest(fs, path)
	if err != nil {
		return nil, Summary{}, err
	}

	summary, err := Verify(m, strategy)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("manifest '%s': %w", path, err)
	}

	return m, summary, nil
}
