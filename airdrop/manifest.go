package airdrop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ManifestDecimals is the token decimals value every manifest carries.
const ManifestDecimals = 18

// AddressAmountMap maps normalized addresses to amounts, preserving insertion order.
type AddressAmountMap struct {
	m *orderedmap.OrderedMap[string, Amount]
}

// NewAddressAmountMap returns an empty map.
func NewAddressAmountMap() *AddressAmountMap {
	return &AddressAmountMap{m: orderedmap.New[string, Amount]()}
}

// Has reports whether addr is already a key.
func (a *AddressAmountMap) Has(addr string) bool {
	_, ok := a.m.Get(addr)

	return ok
}

// Get returns the amount stored for addr.
func (a *AddressAmountMap) Get(addr string) (Amount, bool) {
	return a.m.Get(addr)
}

// Add inserts addr. It never overwrites: a present key yields ErrDuplicateAddress.
func (a *AddressAmountMap) Add(addr string, amount Amount) error {
	if a.Has(addr) {
		return fmt.Errorf("%w: %s", ErrDuplicateAddress, addr)
	}
	a.m.Set(addr, amount)

	return nil
}

// Len returns the number of entries.
func (a *AddressAmountMap) Len() int {
	return a.m.Len()
}

// All iterates entries in insertion order.
func (a *AddressAmountMap) All() iter.Seq2[string, Amount] {
	return func(yield func(string, Amount) bool) {
		for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// MarshalJSON implements json.Marshaler. Keys are written without HTML escaping.
func (a *AddressAmountMap) MarshalJSON() ([]byte, error) {
	if a == nil || a.m == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for addr, amount := range a.All() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(addr)
		if err != nil {
			return nil, err
		}
		value, err := amount.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("amount for %q: %w", addr, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Key order of the document is
// kept and a repeated key fails with ErrDuplicateAddress.
func (a *AddressAmountMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("airdrop map must be a JSON object, got %v", tok)
	}

	m := orderedmap.New[string, Amount]()
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		addr, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected airdrop map key %v", tok)
		}

		var amount Amount
		if err = dec.Decode(&amount); err != nil {
			return fmt.Errorf("amount for %q: %w", addr, err)
		}
		if _, present := m.Get(addr); present {
			return fmt.Errorf("%w: %s", ErrDuplicateAddress, addr)
		}
		m.Set(addr, amount)
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	a.m = m

	return nil
}

// marshalUnescaped encodes v like json.Marshal but leaves <, > and & as is.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Manifest is the airdrop artifact handed to the distribution tooling.
type Manifest struct {
	Decimals int               `json:"decimals"`
	Airdrop  *AddressAmountMap `json:"airdrop"`
}

// NewManifest returns an empty manifest with ManifestDecimals.
func NewManifest() *Manifest {
	return &Manifest{
		Decimals: ManifestDecimals,
		Airdrop:  NewAddressAmountMap(),
	}
}

// Summary is the operator sanity check computed over a manifest.
type Summary struct {
	Count int
	Total decimal.Decimal
}

// Summarize returns the entry count and the exact sum of all amounts.
func (m *Manifest) Summarize() Summary {
	s := Summary{Total: decimal.Zero}
	for _, amount := range m.Airdrop.All() {
		s.Count++
		s.Total = s.Total.Add(amount.Value)
	}

	return s
}

// Encode renders the manifest as indented JSON terminated by a newline.
// Addresses are written verbatim, without HTML escaping. Equal manifests
// always encode to equal bytes.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("unable to marshal manifest: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteManifest writes m to path, replacing any existing file. The content is
// written to a temporary file in the same directory first and renamed into
// place, so a failed write never leaves a truncated manifest behind.
func WriteManifest(fs afero.Fs, path string, m *Manifest) error {
	b, err := m.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if _, err = fs.Stat(dir); err != nil {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)

		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)

		return fmt.Errorf("failed to close manifest: %w", err)
	}
	if err = fs.Chmod(tmpName, 0o644); err != nil {
		_ = fs.Remove(tmpName)

		return fmt.Errorf("failed to chmod manifest: %w", err)
	}
	if err = fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)

		return fmt.Errorf("failed to write manifest file '%s': %w", path, err)
	}

	return nil
}

// LoadManifest reads a manifest previously written by WriteManifest.
func LoadManifest(fs afero.Fs, path string) (*Manifest, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest '%s': %w", path, err)
	}

	m := &Manifest{Airdrop: NewAddressAmountMap()}
	if err = json.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest '%s': %w", path, err)
	}
	if m.Airdrop == nil {
		return nil, fmt.Errorf("manifest '%s' has no airdrop map", path)
	}

	return m, nil
}
