package airdrop

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAmount(t *testing.T, raw string, format AmountFormat) Amount {
	t.Helper()

	a, err := ParseAmount(raw)
	require.NoError(t, err)
	a.Format = format

	return a
}

func TestAddressAmountMap_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	m := NewAddressAmountMap()
	for _, k := range []string{"zeta", "alpha", "mu"} {
		require.NoError(t, m.Add(k, mustAmount(t, "1", AmountFormatString)))
	}

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mu"}, keys)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"1","alpha":"1","mu":"1"}`, string(b))
}

func TestAddressAmountMap_AddDuplicate(t *testing.T) {
	t.Parallel()

	m := NewAddressAmountMap()
	require.NoError(t, m.Add("a", mustAmount(t, "1", AmountFormatNumber)))

	err := m.Add("a", mustAmount(t, "2", AmountFormatNumber))
	require.ErrorIs(t, err, ErrDuplicateAddress)

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", got.Raw, "existing entry must not be overwritten")
	assert.Equal(t, 1, m.Len())
}

func TestManifest_Summarize(t *testing.T) {
	t.Parallel()

	m := NewManifest()
	require.NoError(t, m.Airdrop.Add("a", mustAmount(t, "0.1", AmountFormatString)))
	require.NoError(t, m.Airdrop.Add("b", mustAmount(t, "0.2", AmountFormatString)))

	s := m.Summarize()
	assert.Equal(t, 2, s.Count)
	assert.True(t, decimal.RequireFromString("0.3").Equal(s.Total), "decimal sums are exact, got %s", s.Total)
}

func TestManifest_Encode(t *testing.T) {
	t.Parallel()

	m := NewManifest()
	require.NoError(t, m.Airdrop.Add("a", mustAmount(t, "100.50", AmountFormatNumber)))
	require.NoError(t, m.Airdrop.Add("b", mustAmount(t, "2", AmountFormatNumber)))

	b, err := m.Encode()
	require.NoError(t, err)

	want := "{\n" +
		"  \"decimals\": 18,\n" +
		"  \"airdrop\": {\n" +
		"    \"a\": 100.5,\n" +
		"    \"b\": 2\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, string(b))
}

func TestManifest_Encode_NoHTMLEscaping(t *testing.T) {
	t.Parallel()

	m := NewManifest()
	require.NoError(t, m.Airdrop.Add("a<b&c>", mustAmount(t, "1", AmountFormatNumber)))

	b, err := m.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"a<b&c>": 1`)

	var loaded Manifest
	require.NoError(t, json.Unmarshal(b, &loaded))
	assert.True(t, loaded.Airdrop.Has("a<b&c>"))
}

func TestAddressAmountMap_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		give     string
		wantErr  error
		wantMsg  string
		wantKeys []string
	}{
		{name: "keeps document order", give: `{"b":"1","a":2}`, wantKeys: []string{"b", "a"}},
		{name: "empty object", give: `{}`},
		{name: "repeated key", give: `{"a":"1","b":"1","a":"2"}`, wantErr: ErrDuplicateAddress, wantMsg: "duplicate address: a"},
		{name: "invalid amount", give: `{"a":"0"}`, wantErr: ErrInvalidAmount, wantMsg: `amount for "a"`},
		{name: "not an object", give: `["a"]`, wantMsg: "airdrop map must be a JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewAddressAmountMap()
			err := json.Unmarshal([]byte(tt.give), m)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
				}

				return
			}
			require.NoError(t, err)

			var keys []string
			for k := range m.All() {
				keys = append(keys, k)
			}
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestWriteManifest_OverwritesAndRoundTrips(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/out/addresses.json", []byte("stale"), 0o644))

	m := NewManifest()
	require.NoError(t, m.Airdrop.Add("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", mustAmount(t, "1.000000000000000001", AmountFormatString)))
	require.NoError(t, m.Airdrop.Add("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", mustAmount(t, "2", AmountFormatString)))

	require.NoError(t, WriteManifest(fs, "/out/addresses.json", m))

	loaded, err := LoadManifest(fs, "/out/addresses.json")
	require.NoError(t, err)
	assert.Equal(t, ManifestDecimals, loaded.Decimals)
	assert.Equal(t, m.Summarize().Count, loaded.Summarize().Count)
	assert.True(t, m.Summarize().Total.Equal(loaded.Summarize().Total))

	var keys []string
	for k, v := range loaded.Airdrop.All() {
		keys = append(keys, k)
		assert.Equal(t, AmountFormatString, v.Format)
	}
	assert.Equal(t, []string{
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	}, keys)

	// No temp files are left next to the manifest.
	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "addresses.json", entries[0].Name())
}

func TestWriteManifest_MissingDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	err := WriteManifest(fs, "/nowhere/addresses.json", NewManifest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat")
}

func TestLoadManifest_Errors(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.json", []byte(`{"decimals":18,"airdrop":{"a":"-1"}}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/null.json", []byte(`{"decimals":18,"airdrop":null}`), 0o644))

	_, err := LoadManifest(fs, "/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")

	_, err = LoadManifest(fs, "/bad.json")
	require.ErrorIs(t, err, ErrInvalidAmount)

	require.NoError(t, afero.WriteFile(fs, "/dup.json", []byte(`{"decimals":18,"airdrop":{"a":"1","a":"2"}}`), 0o644))
	_, err = LoadManifest(fs, "/dup.json")
	require.ErrorIs(t, err, ErrDuplicateAddress)

	_, err = LoadManifest(fs, "/null.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no airdrop map")
}
