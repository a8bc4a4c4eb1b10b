package strcodec

import (
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeUTF16LE(s string) []byte {
	ws := utf16.Encode([]rune(s))
	b := make([]byte, 0, len(ws)*2)
	for _, w := range ws {
		b = append(b, byte(w), byte(w>>8))
	}
	return b
}

func TestChainDecode_PrefersUTF16(t *testing.T) {
	tests := []string{"hello", "C:\\Windows\\System32", "€uro", "😀", ""}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			got, used, err := DefaultChain.Decode(encodeUTF16LE(s + "\x00"))
			require.NoError(t, err)
			assert.Equal(t, s, got)
			assert.Equal(t, "UTF-16LE", used)
		})
	}
}

func TestChainDecode_StripsOneTrailingNUL(t *testing.T) {
	got, err := DecodeRaw(encodeUTF16LE("a\x00\x00"))
	require.NoError(t, err)
	assert.Equal(t, "a\x00", got)

	got, err = DecodeRaw(encodeUTF16LE("no terminator"))
	require.NoError(t, err)
	assert.Equal(t, "no terminator", got)
}

func TestChainDecode_FallsBackToISO885915(t *testing.T) {
	// Odd length cannot be UTF-16.
	got, used, err := DefaultChain.Decode([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, "ISO-8859-15", used)

	// 0xA4 is the euro sign in Latin-9; the pair 0x00 0xD8 is a lone high surrogate in UTF-16LE.
	got, used, err = DefaultChain.Decode([]byte{0xA4, 0x31, 0x00, 0xD8})
	require.NoError(t, err)
	assert.Equal(t, "€1\x00Ø", got)
	assert.Equal(t, "ISO-8859-15", used)

	// Trailing NUL is stripped after fallback too.
	got, err = DecodeRaw([]byte{'x', 'y', 'z', 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, "xyz\x00", got)
}

type failing struct{ name string }

func (f failing) Name() string                  { return f.name }
func (f failing) Decode([]byte) (string, error) { return "", errors.New("nope") }

func TestChainDecode_Undecodable(t *testing.T) {
	chain := Chain{UTF16LE, failing{name: "never"}}
	_, _, err := chain.Decode([]byte{0x41})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUndecodable)
	assert.Contains(t, err.Error(), "UTF-16LE")
	assert.Contains(t, err.Error(), "never")

	_, _, err = Chain{}.Decode([]byte{0x41, 0x00})
	assert.ErrorIs(t, err, ErrUndecodable)
}

func TestChainDecode_ExtendedFallback(t *testing.T) {
	chain := Chain{failing{name: "first"}, Windows1252}
	got, used, err := chain.Decode([]byte{0x80, 'x'})
	require.NoError(t, err)
	assert.Equal(t, "€x", got)
	assert.Equal(t, "Windows-1252", used)
}

func TestISO885915_C1Range(t *testing.T) {
	// Latin-9 leaves 0x80-0x9F undefined; they decode to U+0080-U+009F, never U+FFFD.
	for b := 0x80; b <= 0x9F; b++ {
		got, err := ISO8859_15.Decode([]byte{byte(b)})
		require.NoError(t, err, "byte %#02x", b)
		assert.Equal(t, string(rune(b)), got, "byte %#02x", b)
		assert.NotContains(t, got, "\uFFFD", "byte %#02x", b)
	}

	// Same through the default chain: a single byte is never UTF-16.
	got, used, err := DefaultChain.Decode([]byte{0x80, 0x9F, 0xA4})
	require.NoError(t, err)
	assert.Equal(t, "\u0080\u009F€", got)
	assert.Equal(t, "ISO-8859-15", used)
}

func TestWindows1252_UndefinedBytes(t *testing.T) {
	got, err := Windows1252.Decode([]byte{0x80, 0x81, 0x8D, 0x9F})
	require.NoError(t, err)
	assert.Equal(t, "€\u0081\u008DŸ", got)
}

func TestUTF16LE_Strict(t *testing.T) {
	_, err := UTF16LE.Decode([]byte{0x00, 0xDC, 0x41, 0x00})
	assert.Error(t, err, "lone low surrogate")

	_, err = UTF16LE.Decode([]byte{0x3D, 0xD8})
	assert.Error(t, err, "high surrogate at end")

	got, err := UTF16LE.Decode([]byte{0x3D, 0xD8, 0x00, 0xDE})
	require.NoError(t, err)
	assert.Equal(t, "😀", got)
}
