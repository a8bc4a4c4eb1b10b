package strcodec

import (
	"io"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordSlice struct {
	words []uint16
	pos   int
}

func (w *wordSlice) Next() (uint16, error) {
	if w.pos >= len(w.words) {
		return 0, io.EOF
	}
	v := w.words[w.pos]
	w.pos++
	return v, nil
}

func words(s string, extra ...uint16) *wordSlice {
	return &wordSlice{words: append(utf16.Encode([]rune(s)), extra...)}
}

func TestReadSZ_RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"Software\\Policies\\Test",
		"abcd_äöüß",
		"symbols $£₤₧€",
		"emoji 😀 outside the BMP",
	}
	for _, want := range tests {
		t.Run(want, func(t *testing.T) {
			src := words(want, 0, 'X')
			got, err := ReadSZ(src, 0)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			// The terminator is consumed and nothing past it.
			next, err := src.Next()
			require.NoError(t, err)
			assert.Equal(t, uint16('X'), next)
		})
	}
}

func TestReadSZ_MalformedSurrogates(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"lone high", []uint16{'a', 0xD800, 'b'}, "a\uFFFDb"},
		{"lone low", []uint16{0xDC00, 'b'}, "\uFFFDb"},
		{"two highs", []uint16{0xD800, 0xD801}, "\uFFFD\uFFFD"},
		{"high at end", []uint16{'z', 0xDBFF}, "z\uFFFD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &wordSlice{words: append(tt.units, 0)}
			got, err := ReadSZ(src, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadSZ_Errors(t *testing.T) {
	_, err := ReadSZ(words("no terminator"), 0)
	assert.ErrorIs(t, err, io.EOF)

	_, err = ReadSZ(words("abcdef", 0), 3)
	assert.ErrorIs(t, err, ErrTooLong)

	got, err := ReadSZ(words("abc", 0), 3)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestReadChar(t *testing.T) {
	src := &wordSlice{words: []uint16{'[', ';', 0xD800}}

	r, err := ReadChar(src)
	require.NoError(t, err)
	assert.Equal(t, '[', r)

	r, err = ReadChar(src)
	require.NoError(t, err)
	assert.Equal(t, ';', r)

	r, err = ReadChar(src)
	require.NoError(t, err)
	assert.Equal(t, '\uFFFD', r)

	_, err = ReadChar(src)
	assert.ErrorIs(t, err, io.EOF)
}
