package strcodec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable indicates no candidate in a Chain accepted the input.
var ErrUndecodable = errors.New("strcodec: unable to decode string")

// Candidate is one text encoding tried by a Chain.
type Candidate interface {
	Name() string
	Decode(b []byte) (string, error)
}

// Chain tries its candidates in order; the first one that decodes without
// error wins.
type Chain []Candidate

// DefaultChain is UTF-16LE with an ISO-8859-15 fallback, the encodings
// policy editors are known to write string payloads in.
var DefaultChain = Chain{UTF16LE, ISO8859_15}

// Decode returns the first successful decoding of b, with a single trailing
// NUL removed, along with the name of the candidate that produced it.
func (c Chain) Decode(b []byte) (string, string, error) {
	var errs []error
	for _, cand := range c {
		s, err := cand.Decode(b)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cand.Name(), err))
			continue
		}
		return strings.TrimSuffix(s, "\x00"), cand.Name(), nil
	}
	if len(errs) == 0 {
		return "", "", fmt.Errorf("%w: no candidate encodings", ErrUndecodable)
	}
	return "", "", fmt.Errorf("%w (%w)", ErrUndecodable, errors.Join(errs...))
}

// DecodeRaw decodes a fixed-length string payload with DefaultChain.
func DecodeRaw(b []byte) (string, error) {
	s, _, err := DefaultChain.Decode(b)
	return s, err
}

var (
	errOddLength         = errors.New("odd byte length")
	errUnpairedSurrogate = errors.New("unpaired surrogate")
)

type utf16le struct{}

// UTF16LE is a strict UTF-16LE decoder: odd lengths and unpaired
// surrogates are errors rather than replacement characters.
var UTF16LE Candidate = utf16le{}

func (utf16le) Name() string { return "UTF-16LE" }

func (utf16le) Decode(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errOddLength
	}
	words := make([]uint16, len(b)/2)
	for i := range words {
		words[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	for i := 0; i < len(words); i++ {
		w := words[i]
		switch {
		case w >= 0xD800 && w <= 0xDBFF:
			if i+1 >= len(words) || words[i+1] < 0xDC00 || words[i+1] > 0xDFFF {
				return "", fmt.Errorf("%w at unit %d", errUnpairedSurrogate, i)
			}
			i++
		case w >= 0xDC00 && w <= 0xDFFF:
			return "", fmt.Errorf("%w at unit %d", errUnpairedSurrogate, i)
		}
	}
	return string(utf16.Decode(words)), nil
}

type charmapCandidate struct {
	name string
	cm   *charmap.Charmap
}

func (c charmapCandidate) Name() string { return c.name }

// Decode maps every byte through the code page. Bytes the code page leaves
// undefined (the C1 range 0x80-0x9F in ISO-8859-15) decode to the code point
// of the same value, as WHATWG decoders do, instead of U+FFFD.
func (c charmapCandidate) Decode(b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, x := range b {
		r := c.cm.DecodeByte(x)
		if r == utf8.RuneError {
			r = rune(x)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

var (
	// ISO8859_15 decodes single-byte Latin-9 text.
	ISO8859_15 Candidate = charmapCandidate{name: "ISO-8859-15", cm: charmap.ISO8859_15}
	// Windows1252 decodes single-byte Windows Western text. It is not part of
	// DefaultChain; callers may append it to a custom Chain.
	Windows1252 Candidate = charmapCandidate{name: "Windows-1252", cm: charmap.Windows1252}
)
