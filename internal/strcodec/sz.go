package strcodec

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrTooLong indicates a NUL-terminated string ran past the caller's limit
// without a terminator.
var ErrTooLong = errors.New("strcodec: string exceeds length limit")

// WordSource yields UTF-16LE code units. io.EOF and io.ErrUnexpectedEOF
// from Next are passed through unchanged.
type WordSource interface {
	Next() (uint16, error)
}

// ReadSZ reads code units up to and including a zero unit and returns the
// text before it. Ill-formed surrogates become U+FFFD, one per unit; ReadSZ
// only fails on read errors or when more than maxWords units precede the
// terminator (maxWords <= 0 means unbounded).
func ReadSZ(src WordSource, maxWords int) (string, error) {
	var words []uint16
	for {
		w, err := src.Next()
		if err != nil {
			return "", err
		}
		if w == 0 {
			break
		}
		if maxWords > 0 && len(words) >= maxWords {
			return "", fmt.Errorf("%w: more than %d code units", ErrTooLong, maxWords)
		}
		words = append(words, w)
	}
	return DecodeWordsLossy(words), nil
}

// DecodeWordsLossy decodes UTF-16 code units, substituting U+FFFD for every
// unpaired surrogate. It never fails.
func DecodeWordsLossy(words []uint16) string {
	if len(words) == 0 {
		return ""
	}
	return string(utf16.Decode(words))
}

// ReadChar reads one code unit as a single character. A surrogate unit,
// which cannot stand alone, reads as U+FFFD.
func ReadChar(src WordSource) (rune, error) {
	w, err := src.Next()
	if err != nil {
		return 0, err
	}
	r := rune(w)
	if utf16.IsSurrogate(r) {
		return utf8.RuneError, nil
	}
	return r, nil
}
