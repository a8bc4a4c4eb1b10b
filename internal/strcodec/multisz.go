package strcodec

import "strings"

// SplitMulti splits a decoded REG_MULTI_SZ block into its strings.
//
// A block is NUL-separated and closed by a second NUL, so splitting leaves
// one empty string for the final terminator and, in a non-empty block, one
// more for the separator in front of it. At most those two trailing empty
// strings are dropped; empty strings earlier in the list are kept.
func SplitMulti(s string) []string {
	parts := strings.Split(s, "\x00")
	for trimmed := 0; trimmed < 2 && len(parts) > 0 && parts[len(parts)-1] == ""; trimmed++ {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// DecodeMulti decodes a raw REG_MULTI_SZ payload with DefaultChain and splits it.
func DecodeMulti(b []byte) ([]string, error) {
	s, err := DecodeRaw(b)
	if err != nil {
		return nil, err
	}
	return SplitMulti(s), nil
}
