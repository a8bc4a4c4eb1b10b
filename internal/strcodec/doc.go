// Package strcodec decodes the textual parts of a registry policy entry:
// NUL-terminated UTF-16 names read word by word, fixed-length string
// payloads with an ordered chain of fallback encodings, REG_MULTI_SZ
// splitting, and the single-unit structural characters of the grammar.
package strcodec
