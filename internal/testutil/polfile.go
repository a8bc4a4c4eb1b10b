// Package testutil builds registry policy files for tests.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/joshuapare/regpol/pkg/types"
)

// Builder assembles a PReg byte stream entry by entry. It writes exactly
// what it is told, so tests can also produce malformed files.
type Builder struct {
	b []byte
}

// NewBuilder starts a file with a valid "PReg" version 1 header.
func NewBuilder() *Builder {
	return NewBuilderWithHeader([]byte("PReg"), 1)
}

// NewBuilderWithHeader starts a file with an arbitrary magic and version.
func NewBuilderWithHeader(magic []byte, version uint32) *Builder {
	b := &Builder{}
	b.b = append(b.b, magic...)
	b.b = binary.LittleEndian.AppendUint32(b.b, version)
	return b
}

// Entry appends a well-formed entry whose declared size is len(data).
func (b *Builder) Entry(key, name string, t types.RegType, data []byte) *Builder {
	return b.EntryWithSize(key, name, uint32(t), uint32(len(data)), data)
}

// EntryWithSize appends an entry with an explicit type tag and declared size.
func (b *Builder) EntryWithSize(key, name string, tag, size uint32, data []byte) *Builder {
	b.Char('[').SZ(key).Char(';').SZ(name).Char(';')
	b.U32(tag).Char(';').U32(size).Char(';')
	b.Raw(data...)
	return b.Char(']')
}

// Char appends one UTF-16LE code unit.
func (b *Builder) Char(r rune) *Builder {
	b.b = binary.LittleEndian.AppendUint16(b.b, uint16(r))
	return b
}

// SZ appends s as UTF-16LE followed by a NUL code unit.
func (b *Builder) SZ(s string) *Builder {
	b.b = append(b.b, UTF16(s)...)
	return b.Char(0)
}

// U32 appends a little-endian uint32.
func (b *Builder) U32(v uint32) *Builder {
	b.b = binary.LittleEndian.AppendUint32(b.b, v)
	return b
}

// Raw appends bytes verbatim.
func (b *Builder) Raw(p ...byte) *Builder {
	b.b = append(b.b, p...)
	return b
}

// Bytes returns the file contents built so far.
func (b *Builder) Bytes() []byte {
	return append([]byte(nil), b.b...)
}

// Len returns the number of bytes built so far.
func (b *Builder) Len() int { return len(b.b) }

// WriteFile writes the file into a per-test temporary directory and
// returns its path.
func (b *Builder) WriteFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b.b, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// UTF16 encodes s as UTF-16LE without a terminator.
func UTF16(s string) []byte {
	words := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(words)*2)
	for _, w := range words {
		out = binary.LittleEndian.AppendUint16(out, w)
	}
	return out
}

// SZData encodes s as a REG_SZ payload: UTF-16LE plus a NUL terminator.
func SZData(s string) []byte {
	return append(UTF16(s), 0, 0)
}

// MultiSZData encodes a REG_MULTI_SZ payload: each string NUL-terminated,
// then a final NUL.
func MultiSZData(values ...string) []byte {
	var out []byte
	for _, v := range values {
		out = append(out, SZData(v)...)
	}
	return append(out, 0, 0)
}

// DWordData encodes v little-endian.
func DWordData(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// DWordBEData encodes v big-endian.
func DWordBEData(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

// QWordData encodes v little-endian.
func QWordData(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}
