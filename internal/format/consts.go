// Package format holds the fixed layout constants of the registry policy
// (PReg) file format and the low-level header decoder. Higher-level packages
// drive the per-entry grammar on top of these definitions.
package format

// Header layout (little-endian):
//
//	Offset  Size  Description
//	------  ----  ------------------------------
//	 0x000   4    'P' 'R' 'e' 'g'
//	 0x004   4    Version (always 1)
//
// Entries follow immediately, each as UTF-16LE code units:
//
//	[key;valueName;type;size;data]
//
// where key and valueName are NUL-terminated, type and size are u32 LE and
// data is exactly size raw bytes.
const (
	HeaderSize        = 8
	SignatureSize     = 4
	VersionOffset     = 0x04
	SupportedVersion  = 1
	UTF16CodeUnitSize = 2
)

// Signature is the four-byte magic at the start of every policy file.
var Signature = []byte{'P', 'R', 'e', 'g'}

// Structural characters of the entry grammar. Each occupies one UTF-16 code unit.
const (
	EntryOpen  rune = '['
	EntryClose rune = ']'
	FieldSep   rune = ';'
)
