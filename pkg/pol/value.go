package pol

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/regpol/pkg/types"
)

// Value is the decoded payload of an entry. It is a closed set: None,
// String, Binary, DWord, DWordBigEndian, QWord and MultiString are the only
// implementations.
type Value interface {
	// Type returns the registry type the value was decoded as.
	Type() types.RegType
	// String renders the value for display.
	String() string

	isValue()
}

// None is the payload of a REG_NONE entry.
type None struct{}

// String is the payload of REG_SZ, REG_EXPAND_SZ and REG_LINK entries. Kind
// records which of the three it was.
type String struct {
	Kind types.RegType
	Text string
}

// Binary is the payload of a REG_BINARY entry, copied verbatim.
type Binary []byte

// DWord is the payload of a REG_DWORD entry.
type DWord uint32

// DWordBigEndian is the payload of a REG_DWORD_BIG_ENDIAN entry.
type DWordBigEndian uint32

// QWord is the payload of a REG_QWORD entry.
type QWord uint64

// MultiString is the payload of a REG_MULTI_SZ entry.
type MultiString []string

func (None) isValue()           {}
func (String) isValue()         {}
func (Binary) isValue()         {}
func (DWord) isValue()          {}
func (DWordBigEndian) isValue() {}
func (QWord) isValue()          {}
func (MultiString) isValue()    {}

func (None) Type() types.RegType           { return types.REG_NONE }
func (v String) Type() types.RegType       { return v.Kind }
func (Binary) Type() types.RegType         { return types.REG_BINARY }
func (DWord) Type() types.RegType          { return types.REG_DWORD }
func (DWordBigEndian) Type() types.RegType { return types.REG_DWORD_BE }
func (QWord) Type() types.RegType          { return types.REG_QWORD }
func (MultiString) Type() types.RegType    { return types.REG_MULTI_SZ }

// binaryPreview is how many bytes of a Binary value String shows.
const binaryPreview = 16

func (None) String() string { return "None" }

func (v String) String() string { return `"` + v.Text + `"` }

func (v Binary) String() string {
	if len(v) > binaryPreview {
		return hex.EncodeToString(v[:binaryPreview]) + "..."
	}
	return hex.EncodeToString(v)
}

func (v DWord) String() string          { return fmt.Sprintf("0x%08x", uint32(v)) }
func (v DWordBigEndian) String() string { return fmt.Sprintf("0x%08x", uint32(v)) }
func (v QWord) String() string          { return fmt.Sprintf("0x%016x", uint64(v)) }

func (v MultiString) String() string {
	quoted := make([]string, len(v))
	for i, s := range v {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
