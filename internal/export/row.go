// Package export turns decoded policy entries into rows and writes them as
// CSV, JSON, JSON lines, aligned text, or .reg documents.
package export

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/regpol/pkg/pol"
)

// Options controls how values are rendered.
type Options struct {
	// Decimal renders DWORD and QWORD values in decimal instead of
	// fixed-width hexadecimal.
	Decimal bool
	// MultiSeparator joins REG_MULTI_SZ items in text and CSV output.
	// Empty selects DefaultMultiSeparator.
	MultiSeparator string
	// NoHeader suppresses the CSV header row and the text column titles.
	NoHeader bool
	// Reg configures FormatReg output.
	RegRoot     string
	RegEncoding string
}

// DefaultMultiSeparator joins REG_MULTI_SZ items in flat formats.
const DefaultMultiSeparator = "|"

// Row is the flat rendering of one entry.
type Row struct {
	Key       string `json:"key"`
	ValueName string `json:"value_name"`
	Type      string `json:"type"`
	Size      uint32 `json:"size"`
	Directive string `json:"directive,omitempty"`
	Data      any    `json:"data"`
}

// Columns are the CSV and text column titles, in Row.Fields order.
var Columns = []string{"key", "value_name", "type", "size", "data"}

// NewRow renders e. Data holds a JSON-friendly value: a string for strings
// and binary (hex), a []string for multi-strings, a number or hex string
// for integers, and nil for REG_NONE.
func NewRow(e pol.Entry, opts Options) Row {
	r := Row{
		Key:       e.Key,
		ValueName: e.ValueName,
		Type:      e.Type.String(),
		Size:      e.Size,
	}
	if d, _ := e.Directive(); d != pol.DirectiveNone {
		r.Directive = d.String()
	}
	switch v := e.Value.(type) {
	case pol.String:
		r.Data = v.Text
	case pol.Binary:
		r.Data = hex.EncodeToString(v)
	case pol.MultiString:
		r.Data = []string(v)
	case pol.DWord:
		r.Data = formatUint(uint64(v), 8, opts.Decimal)
	case pol.DWordBigEndian:
		r.Data = formatUint(uint64(v), 8, opts.Decimal)
	case pol.QWord:
		r.Data = formatUint(uint64(v), 16, opts.Decimal)
	case pol.None, nil:
		r.Data = nil
	default:
		// A new Value variant must be handled here, never silently blank.
		r.Data = v.String()
	}
	return r
}

func formatUint(v uint64, width int, decimal bool) any {
	if decimal {
		return v
	}
	return fmt.Sprintf("0x%0*x", width, v)
}

// Fields returns the row as strings in Columns order.
func (r Row) Fields(opts Options) []string {
	return []string{r.Key, r.ValueName, r.Type, strconv.FormatUint(uint64(r.Size), 10), r.DataText(opts)}
}

// DataText renders Data for flat formats.
func (r Row) DataText(opts Options) string {
	switch d := r.Data.(type) {
	case nil:
		return ""
	case string:
		return d
	case []string:
		sep := opts.MultiSeparator
		if sep == "" {
			sep = DefaultMultiSeparator
		}
		return strings.Join(d, sep)
	case uint64:
		return strconv.FormatUint(d, 10)
	default:
		return fmt.Sprint(d)
	}
}
