// Package regtext renders decoded policy entries as a registry editor
// (.reg) document.
package regtext

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/regpol/pkg/pol"
	"github.com/joshuapare/regpol/pkg/types"
)

var (
	errUnsupportedEncoding = errors.New("regtext: unsupported output encoding")
	errUnknownRoot         = errors.New("regtext: unknown root key")
)

// Options controls .reg export.
type Options struct {
	// Root is prepended to every key path, e.g. "HKLM" for a machine
	// policy file. Short and long root names are accepted. Empty leaves
	// keys as stored in the policy file.
	Root string

	// OutputEncoding is EncodingUTF8 (default) or EncodingUTF16LE. UTF-16LE
	// output starts with a byte order mark, like regedit writes it.
	OutputEncoding string
}

// Writer streams entries as .reg text. Consecutive entries of the same key
// share one key header, so input in file order produces one section per run.
type Writer struct {
	bw      *bufio.Writer
	enc     io.WriteCloser // non-nil for UTF-16LE output
	root    string
	curKey  string
	inKey   bool
	scratch bytes.Buffer
}

// NewWriter writes the .reg header to w and returns a Writer for entries.
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	rw := &Writer{}
	if opts.Root != "" {
		full, ok := rootKeys[strings.ToUpper(opts.Root)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", errUnknownRoot, opts.Root)
		}
		rw.root = full
	}

	switch strings.ToUpper(opts.OutputEncoding) {
	case "", EncodingUTF8:
		rw.bw = bufio.NewWriter(w)
	case EncodingUTF16LE:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		rw.enc = transform.NewWriter(w, enc)
		rw.bw = bufio.NewWriter(rw.enc)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedEncoding, opts.OutputEncoding)
	}

	rw.bw.WriteString(RegFileHeader + CRLF)
	return rw, nil
}

// Write emits one entry, preceded by its key header when the key changes.
func (w *Writer) Write(e pol.Entry) error {
	if !w.inKey || !strings.EqualFold(e.Key, w.curKey) {
		w.bw.WriteString(CRLF + KeyOpenBracket)
		w.bw.WriteString(w.keyPath(e.Key))
		w.bw.WriteString(KeyCloseBracket + CRLF)
		w.curKey = e.Key
		w.inKey = true
	}
	w.scratch.Reset()
	emitValue(&w.scratch, e)
	_, err := w.bw.Write(w.scratch.Bytes())
	return err
}

// Close flushes buffered output. It does not close the underlying writer.
func (w *Writer) Close() error {
	if _, err := w.bw.WriteString(CRLF); err != nil {
		return err
	}
	if err := w.bw.Flush(); err != nil {
		return err
	}
	if w.enc != nil {
		return w.enc.Close()
	}
	return nil
}

func (w *Writer) keyPath(key string) string {
	if w.root == "" {
		return key
	}
	if key == "" {
		return w.root
	}
	return w.root + Backslash + key
}

func emitValue(buf *bytes.Buffer, e pol.Entry) {
	name := e.ValueName
	switch d, target := e.Directive(); d {
	case pol.DirectiveNone:
	case pol.DirectiveDeleteValue:
		emitName(buf, target)
		buf.WriteString(DeleteValueToken + CRLF)
		return
	case pol.DirectiveSoft:
		name = target
	default:
		// No .reg syntax for the rest; keep them visible.
		fmt.Fprintf(buf, "%s %s (%s) %s%s", CommentPrefix, e.ValueName, d, e.Value, CRLF)
		return
	}

	emitName(buf, name)
	switch v := e.Value.(type) {
	case pol.String:
		if v.Kind == types.REG_SZ && !strings.ContainsAny(v.Text, "\r\n\x00") {
			buf.WriteString(Quote)
			buf.WriteString(escapeString(v.Text))
			buf.WriteString(Quote)
			break
		}
		writeHex(buf, v.Kind, encodeUTF16LEZeroTerminated(v.Text))
	case pol.DWord:
		buf.WriteString(DWORDPrefix)
		fmt.Fprintf(buf, DWORDHexFormat, uint32(v))
	case pol.DWordBigEndian:
		writeHex(buf, types.REG_DWORD_BE, binary.BigEndian.AppendUint32(nil, uint32(v)))
	case pol.QWord:
		writeHex(buf, types.REG_QWORD, binary.LittleEndian.AppendUint64(nil, uint64(v)))
	case pol.Binary:
		writeHex(buf, types.REG_BINARY, v)
	case pol.MultiString:
		writeHex(buf, types.REG_MULTI_SZ, encodeMultiString(v))
	case pol.None:
		writeHex(buf, types.REG_NONE, nil)
	}
	buf.WriteString(CRLF)
}

func emitName(buf *bytes.Buffer, name string) {
	if name == "" {
		buf.WriteString(DefaultValuePrefix)
		return
	}
	buf.WriteString(Quote)
	buf.WriteString(escapeString(name))
	buf.WriteString(Quote + ValueAssignment)
}

func writeHex(buf *bytes.Buffer, t types.RegType, data []byte) {
	if t == types.REG_BINARY {
		buf.WriteString(HexPrefix)
	} else {
		fmt.Fprintf(buf, HexTypeFormat, uint32(t))
	}
	buf.WriteString(formatHex(data))
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}

func formatHex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf(HexByteFormat, b)
	}
	return strings.Join(parts, HexByteSeparator)
}
