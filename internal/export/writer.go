package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/joshuapare/regpol/internal/regtext"
	"github.com/joshuapare/regpol/pkg/pol"
)

// Format names an output format.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatText  Format = "text"
	FormatReg   Format = "reg"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatCSV, FormatJSON, FormatJSONL, FormatText, FormatReg}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %v)", s, Formats)
}

// Writer writes entries one at a time. Close must be called to flush
// buffered output and close any enclosing structure (JSON array).
type Writer interface {
	Write(e pol.Entry) error
	Close() error
}

// NewWriter returns a Writer for format f on w.
func NewWriter(w io.Writer, f Format, opts Options) (Writer, error) {
	switch f {
	case FormatCSV:
		return newCSVWriter(w, opts), nil
	case FormatJSON:
		return &jsonWriter{bw: bufio.NewWriter(w), opts: opts}, nil
	case FormatJSONL:
		bw := bufio.NewWriter(w)
		return &jsonlWriter{bw: bw, enc: json.NewEncoder(bw), opts: opts}, nil
	case FormatText:
		return newTextWriter(w, opts), nil
	case FormatReg:
		rw, err := regtext.NewWriter(w, regtext.Options{Root: opts.RegRoot, OutputEncoding: opts.RegEncoding})
		if err != nil {
			return nil, err
		}
		return rw, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", f)
	}
}

type csvWriter struct {
	cw     *csv.Writer
	opts   Options
	header bool
}

func newCSVWriter(w io.Writer, opts Options) *csvWriter {
	return &csvWriter{cw: csv.NewWriter(w), opts: opts, header: !opts.NoHeader}
}

func (w *csvWriter) Write(e pol.Entry) error {
	if w.header {
		w.header = false
		if err := w.cw.Write(Columns); err != nil {
			return err
		}
	}
	return w.cw.Write(NewRow(e, w.opts).Fields(w.opts))
}

func (w *csvWriter) Close() error {
	if w.header {
		w.header = false
		if err := w.cw.Write(Columns); err != nil {
			return err
		}
	}
	w.cw.Flush()
	return w.cw.Error()
}

// jsonWriter streams a JSON array, one element per entry.
type jsonWriter struct {
	bw   *bufio.Writer
	opts Options
	n    int
}

func (w *jsonWriter) Write(e pol.Entry) error {
	b, err := json.Marshal(NewRow(e, w.opts))
	if err != nil {
		return err
	}
	if w.n == 0 {
		w.bw.WriteString("[\n  ")
	} else {
		w.bw.WriteString(",\n  ")
	}
	w.n++
	_, err = w.bw.Write(b)
	return err
}

func (w *jsonWriter) Close() error {
	if w.n == 0 {
		w.bw.WriteString("[]\n")
	} else {
		w.bw.WriteString("\n]\n")
	}
	return w.bw.Flush()
}

type jsonlWriter struct {
	bw   *bufio.Writer
	enc  *json.Encoder
	opts Options
}

func (w *jsonlWriter) Write(e pol.Entry) error {
	return w.enc.Encode(NewRow(e, w.opts))
}

func (w *jsonlWriter) Close() error { return w.bw.Flush() }

var controlEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`, "\x00", `\0`)

type textWriter struct {
	tw     *tabwriter.Writer
	opts   Options
	header bool
}

func newTextWriter(w io.Writer, opts Options) *textWriter {
	return &textWriter{
		tw:     tabwriter.NewWriter(w, 0, 4, 2, ' ', 0),
		opts:   opts,
		header: !opts.NoHeader,
	}
}

func (w *textWriter) Write(e pol.Entry) error {
	if w.header {
		w.header = false
		fmt.Fprintln(w.tw, strings.ToUpper(strings.Join(Columns, "\t")))
	}
	fields := NewRow(e, w.opts).Fields(w.opts)
	for i, f := range fields {
		fields[i] = controlEscaper.Replace(f)
	}
	_, err := fmt.Fprintln(w.tw, strings.Join(fields, "\t"))
	return err
}

func (w *textWriter) Close() error { return w.tw.Flush() }
