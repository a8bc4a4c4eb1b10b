package pol

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/joshuapare/regpol/internal/buf"
	"github.com/joshuapare/regpol/internal/format"
	"github.com/joshuapare/regpol/pkg/types"
)

// Header is the fixed preamble of a policy file.
type Header struct {
	Signature [4]byte // always "PReg"
	Version   uint32  // always 1
}

// Decoder reads entries from a policy file one at a time.
//
// Use it like bufio.Scanner: call Next until it returns false, then Err to
// learn whether the file was fully consumed (nil) or decoding stopped on a
// malformed entry. A Decoder never resynchronises after an error.
type Decoder struct {
	s    *buf.Stream
	cfg  config
	hdr  Header
	cur  Entry
	n    int
	err  error
	done bool
}

// NewDecoder reads and validates the 8-byte header from r. A missing or
// invalid header returns an ErrKindHeader error and no Decoder.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	s := buf.NewStream(r)
	raw, err := s.ReadN(format.HeaderSize)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, newError(types.ErrKindHeader, s, format.ErrTruncated, "file shorter than header")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	h, err := format.ParseHeader(raw)
	if err != nil {
		return nil, newError(types.ErrKindHeader, s, err, "invalid header")
	}
	return &Decoder{
		s:   s,
		cfg: newConfig(opts),
		hdr: Header{Signature: h.Signature, Version: h.Version},
	}, nil
}

// Header returns the validated file header.
func (d *Decoder) Header() Header { return d.hdr }

// Next decodes the next entry. It returns false at the end of the file or
// on the first error; Err distinguishes the two.
func (d *Decoder) Next() bool {
	if d.done {
		return false
	}
	e, err := parseEntry(d.s, &d.cfg)
	if err != nil {
		d.done = true
		d.cur = Entry{}
		if err != io.EOF {
			d.err = fmt.Errorf("entry %d: %w", d.n, err)
		}
		return false
	}
	d.cur = e
	d.n++
	return true
}

// Entry returns the entry decoded by the last successful call to Next.
func (d *Decoder) Entry() Entry { return d.cur }

// Err returns the error that stopped decoding, or nil if every entry was
// decoded.
func (d *Decoder) Err() error { return d.err }

// Count returns the number of entries decoded so far.
func (d *Decoder) Count() int { return d.n }

// Offset returns the number of bytes consumed from the input, header included.
func (d *Decoder) Offset() int64 { return d.s.Offset() }

// All returns an iterator over the remaining entries. If decoding stops on
// an error, the final pair carries it with a zero Entry.
func (d *Decoder) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for d.Next() {
			if !yield(d.cur, nil) {
				return
			}
		}
		if d.err != nil {
			yield(Entry{}, d.err)
		}
	}
}

// ReadAll decodes every entry of r. On a mid-file error it returns the
// entries decoded before it together with the error.
func ReadAll(r io.Reader, opts ...Option) ([]Entry, error) {
	d, err := NewDecoder(r, opts...)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for d.Next() {
		entries = append(entries, d.Entry())
	}
	return entries, d.Err()
}
