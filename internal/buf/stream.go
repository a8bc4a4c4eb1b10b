package buf

import (
	"bufio"
	"io"
)

// Stream is a forward-only reader over a policy file body. It hands out
// 16-bit little-endian code units for the textual parts of the grammar and
// raw byte ranges for value payloads, and counts the bytes it has consumed.
//
// A Stream never seeks and never reads ahead of what a caller asks for
// beyond the bufio buffer.
type Stream struct {
	r   *bufio.Reader
	off int64
}

// NewStream wraps r. r is used as-is when it already is a *bufio.Reader.
func NewStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Stream{r: br}
}

// NewStreamAt is NewStream for a reader already positioned off bytes into
// the file, so offsets in errors stay file-relative.
func NewStreamAt(r io.Reader, off int64) *Stream {
	s := NewStream(r)
	s.off = off
	return s
}

// Offset returns the number of bytes consumed so far.
func (s *Stream) Offset() int64 { return s.off }

// Next reads one UTF-16LE code unit. It returns io.EOF when the stream is
// exhausted exactly at a word boundary and io.ErrUnexpectedEOF when a single
// dangling byte remains; a partial word is never returned.
func (s *Stream) Next() (uint16, error) {
	var w [2]byte
	if err := s.fill(w[:]); err != nil {
		return 0, err
	}
	return U16LE(w[:]), nil
}

// ReadN reads exactly n raw bytes. n == 0 returns an empty, non-nil slice.
func (s *Stream) ReadN(n int) ([]byte, error) {
	b := make([]byte, n)
	if n == 0 {
		return b, nil
	}
	if err := s.fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadU32LE reads a little-endian uint32.
func (s *Stream) ReadU32LE() (uint32, error) {
	var b [4]byte
	if err := s.fill(b[:]); err != nil {
		return 0, err
	}
	return U32LE(b[:]), nil
}

// ReadU32BE reads a big-endian uint32.
func (s *Stream) ReadU32BE() (uint32, error) {
	var b [4]byte
	if err := s.fill(b[:]); err != nil {
		return 0, err
	}
	return U32BE(b[:]), nil
}

// ReadU64LE reads a little-endian uint64.
func (s *Stream) ReadU64LE() (uint64, error) {
	var b [8]byte
	if err := s.fill(b[:]); err != nil {
		return 0, err
	}
	return U64LE(b[:]), nil
}

// fill follows io.ReadFull semantics: io.EOF only when nothing was read.
func (s *Stream) fill(b []byte) error {
	n, err := io.ReadFull(s.r, b)
	s.off += int64(n)
	return err
}
