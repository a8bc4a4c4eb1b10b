package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/regpol/internal/buf"
)

// Header is the fixed 8-byte preamble of a policy file.
type Header struct {
	Signature [SignatureSize]byte
	Version   uint32
}

// ParseHeader validates the PReg header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("preg header: %w", ErrTruncated)
	}
	var h Header
	copy(h.Signature[:], b[:SignatureSize])
	h.Version = buf.U32LE(b[VersionOffset:])
	if !bytes.Equal(b[:SignatureSize], Signature) {
		return h, fmt.Errorf("preg header: got magic %q: %w", b[:SignatureSize], ErrSignatureMismatch)
	}
	if h.Version != SupportedVersion {
		return h, fmt.Errorf("preg header: got version %d: %w", h.Version, ErrVersionMismatch)
	}
	return h, nil
}
