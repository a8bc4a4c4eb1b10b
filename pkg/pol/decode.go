package pol

import (
	"errors"

	"github.com/joshuapare/regpol/internal/buf"
	"github.com/joshuapare/regpol/internal/format"
	"github.com/joshuapare/regpol/internal/strcodec"
	"github.com/joshuapare/regpol/pkg/types"
)

// decodeValue reads the payload of an entry declared as type t with size
// bytes. Variable-width payloads are read in full before any text decoding,
// so the stream position afterwards does not depend on whether decoding
// succeeded.
func decodeValue(s *buf.Stream, t types.RegType, size uint32, cfg *config) (Value, error) {
	if !t.Implemented() {
		return nil, newError(types.ErrKindUnsupported, s, format.ErrUnsupported,
			"value type %s is not implemented", t)
	}

	if want, fixed := t.FixedSize(); fixed && size != want {
		return nil, newError(types.ErrKindGrammar, s, format.ErrSizeMismatch,
			"%s declares %d bytes, want %d", t, size, want)
	}

	switch t {
	case types.REG_NONE:
		if size != 0 {
			// Not skipped: a sized REG_NONE is reported, never read past.
			return nil, newError(types.ErrKindGrammar, s, format.ErrSizeMismatch,
				"%s declares %d bytes, but REG_NONE carries no data and its size must be 0", t, size)
		}
		return None{}, nil

	case types.REG_DWORD:
		v, err := s.ReadU32LE()
		if err != nil {
			return nil, readError(s, err, t.String()+" data")
		}
		return DWord(v), nil

	case types.REG_DWORD_BE:
		v, err := s.ReadU32BE()
		if err != nil {
			return nil, readError(s, err, t.String()+" data")
		}
		return DWordBigEndian(v), nil

	case types.REG_QWORD:
		v, err := s.ReadU64LE()
		if err != nil {
			return nil, readError(s, err, t.String()+" data")
		}
		return QWord(v), nil
	}

	raw, err := readPayload(s, t, size, cfg.limits)
	if err != nil {
		return nil, err
	}

	switch t {
	case types.REG_BINARY:
		return Binary(raw), nil

	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		text, _, err := cfg.chain.Decode(raw)
		if err != nil {
			return nil, stringError(s, t, err)
		}
		return String{Kind: t, Text: text}, nil

	case types.REG_MULTI_SZ:
		text, _, err := cfg.chain.Decode(raw)
		if err != nil {
			return nil, stringError(s, t, err)
		}
		return MultiString(strcodec.SplitMulti(text)), nil
	}

	// Implemented() and the cases above cover the same set.
	return nil, newError(types.ErrKindUnsupported, s, format.ErrUnsupported,
		"value type %s is not implemented", t)
}

func readPayload(s *buf.Stream, t types.RegType, size uint32, limits types.Limits) ([]byte, error) {
	if size > limits.MaxValueSize {
		return nil, newError(types.ErrKindLimit, s, nil,
			"%s declares %d bytes, limit is %d", t, size, limits.MaxValueSize)
	}
	raw, err := s.ReadN(int(size))
	if err != nil {
		return nil, readError(s, err, t.String()+" data")
	}
	return raw, nil
}

func stringError(s *buf.Stream, t types.RegType, err error) error {
	if errors.Is(err, strcodec.ErrUndecodable) {
		return newError(types.ErrKindStringDecode, s, err, "unable to decode %s string", t)
	}
	return err
}
