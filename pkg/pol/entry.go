package pol

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/regpol/internal/buf"
	"github.com/joshuapare/regpol/internal/format"
	"github.com/joshuapare/regpol/internal/strcodec"
	"github.com/joshuapare/regpol/pkg/types"
)

// Entry is one [key;valueName;type;size;data] record of a policy file.
type Entry struct {
	Key       string
	ValueName string
	Type      types.RegType
	Size      uint32 // declared payload size in bytes
	Value     Value
}

// Path returns Key and ValueName joined with a backslash.
func (e Entry) Path() string {
	if e.ValueName == "" {
		return e.Key
	}
	return e.Key + `\` + e.ValueName
}

// parseEntry decodes one entry. It returns io.EOF, unwrapped, only when the
// stream ends exactly where the next entry's opening bracket would start.
func parseEntry(s *buf.Stream, cfg *config) (Entry, error) {
	var e Entry

	r, err := strcodec.ReadChar(s)
	if err == io.EOF {
		return e, io.EOF
	}
	if err != nil {
		return e, readError(s, err, "entry start")
	}
	if err := checkDelim(s, r, format.EntryOpen, "entry start"); err != nil {
		return e, err
	}

	if e.Key, err = readName(s, cfg, "key"); err != nil {
		return e, err
	}
	if err := expect(s, format.FieldSep, "separator after key"); err != nil {
		return e, err
	}

	if e.ValueName, err = readName(s, cfg, "value name"); err != nil {
		return e, err
	}
	if err := expect(s, format.FieldSep, "separator after value name"); err != nil {
		return e, err
	}

	tag, err := s.ReadU32LE()
	if err != nil {
		return e, readError(s, err, "type")
	}
	if e.Type, err = types.ParseRegType(tag); err != nil {
		var te *types.Error
		if errors.As(err, &te) {
			te.Offset = s.Offset()
		}
		return e, err
	}
	if err := expect(s, format.FieldSep, "separator after type"); err != nil {
		return e, err
	}

	if e.Size, err = s.ReadU32LE(); err != nil {
		return e, readError(s, err, "size")
	}
	if err := expect(s, format.FieldSep, "separator after size"); err != nil {
		return e, err
	}

	if e.Value, err = decodeValue(s, e.Type, e.Size, cfg); err != nil {
		return e, fmt.Errorf("value %q of key %q: %w", e.ValueName, e.Key, err)
	}
	if err := expect(s, format.EntryClose, "entry end"); err != nil {
		return e, err
	}
	return e, nil
}

func readName(s *buf.Stream, cfg *config, what string) (string, error) {
	name, err := strcodec.ReadSZ(s, cfg.limits.MaxStringWords)
	if errors.Is(err, strcodec.ErrTooLong) {
		return "", newError(types.ErrKindLimit, s, err, "%s too long", what)
	}
	if err != nil {
		return "", readError(s, err, what)
	}
	return name, nil
}

func expect(s *buf.Stream, want rune, what string) error {
	r, err := strcodec.ReadChar(s)
	if err != nil {
		return readError(s, err, what)
	}
	return checkDelim(s, r, want, what)
}

func checkDelim(s *buf.Stream, got, want rune, what string) error {
	if got == want {
		return nil
	}
	return newError(types.ErrKindGrammar, s, format.ErrDelimiter,
		"expected %q for %s, got %q", want, what, got)
}
