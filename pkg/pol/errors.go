package pol

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/regpol/internal/buf"
	"github.com/joshuapare/regpol/internal/format"
	"github.com/joshuapare/regpol/pkg/types"
)

func newError(kind types.ErrKind, s *buf.Stream, cause error, msgFormat string, args ...any) error {
	return &types.Error{
		Kind:   kind,
		Msg:    fmt.Sprintf(msgFormat, args...),
		Offset: s.Offset(),
		Err:    cause,
	}
}

// readError classifies a failed read inside an entry. Running out of input
// is a truncated entry; anything else is an I/O failure passed through.
func readError(s *buf.Stream, err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newError(types.ErrKindGrammar, s, format.ErrTruncated, "truncated entry reading %s", what)
	}
	return fmt.Errorf("read %s at offset %d: %w", what, s.Offset(), err)
}
