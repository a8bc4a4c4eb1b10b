package format

import "errors"

var (
	// ErrSignatureMismatch indicates the file does not start with "PReg".
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrVersionMismatch indicates a header version other than 1.
	ErrVersionMismatch = errors.New("format: unsupported version")
	// ErrTruncated indicates the input ended inside a structure.
	ErrTruncated = errors.New("format: truncated input")
	// ErrDelimiter indicates a structural character other than the one the grammar requires.
	ErrDelimiter = errors.New("format: unexpected delimiter")
	// ErrSizeMismatch indicates a fixed-width value declared a different size.
	ErrSizeMismatch = errors.New("format: declared size mismatch")
	// ErrUnsupported indicates the value type is recognized but not decoded.
	ErrUnsupported = errors.New("format: unsupported feature")
)
