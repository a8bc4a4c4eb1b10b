package pol

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/regpol/internal/mmfile"
)

// File is a Decoder over a memory-mapped policy file.
type File struct {
	*Decoder
	cleanup func() error
}

// Open maps the file at path and validates its header. Entries returned
// by the decoder own their data and stay valid after Close.
func Open(path string, opts ...Option) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	d, err := NewDecoder(bytes.NewReader(data), opts...)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &File{Decoder: d, cleanup: cleanup}, nil
}

// Close unmaps the file. It is safe to call more than once.
func (f *File) Close() error {
	if f.cleanup == nil {
		return nil
	}
	err := f.cleanup()
	f.cleanup = nil
	return err
}
