package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseHeaderSuccess(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf, Signature)
	binary.LittleEndian.PutUint32(buf[VersionOffset:], SupportedVersion)

	hdr, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if string(hdr.Signature[:]) != "PReg" {
		t.Fatalf("signature mismatch: %+v", hdr)
	}
	if hdr.Version != 1 {
		t.Fatalf("version mismatch: %+v", hdr)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf, Signature)
	binary.LittleEndian.PutUint32(buf[VersionOffset:], SupportedVersion)

	if _, err := ParseHeader(buf[:7]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}

	bad := append([]byte(nil), buf...)
	copy(bad, []byte{'P', 'R', 'E', 'G'})
	if _, err := ParseHeader(bad); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected signature error, got %v", err)
	}

	for _, v := range []uint32{0, 2, 0x01000000} {
		bad = append([]byte(nil), buf...)
		binary.LittleEndian.PutUint32(bad[VersionOffset:], v)
		hdr, err := ParseHeader(bad)
		if !errors.Is(err, ErrVersionMismatch) {
			t.Fatalf("version %d: expected version error, got %v", v, err)
		}
		if hdr.Version != v {
			t.Fatalf("version %d: header should still report the parsed version, got %d", v, hdr.Version)
		}
	}
}
