package types

import "math"

// ============================================================================
// Decoding Limits
// ============================================================================
// A policy file declares value sizes up front and strings are terminated
// rather than length-prefixed, so a corrupt file could otherwise make the
// decoder allocate or scan without bound.

const (
	// WindowsMaxValueSize10MB is the relaxed maximum size for a single
	// registry value's data. Policy payloads are far smaller in practice.
	WindowsMaxValueSize10MB = 10 << 20 // 10,485,760 bytes

	// WindowsMaxValueSize1MB is the standard maximum size for a single
	// registry value's data (1 MB).
	WindowsMaxValueSize1MB = 1 << 20

	// WindowsMaxKeyPathLen is the maximum length of a full key path in
	// UTF-16 code units.
	WindowsMaxKeyPathLen = 32767

	// WindowsMaxValueNameLen is the hard limit for registry value names
	// in Windows (measured in characters, not bytes).
	WindowsMaxValueNameLen = 16383
)

// Limits bounds the resources a decoder may spend on a single entry.
type Limits struct {
	// MaxValueSize caps the declared size of variable-width payloads.
	// Zero selects WindowsMaxValueSize10MB.
	MaxValueSize uint32

	// MaxStringWords caps the UTF-16 code units read for a key or value
	// name before its terminator. Zero selects WindowsMaxKeyPathLen.
	MaxStringWords int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxValueSize:   WindowsMaxValueSize10MB,
		MaxStringWords: WindowsMaxKeyPathLen,
	}
}

// maxInt is a variable so the conversion below compiles on 64-bit targets.
var maxInt = math.MaxInt

// WithDefaults fills zero fields from DefaultLimits. MaxValueSize is capped
// at the platform's largest int so a declared size always fits a slice length.
func (l Limits) WithDefaults() Limits {
	d := DefaultLimits()
	if l.MaxValueSize == 0 {
		l.MaxValueSize = d.MaxValueSize
	}
	if int64(l.MaxValueSize) > int64(maxInt) {
		l.MaxValueSize = uint32(maxInt)
	}
	if l.MaxStringWords <= 0 {
		l.MaxStringWords = d.MaxStringWords
	}
	return l
}
