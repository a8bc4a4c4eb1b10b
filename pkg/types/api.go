package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindHeader       ErrKind = iota // bad "PReg" magic or version, nothing decoded
	ErrKindGrammar                     // malformed entry structure (delimiters, truncation, sizes)
	ErrKindUnsupported                 // recognized value type we don't decode
	ErrKindStringDecode                // no text encoding could decode a string payload
	ErrKindUnknownType                 // type tag outside the known RegType set
	ErrKindLimit                       // declared size or string length beyond configured limits
)

// String returns a short label for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindHeader:
		return "header"
	case ErrKindGrammar:
		return "grammar"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindStringDecode:
		return "string-decode"
	case ErrKindUnknownType:
		return "unknown-type"
	case ErrKindLimit:
		return "limit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
//
// Offset is the number of bytes consumed from the input when the error was
// detected, or -1 when the position is not meaningful.
type Error struct {
	Kind   ErrKind
	Msg    string
	Offset int64
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (at offset %d)", msg, e.Offset)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a kind sentinel of the same kind, so that
// errors.Is(err, types.ErrGrammar) matches every grammar error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if e == t {
		return true
	}
	return t.isSentinel() && t.Kind == e.Kind
}

func (e *Error) isSentinel() bool {
	switch e {
	case ErrHeader, ErrGrammar, ErrUnsupported, ErrStringDecode, ErrUnknownType, ErrLimit:
		return true
	}
	return false
}

// Kind sentinels. Match with errors.Is; they compare by kind.
var (
	// ErrHeader indicates the file lacks a valid "PReg" version 1 header.
	ErrHeader = &Error{Kind: ErrKindHeader, Msg: "not a registry policy file", Offset: -1}
	// ErrGrammar indicates an entry does not follow the [key;name;type;size;data] layout.
	ErrGrammar = &Error{Kind: ErrKindGrammar, Msg: "malformed policy entry", Offset: -1}
	// ErrUnsupported indicates a recognized value type that is not decoded.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unimplemented value type", Offset: -1}
	// ErrStringDecode indicates a string payload no candidate encoding accepted.
	ErrStringDecode = &Error{Kind: ErrKindStringDecode, Msg: "undecodable string", Offset: -1}
	// ErrUnknownType indicates a type tag outside the RegType set.
	ErrUnknownType = &Error{Kind: ErrKindUnknownType, Msg: "unknown value type", Offset: -1}
	// ErrLimit indicates a value or string larger than the configured limits.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "limit exceeded", Offset: -1}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}

// -----------------------------------------------------------------------------
// Registry Value Types
// -----------------------------------------------------------------------------

// RegType enumerates registry value types that may appear in a policy file.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_LE                   RegType = 4 // alias for clarity
	REG_DWORD_BE                   RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
	REG_FILETIME                   RegType = 16
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BIG_ENDIAN"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	case REG_FILETIME:
		return "REG_FILETIME"
	default:
		// Signed, so garbage tags like 0xFFFFFFFF read as -1
		return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
	}
}

// Known reports whether t is one of the enumerated registry types.
func (t RegType) Known() bool {
	switch t {
	case REG_NONE, REG_SZ, REG_EXPAND_SZ, REG_BINARY, REG_DWORD, REG_DWORD_BE,
		REG_LINK, REG_MULTI_SZ, REG_RESOURCE_LIST, REG_FULL_RESOURCE_DESCRIPTOR,
		REG_RESOURCE_REQUIREMENTS_LIST, REG_QWORD, REG_FILETIME:
		return true
	}
	return false
}

// Implemented reports whether values of type t can be decoded.
func (t RegType) Implemented() bool {
	switch t {
	case REG_RESOURCE_LIST, REG_FULL_RESOURCE_DESCRIPTOR,
		REG_RESOURCE_REQUIREMENTS_LIST, REG_FILETIME:
		return false
	}
	return t.Known()
}

// FixedSize returns the payload width of fixed-width types (DWORD, DWORD_BE,
// QWORD). ok is false for variable-width types.
func (t RegType) FixedSize() (size uint32, ok bool) {
	switch t {
	case REG_DWORD, REG_DWORD_BE:
		return 4, true
	case REG_QWORD:
		return 8, true
	}
	return 0, false
}

// ParseRegType maps a wire tag to a RegType. Tags outside the enumeration
// yield an ErrKindUnknownType error.
func ParseRegType(tag uint32) (RegType, error) {
	t := RegType(tag)
	if !t.Known() {
		return t, &Error{
			Kind:   ErrKindUnknownType,
			Msg:    fmt.Sprintf("unknown value type tag %d (%s)", tag, t),
			Offset: -1,
		}
	}
	return t, nil
}
