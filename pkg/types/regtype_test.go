package types

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegType_String(t *testing.T) {
	tests := []struct {
		name     string
		regType  RegType
		expected string
	}{
		{name: "REG_NONE", regType: REG_NONE, expected: "REG_NONE"},
		{name: "REG_SZ", regType: REG_SZ, expected: "REG_SZ"},
		{name: "REG_EXPAND_SZ", regType: REG_EXPAND_SZ, expected: "REG_EXPAND_SZ"},
		{name: "REG_BINARY", regType: REG_BINARY, expected: "REG_BINARY"},
		{name: "REG_DWORD", regType: REG_DWORD, expected: "REG_DWORD"},
		{name: "REG_DWORD_BE", regType: REG_DWORD_BE, expected: "REG_DWORD_BIG_ENDIAN"},
		{name: "REG_LINK", regType: REG_LINK, expected: "REG_LINK"},
		{name: "REG_MULTI_SZ", regType: REG_MULTI_SZ, expected: "REG_MULTI_SZ"},
		{name: "REG_RESOURCE_LIST", regType: REG_RESOURCE_LIST, expected: "REG_RESOURCE_LIST"},
		{name: "REG_QWORD", regType: REG_QWORD, expected: "REG_QWORD"},
		{name: "REG_FILETIME", regType: REG_FILETIME, expected: "REG_FILETIME"},
		// Unknown types render as signed int32
		{name: "Unknown type 12", regType: RegType(12), expected: "UNKNOWN_TYPE_12"},
		{name: "Invalid type -1 (0xFFFFFFFF)", regType: RegType(0xFFFFFFFF), expected: "UNKNOWN_TYPE_-1"},
		{name: "Very large unknown type", regType: RegType(2147483648), expected: "UNKNOWN_TYPE_-2147483648"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.regType.String())
		})
	}
}

func TestParseRegType(t *testing.T) {
	for tag := uint32(0); tag <= 11; tag++ {
		rt, err := ParseRegType(tag)
		require.NoError(t, err, "tag %d", tag)
		assert.Equal(t, RegType(tag), rt)
	}

	rt, err := ParseRegType(16)
	require.NoError(t, err)
	assert.Equal(t, REG_FILETIME, rt)

	for _, tag := range []uint32{12, 13, 15, 17, 0xFFFF0019} {
		_, err := ParseRegType(tag)
		require.Error(t, err, "tag %d", tag)
		assert.ErrorIs(t, err, ErrUnknownType)
		assert.NotErrorIs(t, err, ErrGrammar)
	}
}

func TestRegType_Implemented(t *testing.T) {
	implemented := []RegType{REG_NONE, REG_SZ, REG_EXPAND_SZ, REG_BINARY, REG_DWORD, REG_DWORD_BE, REG_LINK, REG_MULTI_SZ, REG_QWORD}
	for _, rt := range implemented {
		assert.True(t, rt.Implemented(), rt.String())
	}
	for _, rt := range []RegType{REG_RESOURCE_LIST, REG_FULL_RESOURCE_DESCRIPTOR, REG_RESOURCE_REQUIREMENTS_LIST, REG_FILETIME, RegType(99)} {
		assert.False(t, rt.Implemented(), rt.String())
	}
}

func TestRegType_FixedSize(t *testing.T) {
	size, ok := REG_DWORD.FixedSize()
	assert.True(t, ok)
	assert.EqualValues(t, 4, size)

	size, ok = REG_DWORD_BE.FixedSize()
	assert.True(t, ok)
	assert.EqualValues(t, 4, size)

	size, ok = REG_QWORD.FixedSize()
	assert.True(t, ok)
	assert.EqualValues(t, 8, size)

	_, ok = REG_SZ.FixedSize()
	assert.False(t, ok)
}

func TestError_KindMatching(t *testing.T) {
	cause := errors.New("short read")
	err := fmt.Errorf("decode: %w", &Error{Kind: ErrKindGrammar, Msg: "truncated entry", Offset: 42, Err: cause})

	assert.ErrorIs(t, err, ErrGrammar)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrHeader)
	assert.Equal(t, "decode: truncated entry (at offset 42): short read", err.Error())

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindGrammar, kind)

	_, ok = KindOf(cause)
	assert.False(t, ok)

	// Two distinct non-sentinel errors of the same kind do not match each other.
	other := &Error{Kind: ErrKindGrammar, Msg: "other", Offset: -1}
	assert.NotErrorIs(t, err, other)
}

func TestLimits_WithDefaults(t *testing.T) {
	l := Limits{}.WithDefaults()
	assert.Equal(t, DefaultLimits(), l)

	l = Limits{MaxValueSize: 16}.WithDefaults()
	assert.EqualValues(t, 16, l.MaxValueSize)
	assert.Equal(t, WindowsMaxKeyPathLen, l.MaxStringWords)
}

func TestLimits_WithDefaults_FitsInt(t *testing.T) {
	l := Limits{MaxValueSize: math.MaxUint32}.WithDefaults()
	assert.LessOrEqual(t, uint64(l.MaxValueSize), uint64(math.MaxInt))
	if math.MaxInt >= math.MaxUint32 {
		assert.EqualValues(t, uint32(math.MaxUint32), l.MaxValueSize)
	} else {
		assert.EqualValues(t, math.MaxInt, l.MaxValueSize)
	}
}
