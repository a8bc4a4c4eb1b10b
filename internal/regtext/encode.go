package regtext

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// encodeUTF16LEZeroTerminated converts s to UTF-16LE with a NUL terminator,
// the layout REG_SZ data has in the registry.
func encodeUTF16LEZeroTerminated(s string) []byte {
	words := utf16.Encode([]rune(s))
	buf := make([]byte, (len(words)+1)*UTF16CodeUnitSize)
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[i*UTF16CodeUnitSize:], w)
	}
	return buf
}

func encodeMultiString(values []string) []byte {
	var buf bytes.Buffer
	for _, v := range values {
		buf.Write(encodeUTF16LEZeroTerminated(v))
	}
	buf.Write(DoubleNullTerminator)
	return buf.Bytes()
}
