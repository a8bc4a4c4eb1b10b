package regtext

const (
	// RegFileHeader is the first line of every registry editor export.
	RegFileHeader = "Windows Registry Editor Version 5.00"

	// KeyOpenBracket and KeyCloseBracket enclose a key path.
	KeyOpenBracket  = "["
	KeyCloseBracket = "]"

	// ValueAssignment separates a value name from its data.
	ValueAssignment = "="

	// DefaultValuePrefix introduces the unnamed (default) value of a key.
	DefaultValuePrefix = "@="

	// DeleteValueToken as the data of an assignment deletes the value.
	DeleteValueToken = "-"

	// CommentPrefix starts a comment line.
	CommentPrefix = ";"

	Quote            = "\""
	Backslash        = "\\"
	EscapedQuote     = "\\\""
	EscapedBackslash = "\\\\"

	CRLF = "\r\n"

	DWORDPrefix    = "dword:"
	DWORDHexFormat = "%08x"
	HexPrefix      = "hex:"
	HexTypeFormat  = "hex(%x):"

	HexByteSeparator = ","
	HexByteFormat    = "%02x"

	EncodingUTF8    = "UTF-8"
	EncodingUTF16LE = "UTF-16LE"

	UTF16CodeUnitSize = 2
)

// Root key names accepted as export prefixes, short form to full form.
var rootKeys = map[string]string{
	"HKLM":                "HKEY_LOCAL_MACHINE",
	"HKEY_LOCAL_MACHINE":  "HKEY_LOCAL_MACHINE",
	"HKCU":                "HKEY_CURRENT_USER",
	"HKEY_CURRENT_USER":   "HKEY_CURRENT_USER",
	"HKU":                 "HKEY_USERS",
	"HKEY_USERS":          "HKEY_USERS",
	"HKCR":                "HKEY_CLASSES_ROOT",
	"HKEY_CLASSES_ROOT":   "HKEY_CLASSES_ROOT",
	"HKCC":                "HKEY_CURRENT_CONFIG",
	"HKEY_CURRENT_CONFIG": "HKEY_CURRENT_CONFIG",
}

// DoubleNullTerminator closes a REG_MULTI_SZ block.
var DoubleNullTerminator = []byte{0x00, 0x00}
