package pol

import "strings"

// Directive is a Group Policy instruction encoded in a value name. Policy
// editors use names starting with "**" to delete values and keys instead of
// setting them.
type Directive int

const (
	DirectiveNone         Directive = iota // an ordinary value assignment
	DirectiveDeleteValue                   // **del.<name>: delete one value
	DirectiveDeleteAll                     // **delvals.: delete every value of the key
	DirectiveDeleteValues                  // **DeleteValues: delete the ;-separated values in the data
	DirectiveDeleteKeys                    // **DeleteKeys: delete the ;-separated subkeys in the data
	DirectiveSoft                          // **soft.<name>: set only if not already present
	DirectiveSecureKey                     // **SecureKey: data 1 secures the key ACL, 0 restores it
)

var directiveNames = [...]string{
	DirectiveNone:         "",
	DirectiveDeleteValue:  "delete-value",
	DirectiveDeleteAll:    "delete-all-values",
	DirectiveDeleteValues: "delete-values",
	DirectiveDeleteKeys:   "delete-keys",
	DirectiveSoft:         "soft",
	DirectiveSecureKey:    "secure-key",
}

func (d Directive) String() string {
	if int(d) < len(directiveNames) {
		return directiveNames[d]
	}
	return "unknown"
}

var directivePrefixes = []struct {
	prefix string
	d      Directive
	target bool // the rest of the name is the value the directive applies to
}{
	{"**delvals.", DirectiveDeleteAll, false},
	{"**del.", DirectiveDeleteValue, true},
	{"**deletevalues", DirectiveDeleteValues, false},
	{"**deletekeys", DirectiveDeleteKeys, false},
	{"**soft.", DirectiveSoft, true},
	{"**securekey", DirectiveSecureKey, false},
}

// Directive reports whether the entry's value name is a policy directive
// and, for per-value directives, the value name it targets. Matching is
// case-insensitive, as it is for registry names.
func (e Entry) Directive() (Directive, string) {
	if !strings.HasPrefix(e.ValueName, "**") {
		return DirectiveNone, e.ValueName
	}
	for _, p := range directivePrefixes {
		if len(e.ValueName) < len(p.prefix) || !strings.EqualFold(e.ValueName[:len(p.prefix)], p.prefix) {
			continue
		}
		if p.target {
			return p.d, e.ValueName[len(p.prefix):]
		}
		return p.d, ""
	}
	return DirectiveNone, e.ValueName
}
