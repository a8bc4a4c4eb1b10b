/*
Package pol decodes registry policy files ("Registry.pol", the PReg format
written by Group Policy tooling) into typed entries.

# Quick Start

Stream every entry of a policy file:

	f, err := pol.Open(`C:\Windows\System32\GroupPolicy\Machine\Registry.pol`)
	if err != nil {
	    log.Fatal(err)
	}
	defer f.Close()

	for f.Next() {
	    e := f.Entry()
	    fmt.Printf("%s\\%s = %s\n", e.Key, e.ValueName, e.Value)
	}
	if err := f.Err(); err != nil {
	    log.Printf("decoding stopped: %v", err)
	}

# Format

A policy file is an 8-byte header ("PReg", version 1) followed by entries
laid out as UTF-16LE text with binary fields:

	[key;valueName;type;size;data]

key and valueName are NUL-terminated, type and size are little-endian u32,
and data is exactly size bytes interpreted according to type.

# Errors

Decoding is forward-only and stops at the first malformed entry: the
grammar has no marker to resynchronise on. Entries decoded before the
failure stay valid. Errors are *types.Error values; match their category
with errors.Is against the kind sentinels:

	switch {
	case errors.Is(err, types.ErrHeader):      // not a policy file
	case errors.Is(err, types.ErrUnsupported): // REG_RESOURCE_LIST and friends
	case errors.Is(err, types.ErrGrammar):     // corrupt or truncated entry
	}

REG_RESOURCE_LIST, REG_FULL_RESOURCE_DESCRIPTOR,
REG_RESOURCE_REQUIREMENTS_LIST and REG_FILETIME payloads are not decoded;
they end decoding with an unsupported-type error instead of a guessed value.
REG_EXPAND_SZ strings are returned unexpanded.

# Concurrency

A Decoder is not safe for concurrent use. Separate Decoders share no state,
so independent files can be decoded in parallel.
*/
package pol
