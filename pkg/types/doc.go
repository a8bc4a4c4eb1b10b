// Package types defines the value-type enumeration, typed errors, and
// decoding limits shared by the registry policy (.pol) decoder.
//
// Design goals:
//   - Stable error categories (header/grammar/unsupported/...) so callers can
//     tell a corrupt file from an unimplemented feature without parsing text.
//   - Registry type numbers that align with Windows definitions.
//   - Paranoid limits; never allocate what a corrupt header asks for.
//
// This package has no dependencies beyond the standard library.
package types
