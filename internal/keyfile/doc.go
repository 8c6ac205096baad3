// Package keyfile parses INI-style key files into named groups of
// key/value pairs with typed accessors.
//
// The format is the classic desktop key file layout: group headers in
// square brackets, key=value lines, # comments. Group headers may contain
// spaces and punctuation ("[event ringtone@fallback]"); the settings
// compiler gives those headers meaning, keyfile treats them as opaque
// group names.
//
// Typed accessors distinguish two failure modes callers care about:
// a key that is absent (ErrKeyNotFound) and a key whose value cannot be
// converted to the requested type (ErrInvalidValue). The settings
// property extractor applies different fallback rules to each.
package keyfile
