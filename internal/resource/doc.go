// Package resource defines the typed resource descriptors referenced by
// feedback events and the parsers that build them from raw config values.
//
// Three descriptor families exist: SoundPath, Volume and VibrationPattern.
// Each is a tagged union selected by a literal prefix in the config text
// ("profile:", "filename:", "fixed:", "linear:", "internal:"). Parsed
// descriptors are interned in a Registry owned by the feedback context;
// events store the returned pointers and never private copies.
//
// Parsing is lenient by design: an item with an unknown prefix, an
// incomplete profile reference or a filename that resolves nowhere is
// dropped silently rather than failing the load.
package resource
