package resource

// SoundPathKind selects the variant of a SoundPath.
type SoundPathKind uint8

const (
	// SoundProfile defers to an externally-managed profile lookup.
	SoundProfile SoundPathKind = iota
	// SoundFilename is a resolved path to a sound file.
	SoundFilename
)

// String returns the string representation of the kind.
func (k SoundPathKind) String() string {
	switch k {
	case SoundProfile:
		return "profile"
	case SoundFilename:
		return "filename"
	default:
		return "unknown"
	}
}

// SoundPath describes where a sound comes from. Exactly one variant is
// populated, selected by Kind.
type SoundPath struct {
	// Kind selects the variant.
	Kind SoundPathKind

	// Key is the profile lookup key (SoundProfile only).
	Key string

	// Profile is the profile name (SoundProfile only).
	Profile string

	// Filename is the resolved file path (SoundFilename only).
	Filename string
}
