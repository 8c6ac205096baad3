package resource

// VibrationKind selects the variant of a VibrationPattern.
type VibrationKind uint8

const (
	// VibrationProfile defers to an externally-managed profile lookup.
	VibrationProfile VibrationKind = iota
	// VibrationFilename is a resolved path to a pattern file.
	VibrationFilename
	// VibrationInternal is a built-in pattern id.
	VibrationInternal
)

// String returns the string representation of the kind.
func (k VibrationKind) String() string {
	switch k {
	case VibrationProfile:
		return "profile"
	case VibrationFilename:
		return "filename"
	case VibrationInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// VibrationPattern describes a haptic pattern. Exactly one variant is
// populated, selected by Kind.
type VibrationPattern struct {
	// Kind selects the variant.
	Kind VibrationKind

	// Key is the profile lookup key (VibrationProfile only).
	Key string

	// Profile is the profile name (VibrationProfile only).
	Profile string

	// Filename is the resolved pattern file path (VibrationFilename only).
	Filename string

	// Pattern is the built-in pattern id (VibrationInternal only).
	Pattern int
}
