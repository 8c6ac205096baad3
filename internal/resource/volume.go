package resource

// VolumeKind selects the variant of a Volume.
type VolumeKind uint8

const (
	// VolumeProfile defers to an externally-managed profile lookup.
	VolumeProfile VolumeKind = iota
	// VolumeFixed is a constant volume level.
	VolumeFixed
	// VolumeLinear is a level with a low/mid/high ramp triple.
	VolumeLinear
)

// String returns the string representation of the kind.
func (k VolumeKind) String() string {
	switch k {
	case VolumeProfile:
		return "profile"
	case VolumeFixed:
		return "fixed"
	case VolumeLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Volume describes how loud an event plays. Exactly one variant is
// populated, selected by Kind.
type Volume struct {
	// Kind selects the variant.
	Kind VolumeKind

	// Key is the profile lookup key (VolumeProfile only).
	Key string

	// Profile is the profile name (VolumeProfile only).
	Profile string

	// Level is the volume level (VolumeFixed and VolumeLinear; linear
	// volumes always carry level 100).
	Level int

	// Linear is the low/mid/high triple (VolumeLinear only).
	Linear [3]int
}
