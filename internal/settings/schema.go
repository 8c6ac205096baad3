package settings

// PropertyType is the data type of an event property.
type PropertyType uint8

const (
	// TypeString is a string property.
	TypeString PropertyType = iota
	// TypeInt is an integer property.
	TypeInt
	// TypeBool is a boolean property.
	TypeBool
)

// String returns the string representation of the type.
func (t PropertyType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Event property keys.
const (
	KeyMaxTimeout          = "max_timeout"
	KeyAllowCustom         = "allow_custom"
	KeyDummy               = "dummy"
	KeyAudioEnabled        = "audio_enabled"
	KeyAudioRepeat         = "audio_repeat"
	KeyAudioMaxRepeats     = "audio_max_repeats"
	KeySound               = "sound"
	KeySilentEnabled       = "silent_enabled"
	KeyVolume              = "volume"
	KeyEventID             = "event_id"
	KeyAudioTonegenEnabled = "audio_tonegen_enabled"
	KeyAudioTonegenPattern = "audio_tonegen_pattern"
	KeyVibrationEnabled    = "vibration_enabled"
	KeyLookupPattern       = "lookup_pattern"
	KeyVibration           = "vibration"
	KeyLedEnabled          = "led_enabled"
	KeyLedPattern          = "led_pattern"
	KeyBacklightEnabled    = "backlight_enabled"
)

// Entry declares one recognized event property: its type, key and
// default value. The schema is fixed at compile time and shared
// read-only across all resolutions.
type Entry struct {
	// Type is the property's data type.
	Type PropertyType

	// Key is the property key in event groups.
	Key string

	// DefaultString is the default for string properties.
	DefaultString string

	// DefaultInt is the default for integer properties.
	DefaultInt int

	// DefaultBool is the default for boolean properties.
	DefaultBool bool
}

// eventSchema declares every recognized event property.
var eventSchema = []Entry{
	// general
	{Type: TypeInt, Key: KeyMaxTimeout},
	{Type: TypeBool, Key: KeyAllowCustom},
	{Type: TypeInt, Key: KeyDummy},

	// sound
	{Type: TypeBool, Key: KeyAudioEnabled},
	{Type: TypeBool, Key: KeyAudioRepeat},
	{Type: TypeInt, Key: KeyAudioMaxRepeats},
	{Type: TypeString, Key: KeySound},
	{Type: TypeBool, Key: KeySilentEnabled},
	{Type: TypeString, Key: KeyVolume},
	{Type: TypeString, Key: KeyEventID},

	// tonegen
	{Type: TypeBool, Key: KeyAudioTonegenEnabled},
	{Type: TypeInt, Key: KeyAudioTonegenPattern, DefaultInt: -1},

	// vibration
	{Type: TypeBool, Key: KeyVibrationEnabled},
	{Type: TypeBool, Key: KeyLookupPattern},
	{Type: TypeString, Key: KeyVibration},

	// led
	{Type: TypeBool, Key: KeyLedEnabled},
	{Type: TypeString, Key: KeyLedPattern},

	// backlight
	{Type: TypeBool, Key: KeyBacklightEnabled},
}
