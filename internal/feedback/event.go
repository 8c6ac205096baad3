// Package feedback defines the compiled output of the settings loader:
// the Context holding global settings, the interned resource registry,
// and the table of finalized feedback events.
package feedback

import "github.com/dshills/feedbackd/internal/resource"

// Event is a finalized feedback event: the fully-resolved bundle of
// audio, vibration, LED and backlight behavior for one named system
// occurrence. Events are created once by the settings finalizer and
// never mutated afterwards.
type Event struct {
	// AudioEnabled enables sound playback for this event.
	AudioEnabled bool

	// VibrationEnabled enables haptic feedback for this event.
	VibrationEnabled bool

	// LedsEnabled enables LED feedback for this event.
	LedsEnabled bool

	// BacklightEnabled enables backlight feedback for this event.
	BacklightEnabled bool

	// AllowCustom permits client-supplied overrides when playing the event.
	AllowCustom bool

	// MaxTimeout limits playback duration in milliseconds; 0 means unlimited.
	MaxTimeout int

	// LookupPattern selects vibration pattern lookup by event name.
	LookupPattern bool

	// SilentEnabled plays the event even in the silent profile.
	SilentEnabled bool

	// EventID is the external identifier reported to listeners.
	EventID string

	// ToneGeneratorEnabled routes audio through the tone generator.
	ToneGeneratorEnabled bool

	// ToneGeneratorPattern is the tone generator pattern id; -1 when unset.
	ToneGeneratorPattern int

	// Repeat loops audio playback.
	Repeat bool

	// NumRepeats bounds the number of audio repeats; 0 means unbounded.
	NumRepeats int

	// LedPattern names the LED pattern to activate.
	LedPattern string

	// Sounds lists the sound candidates in preference order. The
	// descriptors are owned by the context's resource registry.
	Sounds []*resource.SoundPath

	// Volume is the event's volume policy, or nil when none parsed.
	Volume *resource.Volume

	// Patterns lists the vibration pattern candidates in preference
	// order. The descriptors are owned by the context's resource
	// registry.
	Patterns []*resource.VibrationPattern
}
