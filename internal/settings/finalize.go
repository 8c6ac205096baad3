package settings

import (
	"github.com/dshills/feedbackd/internal/feedback"
	"github.com/dshills/feedbackd/internal/proplist"
	"github.com/dshills/feedbackd/internal/resource"
	"github.com/dshills/feedbackd/internal/vfs"
)

// finalizeEvent converts one fully-resolved property set into an
// immutable Event and installs it in the context, replacing any prior
// event of the same name.
//
// The resolver populates every schema key transitively from some root
// ancestor, but finalization tolerates missing keys: the typed getters
// read them as the type's zero value.
func finalizeEvent(ctx *feedback.Context, fsys vfs.FS, name string, props *proplist.List) {
	parser := &resource.Parser{
		Registry:   ctx.Resources,
		FS:         fsys,
		SoundDir:   ctx.SoundPath,
		PatternDir: ctx.PatternsPath,
	}

	event := &feedback.Event{
		AudioEnabled:     props.GetBool(KeyAudioEnabled),
		VibrationEnabled: props.GetBool(KeyVibrationEnabled),
		LedsEnabled:      props.GetBool(KeyLedEnabled),
		BacklightEnabled: props.GetBool(KeyBacklightEnabled),

		AllowCustom:   props.GetBool(KeyAllowCustom),
		MaxTimeout:    props.GetInt(KeyMaxTimeout),
		LookupPattern: props.GetBool(KeyLookupPattern),
		SilentEnabled: props.GetBool(KeySilentEnabled),
		EventID:       props.GetString(KeyEventID),

		ToneGeneratorEnabled: props.GetBool(KeyAudioTonegenEnabled),
		ToneGeneratorPattern: props.GetInt(KeyAudioTonegenPattern),

		Repeat:     props.GetBool(KeyAudioRepeat),
		NumRepeats: props.GetInt(KeyAudioMaxRepeats),
		LedPattern: props.GetString(KeyLedPattern),
	}

	event.Sounds = parser.SoundList(props.GetString(KeySound))
	if volume, ok := parser.Volume(props.GetString(KeyVolume)); ok {
		event.Volume = volume
	}
	event.Patterns = parser.VibrationList(props.GetString(KeyVibration))

	ctx.AddEvent(name, event)
}
