// Package export renders a loaded feedback context as JSON or YAML.
//
// The snapshot is a diagnostic surface: it shows the fully-resolved
// event table the way playback will see it, with inherited values
// already merged and resource values reduced to their parsed variants.
package export

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/feedbackd/internal/feedback"
	"github.com/dshills/feedbackd/internal/resource"
)

// JSON renders the context as a JSON document.
func JSON(ctx *feedback.Context) ([]byte, error) {
	doc := []byte("{}")
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("general.sound_search_path", ctx.SoundPath)
	set("general.vibration_search_path", ctx.PatternsPath)
	set("general.buffer_time", ctx.AudioBufferTime)
	set("general.latency_time", ctx.AudioLatencyTime)
	set("general.system_volume", ctx.SystemVolume[:])
	set("general.plugins", ctx.RequiredPlugins)

	for _, name := range ctx.DefinitionNames() {
		def := ctx.Definition(name)
		base := "definitions." + escapeKey(name)
		set(base+".long", def.LongEvent)
		set(base+".short", def.ShortEvent)
		set(base+".meeting", def.MeetingEvent)
	}

	for _, name := range ctx.EventNames() {
		event := ctx.Event(name)
		base := "events." + escapeKey(name)

		set(base+".audio_enabled", event.AudioEnabled)
		set(base+".vibration_enabled", event.VibrationEnabled)
		set(base+".leds_enabled", event.LedsEnabled)
		set(base+".backlight_enabled", event.BacklightEnabled)
		set(base+".allow_custom", event.AllowCustom)
		set(base+".max_timeout", event.MaxTimeout)
		set(base+".lookup_pattern", event.LookupPattern)
		set(base+".silent_enabled", event.SilentEnabled)
		set(base+".event_id", event.EventID)
		set(base+".tone_generator_enabled", event.ToneGeneratorEnabled)
		set(base+".tone_generator_pattern", event.ToneGeneratorPattern)
		set(base+".repeat", event.Repeat)
		set(base+".num_repeats", event.NumRepeats)
		set(base+".led_pattern", event.LedPattern)

		for i, sp := range event.Sounds {
			set(fmt.Sprintf("%s.sounds.%d", base, i), soundValue(sp))
		}
		if event.Volume != nil {
			set(base+".volume", volumeValue(event.Volume))
		}
		for i, vp := range event.Patterns {
			set(fmt.Sprintf("%s.vibrations.%d", base, i), patternValue(vp))
		}
	}

	if err != nil {
		return nil, err
	}
	return doc, nil
}

// YAML renders the context as a YAML document with the same shape as
// the JSON snapshot.
func YAML(ctx *feedback.Context) ([]byte, error) {
	doc := map[string]any{
		"general": map[string]any{
			"sound_search_path":     ctx.SoundPath,
			"vibration_search_path": ctx.PatternsPath,
			"buffer_time":           ctx.AudioBufferTime,
			"latency_time":          ctx.AudioLatencyTime,
			"system_volume":         ctx.SystemVolume[:],
			"plugins":               ctx.RequiredPlugins,
		},
	}

	definitions := make(map[string]any)
	for _, name := range ctx.DefinitionNames() {
		def := ctx.Definition(name)
		definitions[name] = map[string]any{
			"long":    def.LongEvent,
			"short":   def.ShortEvent,
			"meeting": def.MeetingEvent,
		}
	}
	doc["definitions"] = definitions

	events := make(map[string]any)
	for _, name := range ctx.EventNames() {
		event := ctx.Event(name)

		entry := map[string]any{
			"audio_enabled":          event.AudioEnabled,
			"vibration_enabled":      event.VibrationEnabled,
			"leds_enabled":           event.LedsEnabled,
			"backlight_enabled":      event.BacklightEnabled,
			"allow_custom":           event.AllowCustom,
			"max_timeout":            event.MaxTimeout,
			"lookup_pattern":         event.LookupPattern,
			"silent_enabled":         event.SilentEnabled,
			"event_id":               event.EventID,
			"tone_generator_enabled": event.ToneGeneratorEnabled,
			"tone_generator_pattern": event.ToneGeneratorPattern,
			"repeat":                 event.Repeat,
			"num_repeats":            event.NumRepeats,
			"led_pattern":            event.LedPattern,
		}

		if len(event.Sounds) > 0 {
			sounds := make([]any, len(event.Sounds))
			for i, sp := range event.Sounds {
				sounds[i] = soundValue(sp)
			}
			entry["sounds"] = sounds
		}
		if event.Volume != nil {
			entry["volume"] = volumeValue(event.Volume)
		}
		if len(event.Patterns) > 0 {
			patterns := make([]any, len(event.Patterns))
			for i, vp := range event.Patterns {
				patterns[i] = patternValue(vp)
			}
			entry["vibrations"] = patterns
		}

		events[name] = entry
	}
	doc["events"] = events

	return yaml.Marshal(doc)
}

// Query evaluates a gjson path against a JSON snapshot and returns the
// matched value's string form.
func Query(doc []byte, path string) (string, bool) {
	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}

// soundValue maps a sound path to its snapshot form.
func soundValue(sp *resource.SoundPath) map[string]any {
	switch sp.Kind {
	case resource.SoundProfile:
		return map[string]any{"type": "profile", "key": sp.Key, "profile": sp.Profile}
	case resource.SoundFilename:
		return map[string]any{"type": "filename", "filename": sp.Filename}
	default:
		return map[string]any{"type": "unknown"}
	}
}

// volumeValue maps a volume to its snapshot form.
func volumeValue(v *resource.Volume) map[string]any {
	switch v.Kind {
	case resource.VolumeProfile:
		return map[string]any{"type": "profile", "key": v.Key, "profile": v.Profile}
	case resource.VolumeFixed:
		return map[string]any{"type": "fixed", "level": v.Level}
	case resource.VolumeLinear:
		return map[string]any{"type": "linear", "level": v.Level, "linear": v.Linear[:]}
	default:
		return map[string]any{"type": "unknown"}
	}
}

// patternValue maps a vibration pattern to its snapshot form.
func patternValue(vp *resource.VibrationPattern) map[string]any {
	switch vp.Kind {
	case resource.VibrationProfile:
		return map[string]any{"type": "profile", "key": vp.Key, "profile": vp.Profile}
	case resource.VibrationFilename:
		return map[string]any{"type": "filename", "filename": vp.Filename}
	case resource.VibrationInternal:
		return map[string]any{"type": "internal", "pattern": vp.Pattern}
	default:
		return map[string]any{"type": "unknown"}
	}
}

// escapeKey escapes path separator characters in map keys so event and
// definition names pass through sjson paths literally.
func escapeKey(name string) string {
	replacer := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return replacer.Replace(name)
}
