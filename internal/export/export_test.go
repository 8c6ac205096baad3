package export

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/feedbackd/internal/feedback"
	"github.com/dshills/feedbackd/internal/resource"
)

func newTestContext() *feedback.Context {
	ctx := feedback.NewContext()
	ctx.SoundPath = "/usr/share/sounds"
	ctx.PatternsPath = "/usr/share/vibra"
	ctx.AudioBufferTime = 200
	ctx.SystemVolume = [3]int{40, 70, 100}
	ctx.RequiredPlugins = []string{"pulseaudio", "vibrator"}

	ctx.AddDefinition("ringtone", &feedback.Definition{
		LongEvent:  "ringtone",
		ShortEvent: "ringtone_short",
	})

	volume := ctx.Resources.AddVolume(&resource.Volume{Kind: resource.VolumeFixed, Level: 80})
	sound := ctx.Resources.AddSound(&resource.SoundPath{Kind: resource.SoundFilename, Filename: "/usr/share/sounds/ring.wav"})
	pattern := ctx.Resources.AddPattern(&resource.VibrationPattern{Kind: resource.VibrationInternal, Pattern: 1})

	ctx.AddEvent("ringtone", &feedback.Event{
		AudioEnabled: true,
		MaxTimeout:   30000,
		EventID:      "ringtone-id",
		Sounds:       []*resource.SoundPath{sound},
		Volume:       volume,
		Patterns:     []*resource.VibrationPattern{pattern},
	})

	return ctx
}

func TestJSON(t *testing.T) {
	doc, err := JSON(newTestContext())
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"general.buffer_time", "200"},
		{"general.system_volume.1", "70"},
		{"general.plugins.0", "pulseaudio"},
		{"definitions.ringtone.short", "ringtone_short"},
		{"events.ringtone.audio_enabled", "true"},
		{"events.ringtone.max_timeout", "30000"},
		{"events.ringtone.sounds.0.type", "filename"},
		{"events.ringtone.sounds.0.filename", "/usr/share/sounds/ring.wav"},
		{"events.ringtone.volume.type", "fixed"},
		{"events.ringtone.volume.level", "80"},
		{"events.ringtone.vibrations.0.pattern", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := gjson.GetBytes(doc, tt.path)
			if !got.Exists() {
				t.Fatalf("path %s missing in %s", tt.path, doc)
			}
			if got.String() != tt.want {
				t.Errorf("%s = %q, want %q", tt.path, got.String(), tt.want)
			}
		})
	}
}

func TestJSON_EscapesDottedNames(t *testing.T) {
	ctx := feedback.NewContext()
	ctx.AddEvent("sms.incoming", &feedback.Event{MaxTimeout: 5})

	doc, err := JSON(ctx)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	got := gjson.GetBytes(doc, `events.sms\.incoming.max_timeout`)
	if got.Int() != 5 {
		t.Errorf("dotted event name not addressable: %s", doc)
	}
}

func TestYAML(t *testing.T) {
	data, err := YAML(newTestContext())
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("snapshot is not valid YAML: %v", err)
	}

	if !strings.Contains(string(data), "max_timeout: 30000") {
		t.Errorf("max_timeout missing:\n%s", data)
	}
	if !strings.Contains(string(data), "type: fixed") {
		t.Errorf("volume variant missing:\n%s", data)
	}
}

func TestQuery(t *testing.T) {
	doc, err := JSON(newTestContext())
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	got, ok := Query(doc, "events.ringtone.event_id")
	if !ok {
		t.Fatal("query missed an existing path")
	}
	if got != "ringtone-id" {
		t.Errorf("Query = %q", got)
	}

	if _, ok := Query(doc, "events.nope.event_id"); ok {
		t.Error("query matched a missing path")
	}
}
