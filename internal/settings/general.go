package settings

import (
	"strings"

	"github.com/dshills/feedbackd/internal/feedback"
	"github.com/dshills/feedbackd/internal/keyfile"
	"github.com/dshills/feedbackd/internal/logging"
	"github.com/dshills/feedbackd/internal/resource"
)

// parseGeneral reads the global scalars from the general group into the
// context. Every key is optional; missing or malformed values leave the
// context field at its zero value.
func parseGeneral(ctx *feedback.Context, kf *keyfile.KeyFile) {
	parseRequiredPlugins(ctx, kf)

	if v, err := kf.GetString(GroupGeneral, "vibration_search_path"); err == nil {
		ctx.PatternsPath = v
	}
	if v, err := kf.GetString(GroupGeneral, "sound_search_path"); err == nil {
		ctx.SoundPath = v
	}
	if v, err := kf.GetInt(GroupGeneral, "buffer_time"); err == nil {
		ctx.AudioBufferTime = v
	}
	if v, err := kf.GetInt(GroupGeneral, "latency_time"); err == nil {
		ctx.AudioLatencyTime = v
	}

	parseSystemVolume(ctx, kf)
}

// parseRequiredPlugins reads the space-separated plugin list.
func parseRequiredPlugins(ctx *feedback.Context, kf *keyfile.KeyFile) {
	v, err := kf.GetString(GroupGeneral, "plugins")
	if err != nil {
		return
	}
	ctx.RequiredPlugins = append(ctx.RequiredPlugins, strings.Fields(v)...)
}

// parseSystemVolume reads the ";"-separated low/mid/high triple. All
// three fields must be present or the triple is left unset.
func parseSystemVolume(ctx *feedback.Context, kf *keyfile.KeyFile) {
	v, err := kf.GetString(GroupGeneral, "system_volume")
	if err != nil {
		return
	}

	fields := strings.Split(v, ";")
	if len(fields) < 3 {
		return
	}
	for i := 0; i < 3; i++ {
		ctx.SystemVolume[i] = resource.Atoi(fields[i])
	}
}

// parseDefinitions reads every definition group into the context.
func parseDefinitions(ctx *feedback.Context, kf *keyfile.KeyFile, log *logging.Logger) {
	for _, group := range kf.Groups() {
		header, ok := ParseHeader(group)
		if !ok || header.Kind != KindDefinition {
			continue
		}

		def := &feedback.Definition{}
		if v, err := kf.GetString(group, "long"); err == nil {
			def.LongEvent = v
		}
		if v, err := kf.GetString(group, "short"); err == nil {
			def.ShortEvent = v
		}
		if v, err := kf.GetString(group, "meeting"); err == nil {
			def.MeetingEvent = v
		}

		log.Debug("new definition %s (long=%s, short=%s, meeting=%s)",
			header.Name, def.LongEvent, def.ShortEvent, def.MeetingEvent)
		ctx.AddDefinition(header.Name, def)
	}
}
