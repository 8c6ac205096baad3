package settings

import (
	"github.com/dshills/feedbackd/internal/feedback"
	"github.com/dshills/feedbackd/internal/keyfile"
	"github.com/dshills/feedbackd/internal/logging"
	"github.com/dshills/feedbackd/internal/vfs"
)

// DefaultConfigPaths are the candidate configuration files, probed in
// order by Load.
var DefaultConfigPaths = []string{
	"/etc/feedbackd/feedbackd.ini",
	"./feedbackd.ini",
}

// Load discovers the configuration file at the default candidate
// locations and compiles it into ctx. Returns ErrNoConfig when no
// candidate loads; the whole load is fatal in that case and no events
// are available.
func Load(ctx *feedback.Context, fsys vfs.FS, log *logging.Logger) error {
	for _, path := range DefaultConfigPaths {
		kf, err := keyfile.Load(fsys, path)
		if err != nil {
			continue
		}
		log.Info("loading settings from %s", path)
		return compile(ctx, kf, fsys, log)
	}
	return ErrNoConfig
}

// LoadFile compiles the configuration file at path into ctx.
func LoadFile(ctx *feedback.Context, fsys vfs.FS, log *logging.Logger, path string) error {
	kf, err := keyfile.Load(fsys, path)
	if err != nil {
		return err
	}
	return compile(ctx, kf, fsys, log)
}

// compile runs the full pipeline over a parsed key file: general
// scalars, definitions, then event resolution and finalization.
func compile(ctx *feedback.Context, kf *keyfile.KeyFile, fsys vfs.FS, log *logging.Logger) error {
	parseGeneral(ctx, kf)
	parseDefinitions(ctx, kf, log)
	return ResolveEvents(ctx, kf, fsys, log)
}

// ResolveEvents resolves and finalizes every event group in kf,
// populating the context's event table and resource registry in place.
func ResolveEvents(ctx *feedback.Context, kf *keyfile.KeyFile, fsys vfs.FS, log *logging.Logger) error {
	r := newResolver(kf, log)
	if err := r.resolveAll(); err != nil {
		return err
	}

	for name, props := range r.resolved {
		finalizeEvent(ctx, fsys, name, props)
	}

	log.Info("loaded %d events, %d definitions", ctx.EventCount(), len(ctx.DefinitionNames()))
	return nil
}
