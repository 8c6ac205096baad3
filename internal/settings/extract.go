package settings

import (
	"errors"

	"github.com/dshills/feedbackd/internal/keyfile"
	"github.com/dshills/feedbackd/internal/logging"
	"github.com/dshills/feedbackd/internal/proplist"
)

// extractor reads typed event properties from key file groups into
// property lists, applying schema defaults.
type extractor struct {
	kf  *keyfile.KeyFile
	log *logging.Logger
}

// apply reads one schema entry from group into props.
//
// An absent key writes the declared default only when useDefault is set;
// without it the key is omitted entirely, to be supplied by an inherited
// parent. A present but malformed value warns and always writes the
// default, regardless of useDefault: a malformed value must never
// silently vanish.
func (x *extractor) apply(props *proplist.List, group string, entry Entry, useDefault bool) {
	switch entry.Type {
	case TypeString:
		v, err := x.kf.GetString(group, entry.Key)
		if err != nil {
			if !useDefault {
				return
			}
			v = entry.DefaultString
		}
		props.SetString(entry.Key, v)

	case TypeInt:
		v, err := x.kf.GetInt(group, entry.Key)
		if err != nil {
			if errors.Is(err, keyfile.ErrInvalidValue) {
				x.log.Warn("invalid value for property %s, expected integer; using default %d", entry.Key, entry.DefaultInt)
			} else if !useDefault {
				return
			}
			v = entry.DefaultInt
		}
		props.SetInt(entry.Key, v)

	case TypeBool:
		v, err := x.kf.GetBool(group, entry.Key)
		if err != nil {
			if errors.Is(err, keyfile.ErrInvalidValue) {
				x.log.Warn("invalid value for property %s, expected boolean; using default %t", entry.Key, entry.DefaultBool)
			} else if !useDefault {
				return
			}
			v = entry.DefaultBool
		}
		props.SetBool(entry.Key, v)
	}
}

// applySchema reads every schema entry from group into a fresh property
// list.
func (x *extractor) applySchema(group string, useDefault bool) *proplist.List {
	props := proplist.New()
	for _, entry := range eventSchema {
		x.apply(props, group, entry, useDefault)
	}
	return props
}
