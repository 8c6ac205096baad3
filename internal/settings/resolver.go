package settings

import (
	"errors"

	"github.com/dshills/feedbackd/internal/keyfile"
	"github.com/dshills/feedbackd/internal/logging"
	"github.com/dshills/feedbackd/internal/proplist"
)

// resolver computes the fully-merged property set for every event group
// by walking inheritance chains parent-first.
type resolver struct {
	groups     map[string]string         // event name -> full group name
	resolved   map[string]*proplist.List // event name -> merged property set
	done       map[string]bool
	inProgress map[string]bool
	ext        *extractor
	log        *logging.Logger
}

// newResolver scans the key file for event groups and prepares an empty
// resolution state.
func newResolver(kf *keyfile.KeyFile, log *logging.Logger) *resolver {
	r := &resolver{
		groups:     make(map[string]string),
		resolved:   make(map[string]*proplist.List),
		done:       make(map[string]bool),
		inProgress: make(map[string]bool),
		ext:        &extractor{kf: kf, log: log},
		log:        log,
	}

	for _, group := range kf.Groups() {
		header, ok := ParseHeader(group)
		if !ok || header.Kind != KindEvent {
			continue
		}
		r.groups[header.Name] = group
	}

	return r
}

// resolveAll resolves every discovered event. Iteration order over the
// discovery map is arbitrary; the parent-first recursion and the done
// set make each event's result independent of it.
func (r *resolver) resolveAll() error {
	for name := range r.groups {
		if err := r.resolve(name); err != nil {
			return err
		}
	}
	return nil
}

// resolve computes the merged property set for one event.
//
// The parent chain is resolved first, depth-first. The event's own
// section contributes defaults for every schema key only when the event
// is a root of its chain; a non-root section contributes only the keys
// it explicitly sets, everything else is inherited from the parent's
// resolved set. A parent name with no section is ignored and the event
// resolves as a root. Re-entering an event already being resolved means
// the parent chain loops back on itself; that fails the load instead of
// recursing without bound.
func (r *resolver) resolve(name string) error {
	if r.done[name] {
		return nil
	}

	group, ok := r.groups[name]
	if !ok {
		return nil
	}

	if r.inProgress[name] {
		return &CycleError{Chain: []string{name}}
	}
	r.inProgress[name] = true
	defer delete(r.inProgress, name)

	header, _ := ParseHeader(group)

	if header.Parent != "" {
		if err := r.resolve(header.Parent); err != nil {
			var ce *CycleError
			if errors.As(err, &ce) && !ce.closed() {
				ce.Chain = append(ce.Chain, name)
			}
			return err
		}
	}

	parentProps := r.resolved[header.Parent]
	isBase := parentProps == nil

	props := r.ext.applySchema(group, isBase)

	if parentProps != nil {
		merged := parentProps.Copy()
		merged.Merge(props)
		props = merged
	}

	r.resolved[name] = props
	r.done[name] = true
	r.log.Debug("resolved event %s (%d properties)", name, props.Len())
	return nil
}
