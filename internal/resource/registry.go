package resource

// Registry owns every successfully-parsed resource descriptor. Events
// hold the pointers returned by the Add methods; the registry is the
// single owner of the descriptors themselves.
//
// Descriptors with identical contents intern to the same pointer. That
// is a memory-sharing optimization, not an identity guarantee consumers
// may rely on.
type Registry struct {
	sounds   []*SoundPath
	volumes  []*Volume
	patterns []*VibrationPattern
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddSound interns a sound path and returns the stored descriptor.
func (r *Registry) AddSound(s *SoundPath) *SoundPath {
	for _, existing := range r.sounds {
		if *existing == *s {
			return existing
		}
	}
	r.sounds = append(r.sounds, s)
	return s
}

// AddVolume interns a volume and returns the stored descriptor.
func (r *Registry) AddVolume(v *Volume) *Volume {
	for _, existing := range r.volumes {
		if *existing == *v {
			return existing
		}
	}
	r.volumes = append(r.volumes, v)
	return v
}

// AddPattern interns a vibration pattern and returns the stored descriptor.
func (r *Registry) AddPattern(p *VibrationPattern) *VibrationPattern {
	for _, existing := range r.patterns {
		if *existing == *p {
			return existing
		}
	}
	r.patterns = append(r.patterns, p)
	return p
}

// Sounds returns the interned sound paths in insertion order.
func (r *Registry) Sounds() []*SoundPath {
	out := make([]*SoundPath, len(r.sounds))
	copy(out, r.sounds)
	return out
}

// Volumes returns the interned volumes in insertion order.
func (r *Registry) Volumes() []*Volume {
	out := make([]*Volume, len(r.volumes))
	copy(out, r.volumes)
	return out
}

// Patterns returns the interned vibration patterns in insertion order.
func (r *Registry) Patterns() []*VibrationPattern {
	out := make([]*VibrationPattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}
