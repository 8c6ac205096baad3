package resource

import (
	"path/filepath"
	"strings"

	"github.com/dshills/feedbackd/internal/vfs"
)

// Value prefixes recognized by the parsers.
const (
	prefixProfile  = "profile:"
	prefixFilename = "filename:"
	prefixFixed    = "fixed:"
	prefixLinear   = "linear:"
	prefixInternal = "internal:"
)

// listSeparator splits list-valued fields and the components of a
// linear volume.
const listSeparator = ";"

// Parser converts raw config values into interned descriptors.
type Parser struct {
	// Registry interns every descriptor the parser produces.
	Registry *Registry

	// FS is probed when resolving filename: values.
	FS vfs.FS

	// SoundDir is the search directory for filename: sound values.
	SoundDir string

	// PatternDir is the search directory for filename: vibration values.
	PatternDir string
}

// SoundPath parses one sound item. Returns false for unrecognized
// prefixes, incomplete profile references and unresolvable filenames.
func (p *Parser) SoundPath(item string) (*SoundPath, bool) {
	switch {
	case strings.HasPrefix(item, prefixProfile):
		key, profile, ok := parseProfileKey(strings.TrimPrefix(item, prefixProfile))
		if !ok {
			return nil, false
		}
		return p.Registry.AddSound(&SoundPath{Kind: SoundProfile, Key: key, Profile: profile}), true

	case strings.HasPrefix(item, prefixFilename):
		path, ok := p.checkPath(strings.TrimPrefix(item, prefixFilename), p.SoundDir)
		if !ok {
			return nil, false
		}
		return p.Registry.AddSound(&SoundPath{Kind: SoundFilename, Filename: path}), true
	}

	return nil, false
}

// SoundList parses a ;-separated list of sound items. Invalid items are
// dropped; the result holds only the items that parsed.
func (p *Parser) SoundList(raw string) []*SoundPath {
	if raw == "" {
		return nil
	}

	var result []*SoundPath
	for _, item := range strings.Split(raw, listSeparator) {
		if sp, ok := p.SoundPath(item); ok {
			result = append(result, sp)
		}
	}
	return result
}

// Volume parses the single volume value of an event. The raw string is
// dispatched as a whole: a linear volume re-splits its remainder on ";"
// for the three ramp components, never for multiple volume values.
func (p *Parser) Volume(raw string) (*Volume, bool) {
	switch {
	case strings.HasPrefix(raw, prefixProfile):
		key, profile, ok := parseProfileKey(strings.TrimPrefix(raw, prefixProfile))
		if !ok {
			return nil, false
		}
		return p.Registry.AddVolume(&Volume{Kind: VolumeProfile, Key: key, Profile: profile}), true

	case strings.HasPrefix(raw, prefixFixed):
		return p.Registry.AddVolume(&Volume{
			Kind:  VolumeFixed,
			Level: Atoi(strings.TrimPrefix(raw, prefixFixed)),
		}), true

	case strings.HasPrefix(raw, prefixLinear):
		fields := strings.Split(strings.TrimPrefix(raw, prefixLinear), listSeparator)
		if len(fields) < 3 {
			return nil, false
		}
		v := &Volume{Kind: VolumeLinear, Level: 100}
		for i := 0; i < 3; i++ {
			v.Linear[i] = Atoi(fields[i])
		}
		return p.Registry.AddVolume(v), true
	}

	return nil, false
}

// VibrationPattern parses one vibration item.
func (p *Parser) VibrationPattern(item string) (*VibrationPattern, bool) {
	switch {
	case strings.HasPrefix(item, prefixProfile):
		key, profile, ok := parseProfileKey(strings.TrimPrefix(item, prefixProfile))
		if !ok {
			return nil, false
		}
		return p.Registry.AddPattern(&VibrationPattern{Kind: VibrationProfile, Key: key, Profile: profile}), true

	case strings.HasPrefix(item, prefixFilename):
		path, ok := p.checkPath(strings.TrimPrefix(item, prefixFilename), p.PatternDir)
		if !ok {
			return nil, false
		}
		return p.Registry.AddPattern(&VibrationPattern{Kind: VibrationFilename, Filename: path}), true

	case strings.HasPrefix(item, prefixInternal):
		return p.Registry.AddPattern(&VibrationPattern{
			Kind:    VibrationInternal,
			Pattern: Atoi(strings.TrimPrefix(item, prefixInternal)),
		}), true
	}

	return nil, false
}

// VibrationList parses a ;-separated list of vibration items. Invalid
// items are dropped.
func (p *Parser) VibrationList(raw string) []*VibrationPattern {
	if raw == "" {
		return nil
	}

	var result []*VibrationPattern
	for _, item := range strings.Split(raw, listSeparator) {
		if vp, ok := p.VibrationPattern(item); ok {
			result = append(result, vp)
		}
	}
	return result
}

// checkPath resolves a filename against two candidate locations in
// order: the literal value, then the value under searchDir.
func (p *Parser) checkPath(basename, searchDir string) (string, bool) {
	if basename == "" {
		return "", false
	}
	if p.FS.Exists(basename) {
		return basename, true
	}
	joined := filepath.Join(searchDir, basename)
	if p.FS.Exists(joined) {
		return joined, true
	}
	return "", false
}

// parseProfileKey splits "key@profile" once on "@". Both sides must be
// non-empty.
func parseProfileKey(s string) (key, profile string, ok bool) {
	key, profile, found := strings.Cut(s, "@")
	if !found || key == "" || profile == "" {
		return "", "", false
	}
	return key, profile, true
}

// Atoi converts the leading integer portion of s, C atoi style: optional
// surrounding whitespace, optional sign, then digits. Conversion stops
// at the first non-digit; input with no leading integer yields 0.
// Downstream consumers depend on this lenient fallback for the fixed:,
// linear: and internal: variants.
func Atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return sign * n
}
