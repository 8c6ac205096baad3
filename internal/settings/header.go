package settings

import "strings"

// Group kinds recognized in section headers.
const (
	// KindEvent marks an event group.
	KindEvent = "event"
	// KindDefinition marks a definition group.
	KindDefinition = "definition"
)

// GroupGeneral is the group holding global scalar settings. It carries
// no name and is looked up literally, never through ParseHeader.
const GroupGeneral = "general"

// Header is a decomposed group header: "<kind> <name>[@<parent>]".
type Header struct {
	// Kind is the tag before the first space.
	Kind string

	// Name is the bare group name; never empty.
	Name string

	// Parent is the inherited event name, or empty when none.
	Parent string
}

// ParseHeader decomposes a raw group header. Everything after the first
// space is the tail; the tail splits once on "@" into name and parent.
// Parsing fails when there is no space, the tail is empty, or the name
// is empty. No case or whitespace normalization is performed; callers
// must match names byte-for-byte.
func ParseHeader(raw string) (Header, bool) {
	kind, tail, found := strings.Cut(raw, " ")
	if !found || tail == "" {
		return Header{}, false
	}

	name, parent, _ := strings.Cut(tail, "@")
	if name == "" {
		return Header{}, false
	}

	return Header{Kind: kind, Name: name, Parent: parent}, true
}
