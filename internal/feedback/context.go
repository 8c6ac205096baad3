package feedback

import (
	"sort"

	"github.com/dshills/feedbackd/internal/resource"
)

// Context holds everything the settings loader produces: global scalar
// settings, the interned resource registry, the definition table and
// the finalized event table.
//
// The loader mutates the Context single-threaded during load; afterwards
// the Context is read-only for the rest of the process, so no locking is
// required.
type Context struct {
	// Resources interns every resource descriptor referenced by events.
	Resources *resource.Registry

	// SoundPath is the search directory for filename: sound values.
	SoundPath string

	// PatternsPath is the search directory for filename: vibration values.
	PatternsPath string

	// AudioBufferTime is the audio buffer length in milliseconds.
	AudioBufferTime int

	// AudioLatencyTime is the audio latency target in milliseconds.
	AudioLatencyTime int

	// SystemVolume is the low/mid/high system volume triple.
	SystemVolume [3]int

	// RequiredPlugins lists the plugin names the daemon must load.
	RequiredPlugins []string

	events      map[string]*Event
	definitions map[string]*Definition
}

// NewContext creates an empty Context with a fresh resource registry.
func NewContext() *Context {
	return &Context{
		Resources:   resource.NewRegistry(),
		events:      make(map[string]*Event),
		definitions: make(map[string]*Definition),
	}
}

// AddEvent stores the finalized event under name, replacing any prior
// entry with the same name.
func (c *Context) AddEvent(name string, e *Event) {
	c.events[name] = e
}

// Event returns the finalized event for name, or nil.
func (c *Context) Event(name string) *Event {
	return c.events[name]
}

// EventNames returns the names of all finalized events, sorted.
func (c *Context) EventNames() []string {
	names := make([]string, 0, len(c.events))
	for name := range c.events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EventCount returns the number of finalized events.
func (c *Context) EventCount() int {
	return len(c.events)
}

// AddDefinition stores the definition under name, replacing any prior
// entry with the same name.
func (c *Context) AddDefinition(name string, d *Definition) {
	c.definitions[name] = d
}

// Definition returns the definition for name, or nil.
func (c *Context) Definition(name string) *Definition {
	return c.definitions[name]
}

// DefinitionNames returns the names of all definitions, sorted.
func (c *Context) DefinitionNames() []string {
	names := make([]string, 0, len(c.definitions))
	for name := range c.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
