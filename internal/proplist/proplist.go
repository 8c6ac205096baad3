// Package proplist provides an ordered property set keyed by string.
//
// A List holds string, int and bool values. The inheritance resolver
// builds one List per event and merges child lists over resolved parent
// lists; the event finalizer then reads the merged List through
// zero-value-tolerant typed getters.
package proplist

// List is an ordered mapping from property key to a typed value.
// Keys keep the order in which they were first set; overwriting a key
// keeps its original position.
type List struct {
	keys   []string
	values map[string]any
}

// New creates an empty List.
func New() *List {
	return &List{values: make(map[string]any)}
}

// Len returns the number of properties.
func (l *List) Len() int {
	return len(l.keys)
}

// Has returns true if key is present.
func (l *List) Has(key string) bool {
	_, ok := l.values[key]
	return ok
}

// Keys returns the property keys in insertion order.
func (l *List) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// set stores value under key, appending the key on first use.
func (l *List) set(key string, value any) {
	if _, ok := l.values[key]; !ok {
		l.keys = append(l.keys, key)
	}
	l.values[key] = value
}

// SetString stores a string value.
func (l *List) SetString(key, value string) {
	l.set(key, value)
}

// SetInt stores an integer value.
func (l *List) SetInt(key string, value int) {
	l.set(key, value)
}

// SetBool stores a boolean value.
func (l *List) SetBool(key string, value bool) {
	l.set(key, value)
}

// GetString returns the string value for key, or "" when the key is
// absent or holds a different type.
func (l *List) GetString(key string) string {
	if v, ok := l.values[key].(string); ok {
		return v
	}
	return ""
}

// GetInt returns the integer value for key, or 0 when the key is absent
// or holds a different type.
func (l *List) GetInt(key string) int {
	if v, ok := l.values[key].(int); ok {
		return v
	}
	return 0
}

// GetBool returns the boolean value for key, or false when the key is
// absent or holds a different type.
func (l *List) GetBool(key string) bool {
	if v, ok := l.values[key].(bool); ok {
		return v
	}
	return false
}

// Copy returns an independent copy of the List.
func (l *List) Copy() *List {
	c := &List{
		keys:   make([]string, len(l.keys)),
		values: make(map[string]any, len(l.values)),
	}
	copy(c.keys, l.keys)
	for k, v := range l.values {
		c.values[k] = v
	}
	return c
}

// Merge overlays the properties of other onto l. Keys present in other
// win; keys only in l keep their values. Keys new to l append in other's
// order.
func (l *List) Merge(other *List) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		l.set(k, other.values[k])
	}
}
