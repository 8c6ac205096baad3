package keyfile

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/feedbackd/internal/vfs"
)

// KeyFile is a parsed key file: named groups of key/value pairs.
// Group order follows the order of first appearance in the source;
// duplicate group headers merge into the existing group.
type KeyFile struct {
	order  []string
	groups map[string]map[string]string
}

// Parse parses key file data.
func Parse(data []byte) (*KeyFile, error) {
	return parse(data, "")
}

// Load reads and parses the key file at path.
func Load(fsys vfs.FS, path string) (*KeyFile, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, path)
}

func parse(data []byte, path string) (*KeyFile, error) {
	kf := &KeyFile{groups: make(map[string]map[string]string)}

	var current map[string]string
	lineNo := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, &ParseError{Path: path, Line: lineNo, Message: "unterminated group header"}
			}
			name := line[1 : len(line)-1]
			if name == "" {
				return nil, &ParseError{Path: path, Line: lineNo, Message: "empty group name"}
			}
			group, ok := kf.groups[name]
			if !ok {
				group = make(map[string]string)
				kf.groups[name] = group
				kf.order = append(kf.order, name)
			}
			current = group
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			return nil, &ParseError{Path: path, Line: lineNo, Message: fmt.Sprintf("expected key=value, got %q", line)}
		}
		if current == nil {
			return nil, &ParseError{Path: path, Line: lineNo, Message: "key/value pair outside any group"}
		}

		key := strings.TrimSpace(line[:eq])
		if key == "" {
			return nil, &ParseError{Path: path, Line: lineNo, Message: "empty key"}
		}
		current[key] = strings.TrimSpace(line[eq+1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return kf, nil
}

// Groups returns the group names in order of first appearance.
func (kf *KeyFile) Groups() []string {
	out := make([]string, len(kf.order))
	copy(out, kf.order)
	return out
}

// HasGroup returns true if the named group exists.
func (kf *KeyFile) HasGroup(name string) bool {
	_, ok := kf.groups[name]
	return ok
}

// Keys returns the keys present in the named group, or nil if the group
// doesn't exist. Order is unspecified.
func (kf *KeyFile) Keys(group string) []string {
	g, ok := kf.groups[group]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	return keys
}

// raw returns the raw value for group/key, distinguishing missing group
// and missing key.
func (kf *KeyFile) raw(group, key string) (string, error) {
	g, ok := kf.groups[group]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}
	v, ok := g[key]
	if !ok {
		return "", fmt.Errorf("%w: %s in group %s", ErrKeyNotFound, key, group)
	}
	return v, nil
}

// GetString returns the string value for group/key.
func (kf *KeyFile) GetString(group, key string) (string, error) {
	return kf.raw(group, key)
}

// GetInt returns the integer value for group/key.
// A present but non-integer value yields ErrInvalidValue.
func (kf *KeyFile) GetInt(group, key string) (int, error) {
	v, err := kf.raw(group, key)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(v)
	if convErr != nil {
		return 0, fmt.Errorf("%w: %s=%q, expected integer", ErrInvalidValue, key, v)
	}
	return n, nil
}

// GetBool returns the boolean value for group/key. Recognized encodings
// are "true", "false", "1" and "0"; anything else yields ErrInvalidValue.
func (kf *KeyFile) GetBool(group, key string) (bool, error) {
	v, err := kf.raw(group, key)
	if err != nil {
		return false, err
	}
	switch v {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s=%q, expected boolean", ErrInvalidValue, key, v)
	}
}
