package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
)

// CastEntry is one element of a movie's cast list. Source data stores cast
// members either as a bare name string or as an object with a "name" key
// plus arbitrary extra fields. Elements that are neither shape are carried
// through verbatim so a rewrite never corrupts unrelated data.
type CastEntry struct {
	name   string
	extra  map[string]json.RawMessage
	object bool
	raw    json.RawMessage
}

// PlainName builds a bare-string cast entry.
func PlainName(name string) CastEntry {
	return CastEntry{name: name}
}

// NamedMember builds an object-shaped cast entry with optional extra fields.
func NamedMember(name string, extra map[string]json.RawMessage) CastEntry {
	return CastEntry{name: name, extra: extra, object: true}
}

// Name returns the entry's person name. Malformed entries have no name.
func (e CastEntry) Name() string { return e.name }

// IsObject reports whether the entry came from an object-shaped element.
func (e CastEntry) IsObject() bool { return e.object }

// Malformed reports whether the entry is carried through verbatim because it
// was neither a string nor an object with a "name" key.
func (e CastEntry) Malformed() bool { return e.raw != nil }

// WithName returns a copy of the entry with the name replaced. Shape and
// extra fields are preserved; malformed entries are returned unchanged.
func (e CastEntry) WithName(name string) CastEntry {
	if e.Malformed() {
		return e
	}
	e.name = name
	return e
}

// Extra returns the value of an extra field on an object-shaped entry.
func (e CastEntry) Extra(key string) (json.RawMessage, bool) {
	value, ok := e.extra[key]
	return value, ok
}

// UnmarshalJSON accepts a bare string, an object with a "name" key, or —
// for anything else — captures the raw bytes unchanged.
func (e *CastEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*e = CastEntry{name: name}
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err == nil {
		if rawName, ok := fields["name"]; ok {
			if err := json.Unmarshal(rawName, &name); err == nil {
				delete(fields, "name")
				*e = CastEntry{name: name, extra: fields, object: true}
				return nil
			}
		}
	}

	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	*e = CastEntry{raw: raw}
	return nil
}

// MarshalJSON renders the entry back in its original shape.
func (e CastEntry) MarshalJSON() ([]byte, error) {
	if e.raw != nil {
		return e.raw, nil
	}
	if !e.object {
		return json.Marshal(e.name)
	}

	// Build the object by hand with sorted keys so output is deterministic.
	keys := make([]string, 0, len(e.extra))
	for key := range e.extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	nameJSON, err := json.Marshal(e.name)
	if err != nil {
		return nil, fmt.Errorf("marshal cast name: %w", err)
	}
	out := append([]byte(`{"name":`), nameJSON...)
	for _, key := range keys {
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("marshal cast field key: %w", err)
		}
		out = append(out, ',')
		out = append(out, keyJSON...)
		out = append(out, ':')
		out = append(out, e.extra[key]...)
	}
	out = append(out, '}')
	return out, nil
}

func encodeCastMembers(entries []CastEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshal cast members: %w", err)
	}
	return string(data), nil
}

func decodeCastMembers(value string) ([]CastEntry, error) {
	if value == "" {
		return nil, nil
	}
	var entries []CastEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, fmt.Errorf("unmarshal cast members: %w", err)
	}
	return entries, nil
}
