package shape

import (
	"fmt"
	"sort"
	"strings"

	"probe/src/value"
)

type (
	// Object is a shape with named field definitions. Fields are required,
	// Optional fields match when present but do not have to be. A closed
	// object rejects fields it does not define; an open one ignores them.
	Object struct {
		// Name is only useful for refined, reusable shapes. Two unnamed
		// objects with matching fields describe the same shape.
		Name     string
		Fields   map[string]Definition
		Optional map[string]Definition
		Open     bool
	}
	// Mismatch records a field whose value did not match its definition.
	Mismatch struct {
		Want Definition
		Got  value.Kind
	}
	// Diff is a field-by-field report of why a value missed an object shape.
	Diff struct {
		// Missing are required fields absent from the value.
		Missing []string
		// Extra are value fields a closed shape does not define.
		Extra []string
		// Mismatched are fields present under the right key with the wrong shape.
		Mismatched map[string]Mismatch
	}
)

// NewObject creates an open object shape with no field requirements.
func NewObject() *Object {
	return &Object{
		Open:     true,
		Fields:   map[string]Definition{},
		Optional: map[string]Definition{},
	}
}

// Check will check that the value is an object conforming to this shape.
func (t *Object) Check(val value.Value) bool {
	return t.Diff(val).Ok()
}

// Diff generates a key diff between the shape and the value:
// missing: required keys the value does not carry
// extra: value keys a closed shape does not define
// mismatched: keys present whose values have the wrong shape.
// A non-object value reports every required field missing.
func (t *Object) Diff(val value.Value) *Diff {
	diff := &Diff{Mismatched: map[string]Mismatch{}}
	obj, isObj := value.AsObject(val)
	if !isObj {
		for key := range t.Fields {
			diff.Missing = append(diff.Missing, key)
		}
		sort.Strings(diff.Missing)
		if len(diff.Missing) == 0 {
			diff.Missing = []string{"<not an object>"}
		}
		return diff
	}

	for key, defn := range t.Fields {
		field, hasKey := obj.Get(key)
		if !hasKey {
			diff.Missing = append(diff.Missing, key)
		} else if !defn.Check(field) {
			diff.Mismatched[key] = Mismatch{Want: defn, Got: field.Kind()}
		}
	}
	for key, defn := range t.Optional {
		if field, hasKey := obj.Get(key); hasKey && !defn.Check(field) {
			diff.Mismatched[key] = Mismatch{Want: defn, Got: field.Kind()}
		}
	}
	if !t.Open {
		for _, key := range obj.Keys() {
			_, required := t.Fields[key]
			_, optional := t.Optional[key]
			if !required && !optional {
				diff.Extra = append(diff.Extra, key)
			}
		}
	}
	sort.Strings(diff.Missing)
	return diff
}

// Ok reports whether the diff is empty, meaning the value matched.
func (d *Diff) Ok() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Mismatched) == 0
}

func (d *Diff) String() string {
	if d.Ok() {
		return "ok"
	}
	parts := []string{}
	for _, key := range d.Missing {
		parts = append(parts, fmt.Sprintf("missing %s", key))
	}
	for _, key := range d.Extra {
		parts = append(parts, fmt.Sprintf("extra %s", key))
	}
	keys := make([]string, 0, len(d.Mismatched))
	for key := range d.Mismatched {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		mm := d.Mismatched[key]
		parts = append(parts, fmt.Sprintf("%s: want %s, got %s", key, mm.Want, mm.Got))
	}
	return strings.Join(parts, "\n")
}

func (t *Object) String() string {
	if len(t.Fields) == 0 && len(t.Optional) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(t.Fields))
	for key := range t.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys)+len(t.Optional))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, t.Fields[key].String()))
	}
	keys = keys[:0]
	for key := range t.Optional {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s?: %s", key, t.Optional[key].String()))
	}
	return fmt.Sprintf("{\n%s\n}", strings.Join(parts, "\n"))
}
