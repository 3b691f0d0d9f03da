// Package value contains the dynamic value model that documents are decoded
// into. Every document node is one of a small set of variants behind the
// Value interface so that callers can inspect data of unknown shape without
// unchecked casts. Checked accessors return (T, bool) and never panic.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type (
	// Kind enumerates the possible kinds a Value can have.
	Kind int
	// Value is the interface implemented by every document node variant.
	Value interface {
		fmt.Stringer
		Kind() Kind
	}
	// Null is the absent/null value.
	Null struct{}
	// Bool is a boolean value.
	Bool struct{ val bool }
	// Int is an integer numeric value.
	Int struct{ val int64 }
	// Float is a floating point numeric value.
	Float struct{ val float64 }
	// String is a text value.
	String struct{ val string }
	// Array is an ordered list of values.
	Array struct{ vals []Value }
	// Object is a collection of named fields.
	Object struct {
		fields map[string]Value
		keys   []string
	}
)

const (
	// KindNull labels the null kind.
	KindNull Kind = iota
	// KindBool labels the boolean kind.
	KindBool
	// KindInt labels the integer kind.
	KindInt
	// KindFloat labels the float kind.
	KindFloat
	// KindString labels the string kind.
	KindString
	// KindArray labels the array kind.
	KindArray
	// KindObject labels the object kind.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// NewBool wraps a native bool.
func NewBool(val bool) *Bool { return &Bool{val: val} }

// NewInt wraps a native int64.
func NewInt(val int64) *Int { return &Int{val: val} }

// NewFloat wraps a native float64.
func NewFloat(val float64) *Float { return &Float{val: val} }

// NewString wraps a native string.
func NewString(val string) *String { return &String{val: val} }

// NewArray copies vals into a new array value. The input slice is never
// retained so later mutation of it cannot change the array.
func NewArray(vals ...Value) *Array {
	out := make([]Value, len(vals))
	copy(out, vals)
	return &Array{vals: out}
}

// NewObject copies fields into a new object value. Keys are kept sorted for
// deterministic iteration.
func NewObject(fields map[string]Value) *Object {
	cp := make(map[string]Value, len(fields))
	keys := make([]string, 0, len(fields))
	for key, val := range fields {
		cp[key] = val
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &Object{fields: cp, keys: keys}
}

// FromGo converts a native go value into a Value. Unsupported types return
// an error rather than a silent nil.
func FromGo(in any) (Value, error) {
	switch val := in.(type) {
	case nil:
		return &Null{}, nil
	case bool:
		return NewBool(val), nil
	case int:
		return NewInt(int64(val)), nil
	case int64:
		return NewInt(val), nil
	case float64:
		return NewFloat(val), nil
	case string:
		return NewString(val), nil
	case Value:
		return val, nil
	case []any:
		vals := make([]Value, len(val))
		for i, item := range val {
			conv, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			vals[i] = conv
		}
		return &Array{vals: vals}, nil
	case map[string]any:
		fields := make(map[string]Value, len(val))
		for key, item := range val {
			conv, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			fields[key] = conv
		}
		return NewObject(fields), nil
	default:
		return nil, fmt.Errorf("cannot convert value of type %T", in)
	}
}

// ToGo converts a Value back into plain go values suitable for encoding.
func ToGo(in Value) any {
	switch val := in.(type) {
	case *Bool:
		return val.val
	case *Int:
		return val.val
	case *Float:
		return val.val
	case *String:
		return val.val
	case *Array:
		out := make([]any, len(val.vals))
		for i, item := range val.vals {
			out[i] = ToGo(item)
		}
		return out
	case *Object:
		out := make(map[string]any, len(val.fields))
		for key, item := range val.fields {
			out[key] = ToGo(item)
		}
		return out
	default:
		return nil
	}
}

// Kind returns the null kind.
func (n *Null) Kind() Kind     { return KindNull }
func (n *Null) String() string { return "null" }

// Kind returns the boolean kind.
func (b *Bool) Kind() Kind     { return KindBool }
func (b *Bool) String() string { return strconv.FormatBool(b.val) }

// Val returns the wrapped bool.
func (b *Bool) Val() bool { return b.val }

// Kind returns the integer kind.
func (i *Int) Kind() Kind     { return KindInt }
func (i *Int) String() string { return strconv.FormatInt(i.val, 10) }

// Val returns the wrapped int64.
func (i *Int) Val() int64 { return i.val }

// Kind returns the float kind.
func (f *Float) Kind() Kind     { return KindFloat }
func (f *Float) String() string { return strconv.FormatFloat(f.val, 'g', -1, 64) }

// Val returns the wrapped float64.
func (f *Float) Val() float64 { return f.val }

// Kind returns the string kind.
func (s *String) Kind() Kind     { return KindString }
func (s *String) String() string { return s.val }

// Val returns the wrapped string.
func (s *String) Val() string { return s.val }

// Kind returns the array kind.
func (a *Array) Kind() Kind { return KindArray }

func (a *Array) String() string {
	parts := make([]string, len(a.vals))
	for i, val := range a.vals {
		parts[i] = quoted(val)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// Len returns the number of elements in the array.
func (a *Array) Len() int { return len(a.vals) }

// Index returns the element at i, or absence when i is out of range.
func (a *Array) Index(i int) (Value, bool) {
	if i < 0 || i >= len(a.vals) {
		return nil, false
	}
	return a.vals[i], true
}

// Values returns a copy of the elements in insertion order.
func (a *Array) Values() []Value {
	out := make([]Value, len(a.vals))
	copy(out, a.vals)
	return out
}

// Kind returns the object kind.
func (o *Object) Kind() Kind { return KindObject }

func (o *Object) String() string {
	parts := make([]string, len(o.keys))
	for i, key := range o.keys {
		parts[i] = fmt.Sprintf("%s: %s", key, quoted(o.fields[key]))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// Get returns the field named key, or absence when no such field exists.
func (o *Object) Get(key string) (Value, bool) {
	val, ok := o.fields[key]
	return val, ok
}

// Has reports whether a field named key exists, without inspecting its value.
func (o *Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Len returns the number of fields in the object.
func (o *Object) Len() int { return len(o.fields) }

// Keys returns the field names in sorted order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Omit returns a copy of the object without the named fields. The receiver
// is never mutated.
func (o *Object) Omit(names ...string) *Object {
	fields := make(map[string]Value, len(o.fields))
	for key, val := range o.fields {
		fields[key] = val
	}
	for _, name := range names {
		delete(fields, name)
	}
	return NewObject(fields)
}

func quoted(val Value) string {
	if str, isStr := val.(*String); isStr {
		return strconv.Quote(str.val)
	}
	return val.String()
}
