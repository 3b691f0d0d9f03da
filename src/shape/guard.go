package shape

import "probe/src/value"

// HasField reports whether val is an object carrying a field named name.
// Only presence of the key is checked; the field's value kind and any other
// fields are never inspected. Callers relying on this for safety beyond "the
// key exists" will be surprised if the key holds an incompatible value.
func HasField(val value.Value, name string) bool {
	obj, isObj := value.AsObject(val)
	return isObj && obj.Has(name)
}

// Narrow checks val against def and hands the value back untouched on
// success. This is the checked replacement for an assertion: the value is
// never transformed, only the caller's license to treat it as def changes.
func Narrow(def Definition, val value.Value) (value.Value, bool) {
	if !def.Check(val) {
		return nil, false
	}
	return val, true
}
