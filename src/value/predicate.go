package value

// IsNull reports whether in is the null value or an untyped nil.
func IsNull(in Value) bool {
	switch in.(type) {
	case *Null, nil:
		return true
	default:
		return false
	}
}

// IsNumber reports whether in is an integer or float value.
func IsNumber(in Value) bool {
	switch in.(type) {
	case *Int, *Float:
		return true
	default:
		return false
	}
}

// IsString reports whether in is a string value.
func IsString(in Value) bool {
	_, ok := in.(*String)
	return ok
}

// IsArray reports whether in is an array value.
func IsArray(in Value) bool {
	_, ok := in.(*Array)
	return ok
}

// IsObject reports whether in is an object value.
func IsObject(in Value) bool {
	_, ok := in.(*Object)
	return ok
}

// Truthy reports how a value reads in a boolean position. Null and false are
// falsy, everything else including 0 and "" is truthy.
func Truthy(in Value) bool {
	switch val := in.(type) {
	case *Bool:
		return val.val
	case *Null, nil:
		return false
	default:
		return true
	}
}

// AsBool narrows in to its native bool when it is a boolean value.
func AsBool(in Value) (bool, bool) {
	val, ok := in.(*Bool)
	if !ok {
		return false, false
	}
	return val.val, true
}

// AsInt narrows in to an int64. Floats with no fractional part narrow as
// well since decoders disagree on whether 2 is an int or a float.
func AsInt(in Value) (int64, bool) {
	switch val := in.(type) {
	case *Int:
		return val.val, true
	case *Float:
		if val.val == float64(int64(val.val)) {
			return int64(val.val), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsFloat narrows in to a float64 when it is numeric.
func AsFloat(in Value) (float64, bool) {
	switch val := in.(type) {
	case *Int:
		return float64(val.val), true
	case *Float:
		return val.val, true
	default:
		return 0, false
	}
}

// AsString narrows in to its native string when it is a string value. There
// is no coercion of other kinds.
func AsString(in Value) (string, bool) {
	val, ok := in.(*String)
	if !ok {
		return "", false
	}
	return val.val, true
}

// AsArray narrows in to an array value.
func AsArray(in Value) (*Array, bool) {
	val, ok := in.(*Array)
	return val, ok
}

// AsObject narrows in to an object value.
func AsObject(in Value) (*Object, bool) {
	val, ok := in.(*Object)
	return val, ok
}

// Equal compares two values deeply. Kinds must match exactly; an Int never
// equals a Float even when numerically identical.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Null:
		return true
	case *Bool:
		return av.val == b.(*Bool).val
	case *Int:
		return av.val == b.(*Int).val
	case *Float:
		return av.val == b.(*Float).val
	case *String:
		return av.val == b.(*String).val
	case *Array:
		bv := b.(*Array)
		if len(av.vals) != len(bv.vals) {
			return false
		}
		for i, item := range av.vals {
			if !Equal(item, bv.vals[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.fields) != len(bv.fields) {
			return false
		}
		for key, item := range av.fields {
			other, hasKey := bv.fields[key]
			if !hasKey || !Equal(item, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
