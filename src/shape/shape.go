// Package shape contains the structures used to define structural shapes and
// check document values against them. A shape describes required fields and
// their value kinds, independent of where the value came from. Checking never
// transforms the value; callers that want a narrowed handle use Narrow which
// returns the value untouched together with the check result.
package shape

import (
	"fmt"
	"strings"

	"probe/src/value"
)

type (
	// Definition is a general interface for all shape definitions.
	Definition interface {
		fmt.Stringer
		Check(val value.Value) bool
	}
	// Simple describes a single builtin kind.
	Simple struct{ Name string }
	// Union describes a shape that matches when any of its arms match.
	Union struct{ Defn []Definition }
	// ArrayOf describes an array whose every element matches Elem.
	ArrayOf struct{ Elem Definition }
	anyType struct{}
)

const (
	// NameAny is a label for the any shape.
	NameAny = "any"
	// NameNull is a label for the null shape.
	NameNull = "null"
	// NameBool is a label for the bool shape.
	NameBool = "bool"
	// NameInt is a label for the int shape.
	NameInt = "int"
	// NameFloat is a label for the float shape.
	NameFloat = "float"
	// NameNumber is a label for the number shape.
	NameNumber = "number"
	// NameString is a label for the string shape.
	NameString = "string"
	// NameArray is a label for the array shape.
	NameArray = "array"
	// NameObject is a label for the object shape.
	NameObject = "object"
)

var (
	// Any is a shape that matches every value.
	Any = &anyType{}
	// Null is a shape matching only the null value.
	Null = &Simple{Name: NameNull}
	// Bool is a shape matching boolean values.
	Bool = &Simple{Name: NameBool}
	// Int is a shape matching integer values.
	Int = &Simple{Name: NameInt}
	// Float is a shape matching float values.
	Float = &Simple{Name: NameFloat}
	// Number is a shape matching either numeric kind.
	Number = &Union{Defn: []Definition{Int, Float}}
	// String is a shape matching string values.
	String = &Simple{Name: NameString}
	// AnyArray is a shape matching any array regardless of element kinds.
	AnyArray = &ArrayOf{Elem: Any}
	// AnyObject is the most flexible object shape.
	AnyObject = &Object{Open: true}
	// DefaultDefns is a collection of shapes that exist by default, keyed by
	// the name they are referred to in shapefiles and the REPL.
	DefaultDefns = map[string]Definition{
		NameAny:    Any,
		NameNull:   Null,
		NameBool:   Bool,
		NameInt:    Int,
		NameFloat:  Float,
		NameNumber: Number,
		NameString: String,
		NameArray:  AnyArray,
		NameObject: AnyObject,
	}
)

// Check will check if the value matches this shape.
func (t *anyType) Check(_ value.Value) bool { return true }
func (t *anyType) String() string           { return NameAny }

// Check will check if the value matches this shape.
func (t *Simple) Check(val value.Value) bool {
	switch t.Name {
	case NameNull:
		return value.IsNull(val)
	case NameBool:
		_, ok := value.AsBool(val)
		return ok
	case NameInt:
		return val != nil && val.Kind() == value.KindInt
	case NameFloat:
		return val != nil && val.Kind() == value.KindFloat
	case NameString:
		return value.IsString(val)
	default:
		return false
	}
}

func (t *Simple) String() string { return t.Name }

// Check will check if the value matches any arm of the union.
func (t *Union) Check(val value.Value) bool {
	for _, defn := range t.Defn {
		if defn.Check(val) {
			return true
		}
	}
	return false
}

func (t *Union) String() string { return fmt.Sprintf("{%s}", fmtDefns(t.Defn, " | ")) }

// Check will check that the value is an array and every element matches the
// element shape. An empty array matches any element shape.
func (t *ArrayOf) Check(val value.Value) bool {
	arr, ok := value.AsArray(val)
	if !ok {
		return false
	}
	for _, item := range arr.Values() {
		if !t.Elem.Check(item) {
			return false
		}
	}
	return true
}

func (t *ArrayOf) String() string { return fmt.Sprintf("{[%s]}", t.Elem.String()) }

func fmtDefns(defn []Definition, sep string) string {
	parts := make([]string, len(defn))
	for i, d := range defn {
		parts[i] = d.String()
	}
	return strings.Join(parts, sep)
}
