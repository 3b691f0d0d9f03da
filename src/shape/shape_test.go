package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"probe/src/value"
)

func TestShapeCheck(t *testing.T) {
	t.Parallel()
	cases := []struct {
		defn  Definition
		val   value.Value
		match bool
	}{
		{Any, &value.Null{}, true},
		{Any, value.NewInt(1), true},
		{Any, value.NewString("x"), true},
		{Null, &value.Null{}, true},
		{Null, value.NewString(""), false},
		{Bool, value.NewBool(false), true},
		{Bool, value.NewInt(0), false},
		{Int, value.NewInt(1), true},
		{Int, value.NewFloat(1), false},
		{Float, value.NewFloat(1.5), true},
		{Float, value.NewInt(1), false},
		{Number, value.NewInt(1), true},
		{Number, value.NewFloat(1.5), true},
		{Number, value.NewString("1"), false},
		{String, value.NewString("x"), true},
		{String, value.NewInt(1), false},
		{&Union{Defn: []Definition{String, Null}}, value.NewString("x"), true},
		{&Union{Defn: []Definition{String, Null}}, &value.Null{}, true},
		{&Union{Defn: []Definition{String, Null}}, value.NewBool(true), false},
		{AnyArray, value.NewArray(value.NewInt(1), value.NewString("x")), true},
		{AnyArray, value.NewObject(nil), false},
		{&ArrayOf{Elem: String}, value.NewArray(value.NewString("a"), value.NewString("b")), true},
		{&ArrayOf{Elem: String}, value.NewArray(value.NewString("a"), value.NewInt(1)), false},
		{&ArrayOf{Elem: String}, value.NewArray(), true},
		{AnyObject, value.NewObject(nil), true},
		{AnyObject, value.NewArray(), false},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.match, tc.defn.Check(tc.val), "[%v] %s does not match %s", i, tc.defn, tc.val)
	}
}

func TestShapeString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		defn     Definition
		expected string
	}{
		{Any, NameAny},
		{Null, NameNull},
		{Bool, NameBool},
		{Int, NameInt},
		{Float, NameFloat},
		{String, NameString},
		{Number, "{int | float}"},
		{&ArrayOf{Elem: String}, "{[string]}"},
		{&Union{Defn: []Definition{String, Null}}, "{string | null}"},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.expected, tc.defn.String(), "[%v]", i)
	}
}
