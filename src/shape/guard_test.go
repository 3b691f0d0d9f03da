package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probe/src/value"
)

func TestHasField(t *testing.T) {
	t.Parallel()
	cases := []struct {
		desc     string
		val      value.Value
		expected bool
	}{
		{"string field", value.NewObject(map[string]value.Value{"breed": value.NewString("Poodle")}), true},
		{"any value kind counts", value.NewObject(map[string]value.Value{"breed": value.NewInt(12)}), true},
		{"null value still counts", value.NewObject(map[string]value.Value{"breed": &value.Null{}}), true},
		{"other fields ignored", value.NewObject(map[string]value.Value{"breed": value.NewString("x"), "name": value.NewString("y")}), true},
		{"missing key", value.NewObject(map[string]value.Value{"make": value.NewString("Toyota")}), false},
		{"empty object", value.NewObject(nil), false},
		{"not an object", value.NewString("breed"), false},
		{"array", value.NewArray(value.NewString("breed")), false},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.expected, HasField(tc.val, "breed"), "[%v] %s", i, tc.desc)
	}
}

func TestNarrow(t *testing.T) {
	t.Parallel()
	val := value.NewString("hello")
	narrowed, ok := Narrow(String, val)
	require.True(t, ok)
	// the value is handed back untouched, never transformed.
	assert.Same(t, val, narrowed)

	narrowed, ok = Narrow(Number, val)
	assert.False(t, ok)
	assert.Nil(t, narrowed)
}
