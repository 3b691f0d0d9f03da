package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probe/src/value"
)

func testREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	doc, err := value.DecodeJSON([]byte(`{"object":{"property":"value"},"dogs":[{"breed":"Dalmation"},{"breed":"Poodle"}]}`))
	require.NoError(t, err)
	out := bytes.NewBuffer(nil)
	return New(doc, out), out
}

func TestExecCommands(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line     string
		expected string
	}{
		{"get object.property", "value\n"},
		{"get dogs[1].breed", "Poodle\n"},
		{"get other.property", "other.property: not found\n"},
		{"has object.property", "true\n"},
		{"has other.property", "false\n"},
		{"has object..property", "parse error: \"object..property\":8 expected field name but found \".\"\n"},
		{"kind object", "object\n"},
		{"kind object.property", "string\n"},
		{"kind dogs", "array\n"},
		{"keys object", "property\n"},
		{"keys object.property", "object.property is not an object\n"},
		{"check string object.property", "true\n"},
		{"check number object.property", "false\n"},
		{"check []object dogs", "true\n"},
		{"", ""},
		{"   ", ""},
		{"has", "usage: has <path>\n"},
		{"check string", "usage: check <shape> <path>\n"},
		{"check dog object", "unknown shape name \"dog\"\n"},
		{"get", "missing path argument\n"},
	}
	for i, tc := range cases {
		r, out := testREPL(t)
		quit := r.exec(tc.line)
		assert.False(t, quit, "[%v] %q", i, tc.line)
		assert.Equal(t, tc.expected, out.String(), "[%v] %q", i, tc.line)
	}
}

func TestInterruptTwiceToQuit(t *testing.T) {
	t.Parallel()
	r, out := testREPL(t)

	// the first ctrl-c only warns, the second consecutive one quits.
	assert.False(t, r.onInterrupt())
	assert.Equal(t, "Press ctrl-c again to quit.\n", out.String())
	assert.True(t, r.onInterrupt())
}

func TestInterruptResetByExec(t *testing.T) {
	t.Parallel()
	r, _ := testREPL(t)

	require.False(t, r.onInterrupt())
	r.exec("has object")
	assert.False(t, r.onInterrupt())
	assert.True(t, r.onInterrupt())
}

func TestExecQuit(t *testing.T) {
	t.Parallel()
	r, _ := testREPL(t)
	assert.True(t, r.exec("exit"))
	assert.True(t, r.exec("quit"))
	assert.False(t, r.exec("help"))
}

func TestExecUnknownCommand(t *testing.T) {
	t.Parallel()
	r, out := testREPL(t)
	assert.False(t, r.exec("frobnicate x"))
	assert.Contains(t, out.String(), `unknown command "frobnicate"`)
}

func TestExecBadPath(t *testing.T) {
	t.Parallel()
	r, out := testREPL(t)
	assert.False(t, r.exec("get object..property"))
	assert.Contains(t, out.String(), "parse error")
}

func TestExecHelp(t *testing.T) {
	t.Parallel()
	r, out := testREPL(t)
	assert.False(t, r.exec("help"))
	assert.Contains(t, out.String(), "get <path>")
	assert.Contains(t, out.String(), "check <shape> <path>")
}
