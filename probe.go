package probe

import (
	"probe/src/path"
	"probe/src/shape"
	"probe/src/value"
)

// Decode will simply decode a JSON document into the value model.
func Decode(data []byte) (value.Value, error) {
	return value.DecodeJSON(data)
}

// Get compiles src as a path expression and evaluates it against doc. The
// boolean reports absence; the error only compilation failure.
func Get(doc value.Value, src string) (value.Value, bool, error) {
	p, err := path.Compile(src)
	if err != nil {
		return nil, false, err
	}
	val, found := p.Eval(doc)
	return val, found, nil
}

// GetDefault is Get with a fallback value for the absent case.
func GetDefault(doc value.Value, src string, fallback value.Value) (value.Value, error) {
	p, err := path.Compile(src)
	if err != nil {
		return nil, err
	}
	return p.EvalDefault(doc, fallback), nil
}

// Check validates doc against a shape definition.
func Check(def shape.Definition, doc value.Value) bool {
	return def.Check(doc)
}
