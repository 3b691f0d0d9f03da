package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"probe/src/conf"
	"probe/src/perrors"
)

// DecodeJSON decodes a single JSON document into the value model. Numbers
// without a fractional part decode as Int, the rest as Float. Trailing
// content after the document is an error.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, decodeErr(err)
	}
	if dec.More() {
		return nil, decodeErr(errors.New("unexpected content after document"))
	}
	return fromDecoded(raw, 0)
}

// DecodeYAML decodes a single YAML document into the value model.
func DecodeYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, decodeErr(err)
	}
	return fromDecoded(raw, 0)
}

// Decode decodes from a reader, trying JSON first and falling back to YAML.
// Used by the CLI when the input source has no telling file extension.
func Decode(src io.Reader) (Value, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, decodeErr(err)
	}
	if val, jsonErr := DecodeJSON(data); jsonErr == nil {
		return val, nil
	}
	return DecodeYAML(data)
}

func fromDecoded(in any, depth int) (Value, error) {
	if depth > conf.MAXDOCDEPTH {
		return nil, decodeErr(errors.New("document nesting too deep"))
	}
	switch val := in.(type) {
	case json.Number:
		if ival, err := val.Int64(); err == nil {
			return NewInt(ival), nil
		}
		fval, err := val.Float64()
		if err != nil {
			return nil, decodeErr(err)
		}
		return NewFloat(fval), nil
	case []any:
		vals := make([]Value, len(val))
		for i, item := range val {
			conv, err := fromDecoded(item, depth+1)
			if err != nil {
				return nil, err
			}
			vals[i] = conv
		}
		return &Array{vals: vals}, nil
	case map[string]any:
		fields := make(map[string]Value, len(val))
		for key, item := range val {
			conv, err := fromDecoded(item, depth+1)
			if err != nil {
				return nil, err
			}
			fields[key] = conv
		}
		return NewObject(fields), nil
	case map[any]any:
		// yaml produces this form for non-scalar keys.
		fields := make(map[string]Value, len(val))
		for key, item := range val {
			name, isStr := key.(string)
			if !isStr {
				return nil, decodeErr(fmt.Errorf("unsupported object key of type %T", key))
			}
			conv, err := fromDecoded(item, depth+1)
			if err != nil {
				return nil, err
			}
			fields[name] = conv
		}
		return NewObject(fields), nil
	case nil, bool, int, int64, float64, string:
		return FromGo(val)
	default:
		return nil, decodeErr(fmt.Errorf("unsupported value of type %T", in))
	}
}

func decodeErr(err error) error {
	return &perrors.Error{Kind: perrors.DecodeErr, Err: err}
}
