package shape

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// shapefile is the YAML layout a shape is described with:
//
//	name: Dog
//	open: true
//	fields:
//	  breed: string
//	  toys: "[]string"
//	optional:
//	  nickname: "string|null"
//
// Field values are either a shape name or a nested shapefile map.
type shapefile struct {
	Name     string         `yaml:"name"`
	Open     bool           `yaml:"open"`
	Fields   map[string]any `yaml:"fields"`
	Optional map[string]any `yaml:"optional"`
}

// ParseYAML parses a shapefile document into an object shape definition.
func ParseYAML(data []byte) (Definition, error) {
	var file shapefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse shapefile: %w", err)
	}
	return file.toDefn()
}

// ParseName resolves a shape name such as "string", "string|null" or
// "[]number" into a definition. Unions bind looser than array prefixes.
func ParseName(name string) (Definition, error) {
	name = strings.TrimSpace(name)
	if parts := strings.Split(name, "|"); len(parts) > 1 {
		arms := make([]Definition, len(parts))
		for i, part := range parts {
			arm, err := ParseName(part)
			if err != nil {
				return nil, err
			}
			arms[i] = arm
		}
		return &Union{Defn: arms}, nil
	}
	if elem, isArr := strings.CutPrefix(name, "[]"); isArr {
		elemDefn, err := ParseName(elem)
		if err != nil {
			return nil, err
		}
		return &ArrayOf{Elem: elemDefn}, nil
	}
	defn, known := DefaultDefns[name]
	if !known {
		return nil, fmt.Errorf("unknown shape name %q", name)
	}
	return defn, nil
}

func (file *shapefile) toDefn() (Definition, error) {
	obj := NewObject()
	obj.Name = file.Name
	obj.Open = file.Open
	for key, raw := range file.Fields {
		defn, err := fieldDefn(key, raw)
		if err != nil {
			return nil, err
		}
		obj.Fields[key] = defn
	}
	for key, raw := range file.Optional {
		defn, err := fieldDefn(key, raw)
		if err != nil {
			return nil, err
		}
		obj.Optional[key] = defn
	}
	return obj, nil
}

func fieldDefn(key string, raw any) (Definition, error) {
	switch field := raw.(type) {
	case string:
		defn, err := ParseName(field)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		return defn, nil
	case map[string]any:
		data, err := yaml.Marshal(field)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		defn, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		return defn, nil
	default:
		return nil, fmt.Errorf("field %q: unsupported shape description of type %T", key, raw)
	}
}
