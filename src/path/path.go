// Package path compiles and evaluates safe-navigation path expressions such
// as `user.address.city` or `items[0].name`. Evaluation short-circuits to an
// absent result the first time a link in the chain is missing instead of
// failing, so a path can be applied to documents of unknown shape without any
// prior validation.
package path

import (
	"errors"
	"fmt"
	"io"

	"probe/src/conf"
	"probe/src/perrors"
	"probe/src/value"
)

type (
	// Path is a compiled path expression, immutable and safe for concurrent
	// use once compiled.
	Path struct {
		src  string
		segs []segment
	}
	segment struct {
		key   string
		index int64
		isKey bool
	}
)

// Compile parses a path expression. The grammar is a leading field name,
// quoted or bare, followed by any run of `.name` and `[index]` or `["name"]`
// accesses.
func Compile(src string) (*Path, error) {
	lex := newLexer(src)
	segs, err := parseSegments(lex, src)
	if err != nil {
		return nil, err
	}
	return &Path{src: src, segs: segs}, nil
}

// MustCompile is Compile for statically known expressions, panicking on
// malformed input.
func MustCompile(src string) *Path {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Path) String() string { return p.src }

// Eval walks the document along the path. The boolean result reports whether
// every link existed; a missing field, a missing index, or a link through a
// value of the wrong kind all yield absence, never an error.
func (p *Path) Eval(doc value.Value) (value.Value, bool) {
	val := doc
	for _, seg := range p.segs {
		if seg.isKey {
			obj, isObj := value.AsObject(val)
			if !isObj {
				return nil, false
			}
			field, hasKey := obj.Get(seg.key)
			if !hasKey {
				return nil, false
			}
			val = field
		} else {
			arr, isArr := value.AsArray(val)
			if !isArr {
				return nil, false
			}
			item, inRange := arr.Index(int(seg.index))
			if !inRange {
				return nil, false
			}
			val = item
		}
	}
	if val == nil {
		return nil, false
	}
	return val, true
}

// EvalDefault is Eval with a fallback for the absent case.
func (p *Path) EvalDefault(doc value.Value, fallback value.Value) value.Value {
	if val, ok := p.Eval(doc); ok {
		return val
	}
	return fallback
}

func parseSegments(lex *lexer, src string) ([]segment, error) {
	parseErr := func(column int64, msg string, data ...any) error {
		return &perrors.Error{
			Kind:   perrors.ParseErr,
			Column: column,
			Src:    src,
			Err:    fmt.Errorf(msg, data...),
		}
	}

	first, err := lex.Next()
	if errors.Is(err, io.EOF) {
		return nil, parseErr(0, "empty path")
	} else if err != nil {
		return nil, err
	}

	segs := []segment{}
	switch first.Kind {
	case tokenIdentifier:
		segs = append(segs, segment{key: first.Ident, isKey: true})
	case tokenString:
		segs = append(segs, segment{key: first.StringVal, isKey: true})
	default:
		return nil, parseErr(first.Column, "expected field name but found %q", first.Kind)
	}

	for {
		if len(segs) > conf.MAXPATHDEPTH {
			return nil, parseErr(lex.column, "path exceeds %v segments", conf.MAXPATHDEPTH)
		}
		tk, err := lex.Peek()
		if err != nil {
			return nil, err
		}
		switch tk.Kind {
		case tokenEOS:
			return segs, nil
		case tokenPeriod:
			if _, err := lex.Next(); err != nil {
				return nil, err
			}
			name, err := lex.Next()
			if errors.Is(err, io.EOF) {
				return nil, parseErr(lex.column, "path ends with a dangling %q", tokenPeriod)
			} else if err != nil {
				return nil, err
			}
			switch name.Kind {
			case tokenIdentifier:
				segs = append(segs, segment{key: name.Ident, isKey: true})
			case tokenString:
				segs = append(segs, segment{key: name.StringVal, isKey: true})
			default:
				return nil, parseErr(name.Column, "expected field name but found %q", name.Kind)
			}
		case tokenOpenBracket:
			if _, err := lex.Next(); err != nil {
				return nil, err
			}
			sub, err := lex.Next()
			if errors.Is(err, io.EOF) {
				return nil, parseErr(lex.column, "unclosed index")
			} else if err != nil {
				return nil, err
			}
			switch sub.Kind {
			case tokenInteger:
				segs = append(segs, segment{index: sub.IntVal})
			case tokenString:
				segs = append(segs, segment{key: sub.StringVal, isKey: true})
			default:
				return nil, parseErr(sub.Column, "expected index or quoted field but found %q", sub.Kind)
			}
			closing, err := lex.Next()
			if errors.Is(err, io.EOF) || (err == nil && closing.Kind != tokenCloseBracket) {
				return nil, parseErr(lex.column, "unclosed index")
			} else if err != nil {
				return nil, err
			}
		default:
			return nil, parseErr(tk.Column, "unexpected %q in path", tk.Kind)
		}
	}
}
