// Package perrors is a unified errors package for path compilation and
// document decoding so that they can be formatted in a unified way and
// handled in a unified way. Absence of a value is never modeled as an error;
// only malformed input is.
package perrors

import "fmt"

type (
	// ErrorKind is an enum to describe where the error originates from.
	ErrorKind int
	// Error captures all errors raised while compiling path expressions or
	// decoding documents. It distinguishes between lexer, parser, and decode
	// errors and will format them accordingly.
	Error struct {
		Column int64
		Kind   ErrorKind
		Err    error
		Src    string
	}
)

const (
	// LexErr is an error that originates from the path lexer.
	LexErr ErrorKind = iota
	// ParseErr is an error that originates from the path parser.
	ParseErr
	// DecodeErr is an error that originates from document decoding.
	DecodeErr
)

func (err *Error) Error() string {
	switch err.Kind {
	case LexErr:
		return fmt.Sprintf("lex error: %q:%v %v", err.Src, err.Column, err.Err)
	case ParseErr:
		return fmt.Sprintf("parse error: %q:%v %v", err.Src, err.Column, err.Err)
	case DecodeErr:
		return fmt.Sprintf("decode error: %v", err.Err)
	default:
		return err.Err.Error()
	}
}
