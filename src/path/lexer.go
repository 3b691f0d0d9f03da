package path

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"probe/src/perrors"
)

type lexer struct {
	src    string
	rdr    *bufio.Reader
	column int64
	peeked *token
}

func newLexer(src string) *lexer {
	return &lexer{
		src: src,
		rdr: bufio.NewReaderSize(strings.NewReader(src), 256),
	}
}

func (lex *lexer) errf(msg string, data ...any) error {
	return lex.err(fmt.Errorf(msg, data...))
}

func (lex *lexer) err(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return &perrors.Error{
		Kind:   perrors.LexErr,
		Column: lex.column,
		Src:    lex.src,
		Err:    err,
	}
}

func (lex *lexer) peekRune() rune {
	chs, _ := lex.rdr.Peek(1)
	if len(chs) == 0 {
		return 0
	}
	return rune(chs[0])
}

func (lex *lexer) nextRune() (rune, error) {
	ch, _, err := lex.rdr.ReadRune()
	if err != nil {
		return ch, lex.err(err)
	}
	lex.column++
	return ch, nil
}

// Peek returns the next token without consuming it. EOF surfaces as the EOS
// token rather than an error.
func (lex *lexer) Peek() (*token, error) {
	if lex.peeked == nil {
		tk, err := lex.Next()
		if err != nil && !errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS}, err
		} else if errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS, Column: lex.column}, nil
		}
		lex.peeked = tk
	}
	return lex.peeked, nil
}

func (lex *lexer) Next() (*token, error) {
	if lex.peeked != nil {
		top := lex.peeked
		lex.peeked = nil
		return top, nil
	}
	ch, err := lex.nextRune()
	if err != nil {
		return nil, err
	}
	switch {
	case ch == '.':
		return &token{Kind: tokenPeriod, Column: lex.column}, nil
	case ch == '[':
		return &token{Kind: tokenOpenBracket, Column: lex.column}, nil
	case ch == ']':
		return &token{Kind: tokenCloseBracket, Column: lex.column}, nil
	case ch == '"' || ch == '\'':
		return lex.parseString(ch)
	case ch == '-' || unicode.IsDigit(ch):
		return lex.parseInteger(ch)
	case isIdentRune(ch, true):
		return lex.parseIdentifier(ch)
	default:
		return nil, lex.errf("unexpected character %q", string(ch))
	}
}

func (lex *lexer) parseIdentifier(first rune) (*token, error) {
	var ident strings.Builder
	ident.WriteRune(first)
	start := lex.column
	for isIdentRune(lex.peekRune(), false) {
		ch, err := lex.nextRune()
		if err != nil {
			return nil, err
		}
		ident.WriteRune(ch)
	}
	return &token{Kind: tokenIdentifier, Ident: ident.String(), Column: start}, nil
}

func (lex *lexer) parseString(quote rune) (*token, error) {
	var val strings.Builder
	start := lex.column
	for {
		ch, err := lex.nextRune()
		if errors.Is(err, io.EOF) {
			return nil, lex.errf("unterminated string")
		} else if err != nil {
			return nil, err
		}
		if ch == quote {
			return &token{Kind: tokenString, StringVal: val.String(), Column: start}, nil
		}
		val.WriteRune(ch)
	}
}

func (lex *lexer) parseInteger(first rune) (*token, error) {
	var num strings.Builder
	num.WriteRune(first)
	start := lex.column
	for unicode.IsDigit(lex.peekRune()) {
		ch, err := lex.nextRune()
		if err != nil {
			return nil, err
		}
		num.WriteRune(ch)
	}
	ival, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return nil, lex.errf("malformed index %q", num.String())
	}
	return &token{Kind: tokenInteger, IntVal: ival, Column: start}, nil
}

func isIdentRune(ch rune, first bool) bool {
	if unicode.IsLetter(ch) || ch == '_' || ch == '-' || ch == '$' {
		return true
	}
	return !first && unicode.IsDigit(ch)
}
