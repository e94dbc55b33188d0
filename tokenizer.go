package scheme

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type TokenKind int

const (
	TokenInteger TokenKind = iota
	TokenOpenBracket
	TokenCloseBracket
	TokenSymbol
	TokenQuote
	TokenDot
)

type Token struct {
	Kind    TokenKind
	Integer int64
	Name    string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInteger:
		return strconv.FormatInt(t.Integer, 10)
	case TokenOpenBracket:
		return "("
	case TokenCloseBracket:
		return ")"
	case TokenSymbol:
		return t.Name
	case TokenQuote:
		return "'"
	case TokenDot:
		return "."
	}
	return "?"
}

// Tokenizer is a lazy, forward-only token stream. A token is scanned only
// when IsEnd or Token asks for it, and Next only drops the current one, so
// nothing past the last token a caller looks at is read from the scanner.
//
// A lexical error is held and returned by Token, so a bad character after
// the last token a caller asks for is never seen.
type Tokenizer struct {
	s   io.RuneScanner
	tok Token
	has bool
	end bool
	err error
}

func NewTokenizer(s io.RuneScanner) *Tokenizer {
	return &Tokenizer{s: s}
}

// IsEnd reports whether the input is exhausted. A pending lexical error is
// not the end: Token still has to report it.
func (t *Tokenizer) IsEnd() bool {
	t.fill()
	return t.end
}

func (t *Tokenizer) Token() (Token, error) {
	t.fill()
	if t.err != nil {
		return Token{}, t.err
	}
	if t.end {
		return Token{}, &SyntaxError{Err: io.ErrUnexpectedEOF}
	}
	return t.tok, nil
}

// Next consumes the current token.
func (t *Tokenizer) Next() {
	t.fill()
	t.has = false
}

func (t *Tokenizer) fill() {
	if t.has || t.end || t.err != nil {
		return
	}

	tok, err := t.scan()
	if err == io.EOF {
		t.tok, t.end = Token{}, true
		return
	}
	if err != nil {
		t.err = syntaxError(err)
		return
	}
	t.tok, t.has = tok, true
}

func (t *Tokenizer) scan() (tok Token, err error) {
	var r rune
	for {
		r, _, err = t.s.ReadRune()
		if err != nil {
			return
		}
		if !isWhitespace(r) {
			break
		}
	}

	switch {
	case r == '(':
		tok.Kind = TokenOpenBracket
	case r == ')':
		tok.Kind = TokenCloseBracket
	case r == '\'':
		tok.Kind = TokenQuote
	case r == '.':
		tok.Kind = TokenDot
	case isSymbolStart(r):
		err = t.s.UnreadRune()
		if err != nil {
			return
		}
		tok.Kind = TokenSymbol
		tok.Name, err = t.scanWhile(isSymbolRemainder)
	case r == '+' || r == '-':
		var next rune
		next, _, err = t.s.ReadRune()
		if err == io.EOF {
			return Token{Kind: TokenSymbol, Name: string(r)}, nil
		}
		if err != nil {
			return
		}
		err = t.s.UnreadRune()
		if err != nil {
			return
		}
		if !isDigit(next) {
			return Token{Kind: TokenSymbol, Name: string(r)}, nil
		}

		var digits string
		digits, err = t.scanWhile(isDigit)
		if err != nil {
			return
		}
		tok.Kind = TokenInteger
		tok.Integer, err = parseInteger(string(r) + digits)
	case isDigit(r):
		err = t.s.UnreadRune()
		if err != nil {
			return
		}

		var digits string
		digits, err = t.scanWhile(isDigit)
		if err != nil {
			return
		}
		tok.Kind = TokenInteger
		tok.Integer, err = parseInteger(digits)
	default:
		err = fmt.Errorf("%w %q", ErrUnexpectedChar, r)
	}
	return
}

// scanWhile consumes the longest run of runes accepted by ok. End of input
// terminates the run without error.
func (t *Tokenizer) scanWhile(ok func(rune) bool) (s string, err error) {
	var sb strings.Builder

	var r rune
	for {
		r, _, err = t.s.ReadRune()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return
		}

		if !ok(r) {
			err = t.s.UnreadRune()
			return sb.String(), err
		}

		sb.WriteRune(r)
	}
}

func parseInteger(s string) (int64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrIntegerRange, s)
	}
	return i, nil
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isAlpha(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= 'a' && r <= 'z' {
		return true
	}
	return false
}

func isDigit(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return false
}

func isSymbolStart(r rune) bool {
	return isAlpha(r) ||
		r == '<' ||
		r == '=' ||
		r == '>' ||
		r == '*' ||
		r == '/' ||
		r == '#'
}

func isSymbolRemainder(r rune) bool {
	return isSymbolStart(r) ||
		isDigit(r) ||
		r == '?' ||
		r == '!' ||
		r == '-'
}
