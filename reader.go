package scheme

import (
	"fmt"
	"io"
)

// Parse reads exactly one expression from s. Input after that expression is
// left unread.
func Parse(s io.RuneScanner) (v *Value, err error) {
	return Read(NewTokenizer(s))
}

// Read consumes the tokens of one complete expression.
func Read(t *Tokenizer) (v *Value, err error) {
	if t.IsEnd() {
		return nil, &SyntaxError{Err: io.ErrUnexpectedEOF}
	}

	var tok Token
	tok, err = t.Token()
	if err != nil {
		return nil, err
	}
	t.Next()

	switch tok.Kind {
	case TokenOpenBracket:
		return ReadList(t)
	case TokenCloseBracket:
		return nil, &SyntaxError{Err: ErrUnmatchedBracket}
	case TokenInteger:
		return Integer(tok.Integer), nil
	case TokenSymbol:
		return &Value{Kind: KindSymbol, Name: tok.Name}, nil
	case TokenDot:
		return nil, &SyntaxError{Err: ErrMisplacedDot}
	case TokenQuote:
		var quoted *Value
		quoted, err = Read(t)
		if err != nil {
			return nil, err
		}
		return List(MustSymbol("quote"), quoted), nil
	}

	return nil, &SyntaxError{Err: fmt.Errorf("%w %v", ErrUnexpectedChar, tok)}
}

// ReadList consumes the rest of a list whose open bracket the caller has
// already consumed, up to and including the matching close bracket.
func ReadList(t *Tokenizer) (v *Value, err error) {
	var tok Token
	tok, err = peek(t)
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenCloseBracket {
		t.Next()
		return nil, nil
	}

	var first *Value
	first, err = Read(t)
	if err != nil {
		return nil, err
	}

	tok, err = peek(t)
	if err != nil {
		return nil, err
	}

	if tok.Kind == TokenDot {
		t.Next()

		var tail *Value
		tail, err = Read(t)
		if err != nil {
			return nil, err
		}

		tok, err = peek(t)
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenCloseBracket {
			return nil, &SyntaxError{Err: fmt.Errorf("%w, got %v", ErrMissingCloseBracket, tok)}
		}
		t.Next()

		return Cons(first, tail), nil
	}

	var rest *Value
	rest, err = ReadList(t)
	if err != nil {
		return nil, err
	}
	return Cons(first, rest), nil
}

// peek returns the current token without consuming it. Running out of input
// inside a list is a syntax error.
func peek(t *Tokenizer) (Token, error) {
	if t.IsEnd() {
		return Token{}, &SyntaxError{Err: io.ErrUnexpectedEOF}
	}
	return t.Token()
}
