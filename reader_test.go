package scheme

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func sym(name string) *Value {
	return &Value{Kind: KindSymbol, Name: name}
}

func TestParse(t *testing.T) {
	type args struct {
		s io.RuneScanner
	}
	tests := []struct {
		name    string
		args    args
		wantN   *Value
		wantErr error
	}{
		{
			name: "xpass: empty list",
			args: args{
				s: strings.NewReader("()"),
			},
			wantN: nil,
		},
		{
			name: "xpass: integer",
			args: args{
				s: strings.NewReader("1023"),
			},
			wantN: Integer(1023),
		},
		{
			name: "xpass: symbol",
			args: args{
				s: strings.NewReader("list-tail"),
			},
			wantN: sym("list-tail"),
		},
		{
			name: "xpass: list of one symbol",
			args: args{
				s: strings.NewReader("(abcdef)"),
			},
			wantN: Cons(sym("abcdef"), nil),
		},
		{
			name: "xpass: list with whitespace",
			args: args{
				s: strings.NewReader("( +\t1\r\n-2 )"),
			},
			wantN: Cons(sym("+"), Cons(Integer(1), Cons(Integer(-2), nil))),
		},
		{
			name: "xpass: nested list",
			args: args{
				s: strings.NewReader("(a (b c) ())"),
			},
			wantN: Cons(sym("a"), Cons(Cons(sym("b"), Cons(sym("c"), nil)), Cons(nil, nil))),
		},
		{
			name: "xpass: dotted pair",
			args: args{
				s: strings.NewReader("(1 . 2)"),
			},
			wantN: Cons(Integer(1), Integer(2)),
		},
		{
			name: "xpass: dotted list",
			args: args{
				s: strings.NewReader("(1 2 . 3)"),
			},
			wantN: Cons(Integer(1), Cons(Integer(2), Integer(3))),
		},
		{
			name: "xpass: dotted tail is a list",
			args: args{
				s: strings.NewReader("(1 . (2 3))"),
			},
			wantN: Cons(Integer(1), Cons(Integer(2), Cons(Integer(3), nil))),
		},
		{
			name: "xpass: quote",
			args: args{
				s: strings.NewReader("'x"),
			},
			wantN: Cons(sym("quote"), Cons(sym("x"), nil)),
		},
		{
			name: "xpass: quoted list",
			args: args{
				s: strings.NewReader("'(1 2)"),
			},
			wantN: Cons(sym("quote"), Cons(Cons(Integer(1), Cons(Integer(2), nil)), nil)),
		},
		{
			name: "xpass: nested quote",
			args: args{
				s: strings.NewReader("''a"),
			},
			wantN: Cons(sym("quote"), Cons(Cons(sym("quote"), Cons(sym("a"), nil)), nil)),
		},
		{
			name: "xpass: trailing input ignored",
			args: args{
				s: strings.NewReader("(a) b )"),
			},
			wantN: Cons(sym("a"), nil),
		},
		{
			name: "xpass: trailing bad character ignored",
			args: args{
				s: strings.NewReader("5 @"),
			},
			wantN: Integer(5),
		},
		{
			name: "xfail: mismatched end of list",
			args: args{
				s: strings.NewReader(")"),
			},
			wantErr: ErrUnmatchedBracket,
		},
		{
			name: "xfail: mismatched start of list",
			args: args{
				s: strings.NewReader("("),
			},
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name: "xfail: unterminated list",
			args: args{
				s: strings.NewReader("(+ 1"),
			},
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name: "xfail: empty input",
			args: args{
				s: strings.NewReader(" \n"),
			},
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name: "xfail: dot at start",
			args: args{
				s: strings.NewReader("."),
			},
			wantErr: ErrMisplacedDot,
		},
		{
			name: "xfail: dot first in list",
			args: args{
				s: strings.NewReader("(. 1)"),
			},
			wantErr: ErrMisplacedDot,
		},
		{
			name: "xfail: two values after dot",
			args: args{
				s: strings.NewReader("(1 . 2 3)"),
			},
			wantErr: ErrMissingCloseBracket,
		},
		{
			name: "xfail: nothing after dot",
			args: args{
				s: strings.NewReader("(1 .)"),
			},
			wantErr: ErrUnmatchedBracket,
		},
		{
			name: "xfail: eof after dotted tail",
			args: args{
				s: strings.NewReader("(1 . 2"),
			},
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name: "xfail: quote at eof",
			args: args{
				s: strings.NewReader("'"),
			},
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name: "xfail: bad character in list",
			args: args{
				s: strings.NewReader("(1 @)"),
			},
			wantErr: ErrUnexpectedChar,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotN, err := Parse(tt.args.s)
			if (err != nil) != (tt.wantErr != nil) {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				var se *SyntaxError
				if !errors.As(err, &se) {
					t.Errorf("Parse() error = %T, want *SyntaxError", err)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if !reflect.DeepEqual(gotN, tt.wantN) {
				t.Errorf("Parse() gotN = %s, want %s", spew.Sdump(gotN), spew.Sdump(tt.wantN))
			}
		})
	}
}

func TestReadList(t *testing.T) {
	tz := NewTokenizer(strings.NewReader("1 2) 3"))

	got, err := ReadList(tz)
	if err != nil {
		t.Fatal(err)
	}
	if want := List(Integer(1), Integer(2)); !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadList() = %v, want %v", got, want)
	}

	tok, err := tz.Token()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenInteger || tok.Integer != 3 {
		t.Fatalf("token after list = %v, want 3", tok)
	}
}

func TestParse_LeavesRestUnread(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantN    string
		wantRest string
	}{
		{"xpass: integer", "5 abc", "5", " abc"},
		{"xpass: symbol", "abc)", "abc", ")"},
		{"xpass: list", "(1 2) (3)", "(1 2)", " (3)"},
		{"xpass: quote", "'x y", "(quote x)", " y"},
		{"xpass: dotted", "(1 . 2)3", "(1 . 2)", "3"},
		{"xpass: bad character after", "7 @", "7", " @"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := strings.NewReader(tt.src)
			gotN, err := Parse(s)
			if err != nil {
				t.Fatal(err)
			}
			if gotN.String() != tt.wantN {
				t.Errorf("Parse() = %v, want %v", gotN, tt.wantN)
			}
			rest, err := io.ReadAll(s)
			if err != nil {
				t.Fatal(err)
			}
			if string(rest) != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestParse_SharedStream(t *testing.T) {
	s := strings.NewReader("1 (2 3) four")

	var got []string
	for i := 0; i < 3; i++ {
		v, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v.String())
	}
	if want := []string{"1", "(2 3)", "four"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse() sequence = %v, want %v", got, want)
	}
}
