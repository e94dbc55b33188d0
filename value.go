package scheme

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindInteger Kind = iota
	KindBoolean
	KindSymbol
	KindPair
	KindProcedure
	KindSpecialForm
	KindEnvironment
)

// KindAny is only meaningful as Procedure.Accepts; no Value carries it.
const KindAny Kind = -1

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindSymbol:
		return "symbol"
	case KindPair:
		return "pair"
	case KindProcedure:
		return "procedure"
	case KindSpecialForm:
		return "special form"
	case KindEnvironment:
		return "environment"
	case KindAny:
		return "any"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is both the AST produced by the reader and the runtime data the
// evaluator works on. The empty list is the nil *Value.
type Value struct {
	Kind
	Integer     int64
	Boolean     bool
	Name        string
	Car         *Value
	Cdr         *Value
	Procedure   *Procedure
	SpecialForm *SpecialForm
	Environment *Environment
}

// Procedure receives its arguments already evaluated, each of kind Accepts.
type Procedure struct {
	Name    string
	Accepts Kind
	Apply   func(args []*Value) (*Value, error)
}

// SpecialForm receives the unevaluated argument chain.
type SpecialForm struct {
	Name  string
	Apply func(args *Value, env *Environment) (*Value, error)
}

func (v *Value) IsNil() bool {
	return v == nil
}

func (v *Value) Is(k Kind) bool {
	return v != nil && v.Kind == k
}

func (v *Value) String() string {
	var sb strings.Builder
	v.appendToBuilder(&sb)
	return sb.String()
}

func (v *Value) appendToBuilder(sb *strings.Builder) {
	if v == nil {
		sb.WriteString("()")
		return
	}

	switch v.Kind {
	case KindInteger:
		sb.WriteString(strconv.FormatInt(v.Integer, 10))
	case KindBoolean:
		if v.Boolean {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case KindSymbol:
		sb.WriteString(v.Name)
	case KindPair:
		sb.WriteRune('(')
		cur := v
		for {
			cur.Car.appendToBuilder(sb)
			if cur.Cdr == nil {
				break
			}
			if !cur.Cdr.Is(KindPair) {
				sb.WriteString(" . ")
				cur.Cdr.appendToBuilder(sb)
				break
			}
			sb.WriteRune(' ')
			cur = cur.Cdr
		}
		sb.WriteRune(')')
	case KindProcedure:
		sb.WriteString("#<procedure>")
	case KindSpecialForm:
		sb.WriteString("#<special-form>")
	case KindEnvironment:
		v.Environment.appendToBuilder(sb)
	}
}

// Elements flattens a pair chain the way argument lists are collected: a
// non-pair tail of an improper list becomes the last element.
func (v *Value) Elements() []*Value {
	var elems []*Value
	for cur := v; cur != nil; {
		if !cur.Is(KindPair) {
			elems = append(elems, cur)
			break
		}
		elems = append(elems, cur.Car)
		cur = cur.Cdr
	}
	return elems
}

// IsList reports whether v is a proper list (Nil included).
func (v *Value) IsList() bool {
	cur := v
	for cur.Is(KindPair) {
		cur = cur.Cdr
	}
	return cur == nil
}
