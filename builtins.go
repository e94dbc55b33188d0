package scheme

import (
	"fmt"
)

// BaseEnvironment builds the global environment with every built-in bound.
// The returned table is never modified afterwards.
func BaseEnvironment() *Environment {
	b := map[string]*Value{
		"#t": Boolean(true),
		"#f": Boolean(false),

		"quote": specialForm("quote", quote),
		"and":   specialForm("and", and),
		"or":    specialForm("or", or),

		"+": procedure("+", KindInteger, fold(0, func(a, b int64) (int64, error) { return a + b, nil })),
		"*": procedure("*", KindInteger, fold(1, func(a, b int64) (int64, error) { return a * b, nil })),
		"-": procedure("-", KindInteger, foldFirst("-", func(a, b int64) (int64, error) { return a - b, nil })),
		"/": procedure("/", KindInteger, foldFirst("/", divide)),

		"max": procedure("max", KindInteger, foldFirst("max", func(a, b int64) (int64, error) {
			if b > a {
				return b, nil
			}
			return a, nil
		})),
		"min": procedure("min", KindInteger, foldFirst("min", func(a, b int64) (int64, error) {
			if b < a {
				return b, nil
			}
			return a, nil
		})),
		"abs": procedure("abs", KindInteger, abs),

		"=":  procedure("=", KindInteger, compare(func(a, b int64) bool { return a == b })),
		"<":  procedure("<", KindInteger, compare(func(a, b int64) bool { return a < b })),
		">":  procedure(">", KindInteger, compare(func(a, b int64) bool { return a > b })),
		"<=": procedure("<=", KindInteger, compare(func(a, b int64) bool { return a <= b })),
		">=": procedure(">=", KindInteger, compare(func(a, b int64) bool { return a >= b })),

		"number?":  procedure("number?", KindAny, predicate("number?", func(v *Value) bool { return v.Is(KindInteger) })),
		"boolean?": procedure("boolean?", KindAny, predicate("boolean?", func(v *Value) bool { return v.Is(KindBoolean) })),
		"pair?":    procedure("pair?", KindAny, predicate("pair?", func(v *Value) bool { return v.Is(KindPair) })),
		"null?":    procedure("null?", KindAny, predicate("null?", (*Value).IsNil)),
		"list?":    procedure("list?", KindAny, predicate("list?", (*Value).IsList)),
		"not": procedure("not", KindAny, predicate("not", func(v *Value) bool {
			return v.Is(KindBoolean) && !v.Boolean
		})),

		"cons":      procedure("cons", KindAny, cons),
		"car":       procedure("car", KindPair, car),
		"cdr":       procedure("cdr", KindPair, cdr),
		"list":      procedure("list", KindAny, func(args []*Value) (*Value, error) { return List(args...), nil }),
		"list-ref":  procedure("list-ref", KindAny, listRef),
		"list-tail": procedure("list-tail", KindAny, listTail),
	}

	return newEnvironment(b)
}

func arity(name string, args []*Value, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, name, want, len(args))
	}
	return nil
}

func minArity(name string, args []*Value, least int) error {
	if len(args) < least {
		return fmt.Errorf("%w: %s takes at least %d, got %d", ErrArity, name, least, len(args))
	}
	return nil
}

// fold reduces the arguments left to right starting from identity.
func fold(identity int64, op func(a, b int64) (int64, error)) func([]*Value) (*Value, error) {
	return func(args []*Value) (*Value, error) {
		acc := identity
		for _, arg := range args {
			var err error
			acc, err = op(acc, arg.Integer)
			if err != nil {
				return nil, err
			}
		}
		return Integer(acc), nil
	}
}

// foldFirst reduces the arguments left to right starting from the first one.
func foldFirst(name string, op func(a, b int64) (int64, error)) func([]*Value) (*Value, error) {
	return func(args []*Value) (*Value, error) {
		if err := minArity(name, args, 1); err != nil {
			return nil, err
		}
		return fold(args[0].Integer, op)(args[1:])
	}
}

func divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
	}
	return a / b, nil
}

func abs(args []*Value) (*Value, error) {
	if err := arity("abs", args, 1); err != nil {
		return nil, err
	}
	n := args[0].Integer
	if n < 0 {
		n = -n
	}
	return Integer(n), nil
}

// compare holds when every adjacent pair of arguments satisfies rel.
func compare(rel func(a, b int64) bool) func([]*Value) (*Value, error) {
	return func(args []*Value) (*Value, error) {
		for i := 1; i < len(args); i++ {
			if !rel(args[i-1].Integer, args[i].Integer) {
				return Boolean(false), nil
			}
		}
		return Boolean(true), nil
	}
}

func predicate(name string, test func(*Value) bool) func([]*Value) (*Value, error) {
	return func(args []*Value) (*Value, error) {
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		return Boolean(test(args[0])), nil
	}
}

func cons(args []*Value) (*Value, error) {
	if err := arity("cons", args, 2); err != nil {
		return nil, err
	}
	return Cons(args[0], args[1]), nil
}

func car(args []*Value) (*Value, error) {
	if err := arity("car", args, 1); err != nil {
		return nil, err
	}
	return args[0].Car, nil
}

func cdr(args []*Value) (*Value, error) {
	if err := arity("cdr", args, 1); err != nil {
		return nil, err
	}
	return args[0].Cdr, nil
}

// listIndex validates the (list index) arguments shared by list-ref and
// list-tail and returns the flattened list with the index.
func listIndex(name string, args []*Value) (elems []*Value, i int, err error) {
	if err = arity(name, args, 2); err != nil {
		return
	}
	if err = checkKind(name, KindInteger, args[1]); err != nil {
		return
	}

	elems = args[0].Elements()
	n := args[1].Integer
	if n < 0 || n > int64(len(elems)) {
		err = fmt.Errorf("%w: %s index %d, length %d", ErrIndexRange, name, n, len(elems))
		return
	}
	return elems, int(n), nil
}

func listRef(args []*Value) (*Value, error) {
	elems, i, err := listIndex("list-ref", args)
	if err != nil {
		return nil, err
	}
	if i == len(elems) {
		return nil, fmt.Errorf("%w: list-ref index %d, length %d", ErrIndexRange, i, len(elems))
	}
	return elems[i], nil
}

// listTail returns the node at offset i of the original chain, sharing
// structure with its argument. The node must be a pair or Nil.
func listTail(args []*Value) (*Value, error) {
	_, i, err := listIndex("list-tail", args)
	if err != nil {
		return nil, err
	}

	cur := args[0]
	for ; i > 0; i-- {
		if err = checkKind("list-tail", KindPair, cur); err != nil {
			return nil, err
		}
		cur = cur.Cdr
	}
	if cur == nil {
		return nil, nil
	}
	if err = checkKind("list-tail", KindPair, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func quote(args *Value, env *Environment) (*Value, error) {
	if !args.Is(KindPair) || args.Cdr != nil {
		return nil, fmt.Errorf("%w: quote expects a one-element list, got %v", ErrArity, args)
	}
	return args.Car, nil
}

// and stops at the first #f. Otherwise it yields the last value, or #t when
// there are no arguments.
func and(args *Value, env *Environment) (*Value, error) {
	result := Boolean(true)
	for _, expr := range args.Elements() {
		v, err := Evaluate(expr, env)
		if err != nil {
			return nil, err
		}
		if v.Is(KindBoolean) && !v.Boolean {
			return Boolean(false), nil
		}
		result = v
	}
	return result, nil
}

// or yields #t for the first #t, the value itself for the first non-boolean,
// and #f when every argument is #f.
func or(args *Value, env *Environment) (*Value, error) {
	for _, expr := range args.Elements() {
		v, err := Evaluate(expr, env)
		if err != nil {
			return nil, err
		}
		if !v.Is(KindBoolean) {
			return v, nil
		}
		if v.Boolean {
			return Boolean(true), nil
		}
	}
	return Boolean(false), nil
}
