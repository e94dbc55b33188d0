package scheme

import (
	"fmt"
)

// Evaluate computes the value of v in env. Every failure is a *RuntimeError.
func Evaluate(v *Value, env *Environment) (*Value, error) {
	if v == nil {
		return nil, &RuntimeError{Err: ErrEmptyList}
	}

	switch v.Kind {
	case KindInteger, KindBoolean, KindProcedure, KindSpecialForm, KindEnvironment:
		return v, nil
	case KindSymbol:
		return env.Lookup(v.Name)
	case KindPair:
		return apply(v.Car, v.Cdr, env)
	}

	return nil, &RuntimeError{Err: fmt.Errorf("%w: unknown kind %v", ErrTypeMismatch, v.Kind)}
}

func apply(head, args *Value, env *Environment) (*Value, error) {
	callee, err := Evaluate(head, env)
	if err != nil {
		return nil, err
	}

	switch {
	case callee.Is(KindProcedure):
		proc := callee.Procedure

		exprs := args.Elements()
		evaluated := make([]*Value, 0, len(exprs))
		for _, expr := range exprs {
			arg, err := Evaluate(expr, env)
			if err != nil {
				return nil, err
			}
			if err = checkKind(proc.Name, proc.Accepts, arg); err != nil {
				return nil, err
			}
			evaluated = append(evaluated, arg)
		}

		result, err := proc.Apply(evaluated)
		return result, runtimeError(err)
	case callee.Is(KindSpecialForm):
		result, err := callee.SpecialForm.Apply(args, env)
		return result, runtimeError(err)
	}

	return nil, &RuntimeError{Err: fmt.Errorf("%w: %v", ErrNotCallable, callee)}
}

// checkKind is the single place where a value is matched against the kind a
// callable requires. Nil satisfies only KindAny.
func checkKind(name string, want Kind, v *Value) error {
	if want == KindAny || v.Is(want) {
		return nil
	}
	return &RuntimeError{Err: fmt.Errorf("%w: %s expects %v, got %v", ErrTypeMismatch, name, want, v)}
}
