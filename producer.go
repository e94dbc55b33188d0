package scheme

func Integer(i int64) *Value {
	return &Value{Kind: KindInteger, Integer: i}
}

func Boolean(b bool) *Value {
	return &Value{Kind: KindBoolean, Boolean: b}
}

func Cons(car, cdr *Value) *Value {
	return &Value{Kind: KindPair, Car: car, Cdr: cdr}
}

// List builds a proper list of elems. With no elements it returns Nil.
func List(elems ...*Value) *Value {
	if len(elems) == 0 {
		return nil
	}

	head := Cons(elems[0], nil)
	tail := head
	for _, e := range elems[1:] {
		next := Cons(e, nil)
		tail.Cdr = next
		tail = next
	}
	return head
}

// Symbol returns a symbol value, checking that s would lex back as a single
// symbol token.
func Symbol(s string) (v *Value, err error) {
	if !isSymbolName(s) {
		return nil, ErrUnexpectedChar
	}
	return &Value{Kind: KindSymbol, Name: s}, nil
}

func MustSymbol(s string) (v *Value) {
	var err error
	v, err = Symbol(s)
	if err != nil {
		panic(err)
	}
	return
}

func isSymbolName(s string) bool {
	if s == "+" || s == "-" {
		return true
	}
	for i, r := range s {
		if i == 0 && !isSymbolStart(r) {
			return false
		} else if i > 0 && !isSymbolRemainder(r) {
			return false
		}
	}
	return s != ""
}

func procedure(name string, accepts Kind, apply func(args []*Value) (*Value, error)) *Value {
	return &Value{
		Kind:      KindProcedure,
		Procedure: &Procedure{Name: name, Accepts: accepts, Apply: apply},
	}
}

func specialForm(name string, apply func(args *Value, env *Environment) (*Value, error)) *Value {
	return &Value{
		Kind:        KindSpecialForm,
		SpecialForm: &SpecialForm{Name: name, Apply: apply},
	}
}

// EnvironmentValue wraps env as a first-class value; it evaluates to itself.
func EnvironmentValue(env *Environment) *Value {
	return &Value{Kind: KindEnvironment, Environment: env}
}
