package scheme

import (
	"io"
	"strings"
)

// Interpreter evaluates one expression per call against a fixed global
// environment. The environment is read-only, so Run may be called from
// several goroutines.
type Interpreter struct {
	global *Environment
}

func New() *Interpreter {
	return &Interpreter{global: BaseEnvironment()}
}

func (i *Interpreter) Global() *Environment {
	return i.global
}

// Eval reads one expression from s and evaluates it. Anything after the
// expression is not read.
func (i *Interpreter) Eval(s io.RuneScanner) (v *Value, err error) {
	var ast *Value
	ast, err = Parse(s)
	if err != nil {
		return nil, err
	}
	return Evaluate(ast, i.global)
}

// Run evaluates src and returns the printed result. The error is either a
// *SyntaxError or a *RuntimeError.
func (i *Interpreter) Run(src string) (string, error) {
	v, err := i.Eval(strings.NewReader(src))
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
