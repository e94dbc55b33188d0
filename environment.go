package scheme

import (
	"fmt"
	"sort"
	"strings"
)

// Environment is a flat, read-only table of global bindings.
type Environment struct {
	bindings map[string]*Value
}

func newEnvironment(bindings map[string]*Value) *Environment {
	return &Environment{bindings: bindings}
}

func (e *Environment) Lookup(name string) (v *Value, err error) {
	v, ok := e.bindings[name]
	if !ok {
		return nil, &RuntimeError{Err: fmt.Errorf("%w: %s", ErrUnboundSymbol, name)}
	}
	return v, nil
}

// Names returns the bound symbols in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// appendToBuilder writes one "name : value" line per binding in Names order.
// A bound environment prints as #<environment> so a table that reaches
// itself still terminates.
func (e *Environment) appendToBuilder(sb *strings.Builder) {
	for _, name := range e.Names() {
		sb.WriteString(name)
		sb.WriteString(" : ")
		if v := e.bindings[name]; v.Is(KindEnvironment) {
			sb.WriteString("#<environment>")
		} else {
			v.appendToBuilder(sb)
		}
		sb.WriteRune('\n')
	}
}
