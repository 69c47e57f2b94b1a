package manifest

import "strings"

// EvalPartKind tells literal text apart from a variable reference.
type EvalPartKind int

const (
	EvalLiteral EvalPartKind = iota
	EvalVarRef
)

// EvalPart is one piece of an EvalString.
type EvalPart struct {
	Kind EvalPartKind
	Text string
}

// EvalString is an unexpanded string such as "cc $in -o $out".
type EvalString []EvalPart

// Env resolves variable names to values.
type Env interface {
	Lookup(name string) (string, bool)
}

// Evaluate expands s, looking each variable up in the first env that has
// it. Unknown variables expand to the empty string.
func (s EvalString) Evaluate(envs ...Env) string {
	var b strings.Builder
	for _, part := range s {
		switch part.Kind {
		case EvalLiteral:
			b.WriteString(part.Text)
		case EvalVarRef:
			for _, env := range envs {
				if v, ok := env.Lookup(part.Text); ok {
					b.WriteString(v)
					break
				}
			}
		}
	}
	return b.String()
}

// Literal reports the string value of s if it references no variables.
func (s EvalString) Literal() (string, bool) {
	var b strings.Builder
	for _, part := range s {
		if part.Kind != EvalLiteral {
			return "", false
		}
		b.WriteString(part.Text)
	}
	return b.String(), true
}

// Vars holds evaluated bindings.
type Vars map[string]string

// Lookup implements Env.
func (v Vars) Lookup(name string) (string, bool) {
	val, ok := v[name]
	return val, ok
}

func (v Vars) clone() Vars {
	c := make(Vars, len(v))
	for k, val := range v {
		c[k] = val
	}
	return c
}

// Binding is a scoped variable whose value is expanded when used.
type Binding struct {
	Name  string
	Value EvalString
}

// LazyVars are the bindings indented under a rule, build or pool, in file
// order.
type LazyVars []Binding

// Get returns the last binding of name.
func (lv LazyVars) Get(name string) (EvalString, bool) {
	for i := len(lv) - 1; i >= 0; i-- {
		if lv[i].Name == name {
			return lv[i].Value, true
		}
	}
	return nil, false
}
