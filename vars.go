package calc

import "strings"

// Vars is a table of variable bindings for a session. Names are
// case-insensitive. Bindings are created or overwritten by assignments and
// never removed. It is not safe to use a Vars concurrently.
type Vars struct {
	names map[string]Rational
}

// VarsOption is an option used when creating a variable table.
type VarsOption interface {
	varsOption()
}

type (
	varopt struct {
		name string
		val  Rational
	}
	varsopt map[string]Rational
)

func (varopt) varsOption()  {}
func (varsopt) varsOption() {}

// SetVar sets the value of a variable in the table.
func SetVar(name string, val Rational) VarsOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the table.
func SetVars(vars map[string]Rational) VarsOption {
	return varsopt(vars)
}

// NewVars creates a variable table.
func NewVars(opts ...VarsOption) *Vars {
	var v Vars
	return v.Clone(opts...)
}

// Set binds a variable. Returns v for chaining.
func (v *Vars) Set(name string, val Rational) *Vars {
	if v.names == nil {
		v.names = make(map[string]Rational)
	}
	v.names[strings.ToLower(name)] = val
	return v
}

// Lookup returns the value of a variable and whether it is bound.
func (v *Vars) Lookup(name string) (Rational, bool) {
	if v == nil {
		return Undefined, false
	}
	r, ok := v.names[strings.ToLower(name)]
	return r, ok
}

// Len returns the number of bound variables.
func (v *Vars) Len() int {
	if v == nil {
		return 0
	}
	return len(v.names)
}

// Names returns the bound variable names in sorted order.
func (v *Vars) Names() []string {
	if v == nil {
		return nil
	}
	names := make([]string, 0, len(v.names))
	for k := range v.names {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Clone creates a copy of a table and applies options to it. Changes to
// either table do not affect the other.
func (v *Vars) Clone(opts ...VarsOption) *Vars {
	n := Vars{names: make(map[string]Rational, v.Len())}
	if v != nil {
		for k, r := range v.names {
			n.names[k] = r
		}
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case varopt:
			n.Set(opt.name, opt.val)
		case varsopt:
			for k, r := range opt {
				n.Set(k, r)
			}
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
