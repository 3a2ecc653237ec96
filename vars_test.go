package calc

import "testing"

func TestVarsOptions(t *testing.T) {
	v := NewVars(
		SetVar("A", One),
		nil,
		SetVars(map[string]Rational{"b": NewRational(1, 2), "C": Zero}),
	)
	cases := []struct {
		name string
		want Rational
	}{
		{"a", One},
		{"A", One},
		{"b", NewRational(1, 2)},
		{"c", Zero},
	}
	for _, c := range cases {
		r, ok := v.Lookup(c.name)
		if !ok || r != c.want {
			t.Errorf("%s: want %v, got %v %t", c.name, c.want, r, ok)
		}
	}
	if v.Len() != 3 {
		t.Errorf("want 3 names, got %d", v.Len())
	}
}

func TestVarsNil(t *testing.T) {
	var v *Vars
	if _, ok := v.Lookup("a"); ok {
		t.Error("nil table has a binding")
	}
	if v.Len() != 0 || v.Names() != nil {
		t.Errorf("nil table has names %q", v.Names())
	}
	c := v.Clone(SetVar("a", One))
	if r, ok := c.Lookup("a"); !ok || r != One {
		t.Errorf("clone of nil table: want 1, got %v %t", r, ok)
	}
}

func TestVarsSetOverwrites(t *testing.T) {
	var v Vars
	v.Set("x", One).Set("X", Zero)
	if r, _ := v.Lookup("x"); r != Zero {
		t.Errorf("want 0, got %v", r)
	}
	if v.Len() != 1 {
		t.Errorf("want 1 name, got %d", v.Len())
	}
}

func TestVarsClone(t *testing.T) {
	a := NewVars(SetVar("x", One))
	b := a.Clone(SetVar("y", Zero))
	b.Set("x", Zero)
	if r, _ := a.Lookup("x"); r != One {
		t.Errorf("clone modified original x to %v", r)
	}
	if _, ok := a.Lookup("y"); ok {
		t.Error("clone option leaked into original")
	}
}

func TestVarsNames(t *testing.T) {
	v := NewVars(SetVars(map[string]Rational{"zeta": One, "Alpha": One, "mid": One, "b": One}))
	want := []string{"alpha", "b", "mid", "zeta"}
	got := v.Names()
	if len(got) != len(want) {
		t.Fatalf("want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("want %q, got %q", want, got)
			break
		}
	}
}

type badopt struct{}

func (badopt) varsOption() {}

func TestVarsUnknownOption(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for unknown option")
		}
	}()
	NewVars(badopt{})
}
