package internal

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		value interface{}
		want  bool
	}{
		{nil, false},
		{convoBool(false), false},
		{convoBool(true), true},
		{convoNumber(0), true},
		{convoString(""), true},
		{newConvoList(nil), true},
	}
	for _, c := range cases {
		if got := truthy(c.value); got != c.want {
			t.Errorf("truthy(%#v) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		value interface{}
		want  string
	}{
		{nil, "null"},
		{convoBool(true), "true"},
		{convoNumber(3), "3"},
		{convoNumber(3.5), "3.5"},
		{convoString("hi"), "hi"},
	}
	for _, c := range cases {
		if got := stringify(c.value); got != c.want {
			t.Errorf("stringify(%#v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestNumberOperators(t *testing.T) {
	n := convoNumber(6)
	add := n.getOperator(opAdd)
	if got := add(1, convoNumber(2)); got != convoNumber(8) {
		t.Errorf("6 + 2 = %v, want 8", got)
	}
	gt := n.getOperator(opGt)
	if got := gt(1, convoNumber(2)); got != convoBool(true) {
		t.Errorf("6 > 2 = %v, want true", got)
	}
}

func TestStringEquality(t *testing.T) {
	if !convoEquals(convoString("a"), convoString("a")) {
		t.Errorf("expected equal strings to compare equal")
	}
	if convoEquals(convoString("a"), convoNumber(1)) {
		t.Errorf("expected mismatched types to compare unequal")
	}
}

func TestListIndexing(t *testing.T) {
	l := newConvoList([]interface{}{convoNumber(1), convoNumber(2), convoNumber(3)})
	if got := l.index(1, -1); got != convoNumber(3) {
		t.Errorf("l[-1] = %v, want 3", got)
	}
}

func TestDictInsertionOrder(t *testing.T) {
	d := newConvoDict()
	d.set_("b", convoNumber(1))
	d.set_("a", convoNumber(2))
	d.set_("b", convoNumber(3))
	want := []string{"b", "a"}
	if !equalKeys(d.keys, want) {
		t.Errorf("keys diff:\n%s", strings.Join(pretty.Diff(want, d.keys), "\n"))
	}
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
