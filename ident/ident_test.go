package ident

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"my_icon", "my_icon"},
		{"A.alt", "a_alt"},
		{"  Leading And Trailing  ", "leading_and_trailing"},
		{"9ball", "_9ball"},
		{"!!!", ""},
		{"a---b", "a_b"},
		{"___already___", "already"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNamerCollision(t *testing.T) {
	n := NewNamer()
	first := n.Assign("A.alt", 5)
	second := n.Assign("A!alt", 6)
	if first == second {
		t.Fatalf("expected distinct names, both were %q", first)
	}
	if first != "a_alt" {
		t.Errorf("first = %q, want a_alt", first)
	}
	if second != "a_alt_6" {
		t.Errorf("second = %q, want a_alt_6", second)
	}
}

func TestNamerEmptySanitizedName(t *testing.T) {
	n := NewNamer()
	first := n.Assign("!!!", 1)
	second := n.Assign("???", 2)
	if first != "_" {
		t.Errorf("first = %q, want _", first)
	}
	if second != "__2" {
		t.Errorf("second = %q, want __2", second)
	}
}

func TestNamerDeterministic(t *testing.T) {
	n1 := NewNamer()
	n2 := NewNamer()
	for gid, raw := range []string{"space", "A", "A", "period"} {
		a := n1.Assign(raw, gid)
		b := n2.Assign(raw, gid)
		if a != b {
			t.Errorf("gid %d: %q != %q", gid, a, b)
		}
	}
}
