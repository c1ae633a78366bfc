package intern

import "testing"

func TestInternDedup(t *testing.T) {
	in := New()
	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Fatalf("expected same ID for repeated intern, got %d and %d", a, b)
	}
	if in.Len() != 2 { // sentinel + "foo"
		t.Fatalf("expected 2 entries, got %d", in.Len())
	}
}

func TestInternRoundTrip(t *testing.T) {
	in := New()
	id := in.Intern("hello")
	s, ok := in.Lookup(id)
	if !ok || s != "hello" {
		t.Fatalf("lookup(%d) = %q, %v; want hello, true", id, s, ok)
	}
}

func TestClassify(t *testing.T) {
	in := New()
	cases := map[string]Class{
		"foo":    ClassIdent,
		"Foo":    ClassTypeIdent,
		"FOO":    ClassConstIdent,
		"FOO_BAR": ClassConstIdent,
		"fn":     ClassKeyword,
		"module": ClassKeyword,
	}
	for s, want := range cases {
		id := in.Intern(s)
		if got := in.Classify(id); got != want {
			t.Errorf("Classify(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestNoIDIsEmptyString(t *testing.T) {
	in := New()
	s, ok := in.Lookup(NoID)
	if !ok || s != "" {
		t.Fatalf("Lookup(NoID) = %q, %v; want \"\", true", s, ok)
	}
}
