package symtab

import (
	"testing"

	"c3c/internal/intern"
)

func TestSetGetRoundTrip(t *testing.T) {
	in := intern.New()
	tb := New(4)
	id := in.Intern("foo")

	if _, ok := tb.Get(id); ok {
		t.Fatal("expected miss before insert")
	}
	tb.Set(id, 42)
	v, ok := tb.Get(id)
	if !ok || v.(int) != 42 {
		t.Fatalf("got %v, %v; want 42, true", v, ok)
	}
}

func TestSetReturnsPrevious(t *testing.T) {
	in := intern.New()
	tb := New(4)
	id := in.Intern("foo")

	tb.Set(id, 1)
	prev, had := tb.Set(id, 2)
	if !had || prev.(int) != 1 {
		t.Fatalf("got %v, %v; want 1, true", prev, had)
	}
	if tb.Len() != 1 {
		t.Fatalf("expected 1 live entry, got %d", tb.Len())
	}
}

func TestGrowPreservesEntries(t *testing.T) {
	in := intern.New()
	tb := New(2)
	ids := make([]intern.ID, 0, 64)
	for i := 0; i < 64; i++ {
		ids = append(ids, in.Intern(string(rune('a'+i%26))+string(rune('0'+i/26))))
	}
	for i, id := range ids {
		tb.Set(id, i)
	}
	for i, id := range ids {
		v, ok := tb.Get(id)
		if !ok || v.(int) != i {
			t.Fatalf("entry %d: got %v, %v; want %d, true", i, v, ok, i)
		}
	}
}

func TestDelete(t *testing.T) {
	in := intern.New()
	tb := New(4)
	id := in.Intern("foo")
	tb.Set(id, 1)
	tb.Delete(id)
	if _, ok := tb.Get(id); ok {
		t.Fatal("expected miss after delete")
	}
	if tb.Len() != 0 {
		t.Fatalf("expected 0 live entries, got %d", tb.Len())
	}
}

func TestRangeVisitsEveryLiveEntryExceptDeleted(t *testing.T) {
	in := intern.New()
	tb := New(4)
	a, b, c := in.Intern("a"), in.Intern("b"), in.Intern("c")
	tb.Set(a, 1)
	tb.Set(b, 2)
	tb.Set(c, 3)
	tb.Delete(b)

	seen := make(map[intern.ID]int)
	tb.Range(func(key intern.ID, value any) {
		seen[key] = value.(int)
	})
	if len(seen) != 2 {
		t.Fatalf("expected 2 live entries, got %d: %v", len(seen), seen)
	}
	if seen[a] != 1 || seen[c] != 3 {
		t.Fatalf("expected a=1, c=3, got %v", seen)
	}
	if _, ok := seen[b]; ok {
		t.Fatal("expected deleted key b to be excluded from Range")
	}
}
