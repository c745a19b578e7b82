package symtab

import (
	"testing"

	"github.com/hxb2012/oi/internal/ast"
)

func TestEncodeBase52Tiers(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "a"},
		{51, "z"},
		{52, "@A"},
		{53, "@B"},
		{103, "@z"},
		{104, "AA"},
	}
	for _, c := range cases {
		got, err := Encode(c.n)
		if err != nil {
			t.Fatalf("Encode(%d): %v", c.n, err)
		}
		if got != c.want {
			t.Errorf("Encode(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestEncodeExhaustion(t *testing.T) {
	if _, err := Encode(MaxIdentifiers); err != ErrAlphabetExhausted {
		t.Fatalf("expected exhaustion at %d, got %v", MaxIdentifiers, err)
	}
}

func TestLocalCounterPropagatesHighWaterMark(t *testing.T) {
	global := NewAllocator()
	if _, err := global.Next(); err != nil { // "A" used at file scope
		t.Fatal(err)
	}

	c1 := NewLocalCounter(global)
	if n, _ := c1.Next(); n != "B" {
		t.Fatalf("first local in fn1 = %q, want B", n)
	}
	if n, _ := c1.Next(); n != "C" {
		t.Fatalf("second local in fn1 = %q, want C", n)
	}

	c2 := NewLocalCounter(global)
	if n, _ := c2.Next(); n != "D" {
		t.Fatalf("first local in fn2 = %q, want D (must not collide with fn1's B/C)", n)
	}

	if n, _ := global.Next(); n != "E" {
		t.Fatalf("next top-level symbol = %q, want E", n)
	}
}

func TestFrameChainedLookupAndShadowing(t *testing.T) {
	file := NewFrame(nil)
	outer := ast.NewSymbol("x")
	file.DeclareOrdinary("x", &ast.TypeDecl{DeclName: outer})

	fn := NewFrame(file)
	if _, owner, ok := fn.LookupOrdinary("x"); !ok || owner != file {
		t.Fatalf("expected lookup to chain to file frame")
	}

	inner := ast.NewSymbol("x")
	fn.DeclareOrdinary("x", &ast.TypeDecl{DeclName: inner})
	if _, owner, ok := fn.LookupOrdinary("x"); !ok || owner != fn {
		t.Fatalf("expected shadowing declaration to win in its own frame")
	}
}
