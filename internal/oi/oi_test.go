package oi

import (
	"strings"
	"testing"
)

// normalize collapses all runs of ASCII whitespace to nothing, since the
// printer's spacing policy only guarantees tokens stay distinguishable, not
// that it reproduces any particular input's whitespace.
func normalize(s []byte) string {
	out := make([]byte, 0, len(s))
	for _, b := range s {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			out = append(out, b)
		}
	}
	return string(out)
}

func minify(t *testing.T, source string) string {
	t.Helper()
	out, _, err := Minify("t.c", source)
	if err != nil {
		t.Fatalf("Minify(%q): %v", source, err)
	}
	return normalize(out)
}

func TestMainWithEmptyBodyRoundTrips(t *testing.T) {
	got := minify(t, "int main() {}")
	want := normalize([]byte("int main() {}"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLabelRenamesToA(t *testing.T) {
	got := minify(t, "int main() { a: goto a; }")
	want := normalize([]byte("int main(){A:goto A;}"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnreachableFunctionIsDropped(t *testing.T) {
	got := minify(t, "void f(){} int main(){}")
	if strings.Contains(got, "f(") || strings.Contains(got, "void") {
		t.Fatalf("unreachable function f must not survive, got %q", got)
	}
	want := normalize([]byte("int main(){}"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSharedForwardDeclAndDefinitionKeepOneName(t *testing.T) {
	got := minify(t, "int a; int main(){ return a; } int a = 1;")
	// the forward declaration must precede main, and the initialized
	// redeclaration must come last, with both referring to the same
	// renamed identifier.
	want := normalize([]byte("int A;int main(){return A;}int A=1;"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStructMemberAndDesignatedInitRename(t *testing.T) {
	got := minify(t, "struct S {int x;}; int main() { struct S s = {.x = 1}; }")
	want := normalize([]byte("struct A{int A;};int main(){struct A A={.A=1};}"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSharedStructBodyIsSplitAcrossDeclarators(t *testing.T) {
	got := minify(t, "struct X {int a;} a,b; int main(){ return a.a + b.a; }")
	want := normalize([]byte("struct A{int A;}A;struct A B;int main(){return A.A+B.A;}"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAnonymousAggregateGetsSyntheticTagBeforeRenaming(t *testing.T) {
	got := minify(t, "struct {int a;} a,b; int main(){ return a.a + b.a; }")
	want := normalize([]byte("struct A{int A;}A;struct A B;int main(){return A.A+B.A;}"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnreachableOuterTypedefIsDroppedInnerSurvives(t *testing.T) {
	got := minify(t, "typedef int t; int main(){ typedef int t; t a; }")
	want := normalize([]byte("int main(){typedef int A;A B;}"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLocalShadowsEnumeratorAndEnumIsDropped(t *testing.T) {
	got := minify(t, "enum E { X }; int main(){ int X; X; }")
	if strings.Contains(got, "enum") {
		t.Fatalf("the now-unreferenced enum must be pruned, got %q", got)
	}
	want := normalize([]byte("int main(){int A;A;}"))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
