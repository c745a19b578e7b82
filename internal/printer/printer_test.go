package printer

import (
	"strings"
	"testing"

	"github.com/hxb2012/oi/internal/ast"
)

func TestPrintSimpleDeclListSuppressesRepeatedBaseType(t *testing.T) {
	intType := func(name string) *ast.Decl {
		return &ast.Decl{
			NameOrig: name,
			Type:     &ast.TypeDecl{DeclName: &ast.Symbol{Original: name, Renamed: name}, Type: &ast.IdentifierType{Names: []string{"int"}}},
		}
	}
	p := New(Options{})
	p.printStmt(&ast.DeclList{Decls: []*ast.Decl{intType("a"), intType("b")}})
	out := string(p.Bytes())
	if got, want := strings.Count(out, "int"), 1; got != want {
		t.Fatalf("expected base type printed once across the declarator list, got %q", out)
	}
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Fatalf("expected both declarators present, got %q", out)
	}
}

func TestPrintUsesRenamedSymbol(t *testing.T) {
	sym := &ast.Symbol{Original: "counter", Renamed: "A"}
	d := &ast.Decl{
		NameOrig: "counter",
		Type:     &ast.TypeDecl{DeclName: sym, Type: &ast.IdentifierType{Names: []string{"int"}}},
	}
	out := string(Print(&ast.FileAST{Decls: []ast.ExtDecl{d}}, Options{}))
	if strings.Contains(out, "counter") {
		t.Fatalf("expected renamed form, not the original name, got %q", out)
	}
	if !strings.Contains(out, "A") {
		t.Fatalf("expected renamed symbol A in output, got %q", out)
	}
}

func TestPrintNeverGluesAdjacentIdentifiers(t *testing.T) {
	p := New(Options{})
	p.print("int")
	p.space()
	p.print("x")
	if got := string(p.Bytes()); got != "int x" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintInsertsSpaceToAvoidTokenFusion(t *testing.T) {
	p := New(Options{})
	p.print("+")
	p.print("+")
	if got := string(p.Bytes()); got != "+ +" {
		t.Fatalf("expected a separating space between adjacent '+' tokens, got %q", got)
	}
}

func TestReduceParensDropsSameLevelLeftChild(t *testing.T) {
	// (a + b) + c, reduce_parentheses=true should drop the inner parens
	// since '+' is left-associative.
	a := &ast.ID{NameOrig: "a"}
	b := &ast.ID{NameOrig: "b"}
	c := &ast.ID{NameOrig: "c"}
	inner := &ast.BinaryOp{Left: a, Op: "+", Right: b}
	outer := &ast.BinaryOp{Left: inner, Op: "+", Right: c}

	p := New(Options{ReduceParens: true})
	p.printExprLevel(outer, lowestLevel)
	if strings.Contains(string(p.Bytes()), "(") {
		t.Fatalf("expected no parentheses with ReduceParens, got %q", p.Bytes())
	}
}

func TestWithoutReduceParensKeepsSameLevelLeftChild(t *testing.T) {
	a := &ast.ID{NameOrig: "a"}
	b := &ast.ID{NameOrig: "b"}
	c := &ast.ID{NameOrig: "c"}
	inner := &ast.BinaryOp{Left: a, Op: "+", Right: b}
	outer := &ast.BinaryOp{Left: inner, Op: "+", Right: c}

	p := New(Options{ReduceParens: false})
	p.printExprLevel(outer, lowestLevel)
	if !strings.Contains(string(p.Bytes()), "(") {
		t.Fatalf("expected parentheses preserved without ReduceParens, got %q", p.Bytes())
	}
}
