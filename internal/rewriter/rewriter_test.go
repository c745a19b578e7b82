package rewriter

import (
	"testing"

	"github.com/hxb2012/oi/internal/ast"
)

func declWithAgg(agg ast.TypeNode, name string) *ast.Decl {
	return &ast.Decl{
		NameOrig: name,
		Type:     &ast.TypeDecl{DeclName: ast.NewSymbol(name), Type: agg},
	}
}

func TestSplitsSharedTaggedStruct(t *testing.T) {
	agg := &ast.Struct{NameOrig: "X", Decls: []*ast.Decl{
		{NameOrig: "a", Type: &ast.TypeDecl{DeclName: ast.NewSymbol("a"), Type: &ast.IdentifierType{Names: []string{"int"}}}},
	}}
	a := declWithAgg(agg, "a")
	b := declWithAgg(agg, "b")
	file := &ast.FileAST{Decls: []ast.ExtDecl{a, b}}

	New().Rewrite(file)

	aLeaf := leafTypeDecl(a.Type)
	bLeaf := leafTypeDecl(b.Type)
	if aLeaf.Type != agg {
		t.Fatalf("first declarator should keep the defining node")
	}
	bAgg, ok := bLeaf.Type.(*ast.Struct)
	if !ok {
		t.Fatalf("second declarator should still be a struct type")
	}
	if bAgg == agg {
		t.Fatalf("second declarator must not share the defining node instance")
	}
	if bAgg.HasBody() {
		t.Fatalf("second declarator must be reference-only")
	}
	if bAgg.NameOrig != "X" {
		t.Fatalf("reference copy must carry the same tag, got %q", bAgg.NameOrig)
	}
}

func TestAnonymousAggregateGetsSyntheticTag(t *testing.T) {
	agg := &ast.Struct{Decls: []*ast.Decl{}}
	a := declWithAgg(agg, "a")
	b := declWithAgg(agg, "b")
	file := &ast.FileAST{Decls: []ast.ExtDecl{a, b}}

	New().Rewrite(file)

	if agg.NameOrig != "_anonymous_0" {
		t.Fatalf("expected synthetic tag _anonymous_0, got %q", agg.NameOrig)
	}
}

func TestSingleDeclaratorIsNotSplit(t *testing.T) {
	agg := &ast.Struct{NameOrig: "X", Decls: []*ast.Decl{}}
	a := declWithAgg(agg, "a")
	file := &ast.FileAST{Decls: []ast.ExtDecl{a}}

	New().Rewrite(file)

	if leafTypeDecl(a.Type).Type != agg {
		t.Fatalf("sole declarator must keep the full definition")
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	agg := &ast.Struct{NameOrig: "X", Decls: []*ast.Decl{}}
	a := declWithAgg(agg, "a")
	b := declWithAgg(agg, "b")
	file := &ast.FileAST{Decls: []ast.ExtDecl{a, b}}

	r := New()
	r.Rewrite(file)
	bAggBefore := leafTypeDecl(b.Type).Type

	r.Rewrite(file)
	bAggAfter := leafTypeDecl(b.Type).Type

	if bAggBefore != bAggAfter {
		t.Fatalf("re-running the rewrite must be a no-op on already-split declarations")
	}
}

func TestInterveningDeclBreaksRun(t *testing.T) {
	agg := &ast.Struct{NameOrig: "X", Decls: []*ast.Decl{}}
	a := declWithAgg(agg, "a")
	other := &ast.Decl{NameOrig: "y", Type: &ast.TypeDecl{DeclName: ast.NewSymbol("y"), Type: &ast.IdentifierType{Names: []string{"int"}}}}
	b := declWithAgg(agg, "b")
	file := &ast.FileAST{Decls: []ast.ExtDecl{a, other, b}}

	New().Rewrite(file)

	if leafTypeDecl(a.Type).Type != agg {
		t.Fatalf("a should keep the defining node since the run was broken")
	}
	if leafTypeDecl(b.Type).Type != agg {
		t.Fatalf("b should also keep the defining node: it is not adjacent to a in the same run")
	}
}
