package renamer

import (
	"testing"

	"github.com/hxb2012/oi/internal/ast"
)

func funcDef(name string, body *ast.Compound) *ast.FuncDef {
	return &ast.FuncDef{
		Decl: &ast.Decl{
			NameOrig: name,
			Type: &ast.FuncDecl{
				NoPrototype: true,
				Type: &ast.TypeDecl{
					DeclName: ast.NewSymbol(name),
					Type:     &ast.IdentifierType{Names: []string{"int"}},
				},
			},
		},
		Body: body,
	}
}

func callStmt(callee string) *ast.ExprStmt {
	return &ast.ExprStmt{Expr: &ast.FuncCall{Callee: &ast.ID{NameOrig: callee}}}
}

func globalInt(name string) *ast.Decl {
	return &ast.Decl{
		NameOrig: name,
		Type: &ast.TypeDecl{
			DeclName: ast.NewSymbol(name),
			Type:     &ast.IdentifierType{Names: []string{"int"}},
		},
	}
}

// TestUnreachableFunctionIsPruned checks that a top-level function no path
// from "main" ever calls is dropped from the tree, while one main does call
// survives renamed.
func TestUnreachableFunctionIsPruned(t *testing.T) {
	used := funcDef("used", &ast.Compound{})
	unused := funcDef("unused", &ast.Compound{})
	main := funcDef("main", &ast.Compound{Items: []ast.BlockItem{callStmt("used")}})

	file := &ast.FileAST{Decls: []ast.ExtDecl{used, unused, main}}

	out, err := Run(file)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(out.Decls) != 2 {
		t.Fatalf("expected unused to be pruned, got %d survivors", len(out.Decls))
	}
	if out.Decls[0] != used || out.Decls[1] != main {
		t.Fatalf("expected [used, main] in source order, got %v", out.Decls)
	}
	if used.Decl.DeclName().Renamed == "" {
		t.Fatalf("surviving function must be assigned a renamed name")
	}
	if main.Decl.DeclName().Renamed != "main" {
		t.Fatalf("main must stay literal, got renamed %q", main.Decl.DeclName().Renamed)
	}
}

// TestMainAloneKeepsEverythingElsePruned confirms a translation unit with
// only main and nothing reachable from it ends up as a single survivor.
func TestMainAloneKeepsEverythingElsePruned(t *testing.T) {
	dead := globalInt("dead")
	main := funcDef("main", &ast.Compound{})
	file := &ast.FileAST{Decls: []ast.ExtDecl{dead, main}}

	out, err := Run(file)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.Decls) != 1 || out.Decls[0] != main {
		t.Fatalf("expected only main to survive, got %v", out.Decls)
	}
}

// TestMissingMainIsAnError checks that reachability refuses to run over a
// translation unit with no "main" to root the search at.
func TestMissingMainIsAnError(t *testing.T) {
	file := &ast.FileAST{Decls: []ast.ExtDecl{globalInt("x")}}
	if _, err := Run(file); err == nil {
		t.Fatalf("expected an error for a file with no main")
	}
}

// TestTwoFunctionsGetDistinctOrdinaryNames checks that two reachable
// top-level functions never collide on the same renamed identifier, even
// though each starts from the same global ordinary allocator.
func TestTwoFunctionsGetDistinctOrdinaryNames(t *testing.T) {
	a := funcDef("a", &ast.Compound{})
	b := funcDef("b", &ast.Compound{})
	main := funcDef("main", &ast.Compound{Items: []ast.BlockItem{callStmt("a"), callStmt("b")}})
	file := &ast.FileAST{Decls: []ast.ExtDecl{a, b, main}}

	if _, err := Run(file); err != nil {
		t.Fatalf("Run: %v", err)
	}

	nameA := a.Decl.DeclName().Renamed
	nameB := b.Decl.DeclName().Renamed
	if nameA == "" || nameB == "" {
		t.Fatalf("both functions must be renamed, got %q and %q", nameA, nameB)
	}
	if nameA == nameB {
		t.Fatalf("distinct ordinary symbols must not share a renamed name, both got %q", nameA)
	}
}

// TestLabelsInDifferentFunctionsMayShareAName checks that the label
// namespace is scoped per function: two labels with the same source name
// in two different functions are free to land on the same renamed name,
// since gotos never cross a function boundary.
func TestLabelsInDifferentFunctionsMayShareAName(t *testing.T) {
	labelIn := func(name string) *ast.Compound {
		return &ast.Compound{Items: []ast.BlockItem{
			&ast.Label{NameOrig: name, Stmt: &ast.Goto{NameOrig: name}},
		}}
	}
	f := funcDef("f", labelIn("done"))
	main := funcDef("main", &ast.Compound{Items: []ast.BlockItem{
		callStmt("f"),
		&ast.Label{NameOrig: "done", Stmt: &ast.Goto{NameOrig: "done"}},
	}})
	file := &ast.FileAST{Decls: []ast.ExtDecl{f, main}}

	if _, err := Run(file); err != nil {
		t.Fatalf("Run: %v", err)
	}

	fLabel := f.Body.Items[0].(*ast.Label)
	mainLabel := main.Body.Items[1].(*ast.Label)
	if fLabel.Label == nil || mainLabel.Label == nil {
		t.Fatalf("both labels must be resolved")
	}
	if fLabel.Label.Renamed != "A" || mainLabel.Label.Renamed != "A" {
		t.Fatalf("each function's first label should restart at A, got %q and %q", fLabel.Label.Renamed, mainLabel.Label.Renamed)
	}
}

// TestSharedForwardDeclAndDefinitionKeepOneIdentity checks that a file-scope
// forward declaration and its later definition resolve to the same Symbol
// (and therefore the same renamed name) rather than two independent ones.
func TestSharedForwardDeclAndDefinitionKeepOneIdentity(t *testing.T) {
	forward := globalInt("g")
	forward.Storage = []string{"extern"}
	def := globalInt("g")
	def.Init = &ast.Constant{Kind: ast.ConstInt, Value: "1"}
	main := funcDef("main", &ast.Compound{Items: []ast.BlockItem{
		&ast.ExprStmt{Expr: &ast.ID{NameOrig: "g"}},
	}})
	file := &ast.FileAST{Decls: []ast.ExtDecl{forward, main, def}}

	out, err := Run(file)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var refSym *ast.Symbol
	for _, item := range main.Body.Items {
		if es, ok := item.(*ast.ExprStmt); ok {
			refSym = es.Expr.(*ast.ID).Sym
		}
	}
	if refSym == nil {
		t.Fatalf("reference inside main must resolve to a symbol")
	}
	if refSym.Renamed == "" {
		t.Fatalf("expected the shared symbol to be renamed")
	}

	survivors := 0
	for _, d := range out.Decls {
		if dd, ok := d.(*ast.Decl); ok && dd.NameOrig == "g" {
			if dd.DeclName() != refSym {
				t.Fatalf("forward declaration and definition must share one Symbol identity")
			}
			survivors++
		}
	}
	if survivors != 2 {
		t.Fatalf("expected both the forward declaration and the definition to survive, got %d", survivors)
	}
}

// TestMemberAccessThroughBareTagReference checks that a variable declared
// by a bare tag ("struct X s;" after a separate "struct X {...};") still
// resolves its member accesses: resolveMemberType must chase the tag back
// to its defining body rather than stopping at the body-less reference.
func TestMemberAccessThroughBareTagReference(t *testing.T) {
	member := &ast.Decl{
		NameOrig: "a",
		Type: &ast.TypeDecl{
			DeclName: ast.NewSymbol("a"),
			Type:     &ast.IdentifierType{Names: []string{"int"}},
		},
	}
	def := &ast.Struct{NameOrig: "X", Decls: []*ast.Decl{member}}

	declA := &ast.Decl{
		NameOrig: "a",
		Type: &ast.TypeDecl{
			DeclName: ast.NewSymbol("a"),
			Type:     def,
		},
	}
	declB := &ast.Decl{
		NameOrig: "b",
		Type: &ast.TypeDecl{
			DeclName: ast.NewSymbol("b"),
			Type:     &ast.Struct{NameOrig: "X"}, // bare tag reference, no body
		},
	}

	ref := &ast.StructRef{Target: &ast.ID{NameOrig: "b"}, FieldOrig: "a", Op: "."}
	main := funcDef("main", &ast.Compound{Items: []ast.BlockItem{
		&ast.ExprStmt{Expr: ref},
	}})

	file := &ast.FileAST{Decls: []ast.ExtDecl{declA, declB, main}}

	if _, err := Run(file); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if ref.Field == nil {
		t.Fatalf("member access through a bare tag reference must still resolve")
	}
	if ref.Field != member.DeclName() {
		t.Fatalf("resolved field must be the defining struct's own member symbol")
	}
}
