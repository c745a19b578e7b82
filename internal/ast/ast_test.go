package ast

import "testing"

func TestSymbolIdentity(t *testing.T) {
	a := NewSymbol("x")
	b := NewSymbol("x")
	if a == b {
		t.Fatalf("two distinct NewSymbol calls must not share identity")
	}
	a.Renamed = "A"
	if a.Name() != "A" {
		t.Fatalf("expected renamed name, got %q", a.Name())
	}
	if b.Name() != "x" {
		t.Fatalf("expected original name before assignment, got %q", b.Name())
	}
}

func TestDeclNameTraversesDecorators(t *testing.T) {
	sym := NewSymbol("p")
	leaf := &TypeDecl{DeclName: sym, Type: &IdentifierType{Names: []string{"int"}}}
	ptr := &PtrDecl{Type: leaf}
	arr := &ArrayDecl{Type: ptr}
	d := &Decl{NameOrig: "p", Type: arr}
	if d.DeclName() != sym {
		t.Fatalf("expected DeclName to find the TypeDecl leaf through Array/Ptr decorators")
	}
}

func TestDeclStorageHelpers(t *testing.T) {
	d := &Decl{Storage: []string{"extern"}}
	if !d.IsExtern() {
		t.Fatalf("expected IsExtern")
	}
	if d.IsTypedefStorage() {
		t.Fatalf("did not expect typedef storage")
	}
}
