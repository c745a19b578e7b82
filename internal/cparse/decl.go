package cparse

import (
	"modernc.org/cc/v3"

	"github.com/hxb2012/oi/internal/ast"
)

// declaration projects "DeclarationSpecifiers InitDeclaratorList? ;",
// producing one *ast.Typedef or *ast.Decl per declared name (the
// "one declarator, one declaration" split happens later, in
// internal/rewriter; this adapter still emits every name as its own node
// since a bare grammar-level InitDeclaratorList already separates them).
func (w *walker) declaration(n *cc.Declaration) ([]ast.ExtDecl, error) {
	if n.Case == cc.DeclarationAssert {
		return nil, nil // _Static_assert: not in the modeled node set, dropped
	}

	spec, err := w.declarationSpecifiers(n.DeclarationSpecifiers)
	if err != nil {
		return nil, err
	}
	isTypedef := false
	for _, s := range spec.storage {
		if s == "typedef" {
			isTypedef = true
		}
	}

	var out []ast.ExtDecl
	if n.InitDeclaratorList == nil {
		// A bare "struct S { ... };" with no declarator: the aggregate
		// definition itself is the payload, kept as one nameless Decl.
		leaf := &ast.TypeDecl{Type: spec.base, Quals: spec.quals}
		return []ast.ExtDecl{&ast.Decl{Type: leaf, Quals: spec.quals, Storage: spec.storage, Loc: locOf(n)}}, nil
	}
	for l := n.InitDeclaratorList; l != nil; l = l.InitDeclaratorList {
		id := l.InitDeclarator
		var init ast.Expr
		if id.Initializer != nil {
			init, err = w.initializer(id.Initializer)
			if err != nil {
				return nil, err
			}
		}
		if isTypedef {
			leaf := &ast.TypeDecl{Type: spec.base, Quals: spec.quals}
			t, name, err := w.directDeclarator(id.Declarator.DirectDeclarator, ast.TypeNode(leaf))
			if err != nil {
				return nil, err
			}
			t = applyPointer(id.Declarator.Pointer, t)
			leaf.DeclName = ast.NewSymbol(name)
			out = append(out, &ast.Typedef{Type: t, NameOrig: name, Quals: spec.quals, Storage: spec.storage, Loc: locOf(n)})
			continue
		}
		d, err := w.buildDecl(spec, id.Declarator, init)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// functionDefinition projects "DeclarationSpecifiers Declarator
// CompoundStatement" (K&R-style parameter-declaration lists are out of
// scope and are rejected by directDeclarator's DirectDeclaratorFuncIdent
// case).
func (w *walker) functionDefinition(n *cc.FunctionDefinition) (*ast.FuncDef, error) {
	spec, err := w.declarationSpecifiers(n.DeclarationSpecifiers)
	if err != nil {
		return nil, err
	}
	decl, err := w.buildDecl(spec, n.Declarator, nil)
	if err != nil {
		return nil, err
	}
	body, err := w.compoundStatement(n.CompoundStatement)
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Decl: decl, Body: body, Loc: locOf(n)}, nil
}
