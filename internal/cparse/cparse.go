// Package cparse is a pure projection layer: it drives modernc.org/cc/v3
// (the C11 front end also used by cxgo and ccgo in the wider Go ecosystem)
// and walks its grammar-shaped *cc.AST into the internal/ast node set. No
// renaming, rewriting, or reachability analysis happens here — this package
// only ever builds an AST, never mutates one that already exists.
//
// modernc.org/cc/v3 exposes its tree as one struct per grammar production,
// each with a Case enum selecting which right-hand side matched (the same
// shape other_examples' ccgo/v4 lib files dispatch on via "switch n.Case").
// This adapter mirrors that dispatch style one level at a time: a
// TranslationUnit is a right-linked list of ExternalDeclaration nodes, a
// Declaration pairs DeclarationSpecifiers with an InitDeclaratorList, a
// Declarator chains a Pointer onto a DirectDeclarator, and so on down to
// PrimaryExpression.
package cparse

import (
	"runtime"

	"modernc.org/cc/v3"

	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/logger"
	"github.com/hxb2012/oi/internal/ohno"
)

// Parse runs the real C11 front end over contents (already preprocessed)
// and projects the result onto internal/ast. filename is used only for
// diagnostics.
func Parse(filename, contents string) (*ast.FileAST, *logger.Source, error) {
	source := &logger.Source{PrettyPath: filename, Contents: contents}

	cfg, err := cc.NewConfig(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return nil, source, ohno.Preprocessor(err.Error())
	}
	cfg.IgnoreUndefinedIdentifiers = true

	tu, err := cc.Parse(cfg, nil, nil, []cc.Source{{Name: filename, Value: contents}})
	if err != nil {
		return nil, source, ohno.Parse(err.Error(), logger.Loc{})
	}

	w := &walker{source: source}
	file := &ast.FileAST{}
	for _, ed := range externalDeclarationsInOrder(tu.TranslationUnit) {
		d, err := w.externalDeclaration(ed)
		if err != nil {
			return nil, source, err
		}
		if d != nil {
			file.Decls = append(file.Decls, d...)
		}
	}
	return file, source, nil
}

type walker struct {
	source *logger.Source
}

func locOf(n cc.Node) logger.Loc {
	if n == nil {
		return logger.Loc{}
	}
	return logger.Loc{Start: int32(n.Position().Offset)}
}

// externalDeclarationsInOrder flattens cc/v3's right-linked
// TranslationUnit list (each node holds the *previous* node, so the tree
// is built tail-first) back into source order.
func externalDeclarationsInOrder(tu *cc.TranslationUnit) []*cc.ExternalDeclaration {
	var rev []*cc.ExternalDeclaration
	for tu != nil {
		rev = append(rev, tu.ExternalDeclaration)
		tu = tu.TranslationUnit
	}
	out := make([]*cc.ExternalDeclaration, len(rev))
	for i, ed := range rev {
		out[len(rev)-1-i] = ed
	}
	return out
}

// externalDeclaration projects one top-level grammar production. A single
// C "int a, b;" becomes more than one *ast.Decl; a function definition
// becomes exactly one *ast.FuncDef.
func (w *walker) externalDeclaration(ed *cc.ExternalDeclaration) ([]ast.ExtDecl, error) {
	switch ed.Case {
	case cc.ExternalDeclarationFuncDef:
		fd, err := w.functionDefinition(ed.FunctionDefinition)
		if err != nil {
			return nil, err
		}
		return []ast.ExtDecl{fd}, nil

	case cc.ExternalDeclarationDecl:
		return w.declaration(ed.Declaration)

	case cc.ExternalDeclarationEmpty, cc.ExternalDeclarationAsmStmt:
		return nil, nil

	default:
		return nil, ohno.Parse("unsupported top-level construct", locOf(ed))
	}
}
