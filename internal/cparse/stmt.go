package cparse

import (
	"modernc.org/cc/v3"

	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
)

func (w *walker) compoundStatement(n *cc.CompoundStatement) (*ast.Compound, error) {
	c := &ast.Compound{Loc: locOf(n)}
	for l := n.BlockItemList; l != nil; l = l.BlockItemList {
		items, err := w.blockItem(l.BlockItem)
		if err != nil {
			return nil, err
		}
		c.Items = append(c.Items, items...)
	}
	return c, nil
}

func (w *walker) blockItem(n *cc.BlockItem) ([]ast.BlockItem, error) {
	switch n.Case {
	case cc.BlockItemDecl:
		ext, err := w.declaration(n.Declaration)
		if err != nil {
			return nil, err
		}
		items := make([]ast.BlockItem, 0, len(ext))
		for _, e := range ext {
			bi, ok := e.(ast.BlockItem)
			if !ok {
				continue
			}
			items = append(items, bi)
		}
		return items, nil

	case cc.BlockItemStmt:
		s, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return []ast.BlockItem{s}, nil

	default:
		return nil, nil
	}
}

func (w *walker) statement(n *cc.Statement) (ast.Stmt, error) {
	switch n.Case {
	case cc.StatementLabeled:
		return w.labeledStatement(n.LabeledStatement)
	case cc.StatementCompound:
		return w.compoundStatement(n.CompoundStatement)
	case cc.StatementExpr:
		return w.expressionStatement(n.ExpressionStatement)
	case cc.StatementSelection:
		return w.selectionStatement(n.SelectionStatement)
	case cc.StatementIteration:
		return w.iterationStatement(n.IterationStatement)
	case cc.StatementJump:
		return w.jumpStatement(n.JumpStatement)
	case cc.StatementAsm:
		return &ast.EmptyStatement{Loc: locOf(n)}, nil
	default:
		return nil, ohno.Parse("unsupported statement form", locOf(n))
	}
}

func (w *walker) labeledStatement(n *cc.LabeledStatement) (ast.Stmt, error) {
	switch n.Case {
	case cc.LabeledStatementLabel:
		inner, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.Label{NameOrig: n.Token.Value.String(), Stmt: inner, Loc: locOf(n)}, nil

	case cc.LabeledStatementCaseLabel:
		e, err := w.expr(n.ConstantExpression)
		if err != nil {
			return nil, err
		}
		stmts, err := w.statementAsBlockItems(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.Case{Expr: e, Stmts: stmts, Loc: locOf(n)}, nil

	case cc.LabeledStatementDefault:
		stmts, err := w.statementAsBlockItems(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.Default{Stmts: stmts, Loc: locOf(n)}, nil

	default:
		return nil, ohno.Parse("unsupported labeled-statement form (GNU case ranges are not supported)", locOf(n))
	}
}

// statementAsBlockItems wraps the single statement a "case"/"default" label
// introduces as a one-element block-item list, matching the Case/Default
// node shape ("Stmts []BlockItem").
func (w *walker) statementAsBlockItems(n *cc.Statement) ([]ast.BlockItem, error) {
	s, err := w.statement(n)
	if err != nil {
		return nil, err
	}
	return []ast.BlockItem{s}, nil
}

func (w *walker) expressionStatement(n *cc.ExpressionStatement) (ast.Stmt, error) {
	if n.ExpressionList == nil {
		return &ast.ExprStmt{Loc: locOf(n)}, nil
	}
	e, err := w.expr(n.ExpressionList)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: e, Loc: locOf(n)}, nil
}

func (w *walker) selectionStatement(n *cc.SelectionStatement) (ast.Stmt, error) {
	switch n.Case {
	case cc.SelectionStatementIf:
		cond, err := w.expr(n.ExpressionList)
		if err != nil {
			return nil, err
		}
		then, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Then: then, Loc: locOf(n)}, nil

	case cc.SelectionStatementIfElse:
		cond, err := w.expr(n.ExpressionList)
		if err != nil {
			return nil, err
		}
		then, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		els, err := w.statement(n.Statement2)
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Then: then, Else: els, Loc: locOf(n)}, nil

	case cc.SelectionStatementSwitch:
		cond, err := w.expr(n.ExpressionList)
		if err != nil {
			return nil, err
		}
		body, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.Switch{Cond: cond, Body: body, Loc: locOf(n)}, nil

	default:
		return nil, ohno.Parse("unsupported selection-statement form", locOf(n))
	}
}

func (w *walker) iterationStatement(n *cc.IterationStatement) (ast.Stmt, error) {
	switch n.Case {
	case cc.IterationStatementWhile:
		cond, err := w.expr(n.ExpressionList)
		if err != nil {
			return nil, err
		}
		body, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.While{Cond: cond, Body: body, Loc: locOf(n)}, nil

	case cc.IterationStatementDo:
		body, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		cond, err := w.expr(n.ExpressionList)
		if err != nil {
			return nil, err
		}
		return &ast.DoWhile{Cond: cond, Body: body, Loc: locOf(n)}, nil

	case cc.IterationStatementFor:
		var init ast.BlockItem
		if n.ExpressionList != nil {
			e, err := w.expr(n.ExpressionList)
			if err != nil {
				return nil, err
			}
			init = &ast.ExprStmt{Expr: e, Loc: locOf(n)}
		}
		cond, err := w.expr(n.ExpressionList2)
		if err != nil {
			return nil, err
		}
		next, err := w.expr(n.ExpressionList3)
		if err != nil {
			return nil, err
		}
		body, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.For{Init: init, Cond: cond, Next: next, Body: body, Loc: locOf(n)}, nil

	case cc.IterationStatementForDecl:
		ext, err := w.declaration(n.Declaration)
		if err != nil {
			return nil, err
		}
		decls := make([]*ast.Decl, 0, len(ext))
		for _, e := range ext {
			if d, ok := e.(*ast.Decl); ok {
				decls = append(decls, d)
			}
		}
		cond, err := w.expr(n.ExpressionList)
		if err != nil {
			return nil, err
		}
		next, err := w.expr(n.ExpressionList2)
		if err != nil {
			return nil, err
		}
		body, err := w.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.For{Init: &ast.DeclList{Decls: decls, Loc: locOf(n)}, Cond: cond, Next: next, Body: body, Loc: locOf(n)}, nil

	default:
		return nil, ohno.Parse("unsupported iteration-statement form", locOf(n))
	}
}

func (w *walker) jumpStatement(n *cc.JumpStatement) (ast.Stmt, error) {
	switch n.Case {
	case cc.JumpStatementGoto:
		return &ast.Goto{NameOrig: n.Token2.Value.String(), Loc: locOf(n)}, nil
	case cc.JumpStatementContinue:
		return &ast.Continue{Loc: locOf(n)}, nil
	case cc.JumpStatementBreak:
		return &ast.Break{Loc: locOf(n)}, nil
	case cc.JumpStatementReturn:
		if n.ExpressionList == nil {
			return &ast.Return{Loc: locOf(n)}, nil
		}
		e, err := w.expr(n.ExpressionList)
		if err != nil {
			return nil, err
		}
		return &ast.Return{Expr: e, Loc: locOf(n)}, nil
	default:
		return nil, ohno.Parse("unsupported jump-statement form (computed goto is not supported)", locOf(n))
	}
}
