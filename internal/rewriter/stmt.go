package rewriter

import "github.com/hxb2012/oi/internal/ast"

// rewriteStmt recurses into function bodies, compound statements, and the
// bodies of if/for/while/do-while/switch. It never descends into
// expressions or into a declarator's own type tree beyond the outermost
// declaration form.
func (r *Rewriter) rewriteStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Compound:
		rewriteRuns(n.Items, blockItemAsDecl, &r.anonCounter)
		for _, item := range n.Items {
			if st, ok := item.(ast.Stmt); ok {
				r.rewriteStmt(st)
			}
		}

	case *ast.If:
		r.rewriteStmt(n.Then)
		if n.Else != nil {
			r.rewriteStmt(n.Else)
		}

	case *ast.For:
		if dl, ok := n.Init.(*ast.DeclList); ok {
			rewriteRuns(dl.Decls, identityAsDecl, &r.anonCounter)
		}
		r.rewriteStmt(n.Body)

	case *ast.While:
		r.rewriteStmt(n.Body)

	case *ast.DoWhile:
		r.rewriteStmt(n.Body)

	case *ast.Switch:
		r.rewriteStmt(n.Body)

	case *ast.Case:
		for _, item := range n.Stmts {
			if st, ok := item.(ast.Stmt); ok {
				r.rewriteStmt(st)
			}
		}

	case *ast.Default:
		for _, item := range n.Stmts {
			if st, ok := item.(ast.Stmt); ok {
				r.rewriteStmt(st)
			}
		}

	case *ast.Label:
		r.rewriteStmt(n.Stmt)
	}
}
