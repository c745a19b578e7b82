package renamer

import "github.com/hxb2012/oi/internal/ast"

// visitCompoundBody visits a function's outermost block in the CURRENT
// frame rather than pushing a new one: C gives a function's parameters and
// its top-level block the same scope.
func (r *Renamer) visitCompoundBody(c *ast.Compound) error {
	for _, item := range c.Items {
		if err := r.visitBlockItem(item); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renamer) visitBlockItem(b ast.BlockItem) error {
	switch n := b.(type) {
	case *ast.Decl:
		return r.visitDecl(n)
	case *ast.Typedef:
		return r.visitTypedef(n)
	default:
		if s, ok := b.(ast.Stmt); ok {
			return r.visitStmt(s)
		}
		return nil
	}
}

func (r *Renamer) visitStmt(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.Compound:
		prev := r.pushFrame()
		defer r.popFrame(prev)
		return r.visitCompoundBody(n)

	case *ast.If:
		if err := r.visitExpr(n.Cond); err != nil {
			return err
		}
		if err := r.visitStmt(n.Then); err != nil {
			return err
		}
		if n.Else != nil {
			return r.visitStmt(n.Else)
		}
		return nil

	case *ast.For:
		prev := r.pushFrame()
		defer r.popFrame(prev)
		if n.Init != nil {
			if err := r.visitBlockItem(n.Init); err != nil {
				return err
			}
		}
		if n.Cond != nil {
			if err := r.visitExpr(n.Cond); err != nil {
				return err
			}
		}
		if n.Next != nil {
			if err := r.visitExpr(n.Next); err != nil {
				return err
			}
		}
		return r.visitStmt(n.Body)

	case *ast.While:
		if err := r.visitExpr(n.Cond); err != nil {
			return err
		}
		return r.visitStmt(n.Body)

	case *ast.DoWhile:
		if err := r.visitStmt(n.Body); err != nil {
			return err
		}
		return r.visitExpr(n.Cond)

	case *ast.Switch:
		if err := r.visitExpr(n.Cond); err != nil {
			return err
		}
		return r.visitStmt(n.Body)

	case *ast.Case:
		if err := r.visitExpr(n.Expr); err != nil {
			return err
		}
		for _, item := range n.Stmts {
			if err := r.visitBlockItem(item); err != nil {
				return err
			}
		}
		return nil

	case *ast.Default:
		for _, item := range n.Stmts {
			if err := r.visitBlockItem(item); err != nil {
				return err
			}
		}
		return nil

	case *ast.Return:
		if n.Expr != nil {
			return r.visitExpr(n.Expr)
		}
		return nil

	case *ast.Goto:
		sym, err := r.labelSymbol(n.NameOrig)
		if err != nil {
			return err
		}
		n.Label = sym
		return nil

	case *ast.Label:
		sym, err := r.labelSymbol(n.NameOrig)
		if err != nil {
			return err
		}
		n.Label = sym
		return r.visitStmt(n.Stmt)

	case *ast.DeclList:
		for _, d := range n.Decls {
			if err := r.visitDecl(d); err != nil {
				return err
			}
		}
		return nil

	case *ast.ExprStmt:
		if n.Expr != nil {
			return r.visitExpr(n.Expr)
		}
		return nil

	case *ast.StaticAssert:
		return r.visitExpr(n.Cond)

	case *ast.Break, *ast.Continue, *ast.EmptyStatement, *ast.Pragma:
		return nil

	default:
		return nil
	}
}
