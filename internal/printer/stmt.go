package printer

import "github.com/hxb2012/oi/internal/ast"

func (p *Printer) printStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Compound:
		p.print("{")
		for _, item := range n.Items {
			p.printBlockItem(item)
		}
		p.print("}")

	case *ast.If:
		p.print("if")
		p.print("(")
		p.printExprLevel(n.Cond, lowestLevel)
		p.print(")")
		p.printStmt(n.Then)
		if n.Else != nil {
			p.print("else")
			p.printStmt(n.Else)
		}

	case *ast.For:
		p.print("for")
		p.print("(")
		if n.Init != nil {
			p.printBlockItem(n.Init)
		} else {
			p.print(";")
		}
		if n.Cond != nil {
			p.printExprLevel(n.Cond, lowestLevel)
		}
		p.print(";")
		if n.Next != nil {
			p.printExprLevel(n.Next, lowestLevel)
		}
		p.print(")")
		p.printStmt(n.Body)

	case *ast.While:
		p.print("while")
		p.print("(")
		p.printExprLevel(n.Cond, lowestLevel)
		p.print(")")
		p.printStmt(n.Body)

	case *ast.DoWhile:
		p.print("do")
		p.printStmt(n.Body)
		p.print("while")
		p.print("(")
		p.printExprLevel(n.Cond, lowestLevel)
		p.print(");")

	case *ast.Switch:
		p.print("switch")
		p.print("(")
		p.printExprLevel(n.Cond, lowestLevel)
		p.print(")")
		p.printStmt(n.Body)

	case *ast.Case:
		p.print("case")
		p.printExprLevel(n.Expr, lowestLevel)
		p.print(":")
		for _, item := range n.Stmts {
			p.printBlockItem(item)
		}

	case *ast.Default:
		p.print("default:")
		for _, item := range n.Stmts {
			p.printBlockItem(item)
		}

	case *ast.Return:
		p.print("return")
		if n.Expr != nil {
			p.space()
			p.printExprLevel(n.Expr, lowestLevel)
		}
		p.print(";")

	case *ast.Break:
		p.print("break;")

	case *ast.Continue:
		p.print("continue;")

	case *ast.Goto:
		p.print("goto")
		p.space()
		p.print(symbolName(n.Label, n.NameOrig))
		p.print(";")

	case *ast.Label:
		p.print(symbolName(n.Label, n.NameOrig))
		p.print(":")
		p.printStmt(n.Stmt)

	case *ast.EmptyStatement:
		p.print(";")

	case *ast.Pragma:
		p.print(n.Text)

	case *ast.StaticAssert:
		p.print("_Static_assert")
		p.print("(")
		p.printExprLevel(n.Cond, lowestLevel)
		p.print(",")
		p.print(n.Message)
		p.print(");")

	case *ast.DeclList:
		p.printDeclList(n.Decls)
		p.print(";")

	case *ast.ExprStmt:
		if n.Expr != nil {
			p.printExprLevel(n.Expr, lowestLevel)
		}
		p.print(";")
	}
}

func (p *Printer) printBlockItem(b ast.BlockItem) {
	switch n := b.(type) {
	case *ast.Decl:
		p.printDeclList([]*ast.Decl{n})
		p.print(";")
	case *ast.Typedef:
		p.print("typedef")
		p.space()
		p.printDeclarator(n.Type, n.NameOrig)
		p.print(";")
	default:
		if s, ok := b.(ast.Stmt); ok {
			p.printStmt(s)
		}
	}
}
