package renamer

import (
	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
)

func (r *Renamer) visitExpr(e ast.Expr) error {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ast.ID:
		t, owner, ok := r.curFrame.LookupOrdinary(n.NameOrig)
		if !ok {
			return ohno.At(ohno.ParseError, n.NameOrig, n.Loc)
		}
		_ = t
		r.recordLookup(owner, ast.NSOrdinary, n.NameOrig)
		if canonical, ok2 := r.ordinarySymbols[owner][n.NameOrig]; ok2 {
			n.Sym = canonical
		}
		return nil

	case *ast.Constant:
		return nil

	case *ast.UnaryOp:
		return r.visitExpr(n.Operand)

	case *ast.BinaryOp:
		if err := r.visitExpr(n.Left); err != nil {
			return err
		}
		return r.visitExpr(n.Right)

	case *ast.TernaryOp:
		if err := r.visitExpr(n.Cond); err != nil {
			return err
		}
		if err := r.visitExpr(n.Then); err != nil {
			return err
		}
		return r.visitExpr(n.Else)

	case *ast.Assignment:
		if err := r.visitExpr(n.LValue); err != nil {
			return err
		}
		return r.visitExpr(n.RValue)

	case *ast.Cast:
		if err := r.visitType(n.ToType.Type); err != nil {
			return err
		}
		return r.visitExpr(n.Expr)

	case *ast.FuncCall:
		if err := r.visitExpr(n.Callee); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := r.visitExpr(a); err != nil {
				return err
			}
		}
		return nil

	case *ast.ArrayRef:
		if err := r.visitExpr(n.Array); err != nil {
			return err
		}
		return r.visitExpr(n.Index)

	case *ast.StructRef:
		if err := r.visitExpr(n.Target); err != nil {
			return err
		}
		return r.resolveStructRef(n)

	case *ast.ExprList:
		for _, sub := range n.Exprs {
			if err := r.visitExpr(sub); err != nil {
				return err
			}
		}
		return nil

	case *ast.CompoundLiteral:
		if err := r.visitType(n.Type.Type); err != nil {
			return err
		}
		return r.visitInit(n.Type.Type, n.Init)

	case *ast.InitList:
		return r.visitExpr(&ast.ExprList{Exprs: n.Inits})

	case *ast.NamedInitializer:
		for i := range n.Designators {
			d := &n.Designators[i]
			if d.Index != nil {
				if err := r.visitExpr(d.Index); err != nil {
					return err
				}
			}
		}
		return r.visitExpr(n.Value)

	case *ast.Typename:
		return r.visitType(n.Type)

	default:
		return nil
	}
}

// typeOf is a best-effort type resolver used only to figure out what a
// StructRef's target names; it never reports an error for an expression
// whose type it cannot determine; resolveStructRef turns that into a
// member-not-found diagnostic instead.
func (r *Renamer) typeOf(e ast.Expr) ast.TypeNode {
	switch n := e.(type) {
	case *ast.ID:
		t, _, ok := r.curFrame.LookupOrdinary(n.NameOrig)
		if !ok {
			return nil
		}
		return t

	case *ast.UnaryOp:
		switch n.Op {
		case "*":
			return derefOnce(r.typeOf(n.Operand))
		case "&":
			return &ast.PtrDecl{Type: r.typeOf(n.Operand)}
		default:
			return r.typeOf(n.Operand)
		}

	case *ast.ArrayRef:
		return derefOnce(r.typeOf(n.Array))

	case *ast.FuncCall:
		callee := r.typeOf(n.Callee)
		if fd, ok := unwrapFuncDecl(callee); ok {
			return fd.Type
		}
		return nil

	case *ast.StructRef:
		agg := r.resolveMemberType(r.typeOf(n.Target))
		field := findMember(agg, n.FieldOrig)
		if field == nil {
			return nil
		}
		return field.Type

	case *ast.Cast:
		return n.ToType.Type

	case *ast.CompoundLiteral:
		return n.Type.Type

	case *ast.Assignment:
		return r.typeOf(n.LValue)

	case *ast.TernaryOp:
		return r.typeOf(n.Then)

	default:
		return nil
	}
}

func derefOnce(t ast.TypeNode) ast.TypeNode {
	switch n := t.(type) {
	case *ast.PtrDecl:
		return n.Type
	case *ast.ArrayDecl:
		return n.Type
	default:
		return nil
	}
}

func unwrapFuncDecl(t ast.TypeNode) (*ast.FuncDecl, bool) {
	switch n := t.(type) {
	case *ast.FuncDecl:
		return n, true
	case *ast.PtrDecl:
		fd, ok := n.Type.(*ast.FuncDecl)
		return fd, ok
	default:
		return nil, false
	}
}

// findMember scans an already-resolved aggregate's member list for a field
// named name.
func findMember(agg ast.TypeNode, name string) *ast.Decl {
	switch a := agg.(type) {
	case *ast.Struct:
		return findMemberIn(a.Decls, name)
	case *ast.Union:
		return findMemberIn(a.Decls, name)
	default:
		return nil
	}
}

func findMemberIn(decls []*ast.Decl, name string) *ast.Decl {
	for _, d := range decls {
		if d.NameOrig == name {
			return d
		}
	}
	return nil
}

func (r *Renamer) resolveStructRef(sr *ast.StructRef) error {
	agg := r.resolveMemberType(r.typeOf(sr.Target))
	field := findMember(agg, sr.FieldOrig)
	if field == nil {
		return ohno.MemberNotFoundErr(sr.FieldOrig, sr.Loc)
	}
	sr.Field = field.DeclName()
	return nil
}
