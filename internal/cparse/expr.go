package cparse

import (
	"modernc.org/cc/v3"

	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
)

// expr dispatches on the concrete grammar-node type cc/v3 hands back for any
// of the several expression entry points this adapter needs (a full comma
// expression, a bare assignment-expression, or a constant-expression used
// as an array dimension / bit-field width / enumerator value), then walks
// the precedence cascade down to PrimaryExpression.
func (w *walker) expr(n cc.ExpressionNode) (ast.Expr, error) {
	switch x := n.(type) {
	case nil:
		return nil, nil
	case *cc.ExpressionList:
		return w.expressionList(x)
	case *cc.ConstantExpression:
		return w.conditionalExpression(x.ConditionalExpression)
	case *cc.AssignmentExpression:
		return w.assignmentExpression(x)
	case *cc.ConditionalExpression:
		return w.conditionalExpression(x)
	default:
		return nil, ohno.Parse("unsupported expression form", locOf(n))
	}
}

func (w *walker) expressionList(n *cc.ExpressionList) (ast.Expr, error) {
	if n == nil {
		return nil, nil
	}
	if n.ExpressionList == nil {
		return w.assignmentExpression(n.AssignmentExpression)
	}
	l, err := w.expressionList(n.ExpressionList)
	if err != nil {
		return nil, err
	}
	r, err := w.assignmentExpression(n.AssignmentExpression)
	if err != nil {
		return nil, err
	}
	return &ast.ExprList{Exprs: []ast.Expr{l, r}, Loc: locOf(n)}, nil
}

var assignOps = map[cc.AssignmentExpressionCase]string{
	cc.AssignmentExpressionAssign: "=",
	cc.AssignmentExpressionMul:    "*=",
	cc.AssignmentExpressionDiv:    "/=",
	cc.AssignmentExpressionMod:    "%=",
	cc.AssignmentExpressionAdd:    "+=",
	cc.AssignmentExpressionSub:    "-=",
	cc.AssignmentExpressionLsh:    "<<=",
	cc.AssignmentExpressionRsh:    ">>=",
	cc.AssignmentExpressionAnd:    "&=",
	cc.AssignmentExpressionXor:    "^=",
	cc.AssignmentExpressionOr:     "|=",
}

func (w *walker) assignmentExpression(n *cc.AssignmentExpression) (ast.Expr, error) {
	if n == nil {
		return nil, nil
	}
	if n.Case == cc.AssignmentExpressionCond {
		return w.conditionalExpression(n.ConditionalExpression)
	}
	op, ok := assignOps[n.Case]
	if !ok {
		return nil, ohno.Parse("unsupported assignment operator", locOf(n))
	}
	lhs, err := w.unaryExpression(n.UnaryExpression)
	if err != nil {
		return nil, err
	}
	rhs, err := w.assignmentExpression(n.AssignmentExpression)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{LValue: lhs, RValue: rhs, Op: op, Loc: locOf(n)}, nil
}

func (w *walker) conditionalExpression(n *cc.ConditionalExpression) (ast.Expr, error) {
	if n == nil {
		return nil, nil
	}
	if n.Case == cc.ConditionalExpressionLOr {
		return w.logicalOrExpression(n.LogicalOrExpression)
	}
	cond, err := w.logicalOrExpression(n.LogicalOrExpression)
	if err != nil {
		return nil, err
	}
	then, err := w.expr(n.ExpressionList)
	if err != nil {
		return nil, err
	}
	els, err := w.conditionalExpression(n.ConditionalExpression)
	if err != nil {
		return nil, err
	}
	return &ast.TernaryOp{Cond: cond, Then: then, Else: els, Loc: locOf(n)}, nil
}

func (w *walker) logicalOrExpression(n *cc.LogicalOrExpression) (ast.Expr, error) {
	if n.Case == cc.LogicalOrExpressionLAnd {
		return w.logicalAndExpression(n.LogicalAndExpression)
	}
	l, err := w.logicalOrExpression(n.LogicalOrExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.logicalAndExpression(n.LogicalAndExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: "||", Loc: locOf(n)}, nil
}

func (w *walker) logicalAndExpression(n *cc.LogicalAndExpression) (ast.Expr, error) {
	if n.Case == cc.LogicalAndExpressionOr {
		return w.inclusiveOrExpression(n.InclusiveOrExpression)
	}
	l, err := w.logicalAndExpression(n.LogicalAndExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.inclusiveOrExpression(n.InclusiveOrExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: "&&", Loc: locOf(n)}, nil
}

func (w *walker) inclusiveOrExpression(n *cc.InclusiveOrExpression) (ast.Expr, error) {
	if n.Case == cc.InclusiveOrExpressionXor {
		return w.exclusiveOrExpression(n.ExclusiveOrExpression)
	}
	l, err := w.inclusiveOrExpression(n.InclusiveOrExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.exclusiveOrExpression(n.ExclusiveOrExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: "|", Loc: locOf(n)}, nil
}

func (w *walker) exclusiveOrExpression(n *cc.ExclusiveOrExpression) (ast.Expr, error) {
	if n.Case == cc.ExclusiveOrExpressionAnd {
		return w.andExpression(n.AndExpression)
	}
	l, err := w.exclusiveOrExpression(n.ExclusiveOrExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.andExpression(n.AndExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: "^", Loc: locOf(n)}, nil
}

func (w *walker) andExpression(n *cc.AndExpression) (ast.Expr, error) {
	if n.Case == cc.AndExpressionEq {
		return w.equalityExpression(n.EqualityExpression)
	}
	l, err := w.andExpression(n.AndExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.equalityExpression(n.EqualityExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: "&", Loc: locOf(n)}, nil
}

func (w *walker) equalityExpression(n *cc.EqualityExpression) (ast.Expr, error) {
	op := ""
	switch n.Case {
	case cc.EqualityExpressionRel:
		return w.relationalExpression(n.RelationalExpression)
	case cc.EqualityExpressionEq:
		op = "=="
	case cc.EqualityExpressionNeq:
		op = "!="
	}
	l, err := w.equalityExpression(n.EqualityExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.relationalExpression(n.RelationalExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: op, Loc: locOf(n)}, nil
}

func (w *walker) relationalExpression(n *cc.RelationalExpression) (ast.Expr, error) {
	op := ""
	switch n.Case {
	case cc.RelationalExpressionShift:
		return w.shiftExpression(n.ShiftExpression)
	case cc.RelationalExpressionLt:
		op = "<"
	case cc.RelationalExpressionGt:
		op = ">"
	case cc.RelationalExpressionLeq:
		op = "<="
	case cc.RelationalExpressionGeq:
		op = ">="
	}
	l, err := w.relationalExpression(n.RelationalExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.shiftExpression(n.ShiftExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: op, Loc: locOf(n)}, nil
}

func (w *walker) shiftExpression(n *cc.ShiftExpression) (ast.Expr, error) {
	op := ""
	switch n.Case {
	case cc.ShiftExpressionAdd:
		return w.additiveExpression(n.AdditiveExpression)
	case cc.ShiftExpressionLsh:
		op = "<<"
	case cc.ShiftExpressionRsh:
		op = ">>"
	}
	l, err := w.shiftExpression(n.ShiftExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.additiveExpression(n.AdditiveExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: op, Loc: locOf(n)}, nil
}

func (w *walker) additiveExpression(n *cc.AdditiveExpression) (ast.Expr, error) {
	op := ""
	switch n.Case {
	case cc.AdditiveExpressionMul:
		return w.multiplicativeExpression(n.MultiplicativeExpression)
	case cc.AdditiveExpressionAdd:
		op = "+"
	case cc.AdditiveExpressionSub:
		op = "-"
	}
	l, err := w.additiveExpression(n.AdditiveExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.multiplicativeExpression(n.MultiplicativeExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: op, Loc: locOf(n)}, nil
}

func (w *walker) multiplicativeExpression(n *cc.MultiplicativeExpression) (ast.Expr, error) {
	op := ""
	switch n.Case {
	case cc.MultiplicativeExpressionCast:
		return w.castExpression(n.CastExpression)
	case cc.MultiplicativeExpressionMul:
		op = "*"
	case cc.MultiplicativeExpressionDiv:
		op = "/"
	case cc.MultiplicativeExpressionMod:
		op = "%"
	}
	l, err := w.multiplicativeExpression(n.MultiplicativeExpression)
	if err != nil {
		return nil, err
	}
	r, err := w.castExpression(n.CastExpression)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: l, Right: r, Op: op, Loc: locOf(n)}, nil
}

func (w *walker) castExpression(n *cc.CastExpression) (ast.Expr, error) {
	if n.Case == cc.CastExpressionUnary {
		return w.unaryExpression(n.UnaryExpression)
	}
	tn, err := w.typeName(n.TypeName)
	if err != nil {
		return nil, err
	}
	e, err := w.castExpression(n.CastExpression)
	if err != nil {
		return nil, err
	}
	return &ast.Cast{ToType: tn, Expr: e, Loc: locOf(n)}, nil
}

func (w *walker) unaryExpression(n *cc.UnaryExpression) (ast.Expr, error) {
	switch n.Case {
	case cc.UnaryExpressionPostfix:
		return w.postfixExpression(n.PostfixExpression)
	case cc.UnaryExpressionInc:
		e, err := w.unaryExpression(n.UnaryExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "++", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionDec:
		e, err := w.unaryExpression(n.UnaryExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "--", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionAddrof:
		e, err := w.castExpression(n.CastExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "&", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionDeref:
		e, err := w.castExpression(n.CastExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "*", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionPlus:
		e, err := w.castExpression(n.CastExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "+", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionMinus:
		e, err := w.castExpression(n.CastExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "-", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionCpl:
		e, err := w.castExpression(n.CastExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "~", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionNot:
		e, err := w.castExpression(n.CastExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "!", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionSizeofExpr:
		e, err := w.unaryExpression(n.UnaryExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "sizeof", Operand: e, Loc: locOf(n)}, nil
	case cc.UnaryExpressionSizeofType:
		tn, err := w.typeName(n.TypeName)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "sizeof", Operand: tn, Loc: locOf(n)}, nil
	default:
		return nil, ohno.Parse("unsupported unary-expression form (_Alignof is not supported)", locOf(n))
	}
}

func (w *walker) postfixExpression(n *cc.PostfixExpression) (ast.Expr, error) {
	switch n.Case {
	case cc.PostfixExpressionPrimary:
		return w.primaryExpression(n.PrimaryExpression)

	case cc.PostfixExpressionIndex:
		arr, err := w.postfixExpression(n.PostfixExpression)
		if err != nil {
			return nil, err
		}
		idx, err := w.expr(n.ExpressionList)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayRef{Array: arr, Index: idx, Loc: locOf(n)}, nil

	case cc.PostfixExpressionCall:
		callee, err := w.postfixExpression(n.PostfixExpression)
		if err != nil {
			return nil, err
		}
		args, err := w.argumentExpressionList(n.ArgumentExpressionList)
		if err != nil {
			return nil, err
		}
		return &ast.FuncCall{Callee: callee, Args: args, Loc: locOf(n)}, nil

	case cc.PostfixExpressionSelect:
		target, err := w.postfixExpression(n.PostfixExpression)
		if err != nil {
			return nil, err
		}
		return &ast.StructRef{Target: target, FieldOrig: n.Token2.Value.String(), Op: ".", Loc: locOf(n)}, nil

	case cc.PostfixExpressionPSelect:
		target, err := w.postfixExpression(n.PostfixExpression)
		if err != nil {
			return nil, err
		}
		return &ast.StructRef{Target: target, FieldOrig: n.Token2.Value.String(), Op: "->", Loc: locOf(n)}, nil

	case cc.PostfixExpressionInc:
		e, err := w.postfixExpression(n.PostfixExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "p++", Operand: e, Loc: locOf(n)}, nil

	case cc.PostfixExpressionDec:
		e, err := w.postfixExpression(n.PostfixExpression)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: "p--", Operand: e, Loc: locOf(n)}, nil

	case cc.PostfixExpressionComplit:
		tn, err := w.typeName(n.TypeName)
		if err != nil {
			return nil, err
		}
		init, err := w.initializerList(n.InitializerList)
		if err != nil {
			return nil, err
		}
		return &ast.CompoundLiteral{Type: tn, Init: init, Loc: locOf(n)}, nil

	default:
		return nil, ohno.Parse("unsupported postfix-expression form", locOf(n))
	}
}

func (w *walker) argumentExpressionList(n *cc.ArgumentExpressionList) ([]ast.Expr, error) {
	var args []ast.Expr
	for ; n != nil; n = n.ArgumentExpressionList {
		e, err := w.assignmentExpression(n.AssignmentExpression)
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return args, nil
}

func (w *walker) primaryExpression(n *cc.PrimaryExpression) (ast.Expr, error) {
	switch n.Case {
	case cc.PrimaryExpressionIdent:
		return &ast.ID{NameOrig: n.Token.Value.String(), Loc: locOf(n)}, nil

	case cc.PrimaryExpressionInt:
		return &ast.Constant{Value: n.Token.Value.String(), Kind: ast.ConstInt, Loc: locOf(n)}, nil

	case cc.PrimaryExpressionFloat:
		return &ast.Constant{Value: n.Token.Value.String(), Kind: ast.ConstFloat, Loc: locOf(n)}, nil

	case cc.PrimaryExpressionChar, cc.PrimaryExpressionLChar:
		return &ast.Constant{Value: n.Token.Value.String(), Kind: ast.ConstChar, Loc: locOf(n)}, nil

	case cc.PrimaryExpressionString, cc.PrimaryExpressionLString:
		return &ast.Constant{Value: n.Token.Value.String(), Kind: ast.ConstString, Loc: locOf(n)}, nil

	case cc.PrimaryExpressionExpr:
		return w.expr(n.ExpressionList)

	default:
		return nil, ohno.Parse("unsupported primary-expression form (statement expressions and _Generic are not supported)", locOf(n))
	}
}

// initializer projects a single '=' initializer, which is either a plain
// assignment-expression or a brace-enclosed InitializerList.
func (w *walker) initializer(n *cc.Initializer) (ast.Expr, error) {
	if n.Case == cc.InitializerExpr {
		return w.assignmentExpression(n.AssignmentExpression)
	}
	return w.initializerList(n.InitializerList)
}

func (w *walker) initializerList(n *cc.InitializerList) (*ast.InitList, error) {
	if n == nil {
		return &ast.InitList{}, nil
	}
	list := &ast.InitList{Loc: locOf(n)}
	for l := n; l != nil; l = l.InitializerList {
		item, err := w.initializerListItem(l)
		if err != nil {
			return nil, err
		}
		list.Inits = append(list.Inits, item)
	}
	return list, nil
}

func (w *walker) initializerListItem(n *cc.InitializerList) (ast.Expr, error) {
	value, err := w.initializer(n.Initializer)
	if err != nil {
		return nil, err
	}
	if n.Designation == nil {
		return value, nil
	}
	designators, err := w.designatorList(n.Designation.DesignatorList)
	if err != nil {
		return nil, err
	}
	return &ast.NamedInitializer{Value: value, Designators: designators, Loc: locOf(n)}, nil
}

func (w *walker) designatorList(n *cc.DesignatorList) ([]ast.Designator, error) {
	var out []ast.Designator
	for ; n != nil; n = n.DesignatorList {
		d := n.Designator
		switch d.Case {
		case cc.DesignatorField, cc.DesignatorField2:
			out = append(out, ast.Designator{FieldOrig: d.Token2.Value.String()})
		case cc.DesignatorIndex:
			idx, err := w.expr(d.ConstantExpression)
			if err != nil {
				return nil, err
			}
			out = append(out, ast.Designator{Index: idx})
		default:
			return nil, ohno.Parse("unsupported designator form", locOf(d))
		}
	}
	return out, nil
}
