package printer

import "github.com/hxb2012/oi/internal/ast"

// level is the minimum binding power a sub-expression must have to be
// printed without surrounding parentheses, the same idea esbuild's
// js_printer threads through as a Level parameter on every recursive
// printExpr call.
type level int

const (
	lowestLevel level = iota
	assignLevel
	ternaryLevel
	logicalOrLevel
	logicalAndLevel
	bitOrLevel
	bitXorLevel
	bitAndLevel
	equalityLevel
	relationalLevel
	shiftLevel
	additiveLevel
	multiplicativeLevel
	unaryLevel
	postfixLevel
)

var binaryOpLevel = map[string]level{
	"||": logicalOrLevel,
	"&&": logicalAndLevel,
	"|":  bitOrLevel,
	"^":  bitXorLevel,
	"&":  bitAndLevel,
	"==": equalityLevel, "!=": equalityLevel,
	"<": relationalLevel, ">": relationalLevel, "<=": relationalLevel, ">=": relationalLevel,
	"<<": shiftLevel, ">>": shiftLevel,
	"+": additiveLevel, "-": additiveLevel,
	"*": multiplicativeLevel, "/": multiplicativeLevel, "%": multiplicativeLevel,
}

// All of these operators are left-associative, which is the entire C
// binary operator set modeled here except assignment (right-associative,
// handled separately since ast.Assignment is its own node).
func levelOf(op string) level {
	if l, ok := binaryOpLevel[op]; ok {
		return l
	}
	return lowestLevel
}

func (p *Printer) printExprLevel(e ast.Expr, min level) {
	if e == nil {
		return
	}
	l, wrap := p.exprLevel(e)
	if wrap && l < min {
		p.print("(")
		p.printExprInner(e)
		p.print(")")
		return
	}
	p.printExprInner(e)
}

// exprLevel reports the level at which e binds and whether it is a kind
// of node that might ever need wrapping at all (leaves like ID/Constant
// never do).
func (p *Printer) exprLevel(e ast.Expr) (level, bool) {
	switch n := e.(type) {
	case *ast.ID, *ast.Constant:
		return postfixLevel, false
	case *ast.BinaryOp:
		return levelOf(n.Op), true
	case *ast.Assignment:
		return assignLevel, true
	case *ast.TernaryOp:
		return ternaryLevel, true
	case *ast.Cast, *ast.UnaryOp:
		return unaryLevel, true
	case *ast.FuncCall, *ast.ArrayRef, *ast.StructRef:
		return postfixLevel, true
	default:
		return lowestLevel, true
	}
}

func (p *Printer) printExprInner(e ast.Expr) {
	switch n := e.(type) {
	case *ast.ID:
		p.print(symbolName(n.Sym, n.NameOrig))

	case *ast.Constant:
		p.print(n.Value)

	case *ast.UnaryOp:
		p.printUnary(n)

	case *ast.BinaryOp:
		l := levelOf(n.Op)
		// Left-associative: the left child may print at the SAME level
		// without parens (the "reduce_parentheses" rule); the right child
		// needs one level higher to avoid silently reassociating.
		p.printExprLevelNoReduce(n.Left, l)
		p.print(n.Op)
		p.printExprLevel(n.Right, l+1)

	case *ast.TernaryOp:
		p.printExprLevel(n.Cond, ternaryLevel+1)
		p.print("?")
		p.printExprLevel(n.Then, lowestLevel)
		p.print(":")
		p.printExprLevel(n.Else, ternaryLevel)

	case *ast.Assignment:
		p.printExprLevel(n.LValue, assignLevel+1)
		p.print(n.Op)
		p.printExprLevel(n.RValue, assignLevel)

	case *ast.Cast:
		p.print("(")
		p.printTypename(n.ToType)
		p.print(")")
		p.printExprLevel(n.Expr, unaryLevel)

	case *ast.FuncCall:
		p.printExprLevel(n.Callee, postfixLevel)
		p.print("(")
		for i, a := range n.Args {
			if i > 0 {
				p.print(",")
			}
			p.printExprLevel(a, assignLevel)
		}
		p.print(")")

	case *ast.ArrayRef:
		p.printExprLevel(n.Array, postfixLevel)
		p.print("[")
		p.printExprLevel(n.Index, lowestLevel)
		p.print("]")

	case *ast.StructRef:
		p.printExprLevel(n.Target, postfixLevel)
		p.print(n.Op)
		p.print(symbolName(n.Field, n.FieldOrig))

	case *ast.ExprList:
		for i, sub := range n.Exprs {
			if i > 0 {
				p.print(",")
			}
			p.printExprLevel(sub, assignLevel)
		}

	case *ast.CompoundLiteral:
		p.print("(")
		p.printTypename(n.Type)
		p.print(")")
		p.printInitList(n.Init)

	case *ast.InitList:
		p.printInitList(n)

	default:
	}
}

// printExprLevelNoReduce prints a binary operator's left operand. With
// ReduceParens it behaves exactly like printExprLevel, so a left child at
// the same level prints without parentheses (every binary operator modeled
// here is left-associative); without ReduceParens it raises min by one, so
// such a child is wrapped in parentheses.
func (p *Printer) printExprLevelNoReduce(e ast.Expr, min level) {
	if !p.opts.ReduceParens {
		min++
	}
	p.printExprLevel(e, min)
}

func (p *Printer) printUnary(n *ast.UnaryOp) {
	switch n.Op {
	case "p++", "p--":
		p.printExprLevel(n.Operand, postfixLevel)
		p.print(n.Op[1:])
	case "sizeof":
		p.print("sizeof")
		p.space()
		p.printExprLevel(n.Operand, unaryLevel)
	default:
		p.print(n.Op)
		p.printExprLevel(n.Operand, unaryLevel)
	}
}

func (p *Printer) printTypename(tn *ast.Typename) {
	p.printBaseType(baseTypeOf(tn.Type))
	p.space()
	p.printDeclaratorSuffix(tn.Type, "")
}

func (p *Printer) printInitList(list *ast.InitList) {
	p.print("{")
	for i, item := range list.Inits {
		if i > 0 {
			p.print(",")
		}
		p.printInitItem(item)
	}
	p.print("}")
}

func (p *Printer) printInitItem(item ast.Expr) {
	named, ok := item.(*ast.NamedInitializer)
	if !ok {
		p.printExprLevel(item, assignLevel)
		return
	}
	for _, d := range named.Designators {
		if d.Index != nil {
			p.print("[")
			p.printExprLevel(d.Index, lowestLevel)
			p.print("]")
		} else {
			p.print(".")
			p.print(symbolName(d.Field, d.FieldOrig))
		}
	}
	p.print("=")
	p.printExprLevel(named.Value, assignLevel)
}
