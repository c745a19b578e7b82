package ast

// Expr is implemented by every expression node in this model
// (ID, Constant, UnaryOp, ..., Typename — the last defined in types.go
// since it shares machinery with the declarator type chain).
type Expr interface{ isExpr() }

// ID is an identifier reference. Sym is nil until the renamer resolves it
// (to a variable, function, or enum constant); NameOrig is always the
// textual name as written, kept for diagnostics even after Sym is filled
// in.
type ID struct {
	Sym      *Symbol
	NameOrig string
	Loc      Loc
}

func (*ID) isExpr() {}

type ConstantKind uint8

const (
	ConstInt ConstantKind = iota
	ConstFloat
	ConstChar
	ConstString
)

type Constant struct {
	Value string
	Kind  ConstantKind
	Loc   Loc
}

func (*Constant) isExpr() {}

type UnaryOp struct {
	Operand Expr
	Op      string // "*", "&", "-", "+", "!", "~", "++", "--", "sizeof", "p++", "p--"
	Loc     Loc
}

func (*UnaryOp) isExpr() {}

type BinaryOp struct {
	Left  Expr
	Right Expr
	Op    string
	Loc   Loc
}

func (*BinaryOp) isExpr() {}

type TernaryOp struct {
	Cond Expr
	Then Expr
	Else Expr
	Loc  Loc
}

func (*TernaryOp) isExpr() {}

type Assignment struct {
	LValue Expr
	RValue Expr
	Op     string // "=", "+=", "-=", ...
	Loc    Loc
}

func (*Assignment) isExpr() {}

type Cast struct {
	ToType *Typename
	Expr   Expr
	Loc    Loc
}

func (*Cast) isExpr() {}

type FuncCall struct {
	Callee Expr
	Args   []Expr
	Loc    Loc
}

func (*FuncCall) isExpr() {}

type ArrayRef struct {
	Array Expr
	Index Expr
	Loc   Loc
}

func (*ArrayRef) isExpr() {}

// StructRef is a "." or "->" member access. FieldOrig is the textual member
// name; Field is resolved by the renamer to the matching member's Symbol
// (the "Member references" rule), at which point the printer emits
// Field's renamed name instead of FieldOrig.
type StructRef struct {
	Target    Expr
	Field     *Symbol
	FieldOrig string
	Op        string // "." or "->"
	Loc       Loc
}

func (*StructRef) isExpr() {}

type ExprList struct {
	Exprs []Expr
	Loc   Loc
}

func (*ExprList) isExpr() {}

type CompoundLiteral struct {
	Type *Typename
	Init *InitList
	Loc  Loc
}

func (*CompoundLiteral) isExpr() {}

// InitList holds both purely positional initializers and named ones
// (NamedInitializer); the "Initializers" rule walks this list tracking a
// cursor that NamedInitializer designators can reposition.
type InitList struct {
	Inits []Expr // each element is either a plain Expr or *NamedInitializer
	Loc   Loc
}

func (*InitList) isExpr() {}

// Designator is one "." member or "[expr]" index step of a designated
// initializer. Exactly one of FieldOrig or Index is set.
type Designator struct {
	Index     Expr
	Field     *Symbol
	FieldOrig string
}

type NamedInitializer struct {
	Value       Expr
	Designators []Designator
	Loc         Loc
}

func (*NamedInitializer) isExpr() {}
