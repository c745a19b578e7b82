package ast

// TypeNode is the declarator/type chain pycparser calls a "type": a chain of
// decorators (PtrDecl, ArrayDecl, FuncDecl) ending in a TypeDecl leaf that
// names the declared identifier and points at the base type (IdentifierType
// or an aggregate).
type TypeNode interface{ isTypeNode() }

type PtrDecl struct {
	Quals []string
	Type  TypeNode
}

func (*PtrDecl) isTypeNode() {}

type ArrayDecl struct {
	Type     TypeNode
	Dim      Expr // nil for "[]"
	DimQuals []string
}

func (*ArrayDecl) isTypeNode() {}

// FuncDecl is the declarator-level function type (as opposed to FuncDef,
// which pairs one with a body). Ellipsis records a trailing "...".
//
// NoPrototype distinguishes an old-style empty parameter list ("int f()",
// which the printer must echo back as "()") from a genuine zero-parameter
// prototype ("int f(void)"): both have a nil Params, but only the latter
// prints the "void" keyword back out.
type FuncDecl struct {
	Params      []*Decl
	Type        TypeNode
	Ellipsis    bool
	NoPrototype bool
}

func (*FuncDecl) isTypeNode() {}

// TypeDecl is the leaf of a declarator chain: it carries the declared
// name (nil for abstract declarators, e.g. inside a cast or sizeof) and
// the base type underneath it.
type TypeDecl struct {
	DeclName *Symbol
	Quals    []string
	Type     TypeNode // *IdentifierType | *Struct | *Union | *Enum
}

func (*TypeDecl) isTypeNode() {}

// IdentifierType holds either a sequence of base-type keywords
// ("unsigned", "long", "long") or a single typedef name. A multi-keyword
// run always bypasses typedef resolution; internal/renamer preserves that
// behavior deliberately.
type IdentifierType struct {
	Names []string
}

func (*IdentifierType) isTypeNode() {}

// Struct, Union and Enum optionally carry a tag (Tag is nil for an
// anonymous aggregate prior to internal/rewriter minting a synthetic one)
// and optionally a body: Decls/Values == nil marks a reference-only
// occurrence (after internal/rewriter has split a shared definition, or
// for a plain "struct S;" forward reference).
type Struct struct {
	NameOrig string
	Tag      *Symbol
	Decls    []*Decl
	Loc      Loc
}

func (*Struct) isTypeNode() {}

func (s *Struct) HasBody() bool { return s.Decls != nil }

type Union struct {
	NameOrig string
	Tag      *Symbol
	Decls    []*Decl
	Loc      Loc
}

func (*Union) isTypeNode() {}

func (u *Union) HasBody() bool { return u.Decls != nil }

type Enum struct {
	NameOrig string
	Tag      *Symbol
	Values   []*Enumerator
	Loc      Loc
}

func (*Enum) isTypeNode() {}

func (e *Enum) HasBody() bool { return e.Values != nil }

type Enumerator struct {
	NameOrig string
	Name     *Symbol
	Value    Expr // nil if the constant has no explicit initializer
	Loc      Loc
}

// Typename is an abstract type used where no declarator is present: casts,
// sizeof(T), and the element type of a compound literal.
type Typename struct {
	Type TypeNode
	Loc  Loc
}

func (*Typename) isExpr() {}
