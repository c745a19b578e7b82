package ast

// FileAST is the top-level node: an ordered list of external declarations.
// The "preservation of source order" invariant is expressed simply by
// keeping this a slice that the renamer filters in place rather than
// rebuilds.
type FileAST struct {
	Decls []ExtDecl
}

// ExtDecl is implemented by *Decl, *Typedef and *FuncDef: the three shapes
// that may appear directly inside FileAST.Decls, a Compound's block items,
// or a for-loop's init declarator list (DeclList).
type ExtDecl interface{ isExtDecl() }

// Decl is one declarator: a name, its qualifiers/storage/alignment, its
// type chain, and an optional initializer. A single C declaration such as
// "int a, b = 1;" becomes two *Decl values sharing nothing but (possibly) a
// pointed-to Struct/Union/Enum body.
type Decl struct {
	Type     TypeNode
	Init     Expr // nil if absent
	BitSize  Expr // nil unless this is a bit-field member
	NameOrig string
	Quals    []string
	Storage  []string // e.g. "extern", "static", "register"
	Funcspec []string // "inline", "_Noreturn"
	Align    []Expr
	Loc      Loc
}

func (*Decl) isExtDecl()   {}
func (*Decl) isBlockItem() {}

// DeclName returns the Symbol stamped on this declarator's TypeDecl leaf,
// or nil if the type chain hasn't reached one yet (shouldn't happen for a
// well-formed declarator, but callers that walk partially-built trees
// during parsing should not assume non-nil).
func (d *Decl) DeclName() *Symbol {
	return declNameOf(d.Type)
}

func declNameOf(t TypeNode) *Symbol {
	switch n := t.(type) {
	case *PtrDecl:
		return declNameOf(n.Type)
	case *ArrayDecl:
		return declNameOf(n.Type)
	case *FuncDecl:
		return declNameOf(n.Type)
	case *TypeDecl:
		return n.DeclName
	default:
		return nil
	}
}

// IsExtern reports whether this declaration carries the "extern" storage
// class, which means this declaration never gives its symbol a renamed
// name; a non-extern declaration of the same name that shares the symbol
// still does.
func (d *Decl) IsExtern() bool {
	for _, s := range d.Storage {
		if s == "extern" {
			return true
		}
	}
	return false
}

func (d *Decl) IsTypedefStorage() bool {
	for _, s := range d.Storage {
		if s == "typedef" {
			return true
		}
	}
	return false
}

// Typedef is its own node (distinct from Decl, mirroring pycparser) since a
// typedef binds into the typedefs namespace/table rather than decl_types.
type Typedef struct {
	Type     TypeNode
	NameOrig string
	Quals    []string
	Storage  []string
	Loc      Loc
}

func (*Typedef) isExtDecl()   {}
func (*Typedef) isBlockItem() {}

func (t *Typedef) DeclName() *Symbol {
	return declNameOf(t.Type)
}

// FuncDef pairs a function declarator with its body. K&R-style parameter
// declaration lists are out of scope and are not modeled.
type FuncDef struct {
	Decl *Decl
	Body *Compound
	Loc  Loc
}

func (*FuncDef) isExtDecl() {}
