// Package ast is the node model for one C translation unit. It plays the
// role that internal/js_ast plays for esbuild: tagged-union node variants
// (interfaces such as Expr and Stmt, each implemented by a family of
// concrete node structs such as *ID and *If, see expr.go/stmt.go) plus a Symbol type that every declaration-introducing
// node stamps onto every node that refers to it.
//
// Unlike esbuild's ast.Ref (a (sourceIndex, innerIndex) pair resolved
// through an ast.SymbolMap), a Symbol here is just a pointer: the whole
// translation unit lives in one address space and is rewritten in a single
// pass, so the extra indirection esbuild needs for parallel, multi-file
// parsing buys nothing. See the root DESIGN.md for this divergence.
package ast

import "github.com/hxb2012/oi/internal/logger"

// Symbol is the shared, mutable handle this model needs: every AST
// node that refers to a given declaration holds the same *Symbol pointer,
// so assigning Renamed once during the renamer's final pass is observed
// everywhere at once. Two Symbols are never equal by value alone: identity
// (pointer equality) is the only equality that matters, even when two
// distinct declarations share an Original name in different scopes.
type Symbol struct {
	Original string
	Renamed  string
}

// NewSymbol mints a fresh handle. Each call returns a distinct identity
// even when name is repeated: equality on symbols is identity.
func NewSymbol(name string) *Symbol {
	return &Symbol{Original: name}
}

// Name is what the printer emits: the renamed form once assigned, the
// original form otherwise (e.g. a dropped top-level declaration that a
// nested diagnostic still wants to name, or an extern symbol that is
// intentionally left unrenamed).
func (s *Symbol) Name() string {
	if s.Renamed != "" {
		return s.Renamed
	}
	return s.Original
}

// Namespace distinguishes the four C identifier spaces that must be kept
// apart: ordinary, tag, label and member, with typedef names and the three
// tag kinds given values of their own. It also serves as the namespace key
// of the renamer's per-declaration declare and reference sets
// (internal/renamer).
type Namespace uint8

const (
	NSOrdinary Namespace = iota
	NSTypedef
	NSStruct
	NSUnion
	NSEnum
	NSMember
	NSLabel
)

func (ns Namespace) String() string {
	switch ns {
	case NSOrdinary:
		return "ordinary"
	case NSTypedef:
		return "typedef"
	case NSStruct:
		return "struct"
	case NSUnion:
		return "union"
	case NSEnum:
		return "enum"
	case NSMember:
		return "member"
	case NSLabel:
		return "label"
	default:
		return "?"
	}
}

// Loc re-exports logger.Loc so that every node file can write "logger.Loc"
// without every caller of this package also importing internal/logger just
// to read a position back off a node.
type Loc = logger.Loc
