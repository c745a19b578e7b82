package renamer

import (
	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
	"github.com/hxb2012/oi/internal/symtab"
)

// assignFinalNames is the final naming pass: once reachability pruning has
// run, walk the surviving top-level declarations in source
// order and assign names from the four global allocators to every symbol
// that is still unrenamed, except the declared name of an extern Decl.
// Anything renamed already (a function's locals,
// a struct member, a per-function label) was assigned eagerly during the
// first traversal and is left untouched here.
func (r *Renamer) assignFinalNames(decls []ast.ExtDecl) error {
	for _, d := range decls {
		switch n := d.(type) {
		case *ast.Decl:
			if !n.IsExtern() {
				if err := r.assignOrdinary(n.DeclName()); err != nil {
					return err
				}
			}
			if err := r.assignType(n.Type); err != nil {
				return err
			}
		case *ast.Typedef:
			if err := r.assignOrdinary(n.DeclName()); err != nil {
				return err
			}
			if err := r.assignType(n.Type); err != nil {
				return err
			}
		case *ast.FuncDef:
			if err := r.assignOrdinary(n.Decl.DeclName()); err != nil {
				return err
			}
			if err := r.assignType(n.Decl.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renamer) assignOrdinary(sym *ast.Symbol) error {
	if sym == nil || sym.Renamed != "" {
		return nil
	}
	if sym.Original == "main" {
		sym.Renamed = sym.Original
		return nil
	}
	name, err := r.declAlloc.Next()
	if err != nil {
		return ohno.AlphabetExhaustedErr("ordinary")
	}
	sym.Renamed = name
	return nil
}

func (r *Renamer) assignType(t ast.TypeNode) error {
	switch n := t.(type) {
	case *ast.PtrDecl:
		return r.assignType(n.Type)
	case *ast.ArrayDecl:
		return r.assignType(n.Type)
	case *ast.FuncDecl:
		for _, p := range n.Params {
			if err := r.assignType(p.Type); err != nil {
				return err
			}
		}
		return r.assignType(n.Type)
	case *ast.TypeDecl:
		return r.assignType(n.Type)
	case *ast.Struct:
		if err := r.assignTag(n.Tag, r.structAlloc); err != nil {
			return err
		}
		for _, m := range n.Decls {
			if err := r.assignType(m.Type); err != nil {
				return err
			}
		}
		return nil
	case *ast.Union:
		if err := r.assignTag(n.Tag, r.unionAlloc); err != nil {
			return err
		}
		for _, m := range n.Decls {
			if err := r.assignType(m.Type); err != nil {
				return err
			}
		}
		return nil
	case *ast.Enum:
		if err := r.assignTag(n.Tag, r.enumAlloc); err != nil {
			return err
		}
		for _, v := range n.Values {
			if err := r.assignOrdinary(v.Name); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func (r *Renamer) assignTag(sym *ast.Symbol, alloc *symtab.Allocator) error {
	if sym == nil || sym.Renamed != "" {
		return nil
	}
	name, err := alloc.Next()
	if err != nil {
		return ohno.AlphabetExhaustedErr("tag")
	}
	sym.Renamed = name
	return nil
}
