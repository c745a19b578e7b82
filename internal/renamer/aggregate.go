package renamer

import (
	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
	"github.com/hxb2012/oi/internal/symtab"
)

// visitStruct binds or reuses s's tag and, if s carries a body, visits its
// member list. Struct and Union are handled by near-identical code; Enum
// differs enough (constants live in the ordinary namespace) to get its own
// function below.
func (r *Renamer) visitStruct(s *ast.Struct) error {
	sym, isNewDef, err := r.bindAggregateTag(
		s.NameOrig, s.HasBody(),
		r.curFrame.LookupStructName, r.curFrame.DeclareStructName,
		r.curFrame.HasLocalStructDecl,
		ast.NSStruct, s.Loc,
	)
	if err != nil {
		return err
	}
	s.Tag = sym
	if !s.HasBody() {
		return nil
	}
	if isNewDef {
		r.curFrame.DeclareStructDecl(s.NameOrig, s)
		if err := r.nameStructTag(s.Tag); err != nil {
			return err
		}
	}
	for i, m := range s.Decls {
		if err := r.visitMember(m, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renamer) visitUnion(u *ast.Union) error {
	sym, isNewDef, err := r.bindAggregateTag(
		u.NameOrig, u.HasBody(),
		r.curFrame.LookupUnionName, r.curFrame.DeclareUnionName,
		r.curFrame.HasLocalUnionDecl,
		ast.NSUnion, u.Loc,
	)
	if err != nil {
		return err
	}
	u.Tag = sym
	if !u.HasBody() {
		return nil
	}
	if isNewDef {
		r.curFrame.DeclareUnionDecl(u.NameOrig, u)
		if err := r.nameUnionTag(u.Tag); err != nil {
			return err
		}
	}
	for i, m := range u.Decls {
		if err := r.visitMember(m, i); err != nil {
			return err
		}
	}
	return nil
}

// bindAggregateTag implements the shared forward-declare/define/redefine
// logic for struct and enum tags: a bare reference binds a new incomplete
// tag the first time it is seen and reuses it afterward; a body defines it
// once and is a redefinition error the second time.
func (r *Renamer) bindAggregateTag(
	name string, hasBody bool,
	lookup func(string) (*ast.Symbol, *symtab.Frame, bool),
	declare func(string, *ast.Symbol),
	hasLocalDecl func(string) bool,
	ns ast.Namespace, loc ast.Loc,
) (sym *ast.Symbol, isNewDef bool, err error) {
	existing, owner, found := lookup(name)

	if hasBody {
		if found && owner == r.curFrame {
			if hasLocalDecl(name) {
				return nil, false, ohno.Redefinition(name, loc)
			}
			return existing, true, nil
		}
		sym = ast.NewSymbol(name)
		declare(name, sym)
		r.recordDeclare(r.curFrame, ns, name)
		return sym, true, nil
	}

	if found {
		if owner == r.curFrame {
			r.recordDeclare(r.curFrame, ns, name)
		} else {
			r.recordLookup(owner, ns, name)
		}
		return existing, false, nil
	}

	sym = ast.NewSymbol(name)
	declare(name, sym)
	r.recordDeclare(r.curFrame, ns, name)
	if err := r.nameTagByNamespace(ns, sym); err != nil {
		return nil, false, err
	}
	return sym, false, nil
}

func (r *Renamer) nameTagByNamespace(ns ast.Namespace, sym *ast.Symbol) error {
	switch ns {
	case ast.NSStruct:
		return r.nameStructTag(sym)
	case ast.NSUnion:
		return r.nameUnionTag(sym)
	case ast.NSEnum:
		return r.nameEnumTag(sym)
	}
	return nil
}

// visitEnum binds or reuses e's tag; when e carries a body it also binds
// every enumerator into the ordinary namespace (C enum constants live
// alongside variables and functions) and visits each constant's optional
// explicit value expression.
func (r *Renamer) visitEnum(e *ast.Enum) error {
	sym, isNewDef, err := r.bindAggregateTag(
		e.NameOrig, e.HasBody(),
		r.curFrame.LookupEnumName, r.curFrame.DeclareEnumName,
		r.curFrame.HasLocalEnumDecl,
		ast.NSEnum, e.Loc,
	)
	if err != nil {
		return err
	}
	e.Tag = sym
	if !e.HasBody() {
		return nil
	}
	if isNewDef {
		r.curFrame.DeclareEnumDecl(e.NameOrig, e)
		if err := r.nameEnumTag(e.Tag); err != nil {
			return err
		}
	}
	for _, v := range e.Values {
		if r.curFrame.HasLocalOrdinary(v.NameOrig) {
			return ohno.Redefinition(v.NameOrig, v.Loc)
		}
		v.Name = ast.NewSymbol(v.NameOrig)
		r.curFrame.DeclareOrdinary(v.NameOrig, &ast.IdentifierType{Names: []string{"int"}})
		r.ordinarySymbol(r.curFrame, v.NameOrig, v.Name)
		r.recordDeclare(r.curFrame, ast.NSOrdinary, v.NameOrig)
		if err := r.nameOrdinary(v.Name); err != nil {
			return err
		}
		if v.Value != nil {
			if err := r.visitExpr(v.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// visitMember assigns a struct/union field its positional renamed name:
// members are named purely by position within their aggregate, A, B,
// C, ... regardless of the global allocators. It also visits the member's
// type tree and bit-field width, if any.
func (r *Renamer) visitMember(m *ast.Decl, index int) error {
	if err := r.visitType(m.Type); err != nil {
		return err
	}
	if sym := m.DeclName(); sym != nil {
		name, err := symtab.Encode(index)
		if err != nil {
			return ohno.AlphabetExhaustedErr("member")
		}
		sym.Renamed = name
	}
	if m.BitSize != nil {
		if err := r.visitExpr(m.BitSize); err != nil {
			return err
		}
	}
	return nil
}
