package renamer

import (
	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
)

// visitInit walks an initializer against the type it is initializing: an
// InitList for a struct/union
// walks member declarations positionally, a "." designator repositions
// the cursor by resolving the named member (stamping its Symbol the same
// way a StructRef would), and an InitList for anything else (an array, or
// a scalar wrapped in redundant braces) just visits each element without
// member resolution.
func (r *Renamer) visitInit(t ast.TypeNode, init ast.Expr) error {
	list, ok := init.(*ast.InitList)
	if !ok {
		return r.visitExpr(init)
	}

	agg := r.resolveMemberType(t)
	elemType := arrayElementType(t)

	cursor := 0
	var members []*ast.Decl
	if s, ok := agg.(*ast.Struct); ok {
		members = s.Decls
	} else if u, ok := agg.(*ast.Union); ok {
		members = u.Decls
	}

	for _, item := range list.Inits {
		named, isNamed := item.(*ast.NamedInitializer)
		if !isNamed {
			var fieldType ast.TypeNode
			if members != nil {
				if cursor < len(members) {
					fieldType = members[cursor].Type
				}
				cursor++
			} else {
				fieldType = elemType
			}
			if err := r.visitInit(fieldType, item); err != nil {
				return err
			}
			continue
		}

		fieldType := elemType
		for i := range named.Designators {
			d := &named.Designators[i]
			if d.Index != nil {
				if err := r.visitExpr(d.Index); err != nil {
					return err
				}
				continue
			}
			if members == nil {
				continue
			}
			idx := indexOfMember(members, d.FieldOrig)
			if idx < 0 {
				return ohno.MemberNotFoundErr(d.FieldOrig, named.Loc)
			}
			d.Field = members[idx].DeclName()
			fieldType = members[idx].Type
			cursor = idx + 1
		}
		if err := r.visitInit(fieldType, named.Value); err != nil {
			return err
		}
	}
	return nil
}

func arrayElementType(t ast.TypeNode) ast.TypeNode {
	if arr, ok := t.(*ast.ArrayDecl); ok {
		return arr.Type
	}
	return nil
}

func indexOfMember(decls []*ast.Decl, name string) int {
	for i, d := range decls {
		if d.NameOrig == name {
			return i
		}
	}
	return -1
}
