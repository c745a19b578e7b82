package renamer

import "github.com/hxb2012/oi/internal/ast"

// visitType walks a declarator's decorator chain down to its base type,
// resolving typedef references and visiting any inline struct/union/enum
// definition it carries. It never mints or renames the declarator's own
// DeclName; that is the caller's job (visitDecl/visitTypedef/param
// handling), since only the caller knows which namespace and frame the
// name belongs in.
func (r *Renamer) visitType(t ast.TypeNode) error {
	switch n := t.(type) {
	case *ast.PtrDecl:
		return r.visitType(n.Type)

	case *ast.ArrayDecl:
		if n.Dim != nil {
			if err := r.visitExpr(n.Dim); err != nil {
				return err
			}
		}
		return r.visitType(n.Type)

	case *ast.FuncDecl:
		prev := r.pushFrame()
		defer r.popFrame(prev)
		for _, p := range n.Params {
			if err := r.visitDecl(p); err != nil {
				return err
			}
		}
		return r.visitType(n.Type)

	case *ast.TypeDecl:
		return r.visitBaseType(n.Type)

	default:
		return nil
	}
}

// visitBaseType handles the type sitting directly under a TypeDecl leaf:
// either a sequence of base-type keywords / a typedef name, or an inline
// aggregate definition/reference.
func (r *Renamer) visitBaseType(t ast.TypeNode) error {
	switch n := t.(type) {
	case *ast.IdentifierType:
		// A multi-word sequence ("unsigned", "long", "long") is always a
		// base type, never a typedef lookup; only a single bare name is a
		// candidate typedef reference.
		if len(n.Names) == 1 {
			_, owner, ok := r.curFrame.LookupTypedef(n.Names[0])
			if ok {
				r.recordLookup(owner, ast.NSTypedef, n.Names[0])
			}
		}
		return nil

	case *ast.Struct:
		return r.visitStruct(n)

	case *ast.Union:
		return r.visitUnion(n)

	case *ast.Enum:
		return r.visitEnum(n)

	default:
		return nil
	}
}

// typeDeclLeaf mirrors internal/rewriter's leafTypeDecl; kept as a private
// copy since renamer has its own reason to walk down to a TypeDecl (to
// alias a redeclaration's Symbol onto the canonical one).
func typeDeclLeaf(t ast.TypeNode) *ast.TypeDecl {
	switch n := t.(type) {
	case *ast.PtrDecl:
		return typeDeclLeaf(n.Type)
	case *ast.ArrayDecl:
		return typeDeclLeaf(n.Type)
	case *ast.FuncDecl:
		return typeDeclLeaf(n.Type)
	case *ast.TypeDecl:
		return n
	default:
		return nil
	}
}

// resolveMemberType chases a field's declared type down to the aggregate
// it names, following at most one typedef indirection and one pointer
// decorator: the receiver's static type is resolved by chasing at most one
// typedef and unwrapping at most one pointer or array layer before giving
// up. A bare tag reference ("struct S s;" declared after a separate
// "struct S {...};") lands on a body-less node, so the tag is also
// resolved against the frame's defining declaration before returning.
func (r *Renamer) resolveMemberType(t ast.TypeNode) ast.TypeNode {
	stripped := false
	if p, ok := t.(*ast.PtrDecl); ok {
		t, stripped = p.Type, true
	}
	t = unwrapOnce(t)
	if id, ok := t.(*ast.IdentifierType); ok && len(id.Names) == 1 {
		if resolved, _, ok := r.curFrame.LookupTypedef(id.Names[0]); ok {
			if p, ok := resolved.(*ast.PtrDecl); ok && !stripped {
				resolved = p.Type
			}
			t = unwrapOnce(resolved)
		}
	}
	return r.resolveTagBody(t)
}

// resolveTagBody substitutes a body-less struct/union/enum tag reference
// with the frame's defining node for that tag, falling back to the
// reference itself (member lookup then reports MemberNotFound) if no
// defining declaration is in scope.
func (r *Renamer) resolveTagBody(t ast.TypeNode) ast.TypeNode {
	switch n := t.(type) {
	case *ast.Struct:
		if n.HasBody() {
			return n
		}
		if def, _, ok := r.curFrame.LookupStructDecl(n.NameOrig); ok {
			return def
		}
		return n

	case *ast.Union:
		if n.HasBody() {
			return n
		}
		if def, _, ok := r.curFrame.LookupUnionDecl(n.NameOrig); ok {
			return def
		}
		return n

	case *ast.Enum:
		if n.HasBody() {
			return n
		}
		if def, _, ok := r.curFrame.LookupEnumDecl(n.NameOrig); ok {
			return def
		}
		return n

	default:
		return t
	}
}

func unwrapOnce(t ast.TypeNode) ast.TypeNode {
	switch n := t.(type) {
	case *ast.PtrDecl:
		return n.Type
	case *ast.ArrayDecl:
		return n.Type
	case *ast.TypeDecl:
		return n.Type
	default:
		return t
	}
}
