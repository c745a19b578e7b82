package cparse

import (
	"modernc.org/cc/v3"

	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
)

// specifiers is what a DeclarationSpecifiers / SpecifierQualifierList walk
// collects before any declarator is seen: the storage class, qualifiers,
// function specifiers, alignment expressions, and finally the base type
// itself (an IdentifierType / Struct / Union / Enum).
type specifiers struct {
	storage  []string
	quals    []string
	funcspec []string
	align    []ast.Expr
	base     ast.TypeNode
}

// declarationSpecifiers collects the specifiers ahead of a declarator; the
// base-type keyword run ("unsigned", "long", "long") becomes one
// IdentifierType, and a multi-keyword IdentifierType is never treated as a
// typedef reference.
func (w *walker) declarationSpecifiers(n *cc.DeclarationSpecifiers) (specifiers, error) {
	var s specifiers
	var names []string
	for ; n != nil; n = n.DeclarationSpecifiers {
		switch n.Case {
		case cc.DeclarationSpecifiersStorage:
			s.storage = append(s.storage, storageClassWord(n.StorageClassSpecifier))

		case cc.DeclarationSpecifiersTypeSpec:
			switch n.TypeSpecifier.Case {
			case cc.TypeSpecifierStructOrUnion:
				agg, err := w.structOrUnionSpecifier(n.TypeSpecifier.StructOrUnionSpecifier)
				if err != nil {
					return s, err
				}
				s.base = agg
			case cc.TypeSpecifierEnum:
				e, err := w.enumSpecifier(n.TypeSpecifier.EnumSpecifier)
				if err != nil {
					return s, err
				}
				s.base = e
			case cc.TypeSpecifierTypedefName:
				names = append(names, n.TypeSpecifier.Token.Value.String())
			default:
				names = append(names, typeSpecifierKeyword(n.TypeSpecifier.Case))
			}

		case cc.DeclarationSpecifiersTypeQual:
			s.quals = append(s.quals, typeQualifierWord(n.TypeQualifier))

		case cc.DeclarationSpecifiersFunc:
			s.funcspec = append(s.funcspec, funcSpecWord(n.FunctionSpecifier))

		case cc.DeclarationSpecifiersAlignSpec:
			e, err := w.alignmentSpecifier(n.AlignmentSpecifier)
			if err != nil {
				return s, err
			}
			s.align = append(s.align, e)
		}
	}
	if s.base == nil {
		if len(names) == 0 {
			names = []string{"int"}
		}
		s.base = &ast.IdentifierType{Names: names}
	}
	return s, nil
}

func (w *walker) alignmentSpecifier(n *cc.AlignmentSpecifier) (ast.Expr, error) {
	if n == nil {
		return nil, nil
	}
	if n.ConstantExpression != nil {
		return w.expr(n.ConstantExpression)
	}
	return &ast.Typename{Loc: locOf(n)}, nil
}

func storageClassWord(n *cc.StorageClassSpecifier) string {
	if n == nil {
		return ""
	}
	switch n.Case {
	case cc.StorageClassSpecifierTypedef:
		return "typedef"
	case cc.StorageClassSpecifierExtern:
		return "extern"
	case cc.StorageClassSpecifierStatic:
		return "static"
	case cc.StorageClassSpecifierAuto:
		return "auto"
	case cc.StorageClassSpecifierRegister:
		return "register"
	case cc.StorageClassSpecifierThreadLocal:
		return "_Thread_local"
	default:
		return ""
	}
}

func typeQualifierWord(n *cc.TypeQualifier) string {
	if n == nil {
		return ""
	}
	switch n.Case {
	case cc.TypeQualifierConst:
		return "const"
	case cc.TypeQualifierRestrict:
		return "restrict"
	case cc.TypeQualifierVolatile:
		return "volatile"
	case cc.TypeQualifierAtomic:
		return "_Atomic"
	default:
		return ""
	}
}

func funcSpecWord(n *cc.FunctionSpecifier) string {
	if n == nil {
		return ""
	}
	switch n.Case {
	case cc.FunctionSpecifierInline:
		return "inline"
	case cc.FunctionSpecifierNoreturn:
		return "_Noreturn"
	default:
		return ""
	}
}

func typeSpecifierKeyword(c cc.TypeSpecifierCase) string {
	switch c {
	case cc.TypeSpecifierVoid:
		return "void"
	case cc.TypeSpecifierChar:
		return "char"
	case cc.TypeSpecifierShort:
		return "short"
	case cc.TypeSpecifierInt:
		return "int"
	case cc.TypeSpecifierLong:
		return "long"
	case cc.TypeSpecifierFloat:
		return "float"
	case cc.TypeSpecifierDouble:
		return "double"
	case cc.TypeSpecifierSigned:
		return "signed"
	case cc.TypeSpecifierUnsigned:
		return "unsigned"
	case cc.TypeSpecifierBool:
		return "_Bool"
	case cc.TypeSpecifierComplex:
		return "_Complex"
	default:
		return "int"
	}
}

// structOrUnionSpecifier projects "struct/union Tag? { members }?". An
// anonymous aggregate (no tag) is left with an empty NameOrig;
// internal/rewriter mints its synthetic "_anonymous_N" tag later.
func (w *walker) structOrUnionSpecifier(n *cc.StructOrUnionSpecifier) (ast.TypeNode, error) {
	isUnion := n.StructOrUnion.Case == cc.StructOrUnionUnion
	tag := ""
	if n.Token2.Value != 0 {
		tag = n.Token2.Value.String()
	}

	var decls []*ast.Decl
	hasBody := n.StructDeclarationList != nil || n.Token3.Value != 0 // '{' seen
	if hasBody {
		for l := n.StructDeclarationList; l != nil; l = l.StructDeclarationList {
			ds, err := w.structDeclaration(l.StructDeclaration)
			if err != nil {
				return nil, err
			}
			decls = append(decls, ds...)
		}
		if decls == nil {
			decls = []*ast.Decl{}
		}
	}

	if isUnion {
		return &ast.Union{NameOrig: tag, Decls: unionDecls(decls, hasBody), Loc: locOf(n)}, nil
	}
	return &ast.Struct{NameOrig: tag, Decls: structDecls(decls, hasBody), Loc: locOf(n)}, nil
}

func structDecls(decls []*ast.Decl, hasBody bool) []*ast.Decl {
	if !hasBody {
		return nil
	}
	return decls
}

func unionDecls(decls []*ast.Decl, hasBody bool) []*ast.Decl {
	if !hasBody {
		return nil
	}
	return decls
}

// structDeclaration projects one member-declaration line, which may
// introduce several member declarators sharing one specifier-qualifier
// list (member-namespace naming is assigned later, by internal/renamer,
// positionally over the returned slice).
func (w *walker) structDeclaration(n *cc.StructDeclaration) ([]*ast.Decl, error) {
	spec, err := w.specifierQualifierList(n.SpecifierQualifierList)
	if err != nil {
		return nil, err
	}
	var out []*ast.Decl
	for l := n.StructDeclaratorList; l != nil; l = l.StructDeclaratorList {
		sd := l.StructDeclarator
		var bitSize ast.Expr
		if sd.ConstantExpression != nil {
			bitSize, err = w.expr(sd.ConstantExpression)
			if err != nil {
				return nil, err
			}
		}
		var decl *ast.Decl
		if sd.Declarator != nil {
			decl, err = w.buildDecl(spec, sd.Declarator, nil)
			if err != nil {
				return nil, err
			}
		} else {
			decl = &ast.Decl{Type: &ast.TypeDecl{Type: spec.base}, Quals: spec.quals, Loc: locOf(n)}
		}
		decl.BitSize = bitSize
		out = append(out, decl)
	}
	return out, nil
}

func (w *walker) specifierQualifierList(n *cc.SpecifierQualifierList) (specifiers, error) {
	var s specifiers
	var names []string
	for ; n != nil; n = n.SpecifierQualifierList {
		switch n.Case {
		case cc.SpecifierQualifierListTypeSpec:
			switch n.TypeSpecifier.Case {
			case cc.TypeSpecifierStructOrUnion:
				agg, err := w.structOrUnionSpecifier(n.TypeSpecifier.StructOrUnionSpecifier)
				if err != nil {
					return s, err
				}
				s.base = agg
			case cc.TypeSpecifierEnum:
				e, err := w.enumSpecifier(n.TypeSpecifier.EnumSpecifier)
				if err != nil {
					return s, err
				}
				s.base = e
			case cc.TypeSpecifierTypedefName:
				names = append(names, n.TypeSpecifier.Token.Value.String())
			default:
				names = append(names, typeSpecifierKeyword(n.TypeSpecifier.Case))
			}
		case cc.SpecifierQualifierListTypeQual:
			s.quals = append(s.quals, typeQualifierWord(n.TypeQualifier))
		}
	}
	if s.base == nil {
		if len(names) == 0 {
			names = []string{"int"}
		}
		s.base = &ast.IdentifierType{Names: names}
	}
	return s, nil
}

// enumSpecifier projects "enum Tag? { A, B = 2, ... }?".
func (w *walker) enumSpecifier(n *cc.EnumSpecifier) (*ast.Enum, error) {
	tag := ""
	if n.Token2.Value != 0 {
		tag = n.Token2.Value.String()
	}
	hasBody := n.EnumeratorList != nil
	var values []*ast.Enumerator
	for l := n.EnumeratorList; l != nil; l = l.EnumeratorList {
		en := l.Enumerator
		name := en.Token.Value.String()
		var val ast.Expr
		var err error
		if en.ConstantExpression != nil {
			val, err = w.expr(en.ConstantExpression)
			if err != nil {
				return nil, err
			}
		}
		values = append(values, &ast.Enumerator{NameOrig: name, Value: val, Loc: locOf(en)})
	}
	if hasBody && values == nil {
		values = []*ast.Enumerator{}
	}
	return &ast.Enum{NameOrig: tag, Values: values, Loc: locOf(n)}, nil
}

// buildDecl applies a Declarator's Pointer/DirectDeclarator chain on top of
// base, producing one *ast.Decl whose TypeDecl leaf carries a fresh Symbol
// for the declared name. init, when non-nil, becomes the declarator's
// initializer.
func (w *walker) buildDecl(spec specifiers, d *cc.Declarator, init ast.Expr) (*ast.Decl, error) {
	leaf := &ast.TypeDecl{Type: spec.base, Quals: spec.quals}
	t, name, err := w.directDeclarator(d.DirectDeclarator, ast.TypeNode(leaf))
	if err != nil {
		return nil, err
	}
	t = applyPointer(d.Pointer, t)
	if name != "" {
		leaf.DeclName = ast.NewSymbol(name)
	}
	return &ast.Decl{
		Type:     t,
		Init:     init,
		NameOrig: name,
		Quals:    spec.quals,
		Storage:  spec.storage,
		Funcspec: spec.funcspec,
		Align:    spec.align,
		Loc:      locOf(d),
	}, nil
}

// applyPointer wraps inner in one ast.PtrDecl per level of d's Pointer
// chain, innermost level first (closest to the declared name).
func applyPointer(p *cc.Pointer, inner ast.TypeNode) ast.TypeNode {
	if p == nil {
		return inner
	}
	var quals []string
	for q := p.TypeQualifiers; q != nil; q = q.TypeQualifiers {
		quals = append(quals, typeQualifierWord(q.TypeQualifier))
	}
	return applyPointer(p.Pointer, &ast.PtrDecl{Quals: quals, Type: inner})
}

// directDeclarator walks the grammar's DirectDeclarator chain, wrapping
// inner (the type built so far, working from the leaf outward) in
// ArrayDecl/FuncDecl layers and returning the declared identifier once
// DirectDeclaratorIdent is reached.
func (w *walker) directDeclarator(n *cc.DirectDeclarator, inner ast.TypeNode) (ast.TypeNode, string, error) {
	if n == nil {
		return inner, "", nil
	}
	switch n.Case {
	case cc.DirectDeclaratorIdent:
		return inner, n.Token.Value.String(), nil

	case cc.DirectDeclaratorDecl:
		t := applyPointer(n.Declarator.Pointer, inner)
		return w.directDeclarator(n.Declarator.DirectDeclarator, t)

	case cc.DirectDeclaratorArr, cc.DirectDeclaratorStaticArr, cc.DirectDeclaratorArrStatic, cc.DirectDeclaratorStar:
		var dim ast.Expr
		var err error
		if n.AssignmentExpression != nil {
			dim, err = w.expr(n.AssignmentExpression)
			if err != nil {
				return nil, "", err
			}
		}
		return w.directDeclarator(n.DirectDeclarator, &ast.ArrayDecl{Type: inner, Dim: dim})

	case cc.DirectDeclaratorFuncParam:
		params, ellipsis, err := w.parameterTypeList(n.ParameterTypeList)
		if err != nil {
			return nil, "", err
		}
		return w.directDeclarator(n.DirectDeclarator, &ast.FuncDecl{Params: params, Type: inner, Ellipsis: ellipsis})

	case cc.DirectDeclaratorFuncIdent2:
		return w.directDeclarator(n.DirectDeclarator, &ast.FuncDecl{Type: inner, NoPrototype: true})

	case cc.DirectDeclaratorFuncIdent:
		return nil, "", ohno.Parse("K&R function declarators are not supported", locOf(n))

	default:
		return nil, "", ohno.Parse("unsupported declarator form", locOf(n))
	}
}

func (w *walker) parameterTypeList(n *cc.ParameterTypeList) ([]*ast.Decl, bool, error) {
	if n == nil {
		return nil, false, nil
	}
	ellipsis := n.Case == cc.ParameterTypeListDots
	var params []*ast.Decl
	for l := n.ParameterList; l != nil; l = l.ParameterList {
		pd := l.ParameterDeclaration
		spec, err := w.declarationSpecifiers(pd.DeclarationSpecifiers)
		if err != nil {
			return nil, false, err
		}
		if pd.Declarator != nil {
			d, err := w.buildDecl(spec, pd.Declarator, nil)
			if err != nil {
				return nil, false, err
			}
			params = append(params, d)
		} else {
			params = append(params, &ast.Decl{Type: &ast.TypeDecl{Type: spec.base}, Quals: spec.quals, Loc: locOf(pd)})
		}
	}
	// A single abstract "void" parameter ("int f(void)") is C's spelling for
	// "no parameters, and say so explicitly" rather than a real parameter;
	// collapse it so the printer's NoPrototype==false/Params==nil path emits
	// the "void" keyword back out instead of an empty parameter list.
	if len(params) == 1 && isBareVoid(params[0]) {
		params = nil
	}
	return params, ellipsis, nil
}

func isBareVoid(d *ast.Decl) bool {
	if d.NameOrig != "" {
		return false
	}
	td, ok := d.Type.(*ast.TypeDecl)
	if !ok {
		return false
	}
	it, ok := td.Type.(*ast.IdentifierType)
	return ok && len(it.Names) == 1 && it.Names[0] == "void"
}

// typeName projects an abstract declarator used in a cast, sizeof(T), or a
// compound literal's element type: a SpecifierQualifierList with no
// declared name (the Typename node).
func (w *walker) typeName(n *cc.TypeName) (*ast.Typename, error) {
	spec, err := w.specifierQualifierList(n.SpecifierQualifierList)
	if err != nil {
		return nil, err
	}
	t := ast.TypeNode(&ast.TypeDecl{Type: spec.base, Quals: spec.quals})
	if n.AbstractDeclarator != nil {
		// DirectAbstractDeclarator's array/function decorators (e.g. a cast to
		// "int (*)(void)") are not projected; see DESIGN.md. Pointer levels are.
		t = applyPointer(n.AbstractDeclarator.Pointer, t)
	}
	return &ast.Typename{Type: t, Loc: locOf(n)}, nil
}
