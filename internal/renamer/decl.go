package renamer

import (
	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
	"github.com/hxb2012/oi/internal/symtab"
)

func (r *Renamer) visitExtDecl(e ast.ExtDecl) error {
	switch n := e.(type) {
	case *ast.Decl:
		return r.visitDecl(n)
	case *ast.Typedef:
		return r.visitTypedef(n)
	case *ast.FuncDef:
		return r.visitFuncDef(n)
	default:
		return nil
	}
}

// ordinarySymbol returns the canonical Symbol a previous declaration of
// name in f already minted, recording fresh as canonical the first time
// name is seen in f.
func (r *Renamer) ordinarySymbol(f *symtab.Frame, name string, fresh *ast.Symbol) *ast.Symbol {
	byName := r.ordinarySymbols[f]
	if byName == nil {
		byName = map[string]*ast.Symbol{}
		r.ordinarySymbols[f] = byName
	}
	if existing, ok := byName[name]; ok {
		return existing
	}
	byName[name] = fresh
	return fresh
}

func (r *Renamer) typedefSymbol(f *symtab.Frame, name string, fresh *ast.Symbol) *ast.Symbol {
	byName := r.typedefSymbols[f]
	if byName == nil {
		byName = map[string]*ast.Symbol{}
		r.typedefSymbols[f] = byName
	}
	if existing, ok := byName[name]; ok {
		return existing
	}
	byName[name] = fresh
	return fresh
}

// visitDecl handles one declarator, at any scope: file scope, a function
// parameter list, or a block item / for-loop init list. It resolves the
// type, declares (or reuses) the ordinary binding, assigns a name
// immediately if we're inside a function, and visits the initializer.
func (r *Renamer) visitDecl(d *ast.Decl) error {
	if err := r.visitType(d.Type); err != nil {
		return err
	}

	name := d.NameOrig
	if name == "" {
		// abstract declarator (a bare parameter type in a prototype)
		return nil
	}

	leaf := typeDeclLeaf(d.Type)
	sym := d.DeclName()

	_, _, already := r.curFrame.LookupOrdinary(name)
	if already && r.curFrame.HasLocalOrdinary(name) {
		canonical := r.ordinarySymbol(r.curFrame, name, sym)
		if canonical != sym && leaf != nil {
			leaf.DeclName = canonical
			sym = canonical
		}
	} else {
		r.ordinarySymbol(r.curFrame, name, sym)
	}

	r.curFrame.DeclareOrdinary(name, d.Type)
	r.recordDeclare(r.curFrame, ast.NSOrdinary, name)
	r.recordOrdEvent(name, d.Init != nil)

	if !d.IsExtern() {
		if err := r.nameOrdinary(sym); err != nil {
			return err
		}
	}

	if d.Init != nil {
		if err := r.visitInit(d.Type, d.Init); err != nil {
			return err
		}
	}
	if d.BitSize != nil {
		if err := r.visitExpr(d.BitSize); err != nil {
			return err
		}
	}
	for _, a := range d.Align {
		if err := r.visitExpr(a); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renamer) visitTypedef(t *ast.Typedef) error {
	if err := r.visitType(t.Type); err != nil {
		return err
	}
	name := t.NameOrig
	if name == "" {
		return nil
	}

	leaf := typeDeclLeaf(t.Type)
	sym := t.DeclName()

	if r.curFrame.HasLocalTypedef(name) {
		canonical := r.typedefSymbol(r.curFrame, name, sym)
		if canonical != sym && leaf != nil {
			leaf.DeclName = canonical
			sym = canonical
		}
	} else {
		r.typedefSymbol(r.curFrame, name, sym)
	}

	r.curFrame.DeclareTypedef(name, t.Type)
	r.recordDeclare(r.curFrame, ast.NSTypedef, name)

	if !r.inFunction() {
		return nil
	}
	rname, err := r.localDecl.Next()
	if err != nil {
		return ohno.AlphabetExhaustedErr("typedef")
	}
	sym.Renamed = rname
	return nil
}

// visitFuncDef declares the function's own name in the enclosing frame
// (its declarator is never routed through the generic visitDecl/visitType
// path, which would open and discard a throwaway parameter frame of its
// own: a function definition only ever needs the one real frame its body
// shares with its parameters), then visits parameters and body together in
// that one frame.
func (r *Renamer) visitFuncDef(fd *ast.FuncDef) error {
	fdecl, ok := fd.Decl.Type.(*ast.FuncDecl)
	if !ok {
		return ohno.New(ohno.ParseError, fd.Decl.NameOrig)
	}

	if err := r.visitType(fdecl.Type); err != nil {
		return err
	}

	name := fd.Decl.NameOrig
	leaf := typeDeclLeaf(fd.Decl.Type)
	sym := fd.Decl.DeclName()
	if r.curFrame.HasLocalOrdinary(name) {
		canonical := r.ordinarySymbol(r.curFrame, name, sym)
		if canonical != sym && leaf != nil {
			leaf.DeclName = canonical
			sym = canonical
		}
	} else {
		r.ordinarySymbol(r.curFrame, name, sym)
	}
	r.curFrame.DeclareOrdinary(name, fd.Decl.Type)
	r.recordDeclare(r.curFrame, ast.NSOrdinary, name)
	r.recordOrdEvent(name, true)
	if !fd.Decl.IsExtern() {
		if err := r.nameOrdinary(sym); err != nil {
			return err
		}
	}

	prevFrame := r.pushFrame()
	prevDecl, prevStruct, prevUnion, prevEnum, prevLabels, prevLabelAlloc := r.enterFunction()

	var err error
	for _, p := range fdecl.Params {
		if err = r.visitDecl(p); err != nil {
			break
		}
	}
	if err == nil {
		err = r.visitCompoundBody(fd.Body)
	}

	r.exitFunction(prevDecl, prevStruct, prevUnion, prevEnum, prevLabels, prevLabelAlloc)
	r.popFrame(prevFrame)
	return err
}
