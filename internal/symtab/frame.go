// Package symtab implements the scoped, multi-namespace symbol table and
// identifier allocator this tool needs: a stack of frames, each holding the
// nine independent name -> {type-tree | Symbol | decl} mappings
// that keep C's ordinary/tag/member namespaces from colliding, plus the
// base-52 identifier allocators (alloc.go): function-local counters used
// during the traversal and global ones used once reachability pruning has
// run.
//
// There is no single example repo in the corpus that builds a C symbol
// table, so this package is grounded on the *shape* esbuild uses for a
// similar problem — chained lexical scopes with a Members map per frame,
// internal/js_ast.Scope — adapted from one namespace to nine.
package symtab

import "github.com/hxb2012/oi/internal/ast"

// Frame is one lexical scope. Lookups walk outward through parent; Declare*
// calls are always local to the receiver frame: "Lookup walks from the
// current frame outward. Insertion is local to the current frame".
type Frame struct {
	parent *Frame

	typedefs    map[string]ast.TypeNode
	structNames map[string]*ast.Symbol
	unionNames  map[string]*ast.Symbol
	enumNames   map[string]*ast.Symbol
	structDecls map[string]*ast.Struct
	unionDecls  map[string]*ast.Union
	enumDecls   map[string]*ast.Enum
	declTypes   map[string]ast.TypeNode
	declInits   map[string]interface{}
}

// NewFrame creates a root frame (file scope) or, when parent is non-nil, a
// child frame chained to it. Child frames inherit parent lookup via
// chaining; they never copy entries.
func NewFrame(parent *Frame) *Frame {
	return &Frame{
		parent:      parent,
		typedefs:    map[string]ast.TypeNode{},
		structNames: map[string]*ast.Symbol{},
		unionNames:  map[string]*ast.Symbol{},
		enumNames:   map[string]*ast.Symbol{},
		structDecls: map[string]*ast.Struct{},
		unionDecls:  map[string]*ast.Union{},
		enumDecls:   map[string]*ast.Enum{},
		declTypes:   map[string]ast.TypeNode{},
		declInits:   map[string]interface{}{},
	}
}

func (f *Frame) Parent() *Frame { return f.parent }

// --- typedefs ---

func (f *Frame) DeclareTypedef(name string, t ast.TypeNode) { f.typedefs[name] = t }

func (f *Frame) HasLocalTypedef(name string) bool {
	_, ok := f.typedefs[name]
	return ok
}

// LookupTypedef walks outward and also reports the frame that owns the
// binding, which the renamer's recording pass (internal/renamer) uses to
// tell a declare from a reference into an outer scope.
func (f *Frame) LookupTypedef(name string) (ast.TypeNode, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if t, ok := fr.typedefs[name]; ok {
			return t, fr, true
		}
	}
	return nil, nil, false
}

// --- struct/union/enum tags ---

func (f *Frame) DeclareStructName(name string, s *ast.Symbol) { f.structNames[name] = s }
func (f *Frame) DeclareUnionName(name string, s *ast.Symbol)  { f.unionNames[name] = s }
func (f *Frame) DeclareEnumName(name string, s *ast.Symbol)   { f.enumNames[name] = s }

func (f *Frame) LookupStructName(name string) (*ast.Symbol, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if s, ok := fr.structNames[name]; ok {
			return s, fr, true
		}
	}
	return nil, nil, false
}

func (f *Frame) LookupUnionName(name string) (*ast.Symbol, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if s, ok := fr.unionNames[name]; ok {
			return s, fr, true
		}
	}
	return nil, nil, false
}

func (f *Frame) LookupEnumName(name string) (*ast.Symbol, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if s, ok := fr.enumNames[name]; ok {
			return s, fr, true
		}
	}
	return nil, nil, false
}

func (f *Frame) DeclareStructDecl(name string, s *ast.Struct) { f.structDecls[name] = s }
func (f *Frame) DeclareUnionDecl(name string, u *ast.Union)   { f.unionDecls[name] = u }
func (f *Frame) DeclareEnumDecl(name string, e *ast.Enum)     { f.enumDecls[name] = e }

func (f *Frame) HasLocalStructDecl(name string) bool { _, ok := f.structDecls[name]; return ok }
func (f *Frame) HasLocalUnionDecl(name string) bool  { _, ok := f.unionDecls[name]; return ok }
func (f *Frame) HasLocalEnumDecl(name string) bool    { _, ok := f.enumDecls[name]; return ok }

func (f *Frame) LookupStructDecl(name string) (*ast.Struct, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if s, ok := fr.structDecls[name]; ok {
			return s, fr, true
		}
	}
	return nil, nil, false
}

func (f *Frame) LookupUnionDecl(name string) (*ast.Union, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if u, ok := fr.unionDecls[name]; ok {
			return u, fr, true
		}
	}
	return nil, nil, false
}

func (f *Frame) LookupEnumDecl(name string) (*ast.Enum, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if e, ok := fr.enumDecls[name]; ok {
			return e, fr, true
		}
	}
	return nil, nil, false
}

// --- ordinary identifiers (variables, functions, enum constants) ---

func (f *Frame) DeclareOrdinary(name string, t ast.TypeNode) { f.declTypes[name] = t }

func (f *Frame) HasLocalOrdinary(name string) bool {
	_, ok := f.declTypes[name]
	return ok
}

func (f *Frame) LookupOrdinary(name string) (ast.TypeNode, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if t, ok := fr.declTypes[name]; ok {
			return t, fr, true
		}
	}
	return nil, nil, false
}

func (f *Frame) DeclareInit(name string, init interface{}) { f.declInits[name] = init }

func (f *Frame) LookupInit(name string) (interface{}, bool) {
	v, ok := f.declInits[name]
	return v, ok
}
