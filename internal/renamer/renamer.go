// Package renamer is the symbol renamer: the central subsystem that builds
// scoped, multi-namespace symbol tables (internal/symtab) while walking the
// tree top-down, resolves just enough
// type information to rewrite member accesses, records per-top-level-
// declaration reference/init edges, runs reachability from main, and
// finally assigns short base-52 names.
//
// The allocation/slot machinery (global counters shared by nested scopes,
// the "never collide with a sibling's first local" high-water-mark trick,
// and a final source-order assignment pass) is grounded on evanw/esbuild's
// internal/renamer.go (MinifyRenamer, AssignNestedScopeSlots) and its
// tree-shaking graph in internal/linker.go (Part.Dependencies, IsLive,
// markPartLiveForTreeShaking) — adapted from esbuild's per-file "Part"
// reachability graph to this package's per-top-level-declaration one.
package renamer

import (
	"sort"

	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
	"github.com/hxb2012/oi/internal/symtab"
)

// Renamer carries all of the mutable state for one translation unit.
type Renamer struct {
	file *ast.FileAST

	fileFrame *symtab.Frame
	curFrame  *symtab.Frame

	declAlloc   *symtab.Allocator
	structAlloc *symtab.Allocator
	unionAlloc  *symtab.Allocator
	enumAlloc   *symtab.Allocator

	// localDecl etc. are non-nil while visiting inside a function; nil at
	// file scope: the "identifier-allocator discipline".
	localDecl   *symtab.LocalCounter
	localStruct *symtab.LocalCounter
	localUnion  *symtab.LocalCounter
	localEnum   *symtab.LocalCounter

	// labels is the current function's flat label namespace; nil outside
	// a function. labelAlloc restarts at 0 on every function entry.
	labels     map[string]*ast.Symbol
	labelAlloc *symtab.LabelCounter

	// Per-top-level-declaration recording, active whenever curTopLevel >= 0.
	curTopLevel int
	declare     []map[ast.Namespace]map[string]bool
	lookups     []map[ast.Namespace]map[string]bool

	// ordEvents drives the init-edge graph: one entry every time a
	// top-level Decl or FuncDef (re)declares an ordinary name at file
	// scope, recording whether that particular occurrence carried an
	// initializer or function body.
	ordEvents []ordEvent

	anonAggregateCount int

	// ordinarySymbols/typedefSymbols track the canonical *Symbol for a given
	// (frame, name) pair so that a forward declaration and its later
	// definition share one identity even though each occurrence's AST node
	// carries its own freshly-minted Symbol. Struct/union/enum tags don't
	// need this: symtab.Frame already stores the canonical Symbol directly
	// for those three namespaces.
	ordinarySymbols map[*symtab.Frame]map[string]*ast.Symbol
	typedefSymbols  map[*symtab.Frame]map[string]*ast.Symbol
}

type ordEvent struct {
	topIndex int
	name     string
	hasInit  bool
}

// New returns a Renamer ready to process file.
func New(file *ast.FileAST) *Renamer {
	fileFrame := symtab.NewFrame(nil)
	seedBuiltinTypedefs(fileFrame)
	return &Renamer{
		file:        file,
		fileFrame:   fileFrame,
		curFrame:    fileFrame,
		declAlloc:   symtab.NewAllocator(),
		structAlloc: symtab.NewAllocator(),
		unionAlloc:  symtab.NewAllocator(),
		enumAlloc:   symtab.NewAllocator(),
		curTopLevel: -1,
		ordinarySymbols: map[*symtab.Frame]map[string]*ast.Symbol{},
		typedefSymbols:  map[*symtab.Frame]map[string]*ast.Symbol{},
	}
}

// seedBuiltinTypedefs installs the base C keywords as identity entries so
// "int", "char", and friends are never mistaken for a user typedef
// (the typedefs table is "seeded with built-in base types as identity
// entries").
func seedBuiltinTypedefs(f *symtab.Frame) {
	for _, kw := range []string{
		"void", "char", "short", "int", "long", "float", "double",
		"signed", "unsigned", "_Bool", "_Complex", "_Imaginary",
	} {
		f.DeclareTypedef(kw, &ast.IdentifierType{Names: []string{kw}})
	}
}

// Run executes the whole renamer pass: build scopes and reference sets,
// resolve member accesses, compute reachability from main, prune, and
// assign final names. It returns the pruned, renamed FileAST.
func Run(file *ast.FileAST) (*ast.FileAST, error) {
	r := New(file)

	r.declare = make([]map[ast.Namespace]map[string]bool, len(file.Decls))
	r.lookups = make([]map[ast.Namespace]map[string]bool, len(file.Decls))

	for i, d := range file.Decls {
		r.curTopLevel = i
		r.declare[i] = map[ast.Namespace]map[string]bool{}
		r.lookups[i] = map[ast.Namespace]map[string]bool{}
		if err := r.visitExtDecl(d); err != nil {
			return nil, err
		}
	}
	r.curTopLevel = -1

	kept, err := r.reachability()
	if err != nil {
		return nil, err
	}

	prunedDecls := make([]ast.ExtDecl, len(kept))
	for i, idx := range kept {
		prunedDecls[i] = file.Decls[idx]
	}
	file.Decls = prunedDecls

	if err := r.assignFinalNames(file.Decls); err != nil {
		return nil, err
	}

	return file, nil
}

// recordDeclare notes that name was bound in frame f, in namespace ns,
// while visiting the current top-level declaration. Only bindings that
// land in the file-scope frame matter for reachability.
func (r *Renamer) recordDeclare(f *symtab.Frame, ns ast.Namespace, name string) {
	if r.curTopLevel < 0 || f != r.fileFrame {
		return
	}
	set := r.declare[r.curTopLevel][ns]
	if set == nil {
		set = map[string]bool{}
		r.declare[r.curTopLevel][ns] = set
	}
	set[name] = true
}

// recordLookup notes that a lookup for name resolved in owner, in
// namespace ns, while visiting the current top-level declaration. The
// reference set is filtered against that same declaration's own declare
// set after the fact (see reachability), so self-recursive lookups of a
// name this very declaration just introduced are harmless here.
func (r *Renamer) recordLookup(owner *symtab.Frame, ns ast.Namespace, name string) {
	if r.curTopLevel < 0 || owner != r.fileFrame {
		return
	}
	set := r.lookups[r.curTopLevel][ns]
	if set == nil {
		set = map[string]bool{}
		r.lookups[r.curTopLevel][ns] = set
	}
	set[name] = true
}

func (r *Renamer) recordOrdEvent(name string, hasInit bool) {
	if r.curTopLevel < 0 {
		return
	}
	r.ordEvents = append(r.ordEvents, ordEvent{topIndex: r.curTopLevel, name: name, hasInit: hasInit})
}

// reachability builds the declare_map/init_map graph and returns the surviving indices in original source order.
func (r *Renamer) reachability() ([]int, error) {
	n := len(r.file.Decls)

	declareMap := map[ast.Namespace]map[string]int{}
	for i := 0; i < n; i++ {
		for ns, names := range r.declare[i] {
			m := declareMap[ns]
			if m == nil {
				m = map[string]int{}
				declareMap[ns] = m
			}
			for name := range names {
				if _, ok := m[name]; !ok {
					m[name] = i
				}
			}
		}
	}

	initEdges := map[int][]int{}
	initSeen := map[string]bool{}
	for _, e := range r.ordEvents {
		if !e.hasInit || initSeen[e.name] {
			continue
		}
		m := declareMap[ast.NSOrdinary]
		if m == nil {
			continue
		}
		d, ok := m[e.name]
		if !ok || d == e.topIndex {
			continue
		}
		initEdges[d] = append(initEdges[d], e.topIndex)
		initSeen[e.name] = true
	}

	// References are counted against this declaration's own declare set so
	// that a lookup resolving to a binding this same declaration just
	// introduced (e.g. a recursive function referencing itself) never
	// becomes a self-edge.
	refEdges := make([][]int, n)
	for i := 0; i < n; i++ {
		own := r.declare[i]
		for ns, names := range r.lookups[i] {
			m := declareMap[ns]
			if m == nil {
				continue
			}
			ownNS := own[ns]
			for name := range names {
				if ownNS[name] {
					continue
				}
				if idx, ok := m[name]; ok {
					refEdges[i] = append(refEdges[i], idx)
				}
			}
		}
	}

	mainMap := declareMap[ast.NSOrdinary]
	mainIdx, ok := mainMap["main"]
	if !ok {
		return nil, ohno.New(ohno.ParseError, "main")
	}

	visited := make([]bool, n)
	queue := []int{mainIdx}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if visited[idx] {
			continue
		}
		visited[idx] = true
		queue = append(queue, refEdges[idx]...)
		queue = append(queue, initEdges[idx]...)
	}

	kept := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if visited[i] {
			kept = append(kept, i)
		}
	}
	sort.Ints(kept)
	return kept, nil
}
