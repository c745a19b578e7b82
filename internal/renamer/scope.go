package renamer

import (
	"github.com/hxb2012/oi/internal/ast"
	"github.com/hxb2012/oi/internal/ohno"
	"github.com/hxb2012/oi/internal/symtab"
)

// pushFrame opens a new lexical scope chained to the current one.
func (r *Renamer) pushFrame() *symtab.Frame {
	prev := r.curFrame
	r.curFrame = symtab.NewFrame(prev)
	return prev
}

func (r *Renamer) popFrame(prev *symtab.Frame) {
	r.curFrame = prev
}

// enterFunction installs fresh local allocator views and a fresh label
// namespace for the duration of one function body: entering a function
// installs a LocalCounter view for decl/struct/union/enum that starts at
// the current global high-water mark, plus a brand new per-function
// LabelCounter.
func (r *Renamer) enterFunction() (prevDecl, prevStruct, prevUnion, prevEnum *symtab.LocalCounter, prevLabels map[string]*ast.Symbol, prevLabelAlloc *symtab.LabelCounter) {
	prevDecl, prevStruct, prevUnion, prevEnum = r.localDecl, r.localStruct, r.localUnion, r.localEnum
	prevLabels, prevLabelAlloc = r.labels, r.labelAlloc

	r.localDecl = symtab.NewLocalCounter(r.declAlloc)
	r.localStruct = symtab.NewLocalCounter(r.structAlloc)
	r.localUnion = symtab.NewLocalCounter(r.unionAlloc)
	r.localEnum = symtab.NewLocalCounter(r.enumAlloc)
	r.labels = map[string]*ast.Symbol{}
	r.labelAlloc = symtab.NewLabelCounter()
	return
}

func (r *Renamer) exitFunction(prevDecl, prevStruct, prevUnion, prevEnum *symtab.LocalCounter, prevLabels map[string]*ast.Symbol, prevLabelAlloc *symtab.LabelCounter) {
	r.localDecl, r.localStruct, r.localUnion, r.localEnum = prevDecl, prevStruct, prevUnion, prevEnum
	r.labels, r.labelAlloc = prevLabels, prevLabelAlloc
}

// inFunction reports whether the renamer is currently inside a function
// body (as opposed to file scope), which governs whether a newly declared
// symbol gets an immediate name from a LocalCounter or is left unrenamed
// until the final, post-reachability pass.
func (r *Renamer) inFunction() bool {
	return r.localDecl != nil
}

// nameOrdinary assigns sym its renamed form immediately if we are inside a
// function; at file scope it leaves sym unrenamed for assignFinalNames to
// pick up after pruning.
func (r *Renamer) nameOrdinary(sym *ast.Symbol) error {
	if !r.inFunction() || sym == nil || sym.Renamed != "" {
		return nil
	}
	name, err := r.localDecl.Next()
	if err != nil {
		return ohno.AlphabetExhaustedErr("ordinary")
	}
	sym.Renamed = name
	return nil
}

func (r *Renamer) nameStructTag(sym *ast.Symbol) error {
	if !r.inFunction() || sym == nil || sym.Renamed != "" {
		return nil
	}
	name, err := r.localStruct.Next()
	if err != nil {
		return ohno.AlphabetExhaustedErr("struct")
	}
	sym.Renamed = name
	return nil
}

func (r *Renamer) nameUnionTag(sym *ast.Symbol) error {
	if !r.inFunction() || sym == nil || sym.Renamed != "" {
		return nil
	}
	name, err := r.localUnion.Next()
	if err != nil {
		return ohno.AlphabetExhaustedErr("union")
	}
	sym.Renamed = name
	return nil
}

func (r *Renamer) nameEnumTag(sym *ast.Symbol) error {
	if !r.inFunction() || sym == nil || sym.Renamed != "" {
		return nil
	}
	name, err := r.localEnum.Next()
	if err != nil {
		return ohno.AlphabetExhaustedErr("enum")
	}
	sym.Renamed = name
	return nil
}

// labelSymbol returns the label Symbol for name in the current function,
// minting and naming it on first use and reusing it afterward: labels share
// one flat per-function namespace, unaffected by block nesting.
func (r *Renamer) labelSymbol(name string) (*ast.Symbol, error) {
	if sym, ok := r.labels[name]; ok {
		return sym, nil
	}
	sym := ast.NewSymbol(name)
	renamed, err := r.labelAlloc.Next()
	if err != nil {
		return nil, ohno.AlphabetExhaustedErr("label")
	}
	sym.Renamed = renamed
	r.labels[name] = sym
	return sym, nil
}
