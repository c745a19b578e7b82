// Package rewriter is the struct-declaration rewriter: it walks every
// ordered list of declarations that can contain a
// shared aggregate definition (the top-level external list, a compound
// statement's block items, and a for-loop's init declarator list) and
// splits "struct S {...} a, b;" into one declaration carrying the body and
// N-1 reference-only declarations, minting a synthetic "_anonymous_N" tag
// when the aggregate had none.
//
// There's no struct-splitting pass in the corpus to ground this on
// directly; the shape (a generic pass over sibling declaration lists,
// mutating node fields in place rather than rebuilding the tree) follows
// the same philosophy as internal/renamer's scope-recursive traversal.
package rewriter

import "github.com/hxb2012/oi/internal/ast"

type Rewriter struct {
	anonCounter int
}

func New() *Rewriter { return &Rewriter{} }

// Rewrite mutates file in place: this pass cannot fail on a syntactically
// valid input, so it has no error return.
func (r *Rewriter) Rewrite(file *ast.FileAST) {
	rewriteRuns(file.Decls, extDeclAsDecl, &r.anonCounter)
	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDef); ok {
			r.rewriteStmt(fd.Body)
		}
	}
}

func extDeclAsDecl(e ast.ExtDecl) (*ast.Decl, bool) {
	d, ok := e.(*ast.Decl)
	return d, ok
}

func blockItemAsDecl(b ast.BlockItem) (*ast.Decl, bool) {
	d, ok := b.(*ast.Decl)
	return d, ok
}

func identityAsDecl(d *ast.Decl) (*ast.Decl, bool) { return d, true }

// rewriteRuns scans items for maximal consecutive runs of declarators that
// share the exact same (pointer-identical) aggregate definition as their
// innermost type. Only *ast.Decl entries participate;
// anything else (a *ast.Typedef, a *ast.FuncDef, a plain statement) ends a
// run. The split is done in place: item positions and count never change,
// only the reference copies' TypeDecl.Type fields are replaced.
func rewriteRuns[T any](items []T, asDecl func(T) (*ast.Decl, bool), anonCounter *int) {
	i := 0
	for i < len(items) {
		d, ok := asDecl(items[i])
		if !ok {
			i++
			continue
		}
		leaf := leafTypeDecl(d.Type)
		agg := aggregateOf(leaf)
		if agg == nil {
			i++
			continue
		}

		j := i + 1
		count := 1
		for j < len(items) {
			d2, ok2 := asDecl(items[j])
			if !ok2 {
				break
			}
			leaf2 := leafTypeDecl(d2.Type)
			if leaf2 == nil || aggregateOf(leaf2) != agg {
				break
			}
			count++
			j++
		}

		if count >= 2 {
			ensureTag(agg, anonCounter)
			for k := i + 1; k < j; k++ {
				dk, _ := asDecl(items[k])
				leafK := leafTypeDecl(dk.Type)
				leafK.Type = referenceOnlyCopy(agg)
			}
		}

		i = j
	}
}

// leafTypeDecl walks a declarator's Ptr/Array/Func decorators down to the
// TypeDecl leaf that carries the base type.
func leafTypeDecl(t ast.TypeNode) *ast.TypeDecl {
	switch n := t.(type) {
	case *ast.PtrDecl:
		return leafTypeDecl(n.Type)
	case *ast.ArrayDecl:
		return leafTypeDecl(n.Type)
	case *ast.FuncDecl:
		return leafTypeDecl(n.Type)
	case *ast.TypeDecl:
		return n
	default:
		return nil
	}
}

// aggregateOf returns the struct/union/enum node sitting directly under a
// TypeDecl leaf, or nil if the leaf's base type isn't an aggregate.
func aggregateOf(leaf *ast.TypeDecl) ast.TypeNode {
	if leaf == nil {
		return nil
	}
	switch leaf.Type.(type) {
	case *ast.Struct, *ast.Union, *ast.Enum:
		return leaf.Type
	default:
		return nil
	}
}

func ensureTag(agg ast.TypeNode, anonCounter *int) {
	switch n := agg.(type) {
	case *ast.Struct:
		if n.NameOrig == "" {
			n.NameOrig = nextAnonTag(anonCounter)
		}
	case *ast.Union:
		if n.NameOrig == "" {
			n.NameOrig = nextAnonTag(anonCounter)
		}
	case *ast.Enum:
		if n.NameOrig == "" {
			n.NameOrig = nextAnonTag(anonCounter)
		}
	}
}

func nextAnonTag(anonCounter *int) string {
	n := *anonCounter
	*anonCounter++
	return anonTagName(n)
}

func anonTagName(n int) string {
	digits := []byte{}
	if n == 0 {
		digits = []byte{'0'}
	}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return "_anonymous_" + string(digits)
}

// referenceOnlyCopy builds a body-less sibling of agg, carrying the same
// tag but no member/value list: no single Decl simultaneously defines an
// aggregate body and declares more than one identifier.
func referenceOnlyCopy(agg ast.TypeNode) ast.TypeNode {
	switch n := agg.(type) {
	case *ast.Struct:
		return &ast.Struct{NameOrig: n.NameOrig, Loc: n.Loc}
	case *ast.Union:
		return &ast.Union{NameOrig: n.NameOrig, Loc: n.Loc}
	case *ast.Enum:
		return &ast.Enum{NameOrig: n.NameOrig, Loc: n.Loc}
	default:
		return agg
	}
}
