// Package printer is a deterministic, minimally spaced AST-to-text
// projection. It emits a renamed Symbol's short form
// wherever one is present and the plain textual name otherwise, flattens
// IdentifierType keyword sequences, suppresses the repeated base type in a
// DeclList's trailing declarators, and (with ReduceParens) drops
// parentheses that are redundant around a left-associative same-precedence
// operator chain.
//
// There's no C printer in the corpus to ground this on directly. Its
// token-gluing-avoidance technique — track whether the next token could
// fuse with the last emitted character and insert exactly one separating
// space when it would — follows the same spirit as evanw/esbuild's
// internal/js_printer, which tracks "space before identifier" state for
// the same reason in a minified-JS context; the operator-precedence/level
// based expression printing generalizes the same package's per-expression
// Level parameter to C's operator table.
package printer

import "github.com/hxb2012/oi/internal/ast"

// Options controls the one documented knob this package exposes.
type Options struct {
	ReduceParens bool
}

type Printer struct {
	buf  []byte
	opts Options
}

func New(opts Options) *Printer {
	return &Printer{opts: opts}
}

// Print renders file and returns the resulting source text.
func Print(file *ast.FileAST, opts Options) []byte {
	p := New(opts)
	p.printFile(file)
	return p.buf
}

func (p *Printer) Bytes() []byte { return p.buf }

// isWordByte reports whether b participates in an identifier or keyword,
// i.e. whether gluing it directly to another word byte would merge two
// distinct tokens into one.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// could two adjacent punctuation bytes fuse into a different, longer
// operator token (e.g. "+" then "+" becoming "++", or "/" then "*"
// accidentally opening a comment)? This is deliberately conservative: a
// few false-positive spaces cost nothing in a text format.
var fusible = map[byte]bool{
	'+': true, '-': true, '&': true, '|': true,
	'<': true, '>': true, '=': true, '!': true,
	'*': true, '/': true, '%': true, '^': true, ':': true,
}

// print appends s, inserting a single space first if the boundary between
// the buffer's last byte and s's first byte would otherwise glue two
// tokens together.
func (p *Printer) print(s string) {
	if s == "" {
		return
	}
	if n := len(p.buf); n > 0 {
		last := p.buf[n-1]
		first := s[0]
		if (isWordByte(last) && isWordByte(first)) || (fusible[last] && fusible[first]) {
			p.buf = append(p.buf, ' ')
		}
	}
	p.buf = append(p.buf, s...)
}

// space forces a single space regardless of what was last printed; used
// between declaration specifiers and a declarator, and other spots that
// call for a guaranteed separator rather than a merely-sufficient one.
func (p *Printer) space() {
	if n := len(p.buf); n == 0 || p.buf[n-1] != ' ' {
		p.buf = append(p.buf, ' ')
	}
}

func (p *Printer) printFile(file *ast.FileAST) {
	for _, d := range file.Decls {
		p.printExtDecl(d)
	}
}

func (p *Printer) printExtDecl(e ast.ExtDecl) {
	switch n := e.(type) {
	case *ast.Decl:
		p.printDeclList([]*ast.Decl{n})
		p.print(";")
	case *ast.Typedef:
		p.print("typedef")
		p.space()
		p.printDeclarator(n.Type, n.NameOrig)
		p.print(";")
	case *ast.FuncDef:
		p.printDeclList([]*ast.Decl{n.Decl})
		p.printStmt(n.Body)
	}
}

// printDeclList prints one or more sibling declarators that share a base
// type: the first in full, the rest without repeating the base-type
// specifier.
func (p *Printer) printDeclList(decls []*ast.Decl) {
	for i, d := range decls {
		if i == 0 {
			p.printStorageAndQuals(d)
			p.printBaseType(baseTypeOf(d.Type))
			p.space()
		} else {
			p.print(",")
		}
		p.printDeclaratorSuffix(d.Type, symbolName(d.DeclName(), d.NameOrig))
		if d.BitSize != nil {
			p.print(":")
			p.printExprLevel(d.BitSize, lowestLevel)
		}
		if d.Init != nil {
			p.print("=")
			p.printExprLevel(d.Init, lowestLevel)
		}
	}
}

func (p *Printer) printStorageAndQuals(d *ast.Decl) {
	for _, s := range d.Storage {
		p.print(s)
		p.space()
	}
	for _, s := range d.Funcspec {
		p.print(s)
		p.space()
	}
}

func symbolName(sym *ast.Symbol, fallback string) string {
	if sym != nil {
		return sym.Name()
	}
	return fallback
}

// printDeclarator prints a full "<base-type> <declarator>" pair, used for
// typedefs and other one-off declarator prints that don't go through
// printDeclList's repeated-base-type suppression.
func (p *Printer) printDeclarator(t ast.TypeNode, name string) {
	p.printBaseType(baseTypeOf(t))
	p.space()
	p.printDeclaratorSuffix(t, name)
}

// baseTypeOf walks down to the TypeDecl leaf and returns the base type
// sitting under it, the thing printBaseType renders.
func baseTypeOf(t ast.TypeNode) ast.TypeNode {
	switch n := t.(type) {
	case *ast.PtrDecl:
		return baseTypeOf(n.Type)
	case *ast.ArrayDecl:
		return baseTypeOf(n.Type)
	case *ast.FuncDecl:
		return baseTypeOf(n.Type)
	case *ast.TypeDecl:
		return n.Type
	default:
		return nil
	}
}

func (p *Printer) printBaseType(t ast.TypeNode) {
	switch n := t.(type) {
	case *ast.IdentifierType:
		for i, name := range n.Names {
			if i > 0 {
				p.space()
			}
			p.print(name)
		}
	case *ast.Struct:
		p.printAggregateHead("struct", n.NameOrig, n.Tag)
		if n.HasBody() {
			p.printStructLikeBody(n.Decls)
		}
	case *ast.Union:
		p.printAggregateHead("union", n.NameOrig, n.Tag)
		if n.HasBody() {
			p.printStructLikeBody(n.Decls)
		}
	case *ast.Enum:
		p.printAggregateHead("enum", n.NameOrig, n.Tag)
		if n.HasBody() {
			p.printEnumBody(n.Values)
		}
	}
}

func (p *Printer) printAggregateHead(keyword, nameOrig string, tag *ast.Symbol) {
	p.print(keyword)
	p.space()
	p.print(symbolName(tag, nameOrig))
}

func (p *Printer) printStructLikeBody(decls []*ast.Decl) {
	p.print("{")
	for _, d := range decls {
		p.printDeclList([]*ast.Decl{d})
		p.print(";")
	}
	p.print("}")
}

func (p *Printer) printEnumBody(values []*ast.Enumerator) {
	p.print("{")
	for i, v := range values {
		if i > 0 {
			p.print(",")
		}
		p.print(symbolName(v.Name, v.NameOrig))
		if v.Value != nil {
			p.print("=")
			p.printExprLevel(v.Value, lowestLevel)
		}
	}
	p.print("}")
}

// printDeclaratorSuffix prints the Ptr/Array/Func decorators and the
// declared name, in the order C's declarator-follows-use grammar requires.
func (p *Printer) printDeclaratorSuffix(t ast.TypeNode, name string) {
	switch n := t.(type) {
	case *ast.PtrDecl:
		p.print("*")
		for _, q := range n.Quals {
			p.print(q)
			p.space()
		}
		p.printDeclaratorSuffix(n.Type, name)

	case *ast.ArrayDecl:
		p.printDeclaratorSuffix(n.Type, name)
		p.print("[")
		if n.Dim != nil {
			p.printExprLevel(n.Dim, lowestLevel)
		}
		p.print("]")

	case *ast.FuncDecl:
		p.printDeclaratorSuffix(n.Type, name)
		p.print("(")
		for i, param := range n.Params {
			if i > 0 {
				p.print(",")
			}
			p.printDeclList([]*ast.Decl{param})
		}
		if n.Ellipsis {
			if len(n.Params) > 0 {
				p.print(",")
			}
			p.print("...")
		}
		if len(n.Params) == 0 && !n.Ellipsis && !n.NoPrototype {
			p.print("void")
		}
		p.print(")")

	case *ast.TypeDecl:
		for _, q := range n.Quals {
			p.print(q)
			p.space()
		}
		p.print(name)

	default:
		p.print(name)
	}
}
