package symtab

import "errors"

// MaxIdentifiers is the largest index Encode accepts: 52 single-character
// names plus 26 two-character tiers of 52 names each.
const MaxIdentifiers = 1404

var ErrAlphabetExhausted = errors.New("alphabet exhausted: more than 1404 identifiers in one namespace")

// Encode maps 0 <= n < 1404 onto the base-52 alphabet {A-Z, a-z}, with a
// single-character prefix once the first 52 names are used up.
//
// One description of this scheme gives the prefix as "chr(0x40 + high)"
// where high = n/52, but its own worked example says encode(52) is "@A",
// not "AA" — chr(0x40+1) is 'A', not '@'. The two can only agree if the
// character actually emitted is chr(0x40 + high - 1): for high=1 that is
// chr(0x40), i.e. '@', and for high=2 it is chr(0x41), i.e. 'A' — exactly
// the "@A, AA, ... rather than AA, BA, ..." progression the worked example
// spells out. This implementation follows the worked example, not the
// looser prose formula, since an off-by-one in a single sentence is a much
// more likely source of the discrepancy than an internally-inconsistent
// example (see DESIGN.md).
func Encode(n int) (string, error) {
	if n < 0 || n >= MaxIdentifiers {
		return "", ErrAlphabetExhausted
	}

	high := n / 52
	low := n % 52

	var buf [2]byte
	i := 0
	if high != 0 {
		buf[i] = byte(0x3F + high)
		i++
	}
	if low < 26 {
		buf[i] = byte('A' + low)
	} else {
		buf[i] = byte('a' + (low - 26))
	}
	i++
	return string(buf[:i]), nil
}

// Allocator is a single namespace's global, monotonically-increasing
// counter: at top level, a single global allocator per namespace.
type Allocator struct {
	next int
}

func NewAllocator() *Allocator { return &Allocator{} }

func (a *Allocator) Next() (string, error) {
	name, err := Encode(a.next)
	if err != nil {
		return "", err
	}
	a.next++
	return name, nil
}

// LocalCounter is a function-local view of an Allocator: it starts wherever
// the global counter currently stands, and every name it hands out bumps
// the global high-water mark, so that two sibling functions never pick the
// same short name for their first local and a later top-level symbol never
// collides with one some function already claimed.
type LocalCounter struct {
	global *Allocator
	local  int
}

func NewLocalCounter(global *Allocator) *LocalCounter {
	return &LocalCounter{global: global, local: global.next}
}

func (c *LocalCounter) Next() (string, error) {
	name, err := Encode(c.local)
	if err != nil {
		return "", err
	}
	c.local++
	if c.local > c.global.next {
		c.global.next = c.local
	}
	return name, nil
}

// LabelCounter hands out label names for a single function, starting at 0
// every time: labels use a per-function allocator over the same 52-letter
// alphabet, starting at 0 in each function.
type LabelCounter struct {
	next int
}

func NewLabelCounter() *LabelCounter { return &LabelCounter{} }

func (c *LabelCounter) Next() (string, error) {
	name, err := Encode(c.next)
	if err != nil {
		return "", err
	}
	c.next++
	return name, nil
}
