// Package prologue synthesizes the integer-width macro block: given the
// CLI's "bits" vector, it picks the C keyword whose width matches each of
// 8/16/32/64 bits and emits the uintN_t/intN_t/UINTN_C macro definitions the
// preprocessor expands before the parser ever sees the translation unit.
//
// Built in the "generate a small literal block of text ahead of the real
// work" style esbuild's own CLI and logger templates use, reduced here to
// plain strings.Builder since there's no color negotiation to do.
package prologue

import (
	"strconv"
	"strings"

	"github.com/hxb2012/oi/internal/ohno"
)

// kw is one entry in the bits vector, in its fixed order: char, short, int,
// long, longlong.
var kwOrder = []string{"char", "short", "int", "long", "longlong"}

// Bits is the parsed "bits" CLI argument: the width in bits of each of the
// five keywords in kwOrder.
type Bits struct {
	widths map[string]int
}

// Parse splits a comma-separated "bits" argument such as "8,16,32,64,64"
// into the per-keyword width table.
func Parse(arg string) (Bits, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != len(kwOrder) {
		return Bits{}, ohno.New(ohno.IOError, "bits: expected "+strconv.Itoa(len(kwOrder))+" comma-separated widths, got "+arg)
	}
	widths := make(map[string]int, len(kwOrder))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Bits{}, ohno.New(ohno.IOError, "bits: not an integer: "+p)
		}
		widths[kwOrder[i]] = n
	}
	return Bits{widths: widths}, nil
}

// keywordFor returns the narrowest keyword whose configured width equals n,
// preferring the earlier entries in kwOrder when more than one matches
// (e.g. on a platform where "int" and "long" are both 32 bits).
func (b Bits) keywordFor(n int) (string, bool) {
	for _, kw := range kwOrder {
		if b.widths[kw] == n {
			return kw, true
		}
	}
	return "", false
}

// suffix returns the integer-constant suffix UINTN_C needs for kw: "ul" for
// long, "ull" for longlong, "u" for anything narrower.
func suffix(kw string) string {
	switch kw {
	case "long":
		return "ul"
	case "longlong":
		return "ull"
	default:
		return "u"
	}
}

// keywordText renders kw's actual C spelling: every kwOrder entry except
// "longlong" already is one ("longlong" is the bits-vector's one-word name
// for the two-word keyword "long long").
func keywordText(kw string) string {
	if kw == "longlong" {
		return "long long"
	}
	return kw
}

// lastKeyword returns the keyword of the bits vector's last entry, which is
// always "longlong" whatever widths were given; used for uintptr_t/intptr_t.
func (b Bits) lastKeyword() string {
	return kwOrder[len(kwOrder)-1]
}

// Generate renders the #define block. It is prepended to the source text
// before the preprocessor runs; the preprocessor then expands
// uintN_t/intN_t/UINTN_C wherever the program uses them.
func Generate(b Bits) (string, error) {
	var sb strings.Builder
	for _, n := range []int{8, 16, 32, 64} {
		kw, ok := b.keywordFor(n)
		if !ok {
			return "", ohno.New(ohno.IOError, "bits: no keyword of width "+strconv.Itoa(n))
		}
		s := suffix(kw)
		text := keywordText(kw)
		sb.WriteString("#define uint" + strconv.Itoa(n) + "_t unsigned " + text + "\n")
		sb.WriteString("#define int" + strconv.Itoa(n) + "_t signed " + text + "\n")
		sb.WriteString("#define UINT" + strconv.Itoa(n) + "_C(c) c##" + s + "\n")
	}

	ptrKw := keywordText(b.lastKeyword())
	sb.WriteString("#define uintptr_t unsigned " + ptrKw + "\n")
	sb.WriteString("#define intptr_t signed " + ptrKw + "\n")
	return sb.String(), nil
}
