// Package oi wires the four in-process pipeline stages together: parse
// (internal/cparse), struct-declaration rewrite (internal/rewriter), symbol
// renaming (internal/renamer), and pretty-printing (internal/printer).
// Preprocessing, file I/O and CLI argument handling stay in cmd/oi, which
// is the only caller that needs them — the preprocessor is an external
// collaborator, not part of this package's job.
package oi

import (
	"github.com/hxb2012/oi/internal/cparse"
	"github.com/hxb2012/oi/internal/logger"
	"github.com/hxb2012/oi/internal/printer"
	"github.com/hxb2012/oi/internal/renamer"
	"github.com/hxb2012/oi/internal/rewriter"
)

// Minify runs the full pipeline over already-preprocessed C source text and
// returns the rewritten, renamed, pretty-printed program. The returned
// Source is always non-nil (even on error) so a caller can render a
// position-carrying diagnostic against the original text.
func Minify(filename, source string) ([]byte, *logger.Source, error) {
	file, src, err := cparse.Parse(filename, source)
	if err != nil {
		return nil, src, err
	}

	rewriter.New().Rewrite(file)

	file, err = renamer.Run(file)
	if err != nil {
		return nil, src, err
	}

	return printer.Print(file, printer.Options{ReduceParens: true}), src, nil
}
