// Package ohno implements the fatal error model this tool needs: every
// error kind it enumerates terminates the pipeline immediately, there is no
// partial-output mode, and the user sees exactly one line naming the kind
// and the offending identifier or position.
//
// This collapses esbuild's two-severity Msg/MsgData (error vs warning, many
// messages accumulated per build) down to a single always-fatal Error,
// since this pipeline has no warnings and no recovery.
package ohno

import (
	"fmt"

	"github.com/hxb2012/oi/internal/logger"
)

type Kind uint8

const (
	ParseError Kind = iota
	RedefinitionError
	MemberNotFound
	TypeMismatch
	AlphabetExhausted
	IOError
	PreprocessorError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case RedefinitionError:
		return "redefinition"
	case MemberNotFound:
		return "member not found"
	case TypeMismatch:
		return "type mismatch"
	case AlphabetExhausted:
		return "alphabet exhausted"
	case IOError:
		return "I/O error"
	case PreprocessorError:
		return "preprocessor error"
	default:
		return "error"
	}
}

// Error is the one error type the pipeline ever returns. Name is the
// offending identifier (empty when not applicable, e.g. IOError); Loc is
// the offending position when known.
type Error struct {
	Kind Kind
	Name string
	Loc  logger.Loc
	HasLoc bool
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	}
	return e.Kind.String()
}

func New(kind Kind, name string) *Error {
	return &Error{Kind: kind, Name: name}
}

func At(kind Kind, name string, loc logger.Loc) *Error {
	return &Error{Kind: kind, Name: name, Loc: loc, HasLoc: true}
}

func Redefinition(name string, loc logger.Loc) *Error {
	return At(RedefinitionError, name, loc)
}

func MemberNotFoundErr(name string, loc logger.Loc) *Error {
	return At(MemberNotFound, name, loc)
}

func TypeMismatchErr(what string, loc logger.Loc) *Error {
	return At(TypeMismatch, what, loc)
}

func AlphabetExhaustedErr(ns string) *Error {
	return New(AlphabetExhausted, ns)
}

func Parse(text string, loc logger.Loc) *Error {
	return At(ParseError, text, loc)
}

func IO(text string) *Error {
	return New(IOError, text)
}

func Preprocessor(text string) *Error {
	return New(PreprocessorError, text)
}

// Report writes the single stderr line diagnosing err and returns the
// process exit status it implies (always non-zero).
func Report(log logger.Log, source *logger.Source, err *Error) int {
	if err.HasLoc {
		log.AddError(source, err.Loc, err.Error())
	} else {
		log.AddErrorNoLoc(err.Error())
	}
	return 1
}
