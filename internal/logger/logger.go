// Package logger carries diagnostics from the parser, rewriter and renamer
// out to the driver. The shape (Log.AddMsg/HasErrors/Done plus a Msg/Loc
// pair) follows evanw/esbuild's internal/logger, trimmed down: this tool
// never prints warnings or partial output, so the message limiting, color
// negotiation and summary-table machinery that esbuild needs for a
// long-running bundler have no job to do here (see the root DESIGN.md).
package logger

import (
	"fmt"
	"os"
	"strings"
)

type MsgKind uint8

const (
	Error MsgKind = iota
	Note
)

func (kind MsgKind) String() string {
	switch kind {
	case Error:
		return "error"
	case Note:
		return "note"
	default:
		panic("internal error")
	}
}

// Loc is a 0-based byte offset from the start of the source file.
type Loc struct {
	Start int32
}

type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

type MsgLocation struct {
	File     string
	Line     int // 1-based
	Column   int // 0-based, in bytes
	LineText string
}

type MsgData struct {
	Text     string
	Location *MsgLocation
}

type Msg struct {
	Kind MsgKind
	Data MsgData
}

func (msg Msg) String() string {
	if loc := msg.Data.Location; loc != nil {
		return fmt.Sprintf("%s:%d:%d: %s: %s", loc.File, loc.Line, loc.Column+1, msg.Kind.String(), msg.Data.Text)
	}
	return fmt.Sprintf("%s: %s", msg.Kind.String(), msg.Data.Text)
}

type Source struct {
	Index      uint32
	PrettyPath string
	Contents   string
}

func (s *Source) TextForRange(r Range) string {
	return s.Contents[r.Loc.Start : r.Loc.Start+r.Len]
}

func computeLineAndColumn(contents string, offset int) (line int, column int, lineStart int, lineEnd int) {
	line = 1
	lineStart = 0
	for i := 0; i < offset && i < len(contents); i++ {
		if contents[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd = len(contents)
	if i := strings.IndexByte(contents[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	column = offset - lineStart
	return
}

func LocationOrNil(source *Source, r Range) *MsgLocation {
	if source == nil {
		return nil
	}
	line, column, lineStart, lineEnd := computeLineAndColumn(source.Contents, int(r.Loc.Start))
	return &MsgLocation{
		File:     source.PrettyPath,
		Line:     line,
		Column:   column,
		LineText: source.Contents[lineStart:lineEnd],
	}
}

func RangeData(source *Source, r Range, text string) MsgData {
	return MsgData{Text: text, Location: LocationOrNil(source, r)}
}

// Log collects messages. Unlike esbuild's Log, ours never needs to defer
// warnings past an error: this pipeline is fatal-only, so the first error
// wins and nothing else is printed.
type Log struct {
	AddMsg    func(Msg)
	HasErrors func() bool
	Done      func() []Msg
}

func NewStderrLog() Log {
	var msgs []Msg
	hasErrors := false

	return Log{
		AddMsg: func(msg Msg) {
			msgs = append(msgs, msg)
			if msg.Kind == Error {
				hasErrors = true
			}
			fmt.Fprintln(os.Stderr, msg.String())
		},
		HasErrors: func() bool {
			return hasErrors
		},
		Done: func() []Msg {
			return msgs
		},
	}
}

func (log Log) AddError(source *Source, loc Loc, text string) {
	log.AddMsg(Msg{Kind: Error, Data: RangeData(source, Range{Loc: loc}, text)})
}

func (log Log) AddErrorNoLoc(text string) {
	log.AddMsg(Msg{Kind: Error, Data: MsgData{Text: text}})
}
