package logger

import "testing"

func TestMsgLocation(t *testing.T) {
	source := &Source{PrettyPath: "in.c", Contents: "int a;\nint b;\n"}
	loc := LocationOrNil(source, Range{Loc: Loc{Start: 11}})
	if loc.Line != 2 || loc.Column != 4 {
		t.Fatalf("got line %d column %d", loc.Line, loc.Column)
	}
	if loc.LineText != "int b;" {
		t.Fatalf("got line text %q", loc.LineText)
	}
}

func TestStderrLogTracksErrors(t *testing.T) {
	log := NewStderrLog()
	if log.HasErrors() {
		t.Fatalf("expected no errors yet")
	}
	log.AddErrorNoLoc("boom")
	if !log.HasErrors() {
		t.Fatalf("expected an error to be recorded")
	}
	if len(log.Done()) != 1 {
		t.Fatalf("expected exactly one message")
	}
}
