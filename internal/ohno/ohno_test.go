package ohno

import "testing"

func TestErrorStringNamesOffender(t *testing.T) {
	err := New(RedefinitionError, "foo")
	if got, want := err.Error(), "redefinition: foo"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorStringWithoutName(t *testing.T) {
	err := New(AlphabetExhausted, "")
	if got, want := err.Error(), "alphabet exhausted"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
