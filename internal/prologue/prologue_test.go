package prologue

import (
	"strings"
	"testing"
)

func TestParseRejectsWrongArity(t *testing.T) {
	if _, err := Parse("8,16,32"); err == nil {
		t.Fatalf("expected an error for too few widths")
	}
}

func TestGenerateTypical(t *testing.T) {
	b, err := Parse("8,16,32,64,64")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Generate(b)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"#define uint8_t unsigned char",
		"#define int8_t signed char",
		"#define UINT8_C(c) c##u",
		"#define uint16_t unsigned short",
		"#define uint32_t unsigned int",
		"#define uint64_t unsigned long long",
		"#define UINT64_C(c) c##ull",
		"#define uintptr_t unsigned long long",
		"#define intptr_t signed long long",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGenerateWidthTiePrefersEarlierKeyword(t *testing.T) {
	b, err := Parse("8,16,32,32,64")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Generate(b)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "#define uint32_t unsigned int") {
		t.Fatalf("expected int to win width ties by kwOrder precedence, got:\n%s", out)
	}
}
