// Command oi is the CLI entry point: it takes a bits vector, an input path,
// and an optional output path, shells out to the system preprocessor (an
// external collaborator, not part of this module), synthesizes the
// integer-width macro prologue ahead of it, then runs the in-process
// pipeline in internal/oi and writes the result.
//
// Argument handling is three positionals read straight off os.Args: there
// is nothing here that benefits from flags, subcommands or usage text (see
// the root DESIGN.md).
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hxb2012/oi/internal/logger"
	"github.com/hxb2012/oi/internal/ohno"
	"github.com/hxb2012/oi/internal/oi"
	"github.com/hxb2012/oi/internal/prologue"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewStderrLog()

	if len(args) < 2 || len(args) > 3 {
		log.AddErrorNoLoc("usage: oi <bits> <input> [output]")
		return 1
	}
	bitsArg, input := args[0], args[1]
	output := ""
	if len(args) == 3 {
		output = args[2]
	}

	if output != "" && upToDate(output, input) {
		return 0
	}

	bits, err := prologue.Parse(bitsArg)
	if err != nil {
		return ohno.Report(log, nil, err.(*ohno.Error))
	}

	macros, err2 := prologue.Generate(bits)
	if err2 != nil {
		return ohno.Report(log, nil, err2.(*ohno.Error))
	}

	raw, ioErr := os.ReadFile(input)
	if ioErr != nil {
		return ohno.Report(log, nil, ohno.IO(ioErr.Error()))
	}

	preprocessed, ppErr := preprocess(macros + string(raw))
	if ppErr != nil {
		return ohno.Report(log, nil, ohno.Preprocessor(ppErr.Error()))
	}

	out, src, minifyErr := oi.Minify(input, preprocessed)
	if minifyErr != nil {
		ohErr, ok := minifyErr.(*ohno.Error)
		if !ok {
			ohErr = ohno.IO(minifyErr.Error())
		}
		return ohno.Report(log, src, ohErr)
	}

	if output == "" {
		os.Stdout.Write(out)
		return 0
	}
	if ioErr := os.WriteFile(output, out, 0o644); ioErr != nil {
		return ohno.Report(log, nil, ohno.IO(ioErr.Error()))
	}
	return 0
}

// upToDate reports whether output exists and is at least as new as input,
// the driver's "skip work" check.
func upToDate(output, input string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return false
	}
	inInfo, err := os.Stat(input)
	if err != nil {
		return false
	}
	return !outInfo.ModTime().Before(inInfo.ModTime())
}

// preprocess hands source to the system C preprocessor. Macro expansion and
// #include resolution are a platform concern handled entirely outside this
// tool.
func preprocess(source string) (string, error) {
	cc := preprocessorCommand()
	cmd := exec.Command(cc, "-E", "-P", "-")
	cmd.Stdin = strings.NewReader(source)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%s: %s", cc, ee.Stderr)
		}
		return "", err
	}
	return string(out), nil
}

func preprocessorCommand() string {
	if cc := os.Getenv("CC"); cc != "" {
		return cc
	}
	return "cc"
}
