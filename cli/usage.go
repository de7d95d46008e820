package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// modeHelp describes what each stage writes.
var modeHelp = map[Stage]string{
	StageCompile: "compiles source code to an executable format (default wasm32)",
	StageLex:     "writes lexer output to a file, mainly for debugging",
	StageParse:   "writes parser output to a file, mainly for debugging",
}

// targetHelp describes each target.
var targetHelp = map[Target]string{
	Wasm32: "compile to a standalone wasm32 wat file",
	PVM:    "compile to bytecode for the peacock interpreter",
	IR:     "compile to the intermediate representation text format",
}

// WriteUsage writes the help text for the given program name to w.
func WriteUsage(w io.Writer, program string) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Usage: %s [mode] [input_file] [...options]\n", program)
	fmt.Fprintf(&sb, "       %s help\n", program)
	sb.WriteString("  modes:\n")
	for _, name := range Modes() {
		m, _ := ModeByName(name)
		fmt.Fprintf(&sb, "    %-6s %s\n", name, modeHelp[m.Stage()])
	}

	sb.WriteString("  options:\n")
	sb.WriteString("    --target <target>  compilation target, com mode only. targets are:\n")
	for i, name := range Targets() {
		t, _ := TargetByName(name)
		desc := targetHelp[t]
		if i == 0 {
			desc += " (default)"
		}
		fmt.Fprintf(&sb, "      %-7s %s, usually named *%s\n", name, desc, t.Extension())
	}
	fmt.Fprintf(&sb, "    --out <path>       output file path, e.g. `--out myfile%s` (default %s)\n",
		Wasm32.Extension(), DefaultOutput)

	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "usage")
}
