// Package cli resolves the peacock command line into a Config which the
// lexer, parser and code generators consume.
package cli

// Mode selects what a single invocation of the tool chain does.
type Mode int

// Known processing modes. The zero value is not a valid mode.
const (
	LexOnly Mode = iota + 1
	ParseOnly
	CompileToWasm32
	CompileToPVM
	CompileToIR
)

// ModeByName returns the base mode for the given mode keyword.
// Returns false if the keyword is not recognized.
func ModeByName(keyword string) (Mode, bool) {
	switch keyword {
	case "lex":
		return LexOnly, true
	case "parse":
		return ParseOnly, true
	case "com":
		return CompileToWasm32, true
	}
	return 0, false
}

// Modes returns the known mode keywords in the order they are presented
// to the user.
func Modes() []string {
	return []string{"com", "lex", "parse"}
}

// Valid returns true if m is one of the named modes.
func (m Mode) Valid() bool {
	return m >= LexOnly && m <= CompileToIR
}

// Stage returns the pipeline stage m stops at.
func (m Mode) Stage() Stage {
	switch m {
	case LexOnly:
		return StageLex
	case ParseOnly:
		return StageParse
	case CompileToWasm32, CompileToPVM, CompileToIR:
		return StageCompile
	}
	return 0
}

// Target returns the compilation target for m.
// Returns false if m does not compile.
func (m Mode) Target() (Target, bool) {
	switch m {
	case CompileToWasm32:
		return Wasm32, true
	case CompileToPVM:
		return PVM, true
	case CompileToIR:
		return IR, true
	}
	return 0, false
}

func (m Mode) String() string {
	if t, ok := m.Target(); ok {
		return StageCompile.String() + "/" + t.String()
	}
	if m.Valid() {
		return m.Stage().String()
	}
	return "unknown"
}

// Stage identifies how far through the pipeline an invocation runs.
type Stage int

// Known stages.
const (
	StageLex Stage = iota + 1
	StageParse
	StageCompile
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageCompile:
		return "com"
	}
	return "unknown"
}

// Target is the output format of the compile stage.
type Target int

// Known targets.
const (
	Wasm32 Target = iota + 1 // WebAssembly text.
	PVM                      // Bytecode for the peacock virtual machine.
	IR                       // Intermediate representation in text form.
)

// TargetByName returns the target for the given name.
// Returns false if the name is not recognized.
func TargetByName(name string) (Target, bool) {
	switch name {
	case "wasm32":
		return Wasm32, true
	case "pvm":
		return PVM, true
	case "ir":
		return IR, true
	}
	return 0, false
}

// Targets returns the known target names. The first one is the default.
func Targets() []string {
	return []string{"wasm32", "pvm", "ir"}
}

// Mode returns the processing mode which compiles to t.
func (t Target) Mode() Mode {
	switch t {
	case Wasm32:
		return CompileToWasm32
	case PVM:
		return CompileToPVM
	case IR:
		return CompileToIR
	}
	return 0
}

// Extension returns the file suffix conventionally used for output in
// format t, including the leading dot.
func (t Target) Extension() string {
	switch t {
	case Wasm32:
		return ".wat"
	case PVM:
		return ".pvm"
	case IR:
		return ".ir"
	}
	return ""
}

func (t Target) String() string {
	switch t {
	case Wasm32:
		return "wasm32"
	case PVM:
		return "pvm"
	case IR:
		return "ir"
	}
	return "unknown"
}
