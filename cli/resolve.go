package cli

import (
	"fmt"
	"strings"
)

// DefaultOutput is the output path used when --out is not given.
const DefaultOutput = "output.out"

// Config defines the resolved invocation. It is created once by Resolve and
// must be treated as read-only by the stages consuming it.
type Config struct {
	Mode   Mode   // What to do with the input.
	Input  string // Source file to process. Not checked for existence.
	Output string // Path to store output in.
}

func (c *Config) String() string {
	return fmt.Sprintf("%s %s -> %s", c.Mode, c.Input, c.Output)
}

// Resolve turns the command line arguments, minus the program name, into a
// Config.
//
// Returns ErrHelp if the only argument is "help". Any other failure is an
// *Error describing the first malformed argument found, scanning left to
// right. No partial Config is ever returned.
func Resolve(args []string) (*Config, error) {
	if len(args) == 1 && args[0] == "help" {
		return nil, ErrHelp
	}

	if len(args) < 2 {
		return nil, newError(UsageError, "", "expected at least two command line arguments")
	}

	base, ok := ModeByName(args[0])
	if !ok {
		return nil, newError(InvalidModeError, args[0],
			"invalid compilation mode %q, expected one of: %s",
			args[0], strings.Join(Modes(), ", "))
	}

	if args[1] == "" {
		return nil, newError(UsageError, "", "expected a non-empty input file")
	}

	c := Config{
		Mode:   base,
		Input:  args[1],
		Output: DefaultOutput,
	}

	for i := 2; i < len(args); i++ {
		switch flag := args[i]; flag {
		case "--out":
			value, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			c.Output = value
			i++

		case "--target":
			// Targets only apply to com, whatever the value says.
			if base != CompileToWasm32 {
				return nil, newError(TargetNotSupportedError, flag,
					"%s is not supported by the %s mode, use %s", flag, base, StageCompile)
			}

			value, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}

			t, ok := TargetByName(value)
			if !ok {
				return nil, newError(UnknownTargetError, value,
					"unknown target %q, expected one of: %s",
					value, strings.Join(Targets(), ", "))
			}
			c.Mode = t.Mode()
			i++

		default:
			return nil, newError(UnknownFlagError, flag, "unknown compiler flag %q", flag)
		}
	}

	return &c, nil
}

// flagValue returns the token following the flag at index i.
func flagValue(args []string, i int) (string, error) {
	if i+1 >= len(args) {
		return "", newError(MissingFlagValueError, args[i], "expected value after %s flag", args[i])
	}
	return args[i+1], nil
}
