package cli

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrHelp is returned by Resolve when the user asked for the usage text.
var ErrHelp = errors.New("help requested")

// Kind classifies a resolution failure.
type Kind int

// Known failure kinds.
const (
	UsageError Kind = iota + 1
	InvalidModeError
	UnknownFlagError
	MissingFlagValueError
	TargetNotSupportedError
	UnknownTargetError
)

func (k Kind) String() string {
	switch k {
	case UsageError:
		return "UsageError"
	case InvalidModeError:
		return "InvalidModeError"
	case UnknownFlagError:
		return "UnknownFlagError"
	case MissingFlagValueError:
		return "MissingFlagValueError"
	case TargetNotSupportedError:
		return "TargetNotSupportedError"
	case UnknownTargetError:
		return "UnknownTargetError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error defines a malformed invocation. Token holds the offending argument,
// if there is one.
type Error struct {
	Kind  Kind
	Token string
	Msg   string
}

// newError creates a new, formatted error of the given kind.
func newError(kind Kind, token string, f string, argv ...interface{}) *Error {
	return &Error{
		Kind:  kind,
		Token: token,
		Msg:   fmt.Sprintf(f, argv...),
	}
}

func (e *Error) Error() string {
	return e.Msg
}

// KindOf returns the kind of a resolution error, looking through any
// wrapping added with github.com/pkg/errors.
// Returns false if err did not come from Resolve.
func KindOf(err error) (Kind, bool) {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}
