package cmd

import (
	"errors"
	"fmt"

	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

// Exit codes.
const (
	ExitOK            = 0
	ExitUsage         = 1
	ExitUnsupported   = 2
	ExitConfiguration = 3
)

// usageError reports a malformed command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error to the exit code of the process. Errors that are
// neither configuration nor technology errors come from the command line.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, tech.ErrUnsupported):
		return ExitUnsupported
	case errors.Is(err, power.ErrConfiguration):
		return ExitConfiguration
	default:
		return ExitUsage
	}
}
