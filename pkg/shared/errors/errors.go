package errors

import "fmt"

// Process exit codes
const (
	ExitCodeOK       = 0
	ExitCodeError    = 1
	ExitCodeFindings = 2
)

// CommandError represents a command failure that maps to a specific process exit code.
type CommandError struct {
	ExitCode    int
	CommonError string
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError creates a new CommandError with the given exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
	}
}

// NewFindingsError reports that a scan produced findings while failing on findings was requested.
func NewFindingsError(count int) *CommandError {
	return NewCommandError(fmt.Errorf("scan produced %d findings", count), ExitCodeFindings)
}
