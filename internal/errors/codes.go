package errors

// Code classifies an error so callers can branch on it without string matching
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode maps a code to a process exit status for the CLI.
// Data problems and usage problems are kept apart so batch scripts can tell them apart.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument:
		return 2
	case CodeNotFound:
		return 3
	case CodeFailedPrecondition, CodeDataLoss:
		return 4
	case CodeUnavailable:
		return 5
	default:
		return 1
	}
}
