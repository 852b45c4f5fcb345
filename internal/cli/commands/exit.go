package commands

// Exit codes returned by the fileutil binary.
const (
	ExitOK           = 0
	ExitSourceOpen   = 1 // source file could not be opened
	ExitDestCreate   = 2 // destination file could not be created
	ExitRuntimeError = 3 // bad arguments, config errors, read/write failures
)

// Messages printed to stderr for the fixed failure categories.
const (
	MsgSourceOpen = "error: source file does not exist or could not be opened"
	MsgDestCreate = "error: destination directory already contains specified file or does not exist"
)

// ExitError carries the process exit code and the message to print for a failed run.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}
