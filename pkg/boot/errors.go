package boot

import "errors"

const (
	ExitSuccess = 0
	ExitFailure = 1
)

var (
	ErrSubsystemInit = errors.New("subsystem could not initialize")
	ErrWindowCreate  = errors.New("window could not be created")
)

// ExitCode maps the result of a run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
