package tools

import "fmt"

type FailureKind string

const (
	FailInvalidInput FailureKind = "invalid_input"
	FailNotFound     FailureKind = "not_found"
	FailIO           FailureKind = "io"
)

// Failure keeps the reason structured for tests; Display flattens it for
// the user.
type Failure struct {
	Kind FailureKind
	Err  error
}

// Result is what every tool returns. Exactly one of Output or Failure is
// meaningful.
type Result struct {
	Output  string
	Failure *Failure
}

func Ok(output string) Result {
	return Result{Output: output}
}

func Okf(format string, args ...any) Result {
	return Result{Output: fmt.Sprintf(format, args...)}
}

func Fail(kind FailureKind, err error) Result {
	return Result{Failure: &Failure{Kind: kind, Err: err}}
}

func Failf(kind FailureKind, format string, args ...any) Result {
	return Result{Failure: &Failure{Kind: kind, Err: fmt.Errorf(format, args...)}}
}

func (r Result) Failed() bool { return r.Failure != nil }

// Display renders the result for the respond boundary.
func (r Result) Display() string {
	if r.Failure != nil {
		return fmt.Sprintf("Error (%s): %v", r.Failure.Kind, r.Failure.Err)
	}
	return r.Output
}
