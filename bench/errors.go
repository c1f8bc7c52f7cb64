package bench

import "fmt"

// AllocationError reports a failed trial buffer allocation. It always
// aborts the run.
type AllocationError struct {
	Size int
	Err  error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocate %d element buffer: %v", e.Size, e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// VerificationError reports a trial whose buffer did not hold the
// expected sequence. It always aborts the run.
type VerificationError struct {
	Strategy  string
	Iteration int
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("strategy %s: corrupt buffer on iteration %d",
		e.Strategy, e.Iteration)
}

// RunError reports a strategy that failed internally before its
// buffer could be verified.
type RunError struct {
	Strategy string
	Err      error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("strategy %s: %v", e.Strategy, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
