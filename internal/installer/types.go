package installer

import "fmt"

// OutcomeKind classifies the result of copying one file.
type OutcomeKind int

const (
	OutcomeCopied OutcomeKind = iota
	OutcomeSkipped
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCopied:
		return "copied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeError:
		return "error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of copying a single prompt file.
type Outcome struct {
	Kind     OutcomeKind
	FileName string
	Err      error // set when Kind is OutcomeError
}

// Report aggregates the outcomes of one copy run.
type Report struct {
	Success       bool
	CopiedCount   int
	SkippedCount  int
	NotFoundCount int      // selective copies only
	Errors        []string // "<fileName>: <reason>" or a not-found message, in processing order
	TotalCount    int

	// Err is set when the run aborted before copying anything, because the
	// target directory could not be prepared or the catalog could not be read.
	Err error
}

func (r *Report) add(o Outcome) {
	switch o.Kind {
	case OutcomeCopied:
		r.CopiedCount++
	case OutcomeSkipped:
		r.SkippedCount++
	case OutcomeError:
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", o.FileName, o.Err))
	}
}

func (r *Report) finish() *Report {
	r.Success = r.Err == nil && len(r.Errors) == 0
	return r
}

// failedReport is the zero-count report of an aborted run.
func failedReport(err error) *Report {
	return &Report{
		Success: false,
		Errors:  []string{err.Error()},
		Err:     err,
	}
}

// TargetDirectoryError is returned when the target directory cannot be created.
type TargetDirectoryError struct {
	Dir string
	Err error
}

func (e *TargetDirectoryError) Error() string {
	return fmt.Sprintf("cannot create directory %s: %v", e.Dir, e.Err)
}

func (e *TargetDirectoryError) Unwrap() error { return e.Err }

// Confirmer decides whether an existing destination file may be overwritten.
type Confirmer interface {
	Confirm(fileName string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(fileName string) (bool, error)

// Confirm calls f(fileName).
func (f ConfirmFunc) Confirm(fileName string) (bool, error) { return f(fileName) }

var (
	// AlwaysYes accepts every overwrite.
	AlwaysYes Confirmer = ConfirmFunc(func(string) (bool, error) { return true, nil })
	// AlwaysNo declines every overwrite.
	AlwaysNo Confirmer = ConfirmFunc(func(string) (bool, error) { return false, nil })
)
