package frameschema

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes carried by *Error.
const (
	CodeUnknownQuestionType     = "unknown_question_type"
	CodeUnknownAssuranceTier    = "unknown_assurance_tier"
	CodeUnsupportedFollowupType = "unsupported_followup_type"
	CodeTypeMismatch            = "type_mismatch"
	CodeMissingFollowupTarget   = "missing_followup_target"
)

// Sentinels for errors.Is. They match any *Error carrying the same code.
var (
	ErrUnknownQuestionType     = &Error{Code: CodeUnknownQuestionType}
	ErrUnknownAssuranceTier    = &Error{Code: CodeUnknownAssuranceTier}
	ErrUnsupportedFollowupType = &Error{Code: CodeUnsupportedFollowupType}
	ErrTypeMismatch            = &Error{Code: CodeTypeMismatch}
	ErrMissingFollowupTarget   = &Error{Code: CodeMissingFollowupTarget}
)

// Error reports a content-authoring defect found while compiling a schema.
// These are never transient; generation of the affected request stops.
type Error struct {
	Code     string // One of the codes listed above.
	Question string // Id of the offending question (empty when unknown).
	Message  string
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Code)
	if e.Question != "" {
		fmt.Fprintf(b, " at %q", e.Question)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Errorf builds an *Error for the given code and question id.
func Errorf(code, question, format string, a ...any) *Error {
	return &Error{Code: code, Question: question, Message: fmt.Sprintf(format, a...)}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Failure records one request that failed inside a batch.
type Failure struct {
	Request Request
	Err     error
}

// Failures is a collection of per-request failures that implements error.
type Failures []Failure

// Error summarizes the first few failures.
func (fs Failures) Error() string {
	if len(fs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(fs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		f := fs[i]
		// e.g. services-g-cloud-7-scs: unknown_question_type at "x"
		fmt.Fprintf(b, "%s: %v", f.Request, f.Err)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (fs Failures) Unwrap() []error {
	out := make([]error, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Err)
	}
	return out
}

// AsFailures extracts Failures from an error using errors.As internally.
func AsFailures(err error) (Failures, bool) {
	if err == nil {
		return nil, false
	}
	var fs Failures
	if errors.As(err, &fs) {
		return fs, true
	}
	return nil, false
}
