package kit

import "errors"

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// CodedError is a sentinel error with a stable code used as a log field and
// metric label.
type CodedError struct {
	Code   string
	Msg    string
	Parent error
}

func NewError(code, msg string) *CodedError {
	return &CodedError{Code: code, Msg: msg}
}

// WrapError returns a sentinel that also matches parent under errors.Is.
func WrapError(parent error, code, msg string) *CodedError {
	return &CodedError{Code: code, Msg: msg, Parent: parent}
}

func (e *CodedError) Error() string { return e.Msg }
func (e *CodedError) Unwrap() error { return e.Parent }

// Outcome maps err to a label: "ok" for nil, the code of the first
// CodedError in the chain, or "error".
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return OutcomeError
}
