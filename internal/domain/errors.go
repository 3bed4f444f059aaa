package domain

import "errors"

// ErrorKind classifies expected business-rule violations so the transport
// layer can map them to status codes without string matching.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindInvalidInput
)

// Error is a business-rule violation with a human-readable reason. Unexpected
// faults (store unavailable, driver errors) are never wrapped in this type.
type Error struct {
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func NotFound(reason string) error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

func Conflict(reason string) error {
	return &Error{Kind: KindConflict, Reason: reason}
}

func InvalidInput(reason string) error {
	return &Error{Kind: KindInvalidInput, Reason: reason}
}

func kindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

func IsNotFound(err error) bool     { return kindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return kindOf(err) == KindConflict }
func IsInvalidInput(err error) bool { return kindOf(err) == KindInvalidInput }
