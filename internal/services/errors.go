package services

import "errors"

// ErrorKind classifies failures surfaced by CatalogService.
type ErrorKind int

const (
	// KindCreationFailed means the repository accepted a create but returned
	// no identifiable record.
	KindCreationFailed ErrorKind = iota + 1
	// KindRepositoryFailure means the repository rejected the call.
	KindRepositoryFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindCreationFailed:
		return "creation_failed"
	case KindRepositoryFailure:
		return "repository_failure"
	default:
		return "unknown"
	}
}

// Error is the error type returned by CatalogService. Message is what callers
// see; for repository failures it is the repository's message verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of a service error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return 0
}

func creationFailed() *Error {
	return &Error{Kind: KindCreationFailed, Message: "unable to create product"}
}

func repositoryFailure(err error) *Error {
	return &Error{Kind: KindRepositoryFailure, Message: err.Error(), Err: err}
}
