package domain

import (
	"errors"
	"fmt"
)

// Error wraps a lower-level error with a message and one of the sentinel
// codes below, so callers can switch on Code() while the chain stays
// unwrappable.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() error {
	return e.code
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

var (
	// ErrInvalidDimension will throw if grid width or height is non-positive at construction
	ErrInvalidDimension = errors.New("grid width and height must be positive")
	// ErrUnmappedPoi will throw if a start or destination poi has no intersection mapping
	ErrUnmappedPoi = errors.New("poi has no intersection mapping")
	// ErrUnreachable will throw if no path exists between two pois required by the tour
	ErrUnreachable = errors.New("no path exists between required pois")
	// ErrUnknownStrategy will throw if the requested optimization strategy is not registered
	ErrUnknownStrategy = errors.New("unknown optimization strategy")
	// ErrEmptyDestinations will throw if optimization is invoked with zero destination pois
	ErrEmptyDestinations = errors.New("destination poi list is empty")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
)

var MessageInternalServerError string = "internal server error"
