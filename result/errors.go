package result

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors for rejected inputs: null native
// handles, enum values outside a declared equivalence, and similar.
var ErrInvalidArgument = errors.New("fmodgo: invalid argument")

// Error is a surfaced FMOD failure.
type Error struct {
	Code    Result // Raw FMOD_RESULT
	Kind    Kind   // Category of Code
	Op      string // Native function that failed
	Message string // Human-readable description of Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("fmod %s: %s (%s, code %d)", e.Op, e.Message, e.Code, int32(e.Code))
}

// NewError creates an *Error for code. Returns nil if code is OK.
func NewError(code Result, op string) error {
	if code == OK {
		return nil
	}
	return &Error{
		Code:    code,
		Kind:    KindOf(code),
		Op:      op,
		Message: code.Description(),
	}
}

// KindOfError returns the kind carried by err, or KindNone if err is not an
// *Error.
func KindOfError(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindNone
}

// IsInvalidHandle returns true if err reports FMOD_ERR_INVALID_HANDLE.
func IsInvalidHandle(err error) bool {
	return KindOfError(err) == KindInvalidHandle
}

// IsHandleStolen returns true if err reports FMOD_ERR_CHANNEL_STOLEN.
func IsHandleStolen(err error) bool {
	return KindOfError(err) == KindHandleStolen
}

// Code returns the FMOD_RESULT carried by err, or OK if err is not an *Error.
func Code(err error) Result {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return OK
}
