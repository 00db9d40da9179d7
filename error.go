package urldoc

import (
	"errors"
	"fmt"
)

// Application error codes. They classify per-URL failures so the batch
// driver can report them without inspecting error strings.
const (
	EINTERNAL    = "internal"    // unexpected failure, including IO
	EINVALID     = "invalid"     // malformed input, e.g. a bad URL
	ENOCONTENT   = "no_content"  // no usable article body found
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // network or timeout failure
	EUPSTREAM    = "upstream"    // non-2xx HTTP response
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code classifies the error.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("urldoc error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
