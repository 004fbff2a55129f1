package errors

import (
	stderrors "errors"
	"fmt"
)

// DomainError is a machine-readable failure returned to callers.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Is matches any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// InvalidInput reports a rejected calculation field.
func InvalidInput(field, message string) *DomainError {
	return &DomainError{
		Code:    ErrInvalidInput.Code,
		Message: message,
		Field:   field,
	}
}

// InvalidRequest reports a request that could not be read at all.
func InvalidRequest(message string) *DomainError {
	return &DomainError{
		Code:    ErrInvalidRequest.Code,
		Message: message,
	}
}

// AsDomainError unwraps err into a DomainError if it carries one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}
