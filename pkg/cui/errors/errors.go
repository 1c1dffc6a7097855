package errors

import (
	"fmt"
)

var ErrInvalidInput = fmt.Errorf("invalid input")
var ErrFormatMismatch = fmt.Errorf("format mismatch")
var ErrUnimplementedCapability = fmt.Errorf("unimplemented capability")
var ErrTemplate = fmt.Errorf("template error")
var ErrUnknownField = fmt.Errorf("unknown field")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// NewInvalidInputError reports a value of a shape the receiving constructor does not accept
func NewInvalidInputError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidInput,
	}
}

// NewFormatMismatchError reports text that does not follow the required textual format
func NewFormatMismatchError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrFormatMismatch,
	}
}

// NewUnimplementedCapabilityError signals a value type that can not render itself.
// It is a programming error and is not meant to be recovered from.
func NewUnimplementedCapabilityError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnimplementedCapability,
	}
}

func NewTemplateError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrTemplate,
	}
}

func NewUnknownFieldError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnknownField,
	}
}
