package errno

import (
	"errors"
	"fmt"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so errors.Is works
// across WithMessage and Wrap copies.
func (e Errno) Is(target error) bool {
	var other Errno
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// WithMessage returns a copy of e with a formatted message.
func (e Errno) WithMessage(format string, args ...any) Errno {
	return Errno{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches cause to e. The message keeps the Errno text in front.
func (e Errno) Wrap(cause error) error {
	return &wrapped{Errno: e, cause: cause}
}

type wrapped struct {
	Errno
	cause error
}

func (w *wrapped) Error() string {
	if w.cause == nil {
		return w.Message
	}
	return fmt.Sprintf("%s: %v", w.Message, w.cause)
}

func (w *wrapped) Unwrap() []error {
	return []error{w.Errno, w.cause}
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var w *wrapped
	if errors.As(err, &w) {
		return w.Code, w.Error()
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, typed.Message
	}
	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
	ErrConfig           = Errno{Code: 10005, Message: "Configuration error"}
)

// Drafting Errors (30000+)
var (
	ErrUnsupportedNetwork = Errno{Code: 30101, Message: "Unsupported network"}
	ErrInvalidTransaction = Errno{Code: 30201, Message: "Invalid transaction"}
	ErrInvalidRecipient   = Errno{Code: 30202, Message: "Invalid recipient"}
	ErrInvalidAmount      = Errno{Code: 30203, Message: "Invalid amount"}
	ErrInvalidFee         = Errno{Code: 30204, Message: "Invalid fee"}
	ErrServiceRequest     = Errno{Code: 30301, Message: "Signing service request failed"}
	ErrOperationInFlight  = Errno{Code: 30302, Message: "Another operation is in flight for this draft"}
)
