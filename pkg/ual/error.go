package ual

import (
	"fmt"

	"moff.io/ual-tokenpocket/pkg/errors"
)

// ErrorType classifies authenticator failures so hosts can react without parsing messages.
type ErrorType string

const (
	ErrorTypeSigning        ErrorType = "Signing"
	ErrorTypeLogout         ErrorType = "Logout"
	ErrorTypeInitialization ErrorType = "Initialization"
	ErrorTypeLogin          ErrorType = "Login"
	ErrorTypeValidation     ErrorType = "Validation"
	ErrorTypeUnsupported    ErrorType = "Unsupported"
)

// Error is returned or stored by authenticators. Cause keeps the underlying failure.
type Error struct {
	Message string
	Type    ErrorType
	// Source 产生错误的钱包名称
	Source string
	Cause  error
}

// NewError 构建 Error，cause 会附带调用栈
func NewError(message string, typ ErrorType, source string, cause error) *Error {
	return &Error{
		Message: message,
		Type:    typ,
		Source:  source,
		Cause:   errors.WithStack(cause),
	}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s (%s): %s", e.Source, e.Type, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s: %v", e.Source, e.Type, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Classification 供错误上报标记来源钱包和错误类型
func (e *Error) Classification() (source, kind string) {
	return e.Source, string(e.Type)
}

// IsType reports whether err is, or wraps, an *Error of the given type.
func IsType(err error, typ ErrorType) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.Type == typ
}
