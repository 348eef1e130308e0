// Package errors 封装 github.com/pkg/errors，为错误附带调用栈，并在需要时上报至已注册的 Reporter.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with the supplied message and the current stack.
func New(msg string) error {
	return pkgerrors.New(msg)
}

// Errorf formats according to a format specifier and records the stack.
func Errorf(format string, args ...interface{}) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with msg and the stack at the point Wrap is called.
// Returns nil if err is nil.
func Wrap(err error, msg string) error {
	return pkgerrors.Wrap(err, msg)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with the current stack. Returns nil if err is nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Cause returns the innermost error that does not implement causer.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// NewWithReport 构建错误并上报
func NewWithReport(msg string) error {
	err := pkgerrors.New(msg)
	report(err)
	return err
}

// WrapAndReport 包装错误并上报，err为nil时返回nil
func WrapAndReport(err error, msg string) error {
	if err == nil {
		return nil
	}
	wrapped := pkgerrors.Wrap(err, msg)
	report(wrapped)
	return wrapped
}

// ErrorfAndReport 格式化构建错误并上报
func ErrorfAndReport(format string, args ...interface{}) error {
	err := pkgerrors.New(fmt.Sprintf(format, args...))
	report(err)
	return err
}

// Report 上报已有的错误，不做包装
func Report(err error) {
	report(err)
}

// Classified is implemented by errors that know which authenticator raised them and what kind of failure they are.
// Reporters use it to tag reports without depending on the authenticator packages.
type Classified interface {
	Classification() (source, kind string)
}

func classify(err error) (source, kind string, ok bool) {
	var c Classified
	if !As(err, &c) {
		return "", "", false
	}
	source, kind = c.Classification()
	return source, kind, true
}
