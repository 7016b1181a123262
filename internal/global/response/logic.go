package response

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey 是用于在 gin.Context 中存储错误对象的键
const ErrorContextKey = "error"

// Error 请求级错误，Code 即 HTTP 状态码
type Error struct {
	Code    int32
	Message string
	// Details 校验失败时逐条返回给调用方
	Details []string
	Origin  string
	cause   error
	stack   pkgerrors.StackTrace
}

var (
	ErrInvalidRequest = newError(http.StatusBadRequest, "invalid request")
	ErrValidation     = newError(http.StatusBadRequest, "validation errors")
	ErrNotFound       = newError(http.StatusNotFound, "not found")
	ErrDatabase       = newError(http.StatusInternalServerError, "database error")
	ErrServerInternal = newError(http.StatusInternalServerError, "internal server error")
)

func newError(code int32, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode 实现 sentry.CodedError
func (e *Error) GetCode() int32 {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 实现 pkg/errors 的 stackTracer，供 Sentry 提取堆栈
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithOrigin 保留原始错误链；debug 模式下 origin 会返回给调用方
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	wrapped := ensureStack(err)
	out := e.clone()
	out.Origin = fmt.Sprintf("%+v", wrapped)
	out.cause = wrapped
	if st, ok := wrapped.(stackTracer); ok {
		out.stack = st.StackTrace()
	}
	return out
}

// WithMessage 替换返回给调用方的 error 文本
func (e *Error) WithMessage(msg string) *Error {
	out := e.clone()
	out.Message = msg
	return out
}

// WithTips 追加逐条提示，400 响应以 errors 数组返回
func (e *Error) WithTips(details ...string) *Error {
	out := e.clone()
	out.Details = append(append([]string(nil), e.Details...), details...)
	return out
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func ensureStack(err error) error {
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
