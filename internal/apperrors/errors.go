package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Code is a stable integer identifying a domain failure. Codes are part of the
// wire contract with the mobile clients and must not be renumbered.
type Code int

const (
	CodeOK Code = 0

	CodeUserExist       Code = 1000
	CodeUserNotExist    Code = 1001
	CodePasswordInvalid Code = 1002
	CodePasswordError   Code = 1003
	CodeEmailInvalid    Code = 1008
	CodeEmailNotExist   Code = 1009

	CodeModelNotExist        Code = 25
	CodeModelExisted         Code = 26
	CodeAuthFail             Code = 27
	CodeCodeFail             Code = 28
	CodeBase64DecodeError    Code = 30
	CodeCustom               Code = 31
	CodeRefreshTokenNotExist Code = 32
)

// Desc returns the client-facing description for the code. The clients were
// shipped with these strings and display them verbatim.
func (c Code) Desc() string {
	switch c {
	case CodeOK:
		return "请求成功"
	case CodeUserExist:
		return "用户已经存在"
	case CodeUserNotExist:
		return "用户不存在"
	case CodePasswordInvalid:
		return "密码不合法"
	case CodePasswordError:
		return "密码错误"
	case CodeEmailInvalid:
		return "邮箱不合法"
	case CodeEmailNotExist:
		return "邮箱不存在"
	case CodeModelNotExist:
		return "对象不存在"
	case CodeModelExisted:
		return "对象已存在"
	case CodeAuthFail:
		return "密码错误"
	case CodeCodeFail:
		return "验证码错误"
	case CodeBase64DecodeError:
		return "base64 decode 失败"
	case CodeRefreshTokenNotExist:
		return "refreshToken 不存在"
	default:
		return "出错了"
	}
}

// APIError is a domain failure carried to the HTTP boundary unchanged and
// serialized into the standard response envelope.
type APIError struct {
	Code    Code
	Message string
	cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// New builds an APIError for the given code with its standard description.
func New(code Code) *APIError {
	return &APIError{Code: code, Message: code.Desc()}
}

// Newf builds an APIError with a custom message.
func Newf(code Code, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// Wrap attaches an underlying cause so callers can still errors.Is/As through it.
func Wrap(code Code, cause error) *APIError {
	return &APIError{Code: code, Message: code.Desc(), cause: cause}
}

// AsAPIError extracts an *APIError from an error chain, if present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
