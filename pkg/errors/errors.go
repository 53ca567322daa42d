package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 应用错误
// 设计说明：
// 1. Code是业务错误码，客户端据此判断错误类型
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，只写日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，便于 errors.Is(err, ErrInvalidParams) 匹配带不同提示的同类错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus 错误码 → HTTP状态码
// 4xxxx 为客户端错误，5xxxx 为服务端错误
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 40900 && e.Code < 41000:
		return http.StatusBadRequest
	case e.Code >= 40400 && e.Code < 40500:
		return http.StatusNotFound
	case e.Code >= 50300 && e.Code < 50400:
		return http.StatusServiceUnavailable
	case e.Code >= 50000:
		return http.StatusInternalServerError
	case e.Code >= 40000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New 创建AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（数据库、网络等），隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapCode 用指定错误码包装
func WrapCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// - 4xxxx: 客户端错误
// - 5xxxx: 服务端错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 存储层错误

	// 依赖不可用（50300-50399）
	ErrCodeUnavailable = 50300 // 依赖服务不可用(健康检查)

	// 资源错误（40400-40499）
	ErrCodeNotFound = 40400 // 资源不存在

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
)

var (
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrUnavailable   = New(ErrCodeUnavailable, "服务不可用")
	ErrNotFound      = New(ErrCodeNotFound, "资源不存在")
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
)

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
