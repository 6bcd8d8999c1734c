// Package errors 统一应用错误结构与 HTTP 错误响应
package errors

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/haierkeys/note-vault/pkg/code"

	"github.com/gin-gonic/gin"
)

// AppError 统一应用错误结构体
// 包含错误码、消息、详情和时间戳
type AppError struct {
	// Code 错误码
	Code int `json:"code"`
	// Message 错误消息
	Message string `json:"message"`
	// Details 错误详情（可选）
	Details []string `json:"details,omitempty"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// Timestamp 错误发生时间
	Timestamp time.Time `json:"timestamp"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:      c.Code(),
		Message:   c.Msg(),
		Details:   c.Details(),
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// WithDetails 设置详情并返回自身（链式调用）
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = details
	return e
}

// ErrorResponse 统一错误响应处理
// 将错误转换为 AppError 并返回 JSON 响应（HTTP 层恒为 200，业务码区分结果）
func ErrorResponse(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(http.StatusOK, appErr)
		return
	}

	// 检查是否是 Code 类型错误
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		c.JSON(http.StatusOK, &AppError{
			Code:      codeErr.Code(),
			Message:   codeErr.Msg(),
			Details:   codeErr.Details(),
			Timestamp: time.Now(),
		})
		return
	}

	// 请求上下文超时
	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusOK, &AppError{
			Code:      code.ErrorRequestTimeout.Code(),
			Message:   code.ErrorRequestTimeout.Msg(),
			Timestamp: time.Now(),
		})
		return
	}

	// 未知错误，返回内部错误
	c.JSON(http.StatusOK, &AppError{
		Code:      code.ErrorServerInternal.Code(),
		Message:   code.ErrorServerInternal.Msg(),
		Timestamp: time.Now(),
	})
}

// IsAppError 检查错误是否为 AppError 类型
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
