package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"meditrack-http-service/internal/error/code"
)

// ErrorResponse 定义统一的错误响应格式。
// 成功响应不使用包装，直接返回实体JSON，与前端约定保持一致。
type ErrorResponse struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success 成功响应 (200)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应 (201)
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Fail 失败响应，使用错误码默认消息
func Fail(c *gin.Context, errorCode int) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode))
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{Message: message})
}

// ValidationFailed 校验失败响应，携带逐字段的错误明细
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(code.StatusBadRequest, ErrorResponse{
		Message: code.GetMessage(code.ErrValidation),
		Errors:  errs,
	})
}

// BindError 将gin绑定错误转换为校验失败响应
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   fe.Field(),
				Message: fe.Tag(),
			})
		}
		ValidationFailed(c, fields)
		return
	}
	FailWithMessage(c, code.ErrBind, code.GetMessage(code.ErrBind))
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(code.StatusNotFound, ErrorResponse{Message: message})
}

// Unauthorized 未认证响应
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrAuthRequired)
	}
	FailWithMessage(c, code.ErrAuthRequired, message)
}

// Forbidden 角色权限不足响应
func Forbidden(c *gin.Context) {
	Fail(c, code.ErrPermissionDenied)
}

// ServerError 服务器错误响应，不对外泄露内部细节
func ServerError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrUnknown)
	}
	FailWithMessage(c, code.ErrUnknown, message)
}
