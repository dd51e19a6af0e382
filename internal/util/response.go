package util

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponse 统一错误响应结构
// 校验错误带 field，404 和 500 只有 message
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Message: entity + " not found",
	})
}

// Validation 参数校验失败响应
func Validation(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: message,
		Field:   field,
	})
}

// BadRequest 无法解析请求体时的通用400响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: message,
	})
}

// ServerError 未预期的存储错误，记录日志后返回500
func ServerError(c *gin.Context, err error) {
	log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal server error",
	})
}

// RespondError 把服务层错误映射为HTTP响应
// entity 用于组装404消息，如 "Invoice" -> "Invoice not found"
func RespondError(c *gin.Context, err error, entity string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		Validation(c, ve.Field, ve.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, entity)
	default:
		ServerError(c, err)
	}
}
