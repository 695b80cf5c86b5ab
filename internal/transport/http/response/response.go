package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-portal/internal/domain"
)

// Body 统一响应信封：{success, message?, data?, errors?}
type Body struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError 校验失败明细，field 对应请求体里的字段路径
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Body{Success: true, Message: message, Data: data})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Success: false, Message: message})
}

func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Body{Success: false, Message: message})
}

func Invalid(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Message: "Validation failed", Errors: errs})
}

// FromError 把业务错误映射到 HTTP 状态码；未识别的一律 500，且不向外泄露内部细节
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		Fail(c, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrEmailTaken):
		Fail(c, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		Fail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrUnauthenticated):
		Fail(c, http.StatusUnauthorized, "Unauthenticated")
	case errors.Is(err, domain.ErrForbidden):
		Fail(c, http.StatusForbidden, "Forbidden")
	default:
		_ = c.Error(err) // 交给 access log 打印
		Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
