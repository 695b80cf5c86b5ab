package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	resp "product-portal/internal/transport/http/response"
)

// bindJSON 绑定并校验请求体，失败时直接写 400 信封并短路 handler
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.Invalid(c, fieldErrors(err))
		return false
	}
	return true
}

func fieldErrors(err error) []resp.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]resp.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, resp.FieldError{Field: fieldPath(fe), Message: msgFor(fe)})
		}
		return out
	}
	return []resp.FieldError{{Field: "body", Message: "invalid JSON payload"}}
}

// fieldPath 去掉最外层结构体名，剩下的路径转小写，如 variants[0].amount
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func msgFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " entry"
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be a positive number"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
