package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"product-portal/internal/core/auth"
	"product-portal/internal/domain"
	resp "product-portal/internal/transport/http/response"
)

const ctxUserKey = "currentUser"

// Authenticate 解析 Bearer token 并把用户从存储里捞出来挂到上下文。
// token 对应的用户已不存在时同样按未认证处理。
func Authenticate(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortFail(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortFail(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		u, err := users.FindByID(c.Request.Context(), claims.UID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				resp.AbortFail(c, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			_ = c.Error(err)
			resp.AbortFail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// RequireRole 必须挂在 Authenticate 之后，角色不匹配返回 403
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if d := domain.Authorize(u, role, nil); !d.Allow {
			resp.AbortFail(c, http.StatusForbidden, "Forbidden: "+d.Reason)
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
