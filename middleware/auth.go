package middleware

import (
	"net/http"
	"strings"

	"tradeverse/pkg/context"
	"tradeverse/pkg/jwt"
	"tradeverse/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 解析 Bearer token，把用户身份写入请求上下文
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "请先登录")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuth 同 Auth，但允许匿名访问，解析失败不拦截
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, secret); ok {
			c.Set(context.CtxUserID, claims.UserID)
			c.Set(context.CtxIsAdmin, claims.IsAdmin)
		}
		c.Next()
	}
}

// AdminOnly 管理员专用接口
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !context.IsAdmin(c) {
			response.Abort(c, http.StatusForbidden, "需要管理员权限")
			return
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, secret string) (*jwt.Claims, bool) {
	authorization := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authorization, "Bearer ")
	if token == "" || token == authorization {
		return nil, false
	}

	claims, err := jwt.ParseToken([]byte(secret), jwt.TypeAccess, token)
	if err != nil {
		return nil, false
	}
	return claims, true
}
