package middleware

import (
	"Board/pkg/context"
	"Board/pkg/log"
	"Board/pkg/response"
	"Board/service"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 必须登录
func Auth(identity service.IIdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, service.ErrUnauthorized.Code, service.ErrUnauthorized.Msg)
			return
		}

		account, err := identity.Resolve(c.Request.Context(), token)
		if err != nil {
			code := response.CodeOf(err)
			if code == http.StatusInternalServerError {
				log.L.Error("resolve account failed",
					zap.String("method", c.Request.Method),
					zap.String("path", c.FullPath()),
					zap.Error(err),
				)
				response.Abort(c, code, response.MsgInternal)
				return
			}
			response.Abort(c, code, err.Error())
			return
		}

		context.SetAccount(c, account)
		c.Next()
	}
}

// OptionalAuth 可选登录，解析失败按匿名处理，不会中断请求
func OptionalAuth(identity service.IIdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if account, ok := identity.ResolveOptional(c.Request.Context(), token); ok {
				context.SetAccount(c, account)
			}
		}
		c.Next()
	}
}

// bearerToken 解析 Authorization: Bearer <token>
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
