package context

import (
	"Board/models"
	"Board/pkg/log"
	"Board/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxAccount = "account"
)

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: http.StatusInternalServerError,
				Msg:  response.MsgInternal,
			})
		}
	}
}

func SetAccount(c *gin.Context, account *models.Account) {
	c.Set(CtxAccount, account)
}

// GetAccount 获取已认证用户，需要配合 middleware.Auth 使用
func GetAccount(c *gin.Context) (*models.Account, error) {
	account, ok := GetViewer(c)
	if !ok {
		return nil, response.NewError(http.StatusUnauthorized, "未登录")
	}
	return account, nil
}

// GetViewer 获取当前访问者，未登录时返回 false
func GetViewer(c *gin.Context) (*models.Account, bool) {
	v, ok := c.Get(CtxAccount)
	if !ok {
		return nil, false
	}
	account, ok := v.(*models.Account)
	if !ok || account == nil {
		return nil, false
	}
	return account, true
}
