package response

import (
	"Board/pkg/log"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MsgInternal 系统错误对外统一提示，不暴露内部错误信息
const MsgInternal = "系统异常"

// BizError 业务错误，Code 与 HTTP 状态码一致
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// CodeOf 返回错误对应的状态码，非业务错误返回 500
func CodeOf(err error) int {
	var be *BizError
	if errors.As(err, &be) {
		return be.Code
	}
	return http.StatusInternalServerError
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
					Code: http.StatusInternalServerError,
					Msg:  MsgInternal,
				})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err

			var be *BizError
			if errors.As(err, &be) {
				Fail(c, be.Code, be.Msg)
			} else {
				log.L.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
				Fail(c, http.StatusInternalServerError, MsgInternal)
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
