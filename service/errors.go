package service

import (
	"Board/pkg/response"
	"net/http"
)

var (
	ErrUnauthorized       = response.NewError(http.StatusUnauthorized, "登录状态已失效，请重新登录")
	ErrAccountNotFound    = response.NewError(http.StatusUnauthorized, "账号不存在")
	ErrInvalidCredentials = response.NewError(http.StatusUnauthorized, "账号或密码错误")
	ErrForbidden          = response.NewError(http.StatusForbidden, "无权操作")
	ErrPostNotFound       = response.NewError(http.StatusNotFound, "帖子不存在")
	ErrCommentNotFound    = response.NewError(http.StatusNotFound, "评论不存在")
	ErrAccountExists      = response.NewError(http.StatusConflict, "账号ID、用户名或邮箱已被注册")
)

// InvalidParam 参数校验失败
func InvalidParam(msg string) error {
	return response.NewError(http.StatusBadRequest, msg)
}
