package handler

import (
	"Board/middleware"
	"Board/pkg/context"
	"Board/pkg/response"
	"Board/service"
	"Board/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	AccountService  service.IAccountService
	IdentityService service.IIdentityService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(u.IdentityService)
	g := r.Group("/users")
	g.POST("/signup", context.Wrap(u.Signup))
	g.POST("/login", context.Wrap(u.Login))
	g.GET("/me", authorize, context.Wrap(u.Me))
	g.GET("/health", health)
}

// Signup 注册
func (u *User) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	account, err := u.AccountService.Signup(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Created(c, service.ToUserResponse(account))
	return nil
}

// Login 登录，支持 JSON 和表单
func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "请输入账号和密码")
	}

	token, err := u.AccountService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	response.Success(c, token)
	return nil
}

func (u *User) Me(c *gin.Context) error {
	account, err := context.GetAccount(c)
	if err != nil {
		return err
	}

	response.Success(c, service.ToUserResponse(account))
	return nil
}
