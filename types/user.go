package types

import "time"

// SignupRequest 注册请求
type SignupRequest struct {
	UserID   string `json:"user_id" binding:"required,min=3,max=30"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest 登录请求，username 可以是账号ID或用户名，兼容表单提交
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // 秒
}

// UserResponse 用户信息(不含密码)
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorProfile 作者公开信息
type AuthorProfile struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
