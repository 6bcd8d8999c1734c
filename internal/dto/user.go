package dto

import (
	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/pkg/timex"
)

// UserCreateRequest 注册请求参数
type UserCreateRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Name     string `json:"name" form:"name" binding:"required"`
}

// UserLoginRequest 登录请求参数
type UserLoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// UserSettingsRequest 偏好设置更新，nil 字段不变更
type UserSettingsRequest struct {
	Theme       *string `json:"theme" form:"theme"`
	DefaultView *string `json:"defaultView" form:"defaultView"`
}

// UserDTO 用户信息响应，永不携带密码哈希
type UserDTO struct {
	ID        string             `json:"id"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	CreatedAt timex.Time         `json:"createdAt"`
	Settings  model.UserSettings `json:"settings"`
	// Token 登录/注册成功时返回
	Token string `json:"token,omitempty"`
}
