package api_router

import (
	"github.com/haierkeys/note-vault/internal/app"
	"github.com/haierkeys/note-vault/internal/dto"
	pkgapp "github.com/haierkeys/note-vault/pkg/app"
	"github.com/haierkeys/note-vault/pkg/code"
	apperrors "github.com/haierkeys/note-vault/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler user API router handler
// UserHandler 用户 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type UserHandler struct {
	*Handler
}

// NewUserHandler creates UserHandler instance
// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// Register user registration
// 处理用户注册 HTTP 请求，验证参数并调用 UserService。注册功能可在配置中关闭。
func (h *UserHandler) Register(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	if !h.App.Config().User.RegisterIsEnable {
		response.ToResponse(code.ErrorUserRegisterDisabled)
		return
	}

	params := &dto.UserCreateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Register.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	userDTO, err := h.App.UserService.Register(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Register", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(userDTO))
}

// Login user login
// 处理用户登录 HTTP 请求，验证参数并返回认证 Token。
func (h *UserHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserLoginRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Login.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	userDTO, err := h.App.UserService.Login(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Login", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(userDTO))
}

// Info current user profile
// 返回当前认证用户的资料与设置
func (h *UserHandler) Info(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	userDTO, err := h.App.UserService.Info(ctx, uid)
	if err != nil {
		h.logError(ctx, "UserHandler.Info", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(userDTO))
}

// UpdateSettings updates the current user's preferences
// 更新当前用户的偏好设置（主题、默认视图）
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserSettingsRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.UpdateSettings.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	userDTO, err := h.App.UserService.UpdateSettings(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "UserHandler.UpdateSettings", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(userDTO))
}
