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

// PomodoroHandler 番茄钟 API 路由处理器
type PomodoroHandler struct {
	*Handler
}

// NewPomodoroHandler 创建 PomodoroHandler 实例
func NewPomodoroHandler(a *app.App) *PomodoroHandler {
	return &PomodoroHandler{
		Handler: NewHandler(a),
	}
}

// Get current pomodoro settings and counter
// 返回当前番茄钟设置与完成计数
func (h *PomodoroHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	state, err := h.App.PomodoroService.Get(ctx, uid)
	if err != nil {
		h.logError(ctx, "PomodoroHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(state))
}

// Update pomodoro durations
// 更新专注 / 休息时长
func (h *PomodoroHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.PomodoroUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("PomodoroHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorPomodoroInvalidDuration.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	state, err := h.App.PomodoroService.Update(ctx, uid, params.FocusMinutes, params.BreakMinutes)
	if err != nil {
		h.logError(ctx, "PomodoroHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(state))
}

// Complete registers a finished focus session
// 记录一次完成的专注会话
func (h *PomodoroHandler) Complete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	state, err := h.App.PomodoroService.Complete(ctx, uid)
	if err != nil {
		h.logError(ctx, "PomodoroHandler.Complete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(state))
}
