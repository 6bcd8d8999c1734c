// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"context"

	"github.com/haierkeys/note-vault/internal/app"
	apperrors "github.com/haierkeys/note-vault/pkg/errors"

	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError 统一的 Handler 层错误日志
func (h *Handler) logError(ctx context.Context, op string, err error) {
	if apperrors.IsAppError(err) {
		h.App.Logger().Warn(op, zap.Error(err))
		return
	}
	h.App.Logger().Error(op, zap.Error(err))
}
