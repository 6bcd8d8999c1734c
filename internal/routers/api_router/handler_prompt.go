package api_router

import (
	"github.com/haierkeys/note-vault/internal/app"
	pkgapp "github.com/haierkeys/note-vault/pkg/app"
	"github.com/haierkeys/note-vault/pkg/code"

	"github.com/gin-gonic/gin"
)

// PromptHandler 每日提示 API 路由处理器
type PromptHandler struct {
	*Handler
}

// NewPromptHandler 创建 PromptHandler 实例
func NewPromptHandler(a *app.App) *PromptHandler {
	return &PromptHandler{
		Handler: NewHandler(a),
	}
}

// Daily today's writing prompt
// 返回当天的写作提示
func (h *PromptHandler) Daily(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	response.ToResponse(code.Success.WithData(h.App.PromptService.Daily(c.Request.Context())))
}
