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

// MindMapHandler 思维导图 API 路由处理器
type MindMapHandler struct {
	*Handler
}

// NewMindMapHandler 创建 MindMapHandler 实例
func NewMindMapHandler(a *app.App) *MindMapHandler {
	return &MindMapHandler{
		Handler: NewHandler(a),
	}
}

// Save snapshots a mind map document into a note
// 把思维导图文档固化为一篇笔记
func (h *MindMapHandler) Save(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MindMapSaveRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MindMapHandler.Save.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	note, err := h.App.MindMapService.SaveAsNote(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "MindMapHandler.Save", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}
