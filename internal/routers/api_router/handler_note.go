package api_router

import (
	"net/http"

	"github.com/haierkeys/note-vault/internal/app"
	"github.com/haierkeys/note-vault/internal/dto"
	pkgapp "github.com/haierkeys/note-vault/pkg/app"
	"github.com/haierkeys/note-vault/pkg/code"
	apperrors "github.com/haierkeys/note-vault/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler note API router handler
// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler creates NoteHandler instance
// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// List notes filtered by view selector, smart collection and keyword
// 按视图 / 智能集合 / 关键词过滤并返回笔记列表，可选时间分桶
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.List.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	list, err := h.App.NoteService.List(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(list))
}

// Get single note by id
// 按 ID 获取单条笔记
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	note, err := h.App.NoteService.Get(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Create a note
// 创建笔记，新笔记置于集合头部
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	note, err := h.App.NoteService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Update a note partially, absent fields stay untouched
// 部分更新笔记，缺省字段保持不变
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	note, err := h.App.NoteService.Update(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Favorite toggles the favorite flag
// 切换收藏状态
func (h *NoteHandler) Favorite(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	note, err := h.App.NoteService.ToggleFavorite(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Favorite", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Delete moves a note to trash (soft delete)
// 将笔记移入回收站（软删除）
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	note, err := h.App.NoteService.Delete(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Restore brings a soft-deleted note back
// 从回收站恢复笔记
func (h *NoteHandler) Restore(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	note, err := h.App.NoteService.Restore(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Restore", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Purge permanently deletes a note
// 彻底删除笔记，不可恢复
func (h *NoteHandler) Purge(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	if err := h.App.NoteService.Purge(ctx, uid, params.ID); err != nil {
		h.logError(ctx, "NoteHandler.Purge", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// Stats collection statistics
// 返回笔记集合统计数据
func (h *NoteHandler) Stats(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	stats, err := h.App.NoteService.Stats(ctx, uid)
	if err != nil {
		h.logError(ctx, "NoteHandler.Stats", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(stats))
}

// Export downloads the full collection as a JSON attachment
// 导出整个集合（含回收站）为 JSON 附件
func (h *NoteHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	artifact, err := h.App.NoteService.Export(ctx, uid)
	if err != nil {
		h.logError(ctx, "NoteHandler.Export", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(artifact.Payload))
}

// Import merges an exported payload into the current collection
// 导入笔记备份，追加到当前集合
func (h *NoteHandler) Import(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	payload, err := c.GetRawData()
	if err != nil {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(err.Error()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	result, err := h.App.NoteService.Import(ctx, uid, payload)
	if err != nil {
		h.logError(ctx, "NoteHandler.Import", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoteImport.WithData(result))
}

// Collections lists the built-in smart collections
// 返回内置智能集合清单
func (h *NoteHandler) Collections(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	response.ToResponse(code.Success.WithData(h.App.NoteService.Collections(c.Request.Context())))
}
