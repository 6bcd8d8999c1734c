package service

import (
	"context"
	"time"

	"github.com/haierkeys/note-vault/internal/dto"
	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/internal/store"
	"github.com/haierkeys/note-vault/pkg/code"
	"github.com/haierkeys/note-vault/pkg/logger"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// MindMapService 把画布文档固化为一篇笔记
type MindMapService interface {
	SaveAsNote(ctx context.Context, ownerID string, params *dto.MindMapSaveRequest) (*model.Note, error)
}

type mindMapService struct {
	notes  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewMindMapService 创建 MindMapService 实例
func NewMindMapService(notes *store.Store, lg *zap.Logger) MindMapService {
	return &mindMapService{notes: notes, logger: lg, now: time.Now}
}

// SaveAsNote snapshots the mind map document as a markdown note whose body
// carries the raw document JSON, so the canvas can be restored later.
func (svc *mindMapService) SaveAsNote(ctx context.Context, ownerID string, params *dto.MindMapSaveRequest) (*model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := &model.MindMapDocument{
		Nodes:       params.Nodes,
		Connections: params.Connections,
	}
	body, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	title := "Mind Map - " + svc.now().Format("2006-01-02")
	content := "# Mind Map\n\n```json\n" + string(body) + "\n```\n"

	note, err := svc.notes.Add(ownerID, title, content, []string{"mindmap", "visualization"})
	if err != nil {
		return nil, noteStoreError(err)
	}
	svc.logger.Info("mind map saved as note",
		zap.String(logger.FieldUID, store.OwnerOrGuest(ownerID)),
		zap.String(logger.FieldNoteID, note.ID),
		zap.Int("nodes", len(params.Nodes)))
	return note, nil
}
