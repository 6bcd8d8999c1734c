package service

import (
	"context"
	"time"

	"github.com/haierkeys/note-vault/internal/dto"
	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/internal/store"
	"github.com/haierkeys/note-vault/internal/view"
	"github.com/haierkeys/note-vault/pkg/code"
	"github.com/haierkeys/note-vault/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NoteService 笔记业务服务接口
type NoteService interface {
	List(ctx context.Context, ownerID string, params *dto.NoteListRequest) (*dto.NoteListResponse, error)
	Get(ctx context.Context, ownerID string, id string) (*model.Note, error)
	Create(ctx context.Context, ownerID string, params *dto.NoteCreateRequest) (*model.Note, error)
	Update(ctx context.Context, ownerID string, params *dto.NoteUpdateRequest) (*model.Note, error)
	ToggleFavorite(ctx context.Context, ownerID string, id string) (*model.Note, error)
	Delete(ctx context.Context, ownerID string, id string) (*model.Note, error)
	Restore(ctx context.Context, ownerID string, id string) (*model.Note, error)
	Purge(ctx context.Context, ownerID string, id string) error
	Stats(ctx context.Context, ownerID string) (*store.Stats, error)
	Export(ctx context.Context, ownerID string) (*dto.NoteExportDTO, error)
	Import(ctx context.Context, ownerID string, payload []byte) (*dto.NoteImportResponse, error)
	Collections(ctx context.Context) []*dto.SmartCollectionDTO
}

type noteService struct {
	notes  *store.Store
	engine *view.Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewNoteService creates NoteService instance
// NewNoteService 创建 NoteService 实例
func NewNoteService(notes *store.Store, engine *view.Engine, lg *zap.Logger) NoteService {
	return &noteService{notes: notes, engine: engine, logger: lg, now: time.Now}
}

// List resolves the view / smart collection / search pipeline and optionally
// groups the default view into time buckets. Buckets are only meaningful on
// the full, unfiltered note list, so grouping is skipped whenever a smart
// collection or keyword narrows the result.
func (svc *noteService) List(ctx context.Context, ownerID string, params *dto.NoteListRequest) (*dto.NoteListResponse, error) {
	// 超时或已取消的请求不再进入存储层
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	notes, err := svc.notes.List(ownerID)
	if err != nil {
		return nil, noteStoreError(err)
	}

	filtered, err := svc.engine.Filter(notes, params.View, params.Collection, params.Keyword)
	if err != nil {
		if errors.Is(err, view.ErrUnknownView) || errors.Is(err, view.ErrUnknownCollection) {
			return nil, code.ErrorNoteViewInvalid.WithDetails(err.Error())
		}
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	resp := &dto.NoteListResponse{Notes: filtered}
	if params.Grouped &&
		(params.View == "" || params.View == view.ViewAll) &&
		params.Collection == "" && params.Keyword == "" {
		resp.Buckets = svc.engine.GroupByTime(filtered)
	}

	svc.logger.Debug("notes listed",
		zap.String(logger.FieldUID, store.OwnerOrGuest(ownerID)),
		zap.String(logger.FieldView, params.View),
		zap.String(logger.FieldCollection, params.Collection),
		zap.Int(logger.FieldCount, len(filtered)))
	return resp, nil
}

func (svc *noteService) Get(ctx context.Context, ownerID string, id string) (*model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	note, err := svc.notes.Get(ownerID, id)
	if err != nil {
		return nil, noteStoreError(err)
	}
	return note, nil
}

func (svc *noteService) Create(ctx context.Context, ownerID string, params *dto.NoteCreateRequest) (*model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	note, err := svc.notes.Add(ownerID, params.Title, params.Content, params.Tags)
	if err != nil {
		return nil, noteStoreError(err)
	}
	return note, nil
}

func (svc *noteService) Update(ctx context.Context, ownerID string, params *dto.NoteUpdateRequest) (*model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fields := &store.UpdateFields{
		Title:      params.Title,
		Content:    params.Content,
		Tags:       params.Tags,
		IsFavorite: params.IsFavorite,
	}
	note, err := svc.notes.Update(ownerID, params.ID, fields)
	if err != nil {
		return nil, noteStoreError(err)
	}
	return note, nil
}

func (svc *noteService) ToggleFavorite(ctx context.Context, ownerID string, id string) (*model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	note, err := svc.notes.ToggleFavorite(ownerID, id)
	if err != nil {
		return nil, noteStoreError(err)
	}
	return note, nil
}

func (svc *noteService) Delete(ctx context.Context, ownerID string, id string) (*model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	note, err := svc.notes.SoftDelete(ownerID, id)
	if err != nil {
		return nil, noteStoreError(err)
	}
	svc.logger.Info("note moved to trash", zap.String(logger.FieldUID, store.OwnerOrGuest(ownerID)), zap.String(logger.FieldNoteID, id))
	return note, nil
}

func (svc *noteService) Restore(ctx context.Context, ownerID string, id string) (*model.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	note, err := svc.notes.Restore(ownerID, id)
	if err != nil {
		return nil, noteStoreError(err)
	}
	return note, nil
}

func (svc *noteService) Purge(ctx context.Context, ownerID string, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := svc.notes.PermanentDelete(ownerID, id); err != nil {
		return noteStoreError(err)
	}
	return nil
}

func (svc *noteService) Stats(ctx context.Context, ownerID string) (*store.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stats, err := svc.notes.Stats(ownerID)
	if err != nil {
		return nil, noteStoreError(err)
	}
	return stats, nil
}

// Export serializes the full collection, deleted notes included, and names
// the artifact notes-backup-<date>.json
func (svc *noteService) Export(ctx context.Context, ownerID string) (*dto.NoteExportDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := svc.notes.Export(ownerID)
	if err != nil {
		return nil, noteStoreError(err)
	}
	return &dto.NoteExportDTO{
		Filename: "notes-backup-" + svc.now().Format("2006-01-02") + ".json",
		Payload:  string(payload),
	}, nil
}

func (svc *noteService) Import(ctx context.Context, ownerID string, payload []byte) (*dto.NoteImportResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	added, err := svc.notes.Import(ownerID, payload)
	if err != nil {
		return nil, noteStoreError(err)
	}
	return &dto.NoteImportResponse{Added: added}, nil
}

func (svc *noteService) Collections(ctx context.Context) []*dto.SmartCollectionDTO {
	out := make([]*dto.SmartCollectionDTO, 0, len(view.BuiltinCollections))
	for _, c := range view.BuiltinCollections {
		out = append(out, &dto.SmartCollectionDTO{ID: c.ID, Label: c.Label})
	}
	return out
}

// noteStoreError 把存储层错误翻译成统一业务码
func noteStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		return code.ErrorNoteNotFound
	case errors.Is(err, store.ErrImport):
		return code.ErrorNoteImportInvalid.WithDetails(err.Error())
	case store.IsStorageFailure(err):
		return code.ErrorStorageFailure.WithDetails(err.Error())
	default:
		return code.ErrorServerInternal.WithDetails(err.Error())
	}
}
