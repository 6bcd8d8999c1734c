package service

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/note-vault/internal/dto"
	"github.com/haierkeys/note-vault/internal/store"
	"github.com/haierkeys/note-vault/internal/view"
	"github.com/haierkeys/note-vault/pkg/code"
	"github.com/haierkeys/note-vault/pkg/kvstore/memory"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var serviceNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func newTestNoteService(t *testing.T) *noteService {
	t.Helper()
	adapter := store.NewAdapter(memory.NewClient(), zap.NewNop())
	notes := store.New(adapter, zap.NewNop()).WithClock(func() time.Time { return serviceNow })
	engine := view.NewEngine().WithClock(func() time.Time { return serviceNow })
	return &noteService{
		notes:  notes,
		engine: engine,
		logger: zap.NewNop(),
		now:    func() time.Time { return serviceNow },
	}
}

func TestNoteServiceCreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)
	uid := "u1"

	created, err := svc.Create(ctx, uid, &dto.NoteCreateRequest{
		Title:   "hello",
		Content: "world",
		Tags:    []string{"work"},
	})
	assert.Nil(t, err)
	assert.NotEmpty(t, created.ID)

	resp, err := svc.List(ctx, uid, &dto.NoteListRequest{})
	assert.Nil(t, err)
	if assert.Len(t, resp.Notes, 1) {
		assert.Equal(t, created.ID, resp.Notes[0].ID)
	}
	assert.Nil(t, resp.Buckets)
}

func TestNoteServiceListGroupingGate(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)
	uid := "u1"

	_, err := svc.Create(ctx, uid, &dto.NoteCreateRequest{Title: "t", Content: "c", Tags: []string{"work"}})
	assert.Nil(t, err)

	tests := []struct {
		name        string
		params      *dto.NoteListRequest
		wantBuckets bool
	}{
		{"grouped default view", &dto.NoteListRequest{Grouped: true}, true},
		{"grouped all view", &dto.NoteListRequest{Grouped: true, View: view.ViewAll}, true},
		{"not requested", &dto.NoteListRequest{}, false},
		// 分桶只对完整默认列表有意义
		{"grouped favorites view", &dto.NoteListRequest{Grouped: true, View: view.ViewFavorites}, false},
		{"grouped with collection", &dto.NoteListRequest{Grouped: true, Collection: "work-notes"}, false},
		{"grouped with keyword", &dto.NoteListRequest{Grouped: true, Keyword: "t"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(ctx, uid, tt.params)
			assert.Nil(t, err)
			if tt.wantBuckets {
				assert.NotEmpty(t, resp.Buckets)
			} else {
				assert.Nil(t, resp.Buckets)
			}
		})
	}
}

func TestNoteServiceListInvalidSelector(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)

	_, err := svc.List(ctx, "u1", &dto.NoteListRequest{View: "starred"})
	assertCode(t, err, code.ErrorNoteViewInvalid)

	_, err = svc.List(ctx, "u1", &dto.NoteListRequest{Collection: "bogus"})
	assertCode(t, err, code.ErrorNoteViewInvalid)
}

func TestNoteServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)
	uid := "u1"

	created, err := svc.Create(ctx, uid, &dto.NoteCreateRequest{Title: "t", Content: "c"})
	assert.Nil(t, err)

	title := "renamed"
	updated, err := svc.Update(ctx, uid, &dto.NoteUpdateRequest{ID: created.ID, Title: &title})
	assert.Nil(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "c", updated.Content)

	fav, err := svc.ToggleFavorite(ctx, uid, created.ID)
	assert.Nil(t, err)
	assert.True(t, fav.IsFavorite)

	trashed, err := svc.Delete(ctx, uid, created.ID)
	assert.Nil(t, err)
	assert.True(t, trashed.IsDeleted)

	restored, err := svc.Restore(ctx, uid, created.ID)
	assert.Nil(t, err)
	assert.False(t, restored.IsDeleted)

	assert.Nil(t, svc.Purge(ctx, uid, created.ID))

	_, err = svc.Get(ctx, uid, created.ID)
	assertCode(t, err, code.ErrorNoteNotFound)
}

func TestNoteServiceUnknownIDTranslation(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)
	uid := "u1"

	title := "x"
	_, err := svc.Update(ctx, uid, &dto.NoteUpdateRequest{ID: "missing", Title: &title})
	assertCode(t, err, code.ErrorNoteNotFound)

	_, err = svc.ToggleFavorite(ctx, uid, "missing")
	assertCode(t, err, code.ErrorNoteNotFound)

	_, err = svc.Delete(ctx, uid, "missing")
	assertCode(t, err, code.ErrorNoteNotFound)

	err = svc.Purge(ctx, uid, "missing")
	assertCode(t, err, code.ErrorNoteNotFound)
}

func TestNoteServiceStats(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)
	uid := "u1"

	a, err := svc.Create(ctx, uid, &dto.NoteCreateRequest{Title: "a", Content: "c", Tags: []string{"work"}})
	assert.Nil(t, err)
	_, err = svc.Create(ctx, uid, &dto.NoteCreateRequest{Title: "b", Content: "c"})
	assert.Nil(t, err)

	_, err = svc.ToggleFavorite(ctx, uid, a.ID)
	assert.Nil(t, err)

	stats, err := svc.Stats(ctx, uid)
	assert.Nil(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Favorites)
	assert.Equal(t, 0, stats.Deleted)
	assert.Equal(t, 1, stats.Tags)
}

func TestNoteServiceExportImport(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService(t)
	uid := "u1"

	_, err := svc.Create(ctx, uid, &dto.NoteCreateRequest{Title: "original", Content: "c"})
	assert.Nil(t, err)

	export, err := svc.Export(ctx, uid)
	assert.Nil(t, err)
	assert.Equal(t, "notes-backup-2026-08-20.json", export.Filename)
	assert.NotEmpty(t, export.Payload)

	// 导出的载荷可直接回导到另一个身份
	result, err := svc.Import(ctx, "u2", []byte(export.Payload))
	assert.Nil(t, err)
	assert.Equal(t, 1, result.Added)

	resp, err := svc.List(ctx, "u2", &dto.NoteListRequest{})
	assert.Nil(t, err)
	if assert.Len(t, resp.Notes, 1) {
		assert.Equal(t, "original", resp.Notes[0].Title)
		assert.Equal(t, "u2", resp.Notes[0].OwnerID)
	}

	_, err = svc.Import(ctx, uid, []byte(`{"not": "an array"}`))
	assertCode(t, err, code.ErrorNoteImportInvalid)
}

func TestNoteServiceCollections(t *testing.T) {
	svc := newTestNoteService(t)

	collections := svc.Collections(context.Background())
	if assert.Len(t, collections, 3) {
		assert.Equal(t, "last-week", collections[0].ID)
		assert.Equal(t, "work-notes", collections[1].ID)
		assert.Equal(t, "untagged", collections[2].ID)
		assert.Equal(t, "Last Week's Notes", collections[0].Label)
	}
}

func TestNoteServiceRejectsExpiredContext(t *testing.T) {
	svc := newTestNoteService(t)
	uid := "u1"

	_, err := svc.Create(context.Background(), uid, &dto.NoteCreateRequest{Title: "t", Content: "c"})
	assert.Nil(t, err)

	// 截止时间已过的请求原样返回 context 错误，由响应层映射成超时业务码
	ctx, cancel := context.WithDeadline(context.Background(), serviceNow.Add(-time.Hour))
	defer cancel()

	_, err = svc.List(ctx, uid, &dto.NoteListRequest{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = svc.Get(ctx, uid, "any")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = svc.Create(ctx, uid, &dto.NoteCreateRequest{Title: "t2", Content: "c2"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// 集合未被过期请求改动
	resp, err := svc.List(context.Background(), uid, &dto.NoteListRequest{})
	assert.Nil(t, err)
	assert.Len(t, resp.Notes, 1)
}

// assertCode 断言错误是指定业务码
func assertCode(t *testing.T, err error, want *code.Code) {
	t.Helper()
	got, ok := err.(*code.Code)
	if !ok {
		t.Fatalf("expected *code.Code, got %T: %v", err, err)
	}
	assert.Equal(t, want.Code(), got.Code())
}
