package store

import (
	"testing"
	"time"

	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/pkg/kvstore/memory"
	"github.com/haierkeys/note-vault/pkg/timex"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// newTestStore 基于内存介质构建带固定时钟的 Store
func newTestStore(t *testing.T, now time.Time) (*Store, *memory.Memory) {
	t.Helper()
	medium := memory.NewClient()
	adapter := NewAdapter(medium, zap.NewNop())
	s := New(adapter, zap.NewNop()).WithClock(func() time.Time { return now })
	return s, medium
}

func TestAddAndList(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	first, err := s.Add(uid, "first", "content one", []string{"work"})
	assert.Nil(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, uid, first.OwnerID)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	second, err := s.Add(uid, "second", "content two", nil)
	assert.Nil(t, err)

	// 列表为创建时间倒序，最新在前
	notes, err := s.List(uid)
	assert.Nil(t, err)
	if assert.Len(t, notes, 2) {
		assert.Equal(t, second.ID, notes[0].ID)
		assert.Equal(t, first.ID, notes[1].ID)
	}
	// nil tags 归一化为空切片
	assert.NotNil(t, notes[0].Tags)
}

func TestGet(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	created, err := s.Add(uid, "a note", "body", nil)
	assert.Nil(t, err)

	got, err := s.Get(uid, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "a note", got.Title)

	_, err = s.Get(uid, "no-such-id")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestUpdatePartialFields(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, createdAt)
	uid := "u1"

	note, err := s.Add(uid, "title", "content", []string{"a"})
	assert.Nil(t, err)

	later := createdAt.Add(time.Hour)
	s.WithClock(func() time.Time { return later })

	title := "new title"
	updated, err := s.Update(uid, note.ID, &UpdateFields{Title: &title})
	assert.Nil(t, err)
	// 未提供的字段保持原值
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "content", updated.Content)
	assert.Equal(t, []string{"a"}, updated.Tags)
	// createdAt 不变，updatedAt 刷新
	assert.Equal(t, note.CreatedAt, updated.CreatedAt)
	assert.Equal(t, later.Unix(), updated.UpdatedAt.Unix())

	tags := []string{"b", "c"}
	updated, err = s.Update(uid, note.ID, &UpdateFields{Tags: &tags})
	assert.Nil(t, err)
	assert.Equal(t, []string{"b", "c"}, updated.Tags)
	assert.Equal(t, "new title", updated.Title)

	_, err = s.Update(uid, "missing", &UpdateFields{Title: &title})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestToggleFavorite(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	note, err := s.Add(uid, "t", "c", nil)
	assert.Nil(t, err)
	assert.False(t, note.IsFavorite)

	toggled, err := s.ToggleFavorite(uid, note.ID)
	assert.Nil(t, err)
	assert.True(t, toggled.IsFavorite)

	toggled, err = s.ToggleFavorite(uid, note.ID)
	assert.Nil(t, err)
	assert.False(t, toggled.IsFavorite)

	_, err = s.ToggleFavorite(uid, "missing")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestSoftDeleteRestorePermanentDelete(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	note, err := s.Add(uid, "t", "c", nil)
	assert.Nil(t, err)

	deleted, err := s.SoftDelete(uid, note.ID)
	assert.Nil(t, err)
	assert.True(t, deleted.IsDeleted)

	// 软删除后仍在集合中
	notes, err := s.List(uid)
	assert.Nil(t, err)
	assert.Len(t, notes, 1)

	restored, err := s.Restore(uid, note.ID)
	assert.Nil(t, err)
	assert.False(t, restored.IsDeleted)

	err = s.PermanentDelete(uid, note.ID)
	assert.Nil(t, err)

	notes, err = s.List(uid)
	assert.Nil(t, err)
	assert.Len(t, notes, 0)

	err = s.PermanentDelete(uid, note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestImport(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	existing, err := s.Add(uid, "existing", "c", nil)
	assert.Nil(t, err)

	payload := []byte(`[
		{"id": "ext-1", "title": "imported one", "content": "c1", "tags": ["work"], "ownerId": "someone-else",
		 "createdAt": "2026-01-15T08:00:00Z", "updatedAt": "2026-01-16T08:00:00Z"},
		{"title": "imported two", "content": "c2"}
	]`)

	count, err := s.Import(uid, payload)
	assert.Nil(t, err)
	assert.Equal(t, 2, count)

	notes, err := s.List(uid)
	assert.Nil(t, err)
	if !assert.Len(t, notes, 3) {
		return
	}

	// 导入追加在集合末尾，不打乱已有顺序
	assert.Equal(t, existing.ID, notes[0].ID)

	one := notes[1]
	two := notes[2]

	// 一律分配新 ID，归属改为当前身份
	assert.NotEqual(t, "ext-1", one.ID)
	assert.Equal(t, uid, one.OwnerID)
	assert.Equal(t, uid, two.OwnerID)
	assert.NotEqual(t, one.ID, two.ID)

	// 自带时间戳保留
	assert.Equal(t, time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC).Unix(), one.CreatedAt.Unix())
	// 缺失时间戳落到导入时刻
	assert.Equal(t, now.Unix(), two.CreatedAt.Unix())
	assert.Equal(t, now.Unix(), two.UpdatedAt.Unix())
	assert.NotNil(t, two.Tags)

	if assert.NotNil(t, one.ImportedAt) {
		assert.Equal(t, now.Unix(), one.ImportedAt.Unix())
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	_, err := s.Add(uid, "existing", "c", nil)
	assert.Nil(t, err)

	for _, payload := range []string{`{"title": "not an array"}`, `"plain string"`, `{{{`} {
		count, err := s.Import(uid, []byte(payload))
		assert.ErrorIs(t, err, ErrImport)
		assert.Equal(t, 0, count)
	}

	// 失败导入不碰集合
	notes, err := s.List(uid)
	assert.Nil(t, err)
	assert.Len(t, notes, 1)
}

func TestImportRejectsNullRecords(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	_, err := s.Add(uid, "existing", "c", nil)
	assert.Nil(t, err)

	// null 是合法的 JSON 数组元素，但不是笔记对象
	for _, payload := range []string{`[null]`, `[{"title": "ok"}, null]`} {
		count, err := s.Import(uid, []byte(payload))
		assert.ErrorIs(t, err, ErrImport)
		assert.Equal(t, 0, count)
	}

	notes, err := s.List(uid)
	assert.Nil(t, err)
	assert.Len(t, notes, 1)
}

func TestListToleratesNullRecords(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, medium := newTestStore(t, now)
	uid := "u1"

	// 介质里混入 null 元素时读取照常进行，null 按损坏数据丢弃
	assert.Nil(t, medium.Set(StorageKey(uid), `[null]`))
	notes, err := s.List(uid)
	assert.Nil(t, err)
	assert.Len(t, notes, 0)

	assert.Nil(t, medium.Set(StorageKey(uid), `[null, {"id": "n1", "title": "kept", "tags": []}]`))
	notes, err = s.List(uid)
	assert.Nil(t, err)
	if assert.Len(t, notes, 1) {
		assert.Equal(t, "n1", notes[0].ID)
	}
}

func TestExportRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	kept, err := s.Add(uid, "kept", "c", []string{"x"})
	assert.Nil(t, err)
	trashed, err := s.Add(uid, "trashed", "c", nil)
	assert.Nil(t, err)
	_, err = s.SoftDelete(uid, trashed.ID)
	assert.Nil(t, err)

	data, err := s.Export(uid)
	assert.Nil(t, err)

	var exported []*model.Note
	assert.Nil(t, sonic.Unmarshal(data, &exported))
	// 导出包含软删除笔记
	if assert.Len(t, exported, 2) {
		assert.Equal(t, trashed.ID, exported[0].ID)
		assert.True(t, exported[0].IsDeleted)
		assert.Equal(t, kept.ID, exported[1].ID)
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	a, err := s.Add(uid, "a", "c", []string{"work", "go"})
	assert.Nil(t, err)
	_, err = s.Add(uid, "b", "c", []string{"work"})
	assert.Nil(t, err)
	trashed, err := s.Add(uid, "c", "c", []string{"trashy"})
	assert.Nil(t, err)

	_, err = s.ToggleFavorite(uid, a.ID)
	assert.Nil(t, err)
	_, err = s.SoftDelete(uid, trashed.ID)
	assert.Nil(t, err)

	stats, err := s.Stats(uid)
	assert.Nil(t, err)
	// total 与 favorites 不含软删除，deleted 单独计数
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Favorites)
	assert.Equal(t, 1, stats.Deleted)
	// 标签基数跨删除状态去重
	assert.Equal(t, 3, stats.Tags)
}

func TestPurgeDeletedBefore(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, base)
	uid := "u1"

	old, err := s.Add(uid, "old trash", "c", nil)
	assert.Nil(t, err)
	_, err = s.SoftDelete(uid, old.ID)
	assert.Nil(t, err)

	// 之后的操作发生在 40 天后
	later := base.AddDate(0, 0, 40)
	s.WithClock(func() time.Time { return later })

	fresh, err := s.Add(uid, "fresh trash", "c", nil)
	assert.Nil(t, err)
	_, err = s.SoftDelete(uid, fresh.ID)
	assert.Nil(t, err)
	active, err := s.Add(uid, "ancient but active", "c", nil)
	assert.Nil(t, err)

	cutoff := later.AddDate(0, 0, -30)
	purged, err := s.PurgeDeletedBefore(uid, cutoff)
	assert.Nil(t, err)
	assert.Equal(t, 1, purged)

	notes, err := s.List(uid)
	assert.Nil(t, err)
	ids := map[string]bool{}
	for _, n := range notes {
		ids[n.ID] = true
	}
	assert.False(t, ids[old.ID])
	assert.True(t, ids[fresh.ID])
	assert.True(t, ids[active.ID])

	// 没有可清理的条目时不写介质
	purged, err = s.PurgeDeletedBefore(uid, cutoff)
	assert.Nil(t, err)
	assert.Equal(t, 0, purged)
}

func TestCollectionsAreIsolatedPerIdentity(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)

	_, err := s.Add("alice", "alice note", "c", nil)
	assert.Nil(t, err)
	_, err = s.Add("bob", "bob note", "c", nil)
	assert.Nil(t, err)

	aliceNotes, err := s.List("alice")
	assert.Nil(t, err)
	if assert.Len(t, aliceNotes, 1) {
		assert.Equal(t, "alice note", aliceNotes[0].Title)
	}

	bobNotes, err := s.List("bob")
	assert.Nil(t, err)
	if assert.Len(t, bobNotes, 1) {
		assert.Equal(t, "bob note", bobNotes[0].Title)
	}
}

func TestListReturnsClones(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, now)
	uid := "u1"

	note, err := s.Add(uid, "original", "c", []string{"tag"})
	assert.Nil(t, err)

	notes, err := s.List(uid)
	assert.Nil(t, err)
	notes[0].Title = "mutated"
	notes[0].Tags[0] = "mutated"

	// 调用方的修改不能穿透到存储状态
	reloaded, err := s.Get(uid, note.ID)
	assert.Nil(t, err)
	assert.Equal(t, "original", reloaded.Title)
	assert.Equal(t, []string{"tag"}, reloaded.Tags)
}

func TestGuestWritesPersistUnderGuestKey(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s, medium := newTestStore(t, now)

	// 空身份写入落到访客键
	note, err := s.Add("", "guest note", "c", nil)
	assert.Nil(t, err)
	assert.Equal(t, model.GuestOwnerID, note.OwnerID)

	_, ok, err := medium.Get("notes_" + model.GuestOwnerID)
	assert.Nil(t, err)
	assert.True(t, ok)

	// 首次写入时种子示例已在集合中
	notes, err := s.List("")
	assert.Nil(t, err)
	assert.Len(t, notes, 2)
	assert.Equal(t, "guest note", notes[0].Title)
}

func TestTimestampsSerializeAsISO8601(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	s, medium := newTestStore(t, now)
	uid := "u1"

	_, err := s.Add(uid, "t", "c", nil)
	assert.Nil(t, err)

	raw, ok, err := medium.Get("notes_" + uid)
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Contains(t, raw, `"createdAt":"`+now.Format(timex.Format)+`"`)
}
