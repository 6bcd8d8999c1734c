package store

import (
	"sync"
	"time"

	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/pkg/logger"
	"github.com/haierkeys/note-vault/pkg/timex"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateFields is the typed partial-update for a note. Nil fields are left
// untouched; id, createdAt and ownerId can never change through here.
// UpdateFields 笔记的部分更新结构，nil 字段保持原值。
type UpdateFields struct {
	Title      *string
	Content    *string
	Tags       *[]string
	IsFavorite *bool
}

// Stats 集合聚合统计
// Total and Favorites exclude soft-deleted notes; Tags is the cardinality of
// the tag union across the whole collection regardless of deletion state.
type Stats struct {
	Total     int `json:"total"`
	Favorites int `json:"favorites"`
	Deleted   int `json:"deleted"`
	Tags      int `json:"tags"`
}

// Store owns the per-identity note collections: all CRUD, aggregate queries
// and bulk import/export go through it, and it is the sole writer of the
// persisted state. A single mutex serializes operations; the domain has no
// shared-writer scenario beyond concurrent HTTP requests of one process.
// Store 持有各身份的笔记集合，是持久化状态的唯一写入方。
type Store struct {
	adapter *Adapter
	logger  *zap.Logger

	mu sync.Mutex
	// now 可注入的时钟，测试用
	now func() time.Time
}

func New(adapter *Adapter, lg *zap.Logger) *Store {
	return &Store{
		adapter: adapter,
		logger:  lg,
		now:     time.Now,
	}
}

// WithClock 注入时钟
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// List returns the collection in stored order (newest created first).
func (s *Store) List(ownerID string) ([]*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return nil, err
	}
	return cloneAll(notes), nil
}

// Get 按 ID 取单条
func (s *Store) Get(ownerID string, id string) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if n.ID == id {
			return n.Clone(), nil
		}
	}
	return nil, ErrNoteNotFound
}

// Add constructs a new active note, prepends it (default listing is newest
// first) and persists. The store performs no field validation; required-ness
// of title/content is the creation boundary's concern.
func (s *Store) Add(ownerID string, title string, content string, tags []string) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return nil, err
	}

	now := timex.Time(s.now())
	note := &model.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Tags:      append([]string{}, tags...),
		CreatedAt: now,
		UpdatedAt: now,
		OwnerID:   OwnerOrGuest(ownerID),
	}

	notes = append([]*model.Note{note}, notes...)
	if err := s.adapter.Save(ownerID, notes); err != nil {
		return nil, err
	}

	s.logger.Info("note created",
		zap.String(logger.FieldUID, note.OwnerID),
		zap.String(logger.FieldNoteID, note.ID))
	return note.Clone(), nil
}

// Update merges the provided fields into the matching note and refreshes
// updatedAt. Returns ErrNoteNotFound for an unknown id.
func (s *Store) Update(ownerID string, id string, fields *UpdateFields) (*model.Note, error) {
	return s.mutate(ownerID, id, func(n *model.Note) {
		if fields == nil {
			return
		}
		if fields.Title != nil {
			n.Title = *fields.Title
		}
		if fields.Content != nil {
			n.Content = *fields.Content
		}
		if fields.Tags != nil {
			n.Tags = append([]string{}, (*fields.Tags)...)
		}
		if fields.IsFavorite != nil {
			n.IsFavorite = *fields.IsFavorite
		}
	})
}

// ToggleFavorite 翻转收藏标记
func (s *Store) ToggleFavorite(ownerID string, id string) (*model.Note, error) {
	return s.mutate(ownerID, id, func(n *model.Note) {
		n.IsFavorite = !n.IsFavorite
	})
}

// SoftDelete 打软删除标记，仅在回收站视图可见
func (s *Store) SoftDelete(ownerID string, id string) (*model.Note, error) {
	return s.mutate(ownerID, id, func(n *model.Note) {
		n.IsDeleted = true
	})
}

// Restore 从回收站恢复
func (s *Store) Restore(ownerID string, id string) (*model.Note, error) {
	return s.mutate(ownerID, id, func(n *model.Note) {
		n.IsDeleted = false
	})
}

// PermanentDelete removes the note from the collection irreversibly.
func (s *Store) PermanentDelete(ownerID string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return err
	}

	kept := notes[:0]
	found := false
	for _, n := range notes {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return ErrNoteNotFound
	}
	if err := s.adapter.Save(ownerID, kept); err != nil {
		return err
	}

	s.logger.Info("note purged",
		zap.String(logger.FieldUID, OwnerOrGuest(ownerID)),
		zap.String(logger.FieldNoteID, id))
	return nil
}

// Import parses an external JSON array and appends every record to the
// collection: fresh id, active owner, import timestamp. Nothing is merged or
// deduplicated. A payload whose top level is not an array fails with
// ErrImport and leaves the collection untouched.
func (s *Store) Import(ownerID string, payload []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var imported []*model.Note
	if err := sonic.Unmarshal(payload, &imported); err != nil {
		return 0, ErrImport
	}
	// JSON null 是合法的数组元素，但不是笔记对象
	for _, n := range imported {
		if n == nil {
			return 0, ErrImport
		}
	}

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return 0, err
	}

	now := timex.Time(s.now())
	owner := OwnerOrGuest(ownerID)
	for _, n := range imported {
		n.ID = uuid.NewString()
		n.OwnerID = owner
		importedAt := now
		n.ImportedAt = &importedAt
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		if n.UpdatedAt.IsZero() {
			n.UpdatedAt = n.CreatedAt
		}
		if n.Tags == nil {
			n.Tags = []string{}
		}
		notes = append(notes, n)
	}

	if err := s.adapter.Save(ownerID, notes); err != nil {
		return 0, err
	}

	s.logger.Info("notes imported",
		zap.String(logger.FieldUID, owner),
		zap.Int(logger.FieldCount, len(imported)))
	return len(imported), nil
}

// Export serializes the full collection, soft-deleted notes included.
// Pure read, no state change.
func (s *Store) Export(ownerID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return nil, err
	}
	data, err := sonic.MarshalIndent(notes, "", "  ")
	if err != nil {
		return nil, &StorageError{Op: "export", Key: StorageKey(ownerID), Err: err}
	}
	return data, nil
}

// Stats recomputes the aggregate counters over the whole collection.
func (s *Store) Stats(ownerID string) (*Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	tags := map[string]struct{}{}
	for _, n := range notes {
		if n.IsDeleted {
			stats.Deleted++
		} else {
			stats.Total++
			if n.IsFavorite {
				stats.Favorites++
			}
		}
		// 标签基数统计不区分删除状态
		for _, t := range n.Tags {
			tags[t] = struct{}{}
		}
	}
	stats.Tags = len(tags)
	return stats, nil
}

// PurgeDeletedBefore removes soft-deleted notes whose updatedAt is older
// than cutoff. Used by the trash retention task.
// PurgeDeletedBefore 清掉在 cutoff 之前软删除的笔记，由回收站保留任务调用。
func (s *Store) PurgeDeletedBefore(ownerID string, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return 0, err
	}

	kept := notes[:0]
	purged := 0
	for _, n := range notes {
		if n.IsDeleted && n.UpdatedAt.Time().Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, n)
	}
	if purged == 0 {
		return 0, nil
	}
	if err := s.adapter.Save(ownerID, kept); err != nil {
		return 0, err
	}
	return purged, nil
}

// mutate 定位笔记执行变更并刷新 updatedAt，统一的持久化出口
func (s *Store) mutate(ownerID string, id string, apply func(*model.Note)) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.adapter.Load(ownerID)
	if err != nil {
		return nil, err
	}

	var target *model.Note
	for _, n := range notes {
		if n.ID == id {
			target = n
			break
		}
	}
	if target == nil {
		return nil, ErrNoteNotFound
	}

	apply(target)
	target.UpdatedAt = timex.Time(s.now())

	if err := s.adapter.Save(ownerID, notes); err != nil {
		return nil, err
	}
	return target.Clone(), nil
}

func cloneAll(notes []*model.Note) []*model.Note {
	out := make([]*model.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Clone())
	}
	return out
}
