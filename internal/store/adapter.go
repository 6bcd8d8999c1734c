// Package store 持有每个身份的笔记集合，是持久化状态的唯一写入方
package store

import (
	"github.com/haierkeys/note-vault/internal/model"
	"github.com/haierkeys/note-vault/pkg/kvstore"
	"github.com/haierkeys/note-vault/pkg/logger"
	"github.com/haierkeys/note-vault/pkg/timex"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// storageKeyPrefix 每个身份的集合存储键前缀
const storageKeyPrefix = "notes_"

// Adapter translates between the in-memory note collection and its textual
// representation in the storage medium, keyed by the owning identity.
// Load fails soft: a missing key yields an empty collection (a seeded sample
// for the guest identity), malformed stored content is logged and dropped.
// Save replaces the whole stored value; write failures surface as
// StorageError.
// Adapter 负责笔记集合与介质文本之间的转换，按身份分键。
type Adapter struct {
	medium kvstore.Store
	logger *zap.Logger
}

func NewAdapter(medium kvstore.Store, lg *zap.Logger) *Adapter {
	return &Adapter{medium: medium, logger: lg}
}

// StorageKey derives the medium key for an identity; an empty identity maps
// to the fixed guest key. Switching identity therefore switches to a
// completely different collection, no merge happens.
// StorageKey 推导身份对应的存储键，空身份落到固定的访客键。
func StorageKey(ownerID string) string {
	if ownerID == "" {
		ownerID = model.GuestOwnerID
	}
	return storageKeyPrefix + ownerID
}

// OwnerOrGuest 空身份归一化为访客
func OwnerOrGuest(ownerID string) string {
	if ownerID == "" {
		return model.GuestOwnerID
	}
	return ownerID
}

// Load reads the collection of ownerID. Only a medium read failure is an
// error; corrupted content degrades to "no notes" by policy (the original
// notes are accepted as lost).
func (a *Adapter) Load(ownerID string) ([]*model.Note, error) {
	owner := OwnerOrGuest(ownerID)
	key := StorageKey(owner)

	raw, ok, err := a.medium.Get(key)
	if err != nil {
		return nil, &StorageError{Op: "load", Key: key, Err: err}
	}
	if !ok {
		if owner == model.GuestOwnerID {
			return seedGuestNotes(), nil
		}
		return []*model.Note{}, nil
	}

	var notes []*model.Note
	if err := sonic.Unmarshal([]byte(raw), &notes); err != nil {
		a.logger.Error("stored note collection is malformed, falling back to empty",
			zap.String(logger.FieldStorageKey, key),
			zap.Error(err))
		return []*model.Note{}, nil
	}

	// 数组里的 null 元素同样算损坏数据，按同一策略丢弃
	kept := notes[:0]
	dropped := 0
	for _, n := range notes {
		if n == nil {
			dropped++
			continue
		}
		kept = append(kept, n)
	}
	if dropped > 0 {
		a.logger.Error("stored note collection contains null records, dropping them",
			zap.String(logger.FieldStorageKey, key),
			zap.Int(logger.FieldCount, dropped))
	}
	return kept, nil
}

// Save serializes the full collection and overwrites the stored value.
func (a *Adapter) Save(ownerID string, notes []*model.Note) error {
	key := StorageKey(ownerID)

	data, err := sonic.Marshal(notes)
	if err != nil {
		return &StorageError{Op: "serialize", Key: key, Err: err}
	}
	if err := a.medium.Set(key, string(data)); err != nil {
		return &StorageError{Op: "save", Key: key, Err: err}
	}
	return nil
}

// seedGuestNotes 访客首次访问时的示例集合
func seedGuestNotes() []*model.Note {
	now := timex.Now()
	return []*model.Note{
		{
			ID:         uuid.NewString(),
			Title:      "Welcome to Notes",
			Content:    "Start creating your notes! Use the create endpoint to begin.",
			Tags:       []string{"welcome", "getting-started"},
			IsFavorite: true,
			CreatedAt:  now,
			UpdatedAt:  now,
			OwnerID:    model.GuestOwnerID,
		},
	}
}
