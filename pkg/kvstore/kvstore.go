// Package kvstore 提供按键存取字符串集合的本地存储介质
package kvstore

import (
	"github.com/haierkeys/note-vault/pkg/kvstore/badger_db"
	"github.com/haierkeys/note-vault/pkg/kvstore/local_fs"
	"github.com/haierkeys/note-vault/pkg/kvstore/memory"
	"github.com/haierkeys/note-vault/pkg/kvstore/sqlite_db"

	"github.com/pkg/errors"
)

type Type = string

const LocalFS Type = "localfs"
const Badger Type = "badger"
const SQLite Type = "sqlite"
const Memory Type = "memory"

var StoreTypeMap = map[Type]bool{
	LocalFS: true,
	Badger:  true,
	SQLite:  true,
	Memory:  true,
}

// Config unified storage medium configuration
// Config 统一的存储介质配置
type Config struct {
	// Type 介质类型: localfs / badger / sqlite / memory
	Type Type `yaml:"type" default:"localfs"`
	// Path 数据目录或数据库文件路径
	Path string `yaml:"path" default:"storage/data"`
}

// Store is the durable medium the note collections are persisted to.
// Semantics follow a browser localStorage: synchronous key/value access,
// whole-value replace on Set, no partial-write protection.
// Store 是笔记集合持久化的介质，语义对齐 localStorage：
// 按键同步读写，Set 整值覆盖。
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes value under key, overwriting any prior value.
	Set(key string, value string) error
	// Delete removes the key; missing keys are not an error.
	Delete(key string) error
	Close() error
}

// NewClient builds the medium selected by config.
// NewClient 根据配置构建存储介质
func NewClient(c *Config) (Store, error) {
	if c == nil {
		return nil, errors.New("kvstore: config is required")
	}
	switch c.Type {
	case LocalFS:
		return local_fs.NewClient(c.Path)
	case Badger:
		return badger_db.NewClient(c.Path)
	case SQLite:
		return sqlite_db.NewClient(c.Path)
	case Memory:
		return memory.NewClient(), nil
	default:
		return nil, errors.Errorf("kvstore: unknown store type %q", c.Type)
	}
}
